package internal

import (
	"reflect"
	"testing"
)

func TestWrapWords(t *testing.T) {
	measure := func(s string) int32 { return int32(len(s)) }

	got := wrapWords("We are having trouble accessing our country data.", 20, measure)
	want := []string{"We are having", "trouble accessing", "our country data."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wrapWords() = %q, want %q", got, want)
	}

	if got := wrapWords("  ", 10, measure); len(got) != 0 {
		t.Errorf("blank text = %q", got)
	}

	long := wrapWords("Supercalifragilistic word", 5, measure)
	if long[0] != "Supercalifragilistic" {
		t.Errorf("an overlong word keeps its own line, got %q", long)
	}
}

func TestIsqrt(t *testing.T) {
	for n, want := range map[int32]int32{0: 0, 1: 1, 15: 3, 16: 4, 400: 20} {
		if got := isqrt(n); got != want {
			t.Errorf("isqrt(%d) = %d, want %d", n, got, want)
		}
	}
}
