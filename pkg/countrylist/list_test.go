package countrylist

import (
	"fmt"
	"testing"
	"time"

	"github.com/BrandonKowalski/countrylist/pkg/countrylist/constants"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/internal"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/screens"
)

func rowsOf(n int) []Row {
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{Text: fmt.Sprintf("Row %d", i)}
	}
	return rows
}

// press feeds a press far enough apart from the last one to pass the debounce.
type presser struct {
	c   *listController
	now time.Time
}

func (p *presser) press(b constants.VirtualButton) command {
	p.now = p.now.Add(time.Second)
	cmd := p.c.handleInput(&internal.Event{Button: b, Pressed: true}, p.now)
	p.c.handleInput(&internal.Event{Button: b, Pressed: false}, p.now)
	return cmd
}

func newTestList(n int, settings ListSettings) (*listController, *presser) {
	rows := rowsOf(n)
	c := newListController(settings, func() []Row { return rows })
	c.setMaxVisible(4)
	return c, &presser{c: c, now: time.Unix(0, 0)}
}

func TestListNavigationWraps(t *testing.T) {
	c, p := newTestList(6, ListSettings{})

	p.press(constants.VirtualButtonUp)
	if c.SelectedIndex != 5 || c.VisibleStart != 2 {
		t.Fatalf("after Up: selected %d start %d", c.SelectedIndex, c.VisibleStart)
	}

	p.press(constants.VirtualButtonDown)
	if c.SelectedIndex != 0 || c.VisibleStart != 0 {
		t.Fatalf("after Down: selected %d start %d", c.SelectedIndex, c.VisibleStart)
	}
}

func TestListPaging(t *testing.T) {
	c, p := newTestList(10, ListSettings{})

	p.press(constants.VirtualButtonR1)
	if c.SelectedIndex != 4 {
		t.Errorf("R1: selected %d, want 4", c.SelectedIndex)
	}
	p.press(constants.VirtualButtonRight)
	p.press(constants.VirtualButtonRight)
	if c.SelectedIndex != 9 || c.VisibleStart != 6 {
		t.Errorf("paging clamps at the end: selected %d start %d", c.SelectedIndex, c.VisibleStart)
	}
	p.press(constants.VirtualButtonL1)
	if c.SelectedIndex != 5 {
		t.Errorf("L1: selected %d, want 5", c.SelectedIndex)
	}
}

func TestListCommands(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		settings ListSettings
		loading  bool
		button   constants.VirtualButton
		want     command
	}{
		{"select", 3, ListSettings{}, false, constants.VirtualButtonA, commandSelect},
		{"start selects", 3, ListSettings{}, false, constants.VirtualButtonStart, commandSelect},
		{"select on empty list", 0, ListSettings{}, false, constants.VirtualButtonA, commandNone},
		{"select while loading", 3, ListSettings{}, true, constants.VirtualButtonA, commandNone},
		{"back", 0, ListSettings{}, false, constants.VirtualButtonB, commandBack},
		{"refresh", 3, ListSettings{AllowRefresh: true}, false, constants.VirtualButtonY, commandRefresh},
		{"refresh not allowed", 3, ListSettings{}, false, constants.VirtualButtonY, commandNone},
		{"quit", 3, ListSettings{}, false, constants.VirtualButtonMenu, commandQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, p := newTestList(tt.rows, tt.settings)
			c.SetLoading(tt.loading)
			if got := p.press(tt.button); got != tt.want {
				t.Errorf("press(%v) = %v, want %v", tt.button, got, tt.want)
			}
		})
	}
}

func TestListAlertOnlyHonorsConfirm(t *testing.T) {
	c, p := newTestList(3, ListSettings{AllowRefresh: true})
	c.PresentAlert(screens.Alert{Title: "Loading Failure", Message: "We are having trouble accessing our country data.", RetryLabel: "Retry"})

	for _, b := range []constants.VirtualButton{constants.VirtualButtonB, constants.VirtualButtonY, constants.VirtualButtonDown, constants.VirtualButtonMenu} {
		if cmd := p.press(b); cmd != commandNone {
			t.Errorf("press(%v) with alert = %v, want none", b, cmd)
		}
	}
	if c.SelectedIndex != 0 {
		t.Error("alert should block navigation")
	}

	if cmd := p.press(constants.VirtualButtonA); cmd != commandRetry {
		t.Fatalf("confirm on alert = %v, want retry", cmd)
	}
	if c.AlertShowing() {
		t.Error("alert should be dismissed by its action")
	}
}

func TestListDebounce(t *testing.T) {
	c, _ := newTestList(5, ListSettings{})
	start := time.Unix(10, 0)

	c.handleInput(&internal.Event{Button: constants.VirtualButtonB, Pressed: true}, start)
	if cmd := c.handleInput(&internal.Event{Button: constants.VirtualButtonB, Pressed: true}, start.Add(5*time.Millisecond)); cmd != commandNone {
		t.Errorf("second press inside the debounce window = %v", cmd)
	}
}

func TestListKeepsRestoredPositionUntilRowsArrive(t *testing.T) {
	var rows []Row
	c := newListController(ListSettings{SelectedIndex: 7, VisibleStart: 5}, func() []Row { return rows })
	c.setMaxVisible(4)

	if c.SelectedIndex != 7 {
		t.Fatalf("selection reset before rows arrived: %d", c.SelectedIndex)
	}

	rows = rowsOf(10)
	c.ReloadRows()
	if c.SelectedIndex != 7 || c.VisibleStart < 4 || c.VisibleStart > 7 {
		t.Errorf("selected %d start %d", c.SelectedIndex, c.VisibleStart)
	}

	rows = rowsOf(3)
	c.ReloadRows()
	if c.SelectedIndex != 2 || c.VisibleStart != 0 {
		t.Errorf("after shrink: selected %d start %d", c.SelectedIndex, c.VisibleStart)
	}

	if r := c.result(ListActionSelected); r.SelectedIndex != 2 || r.Action != ListActionSelected {
		t.Errorf("result = %+v", r)
	}
}
