package worldregions

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Options{BaseURL: server.URL + "/rest/worldregions/", HTTPClient: server.Client()}), server
}

func TestCountriesDecodesInOrder(t *testing.T) {
	var gotPath, gotRequestID string
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get(RequestIDHeader)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"ID":1,"Name":"Canada","Code":"CA","Extra":true},
			{"ID":2,"Name":"Mexico","Code":"MX"},
			{"id":3,"name":"Peru","code":"PE"}
		]`))
	})

	countries, err := client.Countries(context.Background())
	if err != nil {
		t.Fatalf("Countries: %v", err)
	}

	if gotPath != "/rest/worldregions/country" {
		t.Errorf("path = %q, want /rest/worldregions/country", gotPath)
	}
	if gotRequestID == "" {
		t.Error("request id header not set")
	}

	want := []Country{
		{ID: 1, Name: "Canada", Code: "CA"},
		{ID: 2, Name: "Mexico", Code: "MX"},
		{ID: 3, Name: "Peru", Code: "PE"},
	}
	if len(countries) != len(want) {
		t.Fatalf("got %d countries, want %d", len(countries), len(want))
	}
	for i := range want {
		if countries[i] != want[i] {
			t.Errorf("countries[%d] = %+v, want %+v", i, countries[i], want[i])
		}
	}
}

func TestCountriesEmptyArray(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	countries, err := client.Countries(context.Background())
	if err != nil {
		t.Fatalf("Countries: %v", err)
	}
	if countries == nil || len(countries) != 0 {
		t.Errorf("got %#v, want empty non-nil slice", countries)
	}
}

func TestProvincesURL(t *testing.T) {
	var gotPath string
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[
			{"Name":"Ontario","Code":"ON","CountryCode":"CA"},
			{"Name":"Quebec","Code":"QC","country_code":"CA"}
		]`))
	})

	provinces, err := client.Provinces(context.Background(), 1)
	if err != nil {
		t.Fatalf("Provinces: %v", err)
	}
	if gotPath != "/rest/worldregions/country/1/province" {
		t.Errorf("path = %q, want /rest/worldregions/country/1/province", gotPath)
	}

	want := []Province{
		{Name: "Ontario", Code: "ON", CountryCode: "CA"},
		{Name: "Quebec", Code: "QC", CountryCode: "CA"},
	}
	for i := range want {
		if provinces[i] != want[i] {
			t.Errorf("provinces[%d] = %+v, want %+v", i, provinces[i], want[i])
		}
	}
}

func TestMalformedResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"wrong type", `[{"ID":"one","Name":"Canada","Code":"CA"}]`},
		{"missing key", `[{"ID":1,"Name":"Canada"}]`},
		{"null field", `[{"ID":1,"Name":null,"Code":"CA"}]`},
		{"one bad element", `[{"ID":1,"Name":"Canada","Code":"CA"},{"ID":2}]`},
		{"object", `{"ID":1,"Name":"Canada","Code":"CA"}`},
		{"null", `null`},
		{"truncated", `[{"ID":1,"Name":"Can`},
		{"empty body", ``},
		{"trailing garbage", `[{"ID":1,"Name":"Canada","Code":"CA"}]garbage`},
		{"second array", `[{"ID":1,"Name":"Canada","Code":"CA"}][]`},
		{"trailing partial object", `[{"ID":1,"Name":"Canada","Code":"CA"}]{"ID":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			})

			countries, err := client.Countries(context.Background())
			if err == nil {
				t.Fatalf("expected failure, got %+v", countries)
			}
			if countries != nil {
				t.Errorf("expected nil list on failure, got %+v", countries)
			}
			if !IsLoadFailure(err) {
				t.Errorf("error %v does not match ErrLoadFailure", err)
			}
			if kind, ok := FailureKindOf(err); !ok || kind != FailureDecode {
				t.Errorf("kind = %v, %v; want decode", kind, ok)
			}
		})
	}
}

func TestTrailingWhitespaceIsAccepted(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[{\"ID\":1,\"Name\":\"Canada\",\"Code\":\"CA\"}]\n  \n"))
	})

	countries, err := client.Countries(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(countries) != 1 || countries[0].Name != "Canada" {
		t.Errorf("countries = %+v", countries)
	}
}

func TestMissingFieldError(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"Name":"Ontario","Code":"ON"}]`))
	})

	_, err := client.Provinces(context.Background(), 1)

	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError in chain, got %v", err)
	}
	if missing.Field != "CountryCode" {
		t.Errorf("field = %q, want CountryCode", missing.Field)
	}
}

func TestStatusFailureWithValidBody(t *testing.T) {
	client, server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`[{"ID":1,"Name":"Canada","Code":"CA"}]`))
	})

	_, err := client.Countries(context.Background())

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if loadErr.Kind != FailureStatus {
		t.Errorf("kind = %v, want status", loadErr.Kind)
	}
	if loadErr.Status != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", loadErr.Status)
	}
	if loadErr.URL != server.URL+"/rest/worldregions/country" {
		t.Errorf("url = %q", loadErr.URL)
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("error text %q does not mention status", err.Error())
	}
}

type failingDoer struct{}

func (failingDoer) Do(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestNetworkFailure(t *testing.T) {
	client := NewClient(Options{BaseURL: "http://example.invalid", HTTPClient: failingDoer{}})

	_, err := client.Countries(context.Background())
	if !IsLoadFailure(err) {
		t.Fatalf("expected load failure, got %v", err)
	}
	if kind, _ := FailureKindOf(err); kind != FailureNetwork {
		t.Errorf("kind = %v, want network", kind)
	}
}

func TestIdenticalRequestsOnRepeat(t *testing.T) {
	var mu sync.Mutex
	var paths []string
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.String())
		mu.Unlock()
		w.WriteHeader(http.StatusInternalServerError)
	})

	for i := 0; i < 2; i++ {
		if _, err := client.Countries(context.Background()); err == nil {
			t.Fatal("expected failure")
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if len(paths) != 2 || paths[0] != paths[1] {
		t.Errorf("requests = %v, want two identical", paths)
	}
}

func TestDefaultBaseURL(t *testing.T) {
	client := NewClient(Options{})
	if client.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", client.BaseURL(), DefaultBaseURL)
	}
	if got := client.ProvincesURL(42); got != DefaultBaseURL+"/country/42/province" {
		t.Errorf("ProvincesURL = %q", got)
	}
}

func TestContextCancelled(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Countries(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
	if kind, _ := FailureKindOf(err); kind != FailureNetwork {
		t.Errorf("kind = %v, want network", kind)
	}
}
