package countrylist

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/BrandonKowalski/countrylist/pkg/countrylist/constants"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/i18n"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/internal"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/navigation"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/screens"
	"github.com/BrandonKowalski/countrylist/pkg/worldregions"
)

type stubRegions struct {
	mu        sync.Mutex
	countries []worldregions.Country
	provinces []worldregions.Province
	err       error
	calls     int
}

func (s *stubRegions) Countries(ctx context.Context) ([]worldregions.Country, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.countries, s.err
}

func (s *stubRegions) Provinces(ctx context.Context, countryID int) ([]worldregions.Province, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.provinces, s.err
}

func (s *stubRegions) setErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

func (s *stubRegions) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func newTestApp(t *testing.T, regions *stubRegions) *App {
	t.Helper()
	strings, err := i18n.New("en")
	if err != nil {
		t.Fatal(err)
	}
	return &App{
		countries: regions,
		provinces: regions,
		strings:   strings,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		queue:     screens.NewMainQueue(16),
	}
}

func drainUntil(t *testing.T, q *screens.MainQueue, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		q.Drain()
		time.Sleep(time.Millisecond)
	}
}

var (
	canada = worldregions.Country{ID: 1, Name: "Canada", Code: "CA"}
	mexico = worldregions.Country{ID: 2, Name: "Mexico", Code: "MX"}
)

func TestCountriesFlowLoadsAndSelects(t *testing.T) {
	regions := &stubRegions{countries: []worldregions.Country{canada, mexico}}
	app := newTestApp(t, regions)

	flow, controller := app.newCountriesFlow(navigation.CountriesInput{})
	defer flow.screen.Close()

	if controller.Settings.Title != "Countries" || !controller.Settings.AllowRefresh {
		t.Errorf("settings = %+v", controller.Settings)
	}

	flow.screen.Appear()
	if !controller.loading {
		t.Error("spinner should show while loading")
	}
	drainUntil(t, app.queue, func() bool { return len(controller.Rows()) == 2 })

	if controller.loading {
		t.Error("spinner should hide after load")
	}
	if rows := controller.Rows(); rows[1].Text != "Mexico" || rows[1].FlagKey != "MX" {
		t.Errorf("rows = %+v", rows)
	}

	action, done := flow.onCommand(commandSelect, 1)
	if !done || action != ListActionSelected {
		t.Fatalf("onCommand(select) = %v, %v", action, done)
	}
	if flow.request != (screens.DetailsRequest{CountryID: 2, CountryName: "Mexico"}) {
		t.Errorf("request = %+v", flow.request)
	}

	if _, done := flow.onCommand(commandSelect, 9); done {
		t.Error("out-of-range selection should keep the list open")
	}
}

func TestCountriesFlowRestoresWithoutFetch(t *testing.T) {
	regions := &stubRegions{}
	app := newTestApp(t, regions)

	flow, controller := app.newCountriesFlow(navigation.CountriesInput{Resume: &navigation.CountriesResume{
		Countries:     []worldregions.Country{canada, mexico},
		SelectedIndex: 1,
	}})
	defer flow.screen.Close()

	flow.screen.Appear()
	app.queue.Drain()

	if regions.callCount() != 0 {
		t.Errorf("restored list fetched %d times", regions.callCount())
	}
	if len(controller.Rows()) != 2 || controller.SelectedIndex != 1 {
		t.Errorf("rows %d selected %d", len(controller.Rows()), controller.SelectedIndex)
	}
}

func TestCountriesFlowFailureAndRetry(t *testing.T) {
	regions := &stubRegions{err: &worldregions.LoadError{Kind: worldregions.FailureNetwork, Err: errors.New("offline")}}
	app := newTestApp(t, regions)

	flow, controller := app.newCountriesFlow(navigation.CountriesInput{})
	defer flow.screen.Close()

	flow.screen.Appear()
	drainUntil(t, app.queue, controller.AlertShowing)

	if controller.alert.Title != "Loading Failure" || controller.alert.RetryLabel != "Retry" {
		t.Errorf("alert = %+v", *controller.alert)
	}

	regions.setErr(nil)
	regions.mu.Lock()
	regions.countries = []worldregions.Country{canada}
	regions.mu.Unlock()

	if _, done := flow.onCommand(commandRetry, 0); done {
		t.Fatal("retry should keep the list open")
	}
	drainUntil(t, app.queue, func() bool { return len(controller.Rows()) == 1 })

	if regions.callCount() != 2 {
		t.Errorf("calls = %d, want 2", regions.callCount())
	}
}

func TestCountriesFlowExitActions(t *testing.T) {
	app := newTestApp(t, &stubRegions{})
	flow, _ := app.newCountriesFlow(navigation.CountriesInput{})
	defer flow.screen.Close()

	if action, done := flow.onCommand(commandBack, 0); !done || action != ListActionBack {
		t.Errorf("back = %v, %v", action, done)
	}
	if action, done := flow.onCommand(commandQuit, 0); !done || action != ListActionQuit {
		t.Errorf("quit = %v, %v", action, done)
	}
}

func TestProvincesFlow(t *testing.T) {
	regions := &stubRegions{provinces: []worldregions.Province{
		{Name: "Alberta", Code: "AB", CountryCode: "CA"},
		{Name: "Yukon", Code: "YT", CountryCode: "CA"},
	}}
	app := newTestApp(t, regions)

	flow, controller := app.newProvincesFlow(navigation.ProvincesInput{Request: screens.DetailsRequest{CountryID: 1, CountryName: "Canada"}})
	defer flow.screen.Close()

	if controller.Settings.Title != "Provinces of Canada" || controller.Settings.AllowRefresh {
		t.Errorf("settings = %+v", controller.Settings)
	}

	flow.screen.Appear()
	drainUntil(t, app.queue, func() bool { return len(controller.Rows()) == 2 })

	if controller.Rows()[1].Text != "Yukon" {
		t.Errorf("rows = %+v", controller.Rows())
	}
	if _, done := flow.onCommand(commandSelect, 0); done {
		t.Error("provinces have no forward navigation")
	}
	if action, done := flow.onCommand(commandBack, 0); !done || action != ListActionBack {
		t.Errorf("back = %v, %v", action, done)
	}
}

func TestListFrameEndsWhenContextCancelled(t *testing.T) {
	regions := &stubRegions{countries: []worldregions.Country{canada}}
	app := newTestApp(t, regions)
	flow, controller := app.newCountriesFlow(navigation.CountriesInput{})
	defer flow.screen.Close()

	ctx, cancel := context.WithCancel(context.Background())
	rt := listRuntime{ctx: ctx, controller: controller, queue: app.queue, onCommand: flow.onCommand}

	if _, done, err := rt.frame(nil, time.Now()); done || err != nil {
		t.Fatalf("frame with a live context = %v, %v", done, err)
	}

	cancel()
	result, done, err := rt.frame(nil, time.Now())
	if !done || !IsQuit(err) {
		t.Fatalf("frame after cancel = %v, %v; want done with ErrQuit", done, err)
	}
	if result.Action != ListActionQuit {
		t.Errorf("action = %v, want quit", result.Action)
	}
}

func TestListFrameCommands(t *testing.T) {
	regions := &stubRegions{countries: []worldregions.Country{canada, mexico}}
	app := newTestApp(t, regions)
	flow, controller := app.newCountriesFlow(navigation.CountriesInput{})
	defer flow.screen.Close()

	rt := listRuntime{ctx: context.Background(), controller: controller, queue: app.queue, onCommand: flow.onCommand}
	now := time.Unix(100, 0)

	flow.screen.Appear()
	deadline := time.Now().Add(2 * time.Second)
	for len(controller.Rows()) != 2 {
		if time.Now().After(deadline) {
			t.Fatal("rows never arrived through frame")
		}
		if _, done, err := rt.frame(nil, now); done {
			t.Fatalf("frame ended early: %v", err)
		}
		time.Sleep(time.Millisecond)
	}

	now = now.Add(time.Second)
	down := &internal.Event{Button: constants.VirtualButtonDown, Pressed: true}
	up := &internal.Event{Button: constants.VirtualButtonDown}
	if _, done, _ := rt.frame([]*internal.Event{down, up}, now); done {
		t.Fatal("moving the cursor ended the list")
	}

	now = now.Add(time.Second)
	result, done, err := rt.frame([]*internal.Event{{Button: constants.VirtualButtonA, Pressed: true}}, now)
	if !done || err != nil || result.Action != ListActionSelected || result.SelectedIndex != 1 {
		t.Fatalf("select = %+v, %v, %v", result, done, err)
	}
	if flow.request.CountryName != "Mexico" {
		t.Errorf("request = %+v", flow.request)
	}

	now = now.Add(time.Second)
	result, done, err = rt.frame([]*internal.Event{{Button: constants.VirtualButtonB, Pressed: true}}, now)
	if !done || !IsCancelled(err) || result.Action != ListActionBack {
		t.Errorf("back = %+v, %v, %v", result, done, err)
	}
}
