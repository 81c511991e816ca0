package screens

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/BrandonKowalski/countrylist/pkg/worldregions"
)

// ErrRowOutOfRange is returned by SelectRow for an index outside the loaded rows.
var ErrRowOutOfRange = errors.New("row index out of range")

// CountrySource fetches the country list.
type CountrySource interface {
	Countries(ctx context.Context) ([]worldregions.Country, error)
}

// DetailsRequest is handed from the country list to the details screen.
type DetailsRequest struct {
	CountryID   int
	CountryName string
}

// Options are shared by both screens.
type Options struct {
	Dispatcher Dispatcher // Required
	Presenter  Presenter
	Labels     Labels
	Logger     *slog.Logger
}

// CountryListScreen loads and shows every country and forwards a selection to
// the details screen.
type CountryListScreen struct {
	labels Labels
	list   *RemoteList[worldregions.Country]
	flags  *FlagLoader
	seeded bool
}

// NewCountryListScreen creates the screen. When seed is non-nil the rows are
// restored from it and Appear does not fetch.
func NewCountryListScreen(source CountrySource, seed []worldregions.Country, opts Options) *CountryListScreen {
	labels := opts.Labels.withDefaults("Countries")

	s := &CountryListScreen{labels: labels}
	s.list = NewRemoteList(ListOptions[worldregions.Country]{
		Name:       "countries",
		Fetch:      source.Countries,
		Dispatcher: opts.Dispatcher,
		Presenter:  opts.Presenter,
		Alert:      labels.alert(),
		Logger:     opts.Logger,
		OnLoaded:   s.requestFlags,
	})

	if seed != nil {
		s.list.Seed(seed)
		s.seeded = true
	}

	return s
}

// AttachFlags enables flag icons. Must be called before Appear.
func (s *CountryListScreen) AttachFlags(flags *FlagLoader) {
	s.flags = flags
	if s.seeded {
		s.requestFlags(s.list.items)
	}
}

// Title is the navigation title.
func (s *CountryListScreen) Title() string {
	return s.labels.Title
}

// Appear starts the first load. A seeded screen keeps its rows.
func (s *CountryListScreen) Appear() bool {
	if s.seeded {
		return false
	}
	return s.list.Load(TriggerAppear)
}

// PullToRefresh re-issues the fetch even when the list is already loaded.
func (s *CountryListScreen) PullToRefresh() bool {
	return s.list.Refresh()
}

// Retry re-issues the fetch after a failure.
func (s *CountryListScreen) Retry() bool {
	return s.list.Retry()
}

// SelectRow returns the id and name of the country at index.
func (s *CountryListScreen) SelectRow(index int) (DetailsRequest, error) {
	country, ok := s.list.At(index)
	if !ok {
		return DetailsRequest{}, fmt.Errorf("select country %d of %d: %w", index, s.list.Len(), ErrRowOutOfRange)
	}
	return DetailsRequest{CountryID: country.ID, CountryName: country.Name}, nil
}

// Rows returns the loaded countries in response order.
func (s *CountryListScreen) Rows() []worldregions.Country {
	return s.list.Items()
}

// RowTitles returns the display text of each row.
func (s *CountryListScreen) RowTitles() []string {
	titles := make([]string, 0, s.list.Len())
	for _, c := range s.list.items {
		titles = append(titles, c.Name)
	}
	return titles
}

// Flag returns the downloaded flag image for a row, if any.
func (s *CountryListScreen) Flag(index int) ([]byte, bool) {
	if s.flags == nil {
		return nil, false
	}
	country, ok := s.list.At(index)
	if !ok {
		return nil, false
	}
	return s.flags.Get(country.Code)
}

// State returns the load state.
func (s *CountryListScreen) State() State {
	return s.list.State()
}

// Refreshing reports whether the refresh indicator is up.
func (s *CountryListScreen) Refreshing() bool {
	return s.list.Refreshing()
}

// Err returns the last load error.
func (s *CountryListScreen) Err() error {
	return s.list.Err()
}

// Close drops any outstanding fetch.
func (s *CountryListScreen) Close() {
	s.list.Close()
	if s.flags != nil {
		s.flags.Close()
	}
}

func (s *CountryListScreen) requestFlags(countries []worldregions.Country) {
	if s.flags == nil {
		return
	}
	codes := make([]string, 0, len(countries))
	for _, c := range countries {
		codes = append(codes, c.Code)
	}
	s.flags.Request(codes...)
}
