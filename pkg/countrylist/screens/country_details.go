package screens

import (
	"context"
	"fmt"

	"github.com/BrandonKowalski/countrylist/pkg/worldregions"
)

// ProvinceSource fetches the provinces of one country.
type ProvinceSource interface {
	Provinces(ctx context.Context, countryID int) ([]worldregions.Province, error)
}

// CountryDetailsScreen loads and shows the provinces of one country. Rows are
// display only.
type CountryDetailsScreen struct {
	request DetailsRequest
	labels  Labels
	list    *RemoteList[worldregions.Province]
}

// NewCountryDetailsScreen creates the screen for the requested country.
// An empty Labels.Title becomes "Provinces of <name>".
func NewCountryDetailsScreen(source ProvinceSource, request DetailsRequest, opts Options) *CountryDetailsScreen {
	labels := opts.Labels.withDefaults(fmt.Sprintf("Provinces of %s", request.CountryName))

	countryID := request.CountryID
	fetch := func(ctx context.Context) ([]worldregions.Province, error) {
		return source.Provinces(ctx, countryID)
	}

	s := &CountryDetailsScreen{request: request, labels: labels}
	s.list = NewRemoteList(ListOptions[worldregions.Province]{
		Name:       fmt.Sprintf("provinces/%d", countryID),
		Fetch:      fetch,
		Dispatcher: opts.Dispatcher,
		Presenter:  opts.Presenter,
		Alert:      labels.alert(),
		Logger:     opts.Logger,
	})

	return s
}

// Request returns the country this screen was opened for.
func (s *CountryDetailsScreen) Request() DetailsRequest {
	return s.request
}

// Title is the navigation title.
func (s *CountryDetailsScreen) Title() string {
	return s.labels.Title
}

// Appear starts the load.
func (s *CountryDetailsScreen) Appear() bool {
	return s.list.Load(TriggerAppear)
}

// Retry re-issues the fetch after a failure.
func (s *CountryDetailsScreen) Retry() bool {
	return s.list.Retry()
}

// Rows returns the loaded provinces in response order.
func (s *CountryDetailsScreen) Rows() []worldregions.Province {
	return s.list.Items()
}

// RowTitles returns the display text of each row.
func (s *CountryDetailsScreen) RowTitles() []string {
	titles := make([]string, 0, s.list.Len())
	for _, p := range s.list.items {
		titles = append(titles, p.Name)
	}
	return titles
}

// State returns the load state.
func (s *CountryDetailsScreen) State() State {
	return s.list.State()
}

// Err returns the last load error.
func (s *CountryDetailsScreen) Err() error {
	return s.list.Err()
}

// Close drops any outstanding fetch.
func (s *CountryDetailsScreen) Close() {
	s.list.Close()
}
