// Package navigation holds the screen identifiers, the per-screen input and
// result types, and the transition function that connects the country list to
// the province list.
package navigation

import (
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/router"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/screens"
	"github.com/BrandonKowalski/countrylist/pkg/worldregions"
)

const (
	ScreenCountries router.Screen = iota
	ScreenProvinces
)

// CountriesAction is how the user left the country list.
type CountriesAction int

const (
	CountriesActionSelected CountriesAction = iota
	CountriesActionExit
)

func (a CountriesAction) String() string {
	switch a {
	case CountriesActionSelected:
		return "selected"
	case CountriesActionExit:
		return "exit"
	}
	return "unknown"
}

// ProvincesAction is how the user left the province list.
type ProvincesAction int

const (
	ProvincesActionBack ProvincesAction = iota
	ProvincesActionExit
)

func (a ProvincesAction) String() string {
	switch a {
	case ProvincesActionBack:
		return "back"
	case ProvincesActionExit:
		return "exit"
	}
	return "unknown"
}

// CountriesResume restores the country list after back navigation.
type CountriesResume struct {
	Countries     []worldregions.Country
	SelectedIndex int
	VisibleStart  int
}

// CountriesInput starts the country list. A nil Resume means a fresh load.
type CountriesInput struct {
	Resume *CountriesResume
}

// CountriesResult is returned by the country list screen.
type CountriesResult struct {
	Action  CountriesAction
	Request screens.DetailsRequest
	Resume  *CountriesResume
}

// ProvincesInput starts the province list for one country.
type ProvincesInput struct {
	Request screens.DetailsRequest
}

// ProvincesResult is returned by the province list screen.
type ProvincesResult struct {
	Action ProvincesAction
}

// Transition routes between the two screens. Selecting a country pushes the
// loaded list so that going back restores it without a refetch.
func Transition(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
	switch from {
	case ScreenCountries:
		res, ok := result.(CountriesResult)
		if !ok || res.Action != CountriesActionSelected {
			return router.ScreenExit, nil
		}
		stack.Push(ScreenCountries, CountriesInput{}, res.Resume)
		return ScreenProvinces, ProvincesInput{Request: res.Request}

	case ScreenProvinces:
		res, ok := result.(ProvincesResult)
		if !ok || res.Action == ProvincesActionExit {
			return router.ScreenExit, nil
		}
		entry := stack.Pop()
		if entry == nil {
			return ScreenCountries, CountriesInput{}
		}
		resume, _ := router.Resume[*CountriesResume](entry)
		return entry.Screen, CountriesInput{Resume: resume}
	}

	return router.ScreenExit, nil
}
