package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/countrylist/pkg/countrylist/router"
)

const (
	ScreenCountries router.Screen = iota
	ScreenProvinces
)

type CountriesAction int

const (
	CountriesActionSelected CountriesAction = iota
	CountriesActionExit
)

type Country struct {
	ID   int
	Name string
}

type CountriesInput struct {
	Resume *CountriesResume
}

type CountriesResume struct {
	Rows          []Country
	SelectedIndex int
}

type CountriesResult struct {
	Action   CountriesAction
	Selected Country
	Resume   *CountriesResume
}

type ProvincesInput struct {
	Country Country
}

type ProvincesResult struct{}

// Example walks countries -> provinces -> back -> exit. The country list is
// fetched once; going back restores it from the stack.
func Example() {
	r := router.New()
	fetches := 0

	r.Register(ScreenCountries, "countries", func(input any) (any, error) {
		in := input.(CountriesInput)

		if in.Resume != nil {
			fmt.Printf("Countries: restored %d rows at %d\n", len(in.Resume.Rows), in.Resume.SelectedIndex)
			return CountriesResult{Action: CountriesActionExit}, nil
		}

		fetches++
		rows := []Country{{ID: 1, Name: "Canada"}, {ID: 2, Name: "Mexico"}}
		fmt.Println("Countries: selecting Canada")
		return CountriesResult{
			Action:   CountriesActionSelected,
			Selected: rows[0],
			Resume:   &CountriesResume{Rows: rows, SelectedIndex: 0},
		}, nil
	})

	r.Register(ScreenProvinces, "provinces", func(input any) (any, error) {
		in := input.(ProvincesInput)
		fmt.Printf("Provinces of %s (id %d)\n", in.Country.Name, in.Country.ID)
		return ProvincesResult{}, nil
	})

	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
		switch from {
		case ScreenCountries:
			res := result.(CountriesResult)
			if res.Action == CountriesActionSelected {
				stack.Push(from, CountriesInput{}, res.Resume)
				return ScreenProvinces, ProvincesInput{Country: res.Selected}
			}
		case ScreenProvinces:
			if entry := stack.Pop(); entry != nil {
				resume, _ := router.Resume[*CountriesResume](entry)
				return entry.Screen, CountriesInput{Resume: resume}
			}
		}
		return router.ScreenExit, nil
	})

	if err := r.Run(ScreenCountries, CountriesInput{}); err != nil {
		fmt.Println("Error:", err)
	}
	fmt.Println("Fetches:", fetches)

	// Output:
	// Countries: selecting Canada
	// Provinces of Canada (id 1)
	// Countries: restored 2 rows at 0
	// Fetches: 1
}
