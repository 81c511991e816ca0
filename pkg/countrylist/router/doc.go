// Package router provides screen navigation with explicit data flow.
//
// Each screen has its own input and result types, and one transition function
// holds all routing logic. A screen never calls another screen; it returns a
// result and the transition decides where to go next.
//
// # Basic Usage
//
//	const (
//	    ScreenCountries router.Screen = iota
//	    ScreenProvinces
//	)
//
//	r := router.New()
//
//	r.Register(ScreenCountries, "countries", func(input any) (any, error) {
//	    return countryList(input.(CountriesInput))
//	})
//
//	r.Register(ScreenProvinces, "provinces", func(input any) (any, error) {
//	    return provinceList(input.(ProvincesInput))
//	})
//
//	r.OnTransition(func(from router.Screen, result any, stack *router.Stack) (router.Screen, any) {
//	    switch from {
//	    case ScreenCountries:
//	        res := result.(CountriesResult)
//	        if res.Action == CountriesActionSelected {
//	            // Remember the list so back navigation does not refetch it
//	            stack.Push(from, CountriesInput{}, res.Resume)
//	            return ScreenProvinces, ProvincesInput{Request: res.Request}
//	        }
//	    case ScreenProvinces:
//	        if entry := stack.Pop(); entry != nil {
//	            resume, _ := router.Resume[*CountriesResume](entry)
//	            return entry.Screen, CountriesInput{Resume: resume}
//	        }
//	    }
//	    return router.ScreenExit, nil
//	})
//
//	err := r.Run(ScreenCountries, CountriesInput{})
//
// # Resume State
//
// A screen may return resume state (loaded rows, selection, scroll position)
// that is stored on the stack when navigating forward. When navigating back the
// state is passed to the screen again through its input.
//
// Resume is nil for screens that have nothing to restore.
package router
