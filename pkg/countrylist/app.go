package countrylist

import (
	"context"
	"errors"
	"log/slog"

	"github.com/BrandonKowalski/countrylist/pkg/countrylist/config"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/constants"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/i18n"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/navigation"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/router"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/screens"
	"github.com/BrandonKowalski/countrylist/pkg/worldregions"
)

// App runs the two screens on top of an initialized window.
type App struct {
	countries screens.CountrySource
	provinces screens.ProvinceSource
	flags     screens.FlagSource // nil when flags are disabled
	strings   *i18n.Strings
	logger    *slog.Logger
	queue     *screens.MainQueue
}

// NewApp builds the world regions clients from cfg.
func NewApp(cfg config.Config, strings *i18n.Strings, logger *slog.Logger) *App {
	client := worldregions.NewClient(worldregions.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout.Duration,
		UserAgent: cfg.API.UserAgent,
		Logger:    logger,
	})

	app := &App{
		countries: client,
		provinces: client,
		strings:   strings,
		logger:    logger,
		queue:     screens.NewMainQueue(constants.DispatchQueueSize),
	}

	if cfg.Flags.Enabled {
		app.flags = worldregions.NewFlagClient(worldregions.FlagOptions{
			URLTemplate:       cfg.Flags.URLTemplate,
			Timeout:           cfg.API.Timeout.Duration,
			RequestsPerSecond: cfg.Flags.RequestsPerSecond,
			Burst:             cfg.Flags.Burst,
			UserAgent:         cfg.API.UserAgent,
			Logger:            logger,
		})
	}

	return app
}

// Run shows the country list and follows the user's navigation until they
// exit or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	r := router.New().WithLogger(a.logger).
		Register(navigation.ScreenCountries, "countries", func(input any) (any, error) {
			return a.showCountries(ctx, input.(navigation.CountriesInput))
		}).
		Register(navigation.ScreenProvinces, "provinces", func(input any) (any, error) {
			return a.showProvinces(ctx, input.(navigation.ProvincesInput))
		}).
		OnTransition(navigation.Transition)

	err := r.RunContext(ctx, navigation.ScreenCountries, navigation.CountriesInput{})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) footer(items ...string) []FooterHelpItem {
	out := make([]FooterHelpItem, 0, len(items)/2)
	for i := 0; i+1 < len(items); i += 2 {
		out = append(out, FooterHelpItem{ButtonName: items[i], HelpText: a.strings.Get(items[i+1], nil)})
	}
	return out
}

func (a *App) listSettings(title string) ListSettings {
	return ListSettings{
		Title:          title,
		EmptyText:      a.strings.Get("Empty", nil),
		LoadingText:    a.strings.Get("Loading", nil),
		RefreshingText: a.strings.Get("Refreshing", nil),
	}
}

// countriesFlow connects the country list screen to list commands.
type countriesFlow struct {
	screen  *screens.CountryListScreen
	request screens.DetailsRequest
	logger  *slog.Logger
}

func (f *countriesFlow) onCommand(cmd command, index int) (ListAction, bool) {
	switch cmd {
	case commandSelect:
		request, err := f.screen.SelectRow(index)
		if err != nil {
			f.logger.Warn("Ignoring selection", "index", index, "error", err)
			return ListActionNone, false
		}
		f.request = request
		return ListActionSelected, true
	case commandRefresh:
		f.screen.PullToRefresh()
	case commandRetry:
		f.screen.Retry()
	case commandBack:
		return ListActionBack, true
	case commandQuit:
		return ListActionQuit, true
	}
	return ListActionNone, false
}

func (f *countriesFlow) rows() []Row {
	countries := f.screen.Rows()
	rows := make([]Row, len(countries))
	for i, c := range countries {
		rows[i] = Row{Text: c.Name, FlagKey: c.Code}
	}
	return rows
}

func (a *App) newCountriesFlow(input navigation.CountriesInput) (*countriesFlow, *listController) {
	labels := a.strings.CountriesLabels()

	settings := a.listSettings(labels.Title)
	settings.AllowRefresh = true
	settings.ShowFlags = a.flags != nil
	settings.FooterHelpItems = a.footer("B", "Quit", "Y", "Refresh", "A", "Select")

	var seed []worldregions.Country
	if input.Resume != nil {
		seed = input.Resume.Countries
		settings.SelectedIndex = input.Resume.SelectedIndex
		settings.VisibleStart = input.Resume.VisibleStart
	}

	flow := &countriesFlow{logger: a.logger}
	controller := newListController(settings, nil)

	flow.screen = screens.NewCountryListScreen(a.countries, seed, screens.Options{
		Dispatcher: a.queue,
		Presenter:  controller,
		Labels:     labels,
		Logger:     a.logger,
	})
	controller.rowSource = flow.rows

	if a.flags != nil {
		flow.screen.AttachFlags(screens.NewFlagLoader(screens.FlagOptions{
			Source:     a.flags,
			Dispatcher: a.queue,
			Logger:     a.logger,
		}))
	}

	controller.ReloadRows()
	return flow, controller
}

func (a *App) showCountries(ctx context.Context, input navigation.CountriesInput) (navigation.CountriesResult, error) {
	flow, controller := a.newCountriesFlow(input)
	defer flow.screen.Close()

	flow.screen.Appear()

	var flag func(int) ([]byte, bool)
	if a.flags != nil {
		flag = flow.screen.Flag
	}

	result, err := runList(listRuntime{
		ctx:        ctx,
		controller: controller,
		queue:      a.queue,
		flag:       flag,
		onCommand:  flow.onCommand,
	})
	if err != nil && !IsCancelled(err) && !IsQuit(err) {
		return navigation.CountriesResult{}, err
	}

	if result.Action != ListActionSelected {
		return navigation.CountriesResult{Action: navigation.CountriesActionExit}, nil
	}

	return navigation.CountriesResult{
		Action:  navigation.CountriesActionSelected,
		Request: flow.request,
		Resume: &navigation.CountriesResume{
			Countries:     flow.screen.Rows(),
			SelectedIndex: result.SelectedIndex,
			VisibleStart:  result.VisibleStart,
		},
	}, nil
}

// provincesFlow connects the province list screen to list commands.
type provincesFlow struct {
	screen *screens.CountryDetailsScreen
}

func (f *provincesFlow) onCommand(cmd command, _ int) (ListAction, bool) {
	switch cmd {
	case commandRetry:
		f.screen.Retry()
	case commandBack:
		return ListActionBack, true
	case commandQuit:
		return ListActionQuit, true
	}
	return ListActionNone, false
}

func (f *provincesFlow) rows() []Row {
	titles := f.screen.RowTitles()
	rows := make([]Row, len(titles))
	for i, t := range titles {
		rows[i] = Row{Text: t}
	}
	return rows
}

func (a *App) newProvincesFlow(input navigation.ProvincesInput) (*provincesFlow, *listController) {
	labels := a.strings.ProvincesLabels(input.Request.CountryName)

	settings := a.listSettings(labels.Title)
	settings.FooterHelpItems = a.footer("B", "Back")

	flow := &provincesFlow{}
	controller := newListController(settings, nil)

	flow.screen = screens.NewCountryDetailsScreen(a.provinces, input.Request, screens.Options{
		Dispatcher: a.queue,
		Presenter:  controller,
		Labels:     labels,
		Logger:     a.logger,
	})
	controller.rowSource = flow.rows

	return flow, controller
}

func (a *App) showProvinces(ctx context.Context, input navigation.ProvincesInput) (navigation.ProvincesResult, error) {
	flow, controller := a.newProvincesFlow(input)
	defer flow.screen.Close()

	flow.screen.Appear()

	result, err := runList(listRuntime{
		ctx:        ctx,
		controller: controller,
		queue:      a.queue,
		onCommand:  flow.onCommand,
	})
	if err != nil && !IsCancelled(err) && !IsQuit(err) {
		return navigation.ProvincesResult{}, err
	}

	if result.Action == ListActionBack {
		return navigation.ProvincesResult{Action: navigation.ProvincesActionBack}, nil
	}
	return navigation.ProvincesResult{Action: navigation.ProvincesActionExit}, nil
}
