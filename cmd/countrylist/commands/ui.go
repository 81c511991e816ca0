package commands

import (
	"context"

	"github.com/BrandonKowalski/countrylist/pkg/countrylist"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/config"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/i18n"
)

func runUI(parent context.Context, cfg config.Config) error {
	ctx, stop := signalContext(parent)
	defer stop()

	strings, err := i18n.New(cfg.UI.Locale)
	if err != nil {
		return err
	}

	if err := countrylist.Init(countrylist.OptionsFromConfig(cfg)); err != nil {
		return err
	}
	defer countrylist.Close()

	logger := countrylist.GetLogger()
	logger.Info("Starting", "base_url", cfg.API.BaseURL, "locale", strings.Tag().String(), "flags", cfg.Flags.Enabled)

	err = countrylist.NewApp(cfg, strings, logger).Run(ctx)
	if err != nil {
		logger.Error("Exited with error", "error", err)
	}
	return err
}
