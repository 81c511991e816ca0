// Package commands holds the countrylist command line.
package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/countrylist/pkg/countrylist/config"
)

// settings are the global flags. Empty values leave the loaded config alone.
type settings struct {
	configPath string
	envFile    string
	baseURL    string
	locale     string
	logLevel   string
	logPath    string
	noFlags    bool
}

var global settings

func Execute() error {
	return newRootCmd(&global).Execute()
}

func newRootCmd(s *settings) *cobra.Command {
	root := &cobra.Command{
		Use:           "countrylist",
		Short:         "Browse countries and their provinces",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.load()
			if err != nil {
				return err
			}
			return runUI(cmd.Context(), cfg)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&s.configPath, "config", "c", "", "TOML config file")
	flags.StringVar(&s.envFile, "env-file", ".env", "env file loaded before the config")
	flags.StringVar(&s.baseURL, "base-url", "", "world regions API base URL")
	flags.StringVar(&s.locale, "locale", "", "UI language (en, es, fr)")
	flags.StringVar(&s.logLevel, "log-level", "", "debug, info, warn or error")
	flags.StringVar(&s.logPath, "log-path", "", "log file path")
	flags.BoolVar(&s.noFlags, "no-flags", false, "do not download flag icons")

	root.AddCommand(fetchCmd(s), configCmd(s))
	return root
}

// load reads the env file and config file, then applies the command line on top.
func (s *settings) load() (config.Config, error) {
	if err := config.LoadDotEnv(s.envFile); err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(s.configPath)
	if err != nil {
		return config.Config{}, err
	}

	s.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func (s *settings) apply(cfg *config.Config) {
	if s.baseURL != "" {
		cfg.API.BaseURL = s.baseURL
	}
	if s.locale != "" {
		cfg.UI.Locale = s.locale
	}
	if s.logLevel != "" {
		cfg.Log.Level = s.logLevel
	}
	if s.logPath != "" {
		cfg.Log.Path = s.logPath
	}
	if s.noFlags {
		cfg.Flags.Enabled = false
	}
}

func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
