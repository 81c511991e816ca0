package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/countrylist/pkg/countrylist/config"
	"github.com/BrandonKowalski/countrylist/pkg/countrylist/i18n"
	"github.com/BrandonKowalski/countrylist/pkg/worldregions"
)

// fetchCmd loads a list from the API without opening a window.
func fetchCmd(s *settings) *cobra.Command {
	var countryID int

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Print the countries, or the provinces of one country",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := s.load()
			if err != nil {
				return err
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			client := worldregions.NewClient(worldregions.Options{
				BaseURL:   cfg.API.BaseURL,
				Timeout:   cfg.API.Timeout.Duration,
				UserAgent: cfg.API.UserAgent,
				Logger:    stderrLogger(cfg),
			})

			strings, err := i18n.New(cfg.UI.Locale)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("provinces") {
				provinces, err := client.Provinces(ctx, countryID)
				if err != nil {
					return err
				}
				return printProvinces(cmd.OutOrStdout(), strings, provinces)
			}

			countries, err := client.Countries(ctx)
			if err != nil {
				return err
			}
			return printCountries(cmd.OutOrStdout(), countries)
		},
	}

	cmd.Flags().IntVar(&countryID, "provinces", 0, "country id whose provinces to print")
	return cmd
}

func stderrLogger(cfg config.Config) *slog.Logger {
	level, _ := config.ParseLevel(cfg.Log.Level)
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func printCountries(w io.Writer, countries []worldregions.Country) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCODE\tNAME")
	for _, c := range countries {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.Code, c.Name)
	}
	return tw.Flush()
}

func printProvinces(w io.Writer, strings *i18n.Strings, provinces []worldregions.Province) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME")
	for _, p := range provinces {
		fmt.Fprintf(tw, "%s\t%s\n", p.Code, p.Name)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, strings.Count("Provinces", len(provinces)))
	return err
}
