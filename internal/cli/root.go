package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/i474232898/wethr/internal/config"
)

// Version is injected at build time.
var Version = "development"

// NewRootCommand builds the wethr command tree reading from in and writing
// to out.
func NewRootCommand(in io.Reader, out io.Writer) *cobra.Command {
	v := config.NewViper()
	var cfg *config.AppConfig

	root := &cobra.Command{
		Use:           config.ApplicationName,
		Short:         "Weather forecasts, alerts and climate trends",
		Long:          `wethr reports the current (simulated) weather for a location, a short forecast, severe weather alerts and a climate trend over the stored history.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			loaded, err := config.Load(v)
			if err != nil {
				return err
			}
			if err := config.ConfigureLogging(loaded, cmd.ErrOrStderr()); err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd.Context(), cfg, in, out)
		},
	}

	root.SetIn(in)
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringP("location", "L", "", "location to report on (detected from the IP address when empty)")
	flags.StringP("country", "c", "", "country code selecting the language, or 00 to use the detected country")
	flags.String("language", "", "language name or country code, overrides --country")
	flags.String("history-file", "", "path of the JSON history file")
	flags.Int("sources", 0, "number of simulated weather APIs aggregated per run")
	flags.Uint64("seed", 0, "seed for the random generators (0 picks one)")
	flags.String("http-timeout", "", "timeout of the location lookup")
	flags.String("ipinfo-url", "", "IP geolocation endpoint")
	flags.String("geocoder-api-key", "", "Google geocoding key used when the IP lookup has no city")
	flags.String("log-level", "", "log level (panic, fatal, error, warn, info, debug, trace)")
	flags.String("log-format", "", "log format (tty, logfmt, json)")

	root.AddCommand(
		newServeCommand(func() *config.AppConfig { return cfg }),
		newWatchCommand(func() *config.AppConfig { return cfg }, out),
		newHistoryCommand(func() *config.AppConfig { return cfg }, out),
	)

	return root
}

// Execute runs the root command against the process stdio.
func Execute() error {
	root := NewRootCommand(os.Stdin, os.Stdout)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}
