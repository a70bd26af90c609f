package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/i474232898/wethr/internal/config"
	"github.com/i474232898/wethr/internal/store"
)

func newHistoryCommand(cfg func() *config.AppConfig, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "history [location]",
		Short: "List stored readings, or the stored locations when none is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st := store.NewFileStore(cfg().HistoryFile)
			if len(args) == 0 {
				return printLocations(out, st)
			}
			return printHistory(out, st, args[0])
		},
	}
}

func printLocations(out io.Writer, st *store.FileStore) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LOCATION\tREADINGS")
	for _, loc := range st.Locations() {
		fmt.Fprintf(tw, "%s\t%d\n", loc, len(st.HistoryFor(loc)))
	}
	return tw.Flush()
}

func printHistory(out io.Writer, st *store.FileStore, location string) error {
	history := st.HistoryFor(location)
	if len(history) == 0 {
		return fmt.Errorf("%w: %s", store.ErrNotFound, location)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIMESTAMP\tTEMPERATURE\tHUMIDITY\tWIND\tCONDITION")
	for _, ts := range store.Timestamps(history) {
		r := history[ts]
		fmt.Fprintf(tw, "%s\t%s°C\t%d%%\t%s m/s\t%s\n", ts, round(r.Temperature), r.Humidity, round(r.WindSpeed), r.Condition)
	}
	return tw.Flush()
}
