package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/avstrong/hotelrates/internal/config"
	"github.com/avstrong/hotelrates/internal/pricing"
)

func newRatesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Print the rate card in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, l, err := setup(opts)
			if err != nil {
				return err
			}
			defer l.Sync()

			rates, err := config.LoadRates(cfg.RatesFile)
			if err != nil {
				return fmt.Errorf("load rate card: %w", err)
			}

			return printRates(cmd.OutOrStdout(), rates)
		},
	}
}

func printRates(out io.Writer, rates *pricing.RateCard) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0) //nolint:gomnd

	fmt.Fprint(w, "ROOM")
	for _, season := range pricing.Seasons {
		fmt.Fprintf(w, "\t%s", season.Label())
	}
	fmt.Fprintln(w)

	for _, room := range rates.RoomTypes() {
		prices, err := rates.Prices(room)
		if err != nil {
			return fmt.Errorf("prices of %s: %w", room, err)
		}

		fmt.Fprint(w, room)
		for _, price := range prices {
			fmt.Fprintf(w, "\t$%d", price)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "FROM\tSEASON")

	anchors := rates.Anchors()
	for i := len(anchors) - 1; i >= 0; i-- {
		fmt.Fprintf(w, "%s %d\t%s\n", anchors[i].Month, anchors[i].Day, anchors[i].Season.Label())
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush rate card: %w", err)
	}

	return nil
}
