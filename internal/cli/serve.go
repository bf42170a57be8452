package cli

import (
	"github.com/spf13/cobra"

	"github.com/avstrong/hotelrates/internal/app"
)

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve inquiries over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, l, err := setup(opts)
			if err != nil {
				return err
			}
			defer l.Sync()

			if err := app.Run(l, cfg); err != nil {
				l.LogErrorf("Failed to run app: %v", err.Error())

				return err
			}

			return nil
		},
	}
}
