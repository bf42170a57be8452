package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avstrong/hotelrates/internal/config"
	"github.com/avstrong/hotelrates/internal/logger"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

type options struct {
	ratesFile string
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "hotelrates",
		Short:         "Answer free-text hotel rate inquiries",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.ratesFile, "rates", "", "rate card file (yaml, json or toml); overrides RATES_FILE")

	root.AddCommand(newAskCmd(opts))
	root.AddCommand(newDemoCmd(opts))
	root.AddCommand(newRatesCmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger every command shares.
func setup(opts *options) (config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}

	if opts.ratesFile != "" {
		cfg.RatesFile = opts.ratesFile
	}

	l, err := logger.New(logger.Conf{Production: cfg.IsProduction(), Level: cfg.LogLevel})
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("init logger: %w", err)
	}

	return cfg, l, nil
}
