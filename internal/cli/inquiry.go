package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avstrong/hotelrates/internal/config"
	"github.com/avstrong/hotelrates/internal/inquiry"
)

var demoInquiries = []string{
	"I'd like to book a Classic Deluxe room for July 15, 2024",
	"What are the rates for a Deluxe room?",
	"I'm planning a trip on March 15, 2024. What are the room rates?",
	"Can you give me information about your room types and prices?",
	"I'm interested in the G-House for December 25, 2024",
}

func newResponder(opts *options) (*inquiry.Responder, func(), error) {
	cfg, l, err := setup(opts)
	if err != nil {
		return nil, nil, err
	}

	rates, err := config.LoadRates(cfg.RatesFile)
	if err != nil {
		return nil, nil, fmt.Errorf("load rate card: %w", err)
	}

	responder, err := inquiry.New(l, rates)
	if err != nil {
		return nil, nil, fmt.Errorf("init responder: %w", err)
	}

	return responder, l.Sync, nil
}

func newAskCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <inquiry text>",
		Short: "Answer one inquiry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			responder, done, err := newResponder(opts)
			if err != nil {
				return err
			}
			defer done()

			reply, err := responder.GenerateResponse(strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("answer inquiry: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), reply)

			return nil
		},
	}
}

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Answer a set of sample inquiries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			responder, done, err := newResponder(opts)
			if err != nil {
				return err
			}
			defer done()

			return runDemo(cmd.OutOrStdout(), responder)
		},
	}
}

func runDemo(w io.Writer, responder *inquiry.Responder) error {
	for i, text := range demoInquiries {
		if i > 0 {
			fmt.Fprintf(w, "\n%s\n\n", strings.Repeat("=", 50)) //nolint:gomnd
		}

		reply, err := responder.GenerateResponse(text)
		if err != nil {
			return fmt.Errorf("answer %q: %w", text, err)
		}

		fmt.Fprintln(w, reply)
	}

	return nil
}
