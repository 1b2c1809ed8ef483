package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/render"
)

func newBalanceCommand() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show the running total for a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return runBalance(cmd.Context(), a, date)
		},
	}

	cmd.Flags().StringVar(&date, "date", model.Today(), "filter date (YYYY-MM-DD)")

	return cmd
}

func runBalance(ctx context.Context, a *app, date string) error {
	if !model.ValidDate(date) {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}

	b, err := a.client.Balance(ctx, date)
	if err != nil {
		return err
	}
	return a.render(render.Balance(b))
}
