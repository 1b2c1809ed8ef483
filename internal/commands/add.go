package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/api"
	"github.com/tally-dev/tally/internal/feed"
	"github.com/tally-dev/tally/internal/model"
)

func newAddCommand() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "add <amount> [description...]",
		Short: "Add a transaction",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return runAdd(cmd.Context(), a, date, args[0], strings.Join(args[1:], " "))
		},
	}

	cmd.Flags().StringVar(&date, "date", model.Today(), "transaction date (YYYY-MM-DD)")

	return cmd
}

func runAdd(ctx context.Context, a *app, date, rawAmount, description string) error {
	if !model.ValidDate(date) {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}

	// A blank or unparseable amount submits as zero, like an empty form
	// field.
	amount, err := decimal.NewFromString(strings.TrimSpace(rawAmount))
	if err != nil {
		amount = decimal.Zero
	}

	form := api.EntryForm{Date: date, Description: description, Amount: amount}
	err = a.client.CreateTransaction(ctx, form)
	a.logAction("add", fmt.Sprintf("%s %s %s", date, description, amount.StringFixed(2)), err)
	if err != nil {
		return err
	}

	// The submit does not inspect the server's verdict. A reset reload of
	// the date is what shows whether the entry landed.
	return loadDay(ctx, a, feed.New(date, a.cfg.List.PerPage))
}
