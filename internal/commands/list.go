package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/feed"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/render"
)

func newListCommand() *cobra.Command {
	var date string
	var more, all bool
	var perPage int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions for a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if perPage == 0 {
				perPage = a.cfg.List.PerPage
			}
			return runList(cmd.Context(), a, date, cmd.Flags().Changed("date"), more, all, perPage)
		},
	}

	cmd.Flags().StringVar(&date, "date", model.Today(), "filter date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&more, "more", false, "continue from where the last listing stopped")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every remaining page")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "page size (default from config)")

	return cmd
}

func runList(ctx context.Context, a *app, date string, dateSet, more, all bool, perPage int) error {
	if !model.ValidDate(date) {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}

	f := feed.New(date, perPage)
	if more {
		path, err := a.cfg.FeedPath()
		if err != nil {
			return err
		}
		saved, err := feed.LoadCursor(path)
		if err != nil {
			return err
		}
		if saved != nil {
			f = saved
			// An explicit date overrides the saved one; switching the
			// filter rewinds to page 1.
			if dateSet {
				f.SetDate(date)
			}
		}
	}

	if all {
		return loadAll(ctx, a, f)
	}
	return loadDay(ctx, a, f)
}

// loadDay fetches the feed's next page plus the date's balance, prints
// the rows this gesture added, and saves the cursor for `list --more`.
func loadDay(ctx context.Context, a *app, f *feed.Feed) error {
	before := len(f.Rows())

	tok := f.Begin()
	page, err := a.client.ListTransactions(ctx, f.Date(), f.Page(), f.PerPage())
	if err != nil {
		return err
	}
	if !f.Apply(tok, page) {
		return nil
	}

	balance, err := a.client.Balance(ctx, f.Date())
	if err != nil {
		return err
	}

	if err := a.render(render.Day(f.Rows()[before:], balance)); err != nil {
		return err
	}
	return saveCursor(a, f)
}

// loadAll drains the feed: it keeps fetching until the page counter
// stops advancing, then renders everything collected in one table.
func loadAll(ctx context.Context, a *app, f *feed.Feed) error {
	f.Reset()
	for {
		prev := f.Page()
		tok := f.Begin()
		page, err := a.client.ListTransactions(ctx, f.Date(), f.Page(), f.PerPage())
		if err != nil {
			return err
		}
		f.Apply(tok, page)
		if f.Page() == prev {
			break
		}
	}

	balance, err := a.client.Balance(ctx, f.Date())
	if err != nil {
		return err
	}

	if err := a.render(render.Day(f.Rows(), balance)); err != nil {
		return err
	}
	return saveCursor(a, f)
}

func saveCursor(a *app, f *feed.Feed) error {
	path, err := a.cfg.FeedPath()
	if err != nil {
		return err
	}
	return feed.SaveCursor(path, f)
}
