package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/render"
)

func newMonthlyCommand() *cobra.Command {
	var format, dir string

	cmd := &cobra.Command{
		Use:   "monthly <YYYY-MM>",
		Short: "Show or download the monthly summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return runMonthly(cmd.Context(), a, args[0], format, dir)
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", `report format ("json", "csv", "pdf")`)
	cmd.Flags().StringVar(&dir, "dir", ".", "directory to save downloaded reports in")

	return cmd
}

func runMonthly(ctx context.Context, a *app, month, format, dir string) error {
	year, mon, err := model.ParseMonth(month)
	if err != nil {
		return err
	}

	res, err := a.client.MonthlySummary(ctx, year, mon, format)
	if err != nil {
		return err
	}

	if res.Summary != nil {
		return a.render(render.Monthly(res.Summary))
	}

	path := filepath.Join(dir, res.Download.Filename)
	if err := os.WriteFile(path, res.Download.Data, 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	fmt.Fprintf(a.out, "Download started: %s\n", path)
	return nil
}
