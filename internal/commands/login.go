package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/render"
)

func newLoginCommand() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in to the ledger server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return runLogin(cmd.Context(), a, args[0], password)
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runLogin(ctx context.Context, a *app, username, password string) error {
	sess, err := a.client.Login(ctx, username, password)
	a.logAction("login", username, err)
	if err != nil {
		return err
	}

	if err := a.saveSession(); err != nil {
		return err
	}
	return a.render(render.Session(sess))
}
