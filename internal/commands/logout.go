package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/model"
)

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the local session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return runLogout(cmd.Context(), a)
		},
	}
}

func runLogout(ctx context.Context, a *app) error {
	err := a.client.Logout(ctx)
	a.logAction("logout", "", err)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: server logout failed: %v\n", err)
	}

	// Local state goes regardless of what the server said. A session
	// cleared only halfway keeps the cached role around, and that role
	// gates later exports.
	a.client.SetSession(model.Session{}, nil)
	if err := a.store.Clear(); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
