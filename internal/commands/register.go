package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newRegisterCommand() *cobra.Command {
	var password, email string

	cmd := &cobra.Command{
		Use:   "register <username>",
		Short: "Create an account on the ledger server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return runRegister(cmd.Context(), a, args[0], password, email)
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	cmd.Flags().StringVar(&email, "email", "", "email address")

	return cmd
}

func runRegister(ctx context.Context, a *app, username, password, email string) error {
	err := a.client.Register(ctx, username, password, email)
	a.logAction("register", username, err)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered %s. You can now log in.\n", username)
	return nil
}
