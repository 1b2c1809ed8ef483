package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCommand() *cobra.Command {
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Password reset",
	}
	resetCmd.AddCommand(newResetRequestCommand())
	resetCmd.AddCommand(newResetCompleteCommand())
	return resetCmd
}

func newResetRequestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "request <username>",
		Short: "Request a password reset token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return runResetRequest(cmd.Context(), a, args[0])
		},
	}
}

func runResetRequest(ctx context.Context, a *app, username string) error {
	grant, err := a.client.RequestPasswordReset(ctx, username)
	a.logAction("reset-request", username, err)
	if err != nil {
		return err
	}

	if grant.Token == "" {
		fmt.Fprintln(a.out, "Reset requested. Check your email for a token.")
		return nil
	}
	if grant.Expiry != "" {
		fmt.Fprintf(a.out, "Reset token: %s (expires %s)\n", grant.Token, grant.Expiry)
	} else {
		fmt.Fprintf(a.out, "Reset token: %s\n", grant.Token)
	}
	return nil
}

func newResetCompleteCommand() *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "complete <token>",
		Short: "Set a new password using a reset token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return runResetComplete(cmd.Context(), a, args[0], password)
		},
	}

	cmd.Flags().StringVar(&password, "password", "", "new password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runResetComplete(ctx context.Context, a *app, token, password string) error {
	err := a.client.CompletePasswordReset(ctx, token, password)
	a.logAction("reset-complete", "", err)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Password updated. You can now log in.")
	return nil
}
