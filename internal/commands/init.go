package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/config"
)

func newInitCommand() *cobra.Command {
	var serverURL string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default tally.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				var err error
				path, err = config.DefaultPath()
				if err != nil {
					return err
				}
			}
			return runInit(cmd.OutOrStdout(), path, serverURL)
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "", "ledger server URL")

	return cmd
}

func runInit(out io.Writer, path, serverURL string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}

	cfg := config.Default()
	if serverURL != "" {
		cfg.Server.URL = serverURL
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wrote %s\n", path)
	return nil
}
