package main

import (
	"encoding/json"
	"fmt"

	"agrimarket-backend/internal/config"

	"github.com/spf13/cobra"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect runtime configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate the environment and print the effective config with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			out, err := json.MarshalIndent(cfg.Redacted(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			for _, w := range cfg.DemoWarnings() {
				fmt.Fprintln(cmd.OutOrStdout(), "warning:", w)
			}
			return cfg.Validate()
		},
	})
	return cmd
}
