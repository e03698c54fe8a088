package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration file.

Save the output to ~/.t2048/config.yaml or ./configs/t2048.yaml and edit it
to change the defaults, or pass any file with --config.

Examples:
  t2048 config > ~/.t2048/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}

