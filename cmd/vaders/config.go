package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/picovaders/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in game configuration as YAML. Save it, edit the
values you want to change and pass the file with --config, or place it at
~/.picovaders/configs/vaders.yaml.

Examples:
  vaders config > my-vaders.yaml
  vaders play --config my-vaders.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(string(config.DefaultYAML()))
	},
}
