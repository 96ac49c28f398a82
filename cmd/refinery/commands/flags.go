// Package commands holds the refinery subcommands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/refinery/config"
)

// AddGlobalFlags registers the persistent flags every subcommand reads.
func AddGlobalFlags(root *cobra.Command) {
	root.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	root.PersistentFlags().Bool("json", false, "Output results as JSON")
	root.PersistentFlags().Bool("log-json", false, "Write logs as JSON to stderr")
	root.PersistentFlags().String("config", "", "Config file (default: nearest "+config.ProjectFileName+")")
}

// loadConfig loads the --config file when given, the project config otherwise.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}
