package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/refinery/cmd/refinery/commands"
	"github.com/teranos/refinery/logger"
)

var rootCmd = &cobra.Command{
	Use:   "refinery",
	Short: "refinery - refine API client element trees for a target language",
	Long: `refinery - refine API client element trees for a target language.

refinery reads an IR document describing a language-neutral element tree
(namespaces, request builders, models, enums) and rewrites it into the shape
a target language's emitter expects: reserved names escaped, indexers turned
into methods, unions wrapped, imports resolved.

Available commands:
  refine     - Refine an IR document for one or more languages
  languages  - List supported languages and their passes
  config     - Show or validate configuration
  version    - Show version information

Examples:
  refinery refine -l go -i api.yaml          # Refine for Go
  refinery refine -l all -i api.yaml --json  # Refine for every language, JSON reports
  refinery languages --passes                # Show every pass per language
  refinery config show --format yaml         # Show effective configuration`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		logJSON, _ := cmd.Flags().GetBool("log-json")
		if err := logger.Initialize(logJSON, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger.Logger.Debugw("Logger initialized", "level", logger.LevelName(verbosity))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	commands.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(commands.RefineCmd)
	rootCmd.AddCommand(commands.LanguagesCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
