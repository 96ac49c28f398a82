package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/display"
)

// ConfigCmd shows and validates configuration
var ConfigCmd = newConfigCmd()

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or validate configuration",
		Long: `Show or validate refinery configuration.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (REFINERY_* prefix)
3. --config file, or the nearest ` + config.ProjectFileName + `
4. Default values

Examples:
  refinery config show                    # Show effective configuration
  refinery config show --format yaml      # Show configuration as YAML
  refinery config validate refinery.toml  # Check a config file`,
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}
	show.Flags().String("format", "toml", "Output format: toml, json, yaml")

	validate := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a config file",
		Long: `Validate a config file strictly: unknown keys are errors, and every
value must pass validation. Without an argument the --config file is checked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runConfigValidate,
	}

	cmd.AddCommand(show, validate)
	return cmd
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	format, _ := cmd.Flags().GetString("format")
	if display.ShouldOutputJSON(cmd) {
		format = "json"
	}
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		return display.OutputJSON(out, cfg)

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config to YAML: %w", err)
		}
		fmt.Fprintf(out, "# refinery configuration\n%s", string(data))

	case "toml":
		fmt.Fprintln(out, "# refinery configuration")
		return config.WriteTOML(cfg, out)

	default:
		return fmt.Errorf("unsupported format: %s (supported: toml, json, yaml)", format)
	}
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no config file given (pass a path or --config)")
	}

	cfg, err := config.CheckFile(path)
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	pterm.Success.WithWriter(cmd.OutOrStdout()).Printfln("%s is valid (language %s)", path, cfg.Language)
	return nil
}
