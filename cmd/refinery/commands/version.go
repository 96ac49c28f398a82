package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/display"
	"github.com/teranos/refinery/version"
)

// VersionCmd represents the version command
var VersionCmd = newVersionCmd()

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show refinery version information",
		Long:  `Display version, build time, commit hash, platform and supported languages of the refinery binary.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			langs := make([]string, 0, len(config.AllLanguages()))
			for _, l := range config.AllLanguages() {
				langs = append(langs, string(l))
			}
			info := version.Get(langs...)

			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd.OutOrStdout(), info)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, info.String())
			fmt.Fprintf(out, "Platform: %s\n", info.Platform)
			fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
			return nil
		},
	}
}
