package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/display"
	"github.com/teranos/refinery/refiners"
)

// LanguagesCmd lists the supported languages
var LanguagesCmd = newLanguagesCmd()

func newLanguagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "languages [language...]",
		Short: "List supported languages and their passes",
		Long: `List supported languages with the number of passes their profile runs.

Examples:
  refinery languages              # All languages
  refinery languages go --passes  # Every pass of the Go profile, in order`,
		RunE: runLanguages,
	}
	cmd.Flags().Bool("passes", false, "List pass names in execution order")
	return cmd
}

type languageInfo struct {
	Language string   `json:"language"`
	Passes   []string `json:"passes"`
}

func runLanguages(cmd *cobra.Command, args []string) error {
	langs := config.AllLanguages()
	if len(args) > 0 {
		parsed, err := parseLanguages(strings.Join(args, ","))
		if err != nil {
			return err
		}
		langs = parsed
	}

	infos := make([]languageInfo, 0, len(langs))
	for _, lang := range langs {
		profile, err := refiners.Default().Profile(lang)
		if err != nil {
			return err
		}
		infos = append(infos, languageInfo{Language: string(lang), Passes: profile.PassNames()})
	}

	if display.ShouldOutputJSON(cmd) {
		return display.OutputJSON(cmd.OutOrStdout(), infos)
	}

	showPasses, _ := cmd.Flags().GetBool("passes")
	out := cmd.OutOrStdout()
	for _, info := range infos {
		fmt.Fprintf(out, "%-12s %d passes\n", info.Language, len(info.Passes))
		if !showPasses {
			continue
		}
		for i, name := range info.Passes {
			fmt.Fprintf(out, "  %3d. %s\n", i+1, name)
		}
	}
	return nil
}
