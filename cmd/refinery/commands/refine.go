package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/refinery/codedom"
	"github.com/teranos/refinery/config"
	"github.com/teranos/refinery/display"
	"github.com/teranos/refinery/irdoc"
	"github.com/teranos/refinery/logger"
	"github.com/teranos/refinery/refiners"
)

// RefineCmd refines an IR document
var RefineCmd = newRefineCmd()

func newRefineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refine",
		Short: "Refine an IR document for one or more languages",
		Long: `Refine an IR document for one or more languages.

Each language refines its own copy of the document; several languages run
concurrently. Soft warnings are reported per language and never fail the run.

Examples:
  refinery refine -l go -i api.yaml
  refinery refine -l java,typescript -i api.yaml --tree
  refinery refine -l all -i api.yaml --json`,
		Args: cobra.NoArgs,
		RunE: runRefine,
	}
	cmd.Flags().StringP("language", "l", "", "Target language, comma separated list, or \"all\"")
	cmd.Flags().StringP("input", "i", "", "IR document to refine (YAML)")
	cmd.Flags().String("client-class", "", "Client class name (overrides config)")
	cmd.Flags().String("namespace", "", "Client namespace name (overrides config)")
	cmd.Flags().Bool("backing-store", false, "Generate models with a backing store")
	cmd.Flags().Bool("exclude-backward-compatible", false, "Drop legacy indexer forms")
	cmd.Flags().Bool("tree", false, "Print the refined element tree")
	cmd.Flags().Bool("usings", false, "Include imports in the printed tree")
	cmd.Flags().Int("depth", 0, "Limit the printed tree depth (0 = unlimited)")
	cmd.Flags().Int("slowest", 5, "Number of slowest passes to list")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("language")
	return cmd
}

// refineResult is the JSON shape of one language's outcome
type refineResult struct {
	Language string           `json:"language"`
	Report   *refiners.Report `json:"report,omitempty"`
	Error    string           `json:"error,omitempty"`

	root *codedom.Namespace
}

func runRefine(cmd *cobra.Command, args []string) error {
	base, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyRefineFlags(cmd, base)
	if verbosity, _ := cmd.Flags().GetCount("verbose"); verbosity > base.Log.Verbosity {
		base.Log.Verbosity = verbosity
	}

	langFlag, _ := cmd.Flags().GetString("language")
	langs, err := parseLanguages(langFlag)
	if err != nil {
		return err
	}
	input, _ := cmd.Flags().GetString("input")

	// every language refines its own tree
	jobs := make([]refiners.Job, 0, len(langs))
	for _, lang := range langs {
		cfg := base.Clone()
		cfg.Language = string(lang)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration for %s: %w", lang, err)
		}
		root, err := irdoc.LoadFile(input)
		if err != nil {
			return err
		}
		jobs = append(jobs, refiners.Job{Root: root, Config: cfg})
	}

	log := logger.ComponentLogger("cli")
	log.Infow("Refining document", logger.FieldFile, input, logger.FieldCount, len(jobs))

	reports, runErr := refiners.Default().RefineAll(cmd.Context(), jobs)
	results := make([]refineResult, len(jobs))
	for i, job := range jobs {
		results[i] = refineResult{Language: job.Config.Language, Report: reports[i], root: job.Root}
	}
	if runErr != nil {
		attributeError(results, runErr)
	}

	if display.ShouldOutputJSON(cmd) {
		if err := display.OutputJSON(cmd.OutOrStdout(), results); err != nil {
			return err
		}
		return runErr
	}

	if err := printResults(cmd, results); err != nil {
		return err
	}
	return runErr
}

func applyRefineFlags(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetString("client-class"); v != "" {
		cfg.ClientClassName = v
	}
	if v, _ := cmd.Flags().GetString("namespace"); v != "" {
		cfg.ClientNamespaceName = v
	}
	if cmd.Flags().Changed("backing-store") {
		cfg.UsesBackingStore, _ = cmd.Flags().GetBool("backing-store")
	}
	if cmd.Flags().Changed("exclude-backward-compatible") {
		cfg.ExcludeBackwardCompatible, _ = cmd.Flags().GetBool("exclude-backward-compatible")
	}
}

// parseLanguages resolves a comma separated list, "all" standing for every
// supported language. Duplicates are dropped.
func parseLanguages(s string) ([]config.Language, error) {
	if strings.EqualFold(strings.TrimSpace(s), "all") {
		return config.AllLanguages(), nil
	}
	var langs []config.Language
	seen := make(map[config.Language]bool)
	for _, part := range strings.Split(s, ",") {
		lang, err := config.ParseLanguage(part)
		if err != nil {
			return nil, err
		}
		if !seen[lang] {
			seen[lang] = true
			langs = append(langs, lang)
		}
	}
	return langs, nil
}

// attributeError marks the failed language. RefineAll prefixes the error with
// the job index; cancelled siblings are left without an error.
func attributeError(results []refineResult, err error) {
	for i := range results {
		if strings.HasPrefix(err.Error(), fmt.Sprintf("job %d:", i)) {
			results[i].Error = err.Error()
			return
		}
	}
}

func printResults(cmd *cobra.Command, results []refineResult) error {
	out := cmd.OutOrStdout()
	showTree, _ := cmd.Flags().GetBool("tree")
	usings, _ := cmd.Flags().GetBool("usings")
	depth, _ := cmd.Flags().GetInt("depth")
	slowest, _ := cmd.Flags().GetInt("slowest")

	for _, res := range results {
		switch {
		case res.Error != "":
			pterm.Error.WithWriter(out).Printfln("%s: %s", res.Language, res.Error)
			continue
		case res.Report == nil:
			pterm.Warning.WithWriter(out).Printfln("%s: not refined", res.Language)
			continue
		case len(res.Report.Warnings) > 0:
			pterm.Warning.WithWriter(out).Printfln("%s refined with %d warnings", res.Language, len(res.Report.Warnings))
		default:
			pterm.Success.WithWriter(out).Printfln("%s refined", res.Language)
		}

		if err := display.RenderReport(out, res.Report, slowest); err != nil {
			return err
		}
		if showTree {
			if err := display.RenderTree(out, res.root, display.TreeOptions{Usings: usings, MaxDepth: depth}); err != nil {
				return err
			}
			fmt.Fprintln(out)
		}
	}
	return nil
}
