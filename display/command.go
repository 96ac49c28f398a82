// Package display renders refinement results for the terminal: element trees
// and run reports through pterm, or JSON when asked for.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// OutputEnv selects the default output format when no flag is given.
// REFINERY_OUTPUT=json makes every command print JSON.
const OutputEnv = "REFINERY_OUTPUT"

// ShouldOutputJSON determines if a command should output JSON based on flags
// and the environment
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return jsonFromEnv()
	}

	// Check if --json flag was explicitly set
	if cmd.Flags().Changed("json") {
		jsonFlag, _ := cmd.Flags().GetBool("json")
		return jsonFlag
	}

	// Check global --json flag
	if globalFlag, _ := cmd.Root().PersistentFlags().GetBool("json"); globalFlag {
		return true
	}

	return jsonFromEnv()
}

func jsonFromEnv() bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv(OutputEnv)), "json")
}

// OutputJSON marshals v with MarshalJSON and writes it to w
func OutputJSON(w io.Writer, v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
