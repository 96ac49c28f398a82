package display

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/teranos/refinery/refiners"
)

// RenderReport writes a run summary, the slowest passes and every soft
// warning in the order it was raised.
func RenderReport(w io.Writer, rep *refiners.Report, slowest int) error {
	if rep == nil {
		return nil
	}
	fmt.Fprintf(w, "%s: %d passes in %s, %d warnings\n",
		rep.Language, len(rep.Passes), rep.Duration.Round(time.Microsecond), len(rep.Warnings))

	if slowest > 0 && len(rep.Passes) > 0 {
		data := pterm.TableData{{"Pass", "Duration"}}
		for _, p := range rep.SlowestPasses(slowest) {
			data = append(data, []string{p.Name, p.Duration.String()})
		}
		if err := renderTable(w, data); err != nil {
			return err
		}
	}

	if len(rep.Warnings) > 0 {
		data := pterm.TableData{{"#", "Pass", "Element", "Warning"}}
		for i, warning := range rep.Warnings {
			data = append(data, []string{strconv.Itoa(i + 1), warning.Pass, warning.Element, warning.Message})
		}
		if err := renderTable(w, data); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	_, err = fmt.Fprintln(w, out)
	return err
}
