package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/discrete-sharp/mister.version/internal/engine"
	"github.com/discrete-sharp/mister.version/internal/project"
)

var (
	changedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	unchangedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// reportRow is one rendered line of output, shared by the version and
// report verbs so both formats come from a single code path.
type reportRow struct {
	Project   string `json:"project"`
	Version   string `json:"version"`
	Changed   bool   `json:"changed"`
	Rationale string `json:"rationale"`
}

func rowFor(ref project.Ref, out engine.DecisionOutput) reportRow {
	return reportRow{Project: ref.Name, Version: out.Version, Changed: out.Changed, Rationale: out.Rationale}
}

// renderRows writes rows to cmd's output stream in the format named
// by --output (text, json, or csv).
func renderRows(cmd *cobra.Command, rows []reportRow) error {
	switch flagOutput {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)

	case "csv":
		w := csv.NewWriter(cmd.OutOrStdout())
		defer w.Flush()
		if err := w.Write([]string{"project", "version", "changed", "rationale"}); err != nil {
			return err
		}
		for _, r := range rows {
			if err := w.Write([]string{r.Project, r.Version, fmt.Sprintf("%v", r.Changed), r.Rationale}); err != nil {
				return err
			}
		}
		return nil

	default:
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
		fmt.Fprintln(tw, "PROJECT\tVERSION\tCHANGED\tRATIONALE")
		for _, r := range rows {
			cell := unchangedStyle.Render("no")
			if r.Changed {
				cell = changedStyle.Render("yes")
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Project, r.Version, cell, r.Rationale)
		}
		return tw.Flush()
	}
}
