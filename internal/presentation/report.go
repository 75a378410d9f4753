// Package presentation renders run feedback for the terminal.
package presentation

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/aretw0/datashield/pkg/domain"
)

// NewRenderer returns a function that renders markdown using glamour.
// It auto-detects the terminal background style.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// ReportMarkdown builds the markdown body for a completed run.
func ReportMarkdown(report *domain.Report, stats domain.PassStats, message string) string {
	var b strings.Builder
	b.WriteString("# Sanitization Report\n\n")
	b.WriteString(message + "\n\n")
	if report != nil {
		fmt.Fprintf(&b, "**%s**: %s\n\n", report.Category, report.Message)
		fmt.Fprintf(&b, "Affected objects (%d):\n\n", len(report.ObjectIDs))
		for _, id := range report.ObjectIDs {
			fmt.Fprintf(&b, "- `%s`\n", id)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "_%d nodes visited, %d parameters examined", stats.NodesVisited, stats.ParametersExamined)
	if stats.SkippedNodes > 0 || stats.SkippedParameters > 0 {
		fmt.Fprintf(&b, ", %d nodes and %d parameters skipped", stats.SkippedNodes, stats.SkippedParameters)
	}
	b.WriteString("._\n")
	return b.String()
}
