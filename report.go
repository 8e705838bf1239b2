package sortbench

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const tableWidth = 70

var (
	reportTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("63")) // Purple

	reportHeaderStyle = lipgloss.NewStyle().Bold(true)

	reportRuleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Gray
)

// RenderTable renders an ordered sequence of benchmark results as a
// fixed-width comparison table. Each row carries the algorithm's
// documented complexity class, looked up from the Algorithm value.
//
// The formatter is stateless; results are rendered in the order given.
func RenderTable(results []Result) string {
	var b strings.Builder
	WriteTable(&b, results)
	return b.String()
}

// WriteTable writes the comparison table to w.
func WriteTable(w io.Writer, results []Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No benchmark results to display.")
		return
	}

	rule := strings.Repeat("=", tableWidth)

	fmt.Fprintln(w, reportRuleStyle.Render(rule))
	fmt.Fprintln(w, reportTitleStyle.Render("SORTING ALGORITHM PERFORMANCE COMPARISON"))
	fmt.Fprintln(w, reportRuleStyle.Render(rule))

	header := fmt.Sprintf("%-20s%-15s%-20s%-15s",
		"Algorithm", "Data Size", "Time (ms)", "Complexity")
	fmt.Fprintln(w, reportHeaderStyle.Render(header))
	fmt.Fprintln(w, reportRuleStyle.Render(strings.Repeat("-", tableWidth)))

	for _, r := range results {
		fmt.Fprintf(w, "%-20s%-15d%-20.3f%-15s\n",
			r.Algorithm, r.DataSize, r.ElapsedMS, r.Algorithm.Complexity())
	}

	fmt.Fprintln(w, reportRuleStyle.Render(rule))
}
