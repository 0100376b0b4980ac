package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tsawler/mathdoc"
	"github.com/tsawler/mathdoc/model"
	"github.com/tsawler/mathdoc/render"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted labels
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// successStyle for the output path
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// warnStyle for warning labels
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	// errorStyle for fatal errors
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))

	// boxStyle for the conversion summary
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)
)

// categoryStyles colors the outline by category
var categoryStyles = map[model.Category]lipgloss.Style{
	model.CategoryHeading:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")),
	model.CategoryExercise:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	model.CategoryExample:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
	model.CategoryLemma:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	model.CategoryNote:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	model.CategoryDefinition:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	model.CategoryProposition: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
	model.CategoryTheorem:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	model.CategoryProof:       lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("71")),
	model.CategoryFormula:     lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
}

// FormatSummary renders the conversion summary box
func FormatSummary(w io.Writer, input, output string, doc *model.Document) {
	lines := []string{
		titleStyle.Render(doc.Title),
		fmt.Sprintf("%s %s", dimStyle.Render("Input:"), input),
		fmt.Sprintf("%s %s", dimStyle.Render("Output:"), successStyle.Render(output)),
		fmt.Sprintf("%s %d  %s %d  %s %.1f",
			dimStyle.Render("Pages:"), doc.PageCount,
			dimStyle.Render("Lines:"), len(doc.Lines),
			dimStyle.Render("Threshold:"), doc.Threshold,
		),
	}

	counts := doc.CountByCategory()
	var parts []string
	for _, c := range model.Categories() {
		if n := counts[c]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", categoryStyle(c).Render(c.String()), n))
		}
	}
	if len(parts) > 0 {
		lines = append(lines, strings.Join(parts, "  "))
	}

	fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n")))
}

// FormatWarnings prints one line per warning
func FormatWarnings(w io.Writer, warnings []mathdoc.Warning) {
	for _, warning := range warnings {
		fmt.Fprintf(w, "%s %s\n", warnStyle.Render("warning:"), warning)
	}
}

// FormatOutline prints the classified lines with category colors
func FormatOutline(w io.Writer, doc *model.Document, opts render.OutlineOptions) {
	keep := make(map[model.Category]bool, len(opts.Categories))
	for _, c := range opts.Categories {
		keep[c] = true
	}

	for _, line := range doc.Lines {
		if len(keep) > 0 && !keep[line.Category] {
			continue
		}
		label := categoryStyle(line.Category).Render(fmt.Sprintf("%-11s", line.Category))
		if opts.ShowPages {
			fmt.Fprintf(w, "%s %s  %s\n", dimStyle.Render(fmt.Sprintf("%4d", line.PageIndex+1)), label, render.PlainText(line))
			continue
		}
		fmt.Fprintf(w, "%s  %s\n", label, render.PlainText(line))
	}
}

func categoryStyle(c model.Category) lipgloss.Style {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
