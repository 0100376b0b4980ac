package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/mathdoc/model"
)

// OutlineOptions controls plain-text outline output.
type OutlineOptions struct {
	// ShowPages prefixes every line with its 1-based page number
	ShowPages bool

	// Categories restricts output to the given categories. Empty means all.
	Categories []model.Category
}

// WriteOutline writes one line per classified line: the category name padded
// to a fixed column, then the text. Superscript spans are written as ^x.
func WriteOutline(w io.Writer, doc *model.Document, opts OutlineOptions) error {
	if doc == nil {
		return nil
	}
	keep := make(map[model.Category]bool, len(opts.Categories))
	for _, c := range opts.Categories {
		keep[c] = true
	}

	for _, line := range doc.Lines {
		if len(keep) > 0 && !keep[line.Category] {
			continue
		}
		var err error
		if opts.ShowPages {
			_, err = fmt.Fprintf(w, "%4d  %-11s  %s\n", line.PageIndex+1, line.Category, PlainText(line))
		} else {
			_, err = fmt.Fprintf(w, "%-11s  %s\n", line.Category, PlainText(line))
		}
		if err != nil {
			return fmt.Errorf("write outline: %w", err)
		}
	}
	return nil
}

// PlainText returns the line text with superscript spans marked by a caret.
func PlainText(line model.ClassifiedLine) string {
	if !line.HasSuperscript() {
		return line.Text
	}
	var sb strings.Builder
	for _, span := range line.Spans {
		if span.Superscript {
			sb.WriteByte('^')
		}
		sb.WriteString(span.Text)
	}
	return sb.String()
}
