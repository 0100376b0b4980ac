package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/mathdoc/model"
)

// TitleConfig holds configuration for multi-line title merging
type TitleConfig struct {
	// ContinuationTolerance is the maximum Y distance between two oversized
	// lines for the second to continue the first (default: 2.0)
	ContinuationTolerance float64

	// SuperscriptMaxRunes is the longest text folded in as a superscript
	// (default: 5)
	SuperscriptMaxRunes int

	// Disabled turns merging off; every line passes through unchanged and
	// heading detection is left to the classifier's size rule
	Disabled bool
}

// DefaultTitleConfig returns the default title merging configuration
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		ContinuationTolerance: 2.0,
		SuperscriptMaxRunes:   5,
	}
}

// MergedLine is a line leaving the title merger: either a completed heading
// block or an ordinary line passed through untouched
type MergedLine struct {
	Line

	// Heading is true for flushed title blocks
	Heading bool

	// Spans holds the heading text with superscripts marked; nil otherwise
	Spans []model.Span

	// LineCount is the number of source lines folded into this one
	LineCount int
}

// TitleBlock accumulates a heading while the merger is inside a title.
// It lives for one page at most.
type TitleBlock struct {
	spans []model.Span
	first Line
	base  Line
	lines int
}

func newTitleBlock(line Line) *TitleBlock {
	return &TitleBlock{
		spans: []model.Span{{Text: line.Text}},
		first: line,
		base:  line,
		lines: 1,
	}
}

// appendContinuation adds a wrapped heading line separated by a space
func (b *TitleBlock) appendContinuation(line Line) {
	last := &b.spans[len(b.spans)-1]
	if last.Superscript {
		b.spans = append(b.spans, model.Span{Text: " " + line.Text})
	} else {
		last.Text += " " + line.Text
	}
	b.base = line
	b.lines++
}

// appendSuperscript adds an inline superscript span
func (b *TitleBlock) appendSuperscript(line Line) {
	b.spans = append(b.spans, model.Span{Text: line.Text, Superscript: true})
	b.lines++
}

// Text returns the plain concatenated heading text
func (b *TitleBlock) Text() string {
	var sb strings.Builder
	for _, s := range b.spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Spans returns a copy of the heading spans
func (b *TitleBlock) Spans() []model.Span {
	spans := make([]model.Span, len(b.spans))
	copy(spans, b.spans)
	return spans
}

func (b *TitleBlock) flush() MergedLine {
	line := b.first
	line.Text = b.Text()
	return MergedLine{
		Line:      line,
		Heading:   true,
		Spans:     b.Spans(),
		LineCount: b.lines,
	}
}

// TitleMerger folds consecutive oversized lines of a page into headings.
// Input order matters: the merger is a state machine over arriving lines.
type TitleMerger struct {
	config    TitleConfig
	threshold Threshold
}

// NewTitleMerger creates a title merger with default configuration
func NewTitleMerger(threshold Threshold) *TitleMerger {
	return NewTitleMergerWithConfig(threshold, DefaultTitleConfig())
}

// NewTitleMergerWithConfig creates a title merger with custom configuration
func NewTitleMergerWithConfig(threshold Threshold, config TitleConfig) *TitleMerger {
	return &TitleMerger{config: config, threshold: threshold}
}

// MergePage runs the merger over the lines of a single page. State never
// crosses pages; an open title is flushed when the page ends.
func (m *TitleMerger) MergePage(lines []Line) []MergedLine {
	result := make([]MergedLine, 0, len(lines))

	if m.config.Disabled {
		for _, line := range lines {
			result = append(result, MergedLine{Line: line, LineCount: 1})
		}
		return result
	}

	var block *TitleBlock
	for _, line := range lines {
		oversized := m.threshold.Exceeds(line.AverageFontSize)

		if block == nil {
			if oversized {
				block = newTitleBlock(line)
			} else {
				result = append(result, MergedLine{Line: line, LineCount: 1})
			}
			continue
		}

		switch {
		case oversized && absFloat64(line.Y-block.base.Y) <= m.config.ContinuationTolerance:
			block.appendContinuation(line)
		case m.isSuperscript(block.base, line):
			block.appendSuperscript(line)
		case oversized:
			result = append(result, block.flush())
			block = newTitleBlock(line)
		default:
			result = append(result, block.flush())
			block = nil
			result = append(result, MergedLine{Line: line, LineCount: 1})
		}
	}

	if block != nil {
		result = append(result, block.flush())
	}
	return result
}

// isSuperscript reports whether line sits above base, is short and is set
// in a smaller font
func (m *TitleMerger) isSuperscript(base, line Line) bool {
	if line.Y >= base.Y {
		return false
	}
	if utf8.RuneCountInString(line.Text) > m.config.SuperscriptMaxRunes {
		return false
	}
	return line.AverageFontSize < base.AverageFontSize
}
