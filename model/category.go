package model

import "strings"

// Category is the semantic class assigned to a line.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryHeading
	CategoryExercise
	CategoryExample
	CategoryLemma
	CategoryNote
	CategoryDefinition
	CategoryProposition
	CategoryTheorem
	CategoryProof
	CategoryFormula
	CategoryParagraph
)

var categoryNames = map[Category]string{
	CategoryHeading:     "Heading",
	CategoryExercise:    "Exercise",
	CategoryExample:     "Example",
	CategoryLemma:       "Lemma",
	CategoryNote:        "Note",
	CategoryDefinition:  "Definition",
	CategoryProposition: "Proposition",
	CategoryTheorem:     "Theorem",
	CategoryProof:       "Proof",
	CategoryFormula:     "Formula",
	CategoryParagraph:   "Paragraph",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Categories returns every known category in declaration order.
func Categories() []Category {
	return []Category{
		CategoryHeading,
		CategoryExercise,
		CategoryExample,
		CategoryLemma,
		CategoryNote,
		CategoryDefinition,
		CategoryProposition,
		CategoryTheorem,
		CategoryProof,
		CategoryFormula,
		CategoryParagraph,
	}
}

// ParseCategory returns the category with the given name, ignoring case.
func ParseCategory(name string) (Category, bool) {
	for c, n := range categoryNames {
		if strings.EqualFold(n, name) {
			return c, true
		}
	}
	return CategoryUnknown, false
}

// Span is a run of heading text. Superscript spans were folded in from small,
// elevated lines such as footnote marks.
type Span struct {
	Text        string
	Superscript bool
}

// ClassifiedLine is a finalized line with its semantic category.
type ClassifiedLine struct {
	Category Category
	Text     string

	// Spans holds the superscript-aware variant of Text for merged headings.
	// It is nil for lines that were not produced by title merging.
	Spans []Span

	// PageIndex is the 0-based page the line came from
	PageIndex int

	// FontSize is the line's font size metric (mean or max, per configuration)
	FontSize float64
}

// HasSuperscript returns true if any span is a superscript.
func (l ClassifiedLine) HasSuperscript() bool {
	for _, s := range l.Spans {
		if s.Superscript {
			return true
		}
	}
	return false
}

// SpansOrText returns Spans, or a single plain span holding Text when the
// line has no spans.
func (l ClassifiedLine) SpansOrText() []Span {
	if len(l.Spans) > 0 {
		return l.Spans
	}
	return []Span{{Text: l.Text}}
}
