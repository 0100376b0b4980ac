package layout

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/tsawler/mathdoc/model"
)

// RuleInput is what a classification rule sees
type RuleInput struct {
	// Text is the trimmed line text
	Text string

	// Folded is Text case-folded for prefix matching
	Folded string

	// FontSize is the line's font size metric
	FontSize float64

	// Threshold is the global heading threshold
	Threshold Threshold
}

// Rule is one entry of the classifier's ordered decision list
type Rule struct {
	Name     string
	Category model.Category
	Match    func(in RuleInput) bool
}

// SizeRule classifies lines above the global threshold as headings
func SizeRule() Rule {
	return Rule{
		Name:     "size",
		Category: model.CategoryHeading,
		Match: func(in RuleInput) bool {
			return in.Threshold.Exceeds(in.FontSize)
		},
	}
}

// PrefixRule matches lines starting with any of the prefixes, ignoring case
func PrefixRule(name string, category model.Category, prefixes ...string) Rule {
	folded := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		if p = foldCase(p); p != "" {
			folded = append(folded, p)
		}
	}
	return Rule{
		Name:     name,
		Category: category,
		Match: func(in RuleInput) bool {
			for _, p := range folded {
				if strings.HasPrefix(in.Folded, p) {
					return true
				}
			}
			return false
		},
	}
}

// SymbolRule matches lines containing any rune of symbols
func SymbolRule(name string, category model.Category, symbols string) Rule {
	return Rule{
		Name:     name,
		Category: category,
		Match: func(in RuleInput) bool {
			return strings.ContainsAny(in.Text, symbols)
		},
	}
}

// DefaultRules returns the documented decision order: size, exercise,
// example, lemma, note, definition, proposition, theorem, proof, formula.
// Lines matching none of them are paragraphs.
func DefaultRules(markers Markers) []Rule {
	return []Rule{
		SizeRule(),
		PrefixRule("exercise", model.CategoryExercise, markers.Exercise...),
		PrefixRule("example", model.CategoryExample, markers.Example...),
		PrefixRule("lemma", model.CategoryLemma, markers.Lemma...),
		PrefixRule("note", model.CategoryNote, markers.Note...),
		PrefixRule("definition", model.CategoryDefinition, markers.Definition...),
		PrefixRule("proposition", model.CategoryProposition, markers.Proposition...),
		PrefixRule("theorem", model.CategoryTheorem, markers.Theorem...),
		PrefixRule("proof", model.CategoryProof, markers.Proof...),
		SymbolRule("formula", model.CategoryFormula, DefaultFormulaSymbols),
	}
}

// Classifier assigns one category to each line by walking its rules in
// order; the first match wins. It holds no state between calls.
type Classifier struct {
	rules    []Rule
	fallback model.Category
}

// NewClassifier creates a classifier with the default rules and markers
func NewClassifier() *Classifier {
	return NewClassifierWithRules(DefaultRules(DefaultMarkers()))
}

// NewClassifierWithRules creates a classifier with a custom rule list
func NewClassifierWithRules(rules []Rule) *Classifier {
	return &Classifier{
		rules:    append([]Rule(nil), rules...),
		fallback: model.CategoryParagraph,
	}
}

// Rules returns a copy of the rule list
func (c *Classifier) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}

// Classify returns the category of a line. The boolean is false for lines
// that are empty after trimming; those produce no output.
func (c *Classifier) Classify(lineText string, fontSize float64, threshold Threshold) (model.Category, bool) {
	trimmed := strings.TrimSpace(lineText)
	if trimmed == "" {
		return model.CategoryUnknown, false
	}

	in := RuleInput{
		Text:      trimmed,
		Folded:    foldCase(trimmed),
		FontSize:  fontSize,
		Threshold: threshold,
	}
	for _, rule := range c.rules {
		if rule.Match != nil && rule.Match(in) {
			return rule.Category, true
		}
	}
	return c.fallback, true
}

// ClassifyLine turns a merged line into a classified line. Title blocks
// flushed by the merger are headings already and skip the rules.
func (c *Classifier) ClassifyLine(line MergedLine, threshold Threshold) (model.ClassifiedLine, bool) {
	out := model.ClassifiedLine{
		Text:      strings.TrimSpace(line.Text),
		PageIndex: line.PageIndex,
		FontSize:  line.AverageFontSize,
	}
	if out.Text == "" {
		return out, false
	}

	if line.Heading {
		out.Category = model.CategoryHeading
		out.Spans = line.Spans
		return out, true
	}

	category, ok := c.Classify(out.Text, line.AverageFontSize, threshold)
	if !ok {
		return out, false
	}
	out.Category = category
	return out, true
}

// foldCase case-folds s. Casers carry state, so each call gets its own.
func foldCase(s string) string {
	return cases.Fold().String(s)
}
