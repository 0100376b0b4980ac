package mathdoc

import (
	"golang.org/x/text/language"

	"github.com/tsawler/mathdoc/layout"
	"github.com/tsawler/mathdoc/render"
)

// DefaultOCRLanguage is the Tesseract language used for image inputs.
const DefaultOCRLanguage = "spa"

// ExtractOptions holds configuration for document reconstruction.
type ExtractOptions struct {
	// Page selection (1-indexed in API, stored as-is)
	pages []int

	// Line assembly
	fontMetric       layout.FontMetric
	keepNumericLines bool
	sortByY          bool

	// Classification
	rules        []layout.Rule
	markers      *layout.Markers
	language     string
	noTitleMerge bool

	// Pass-through metadata; nil means derived
	title *string
	date  *string

	// Image inputs
	ocrLanguage string
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:       nil, // nil means all pages
		fontMetric:  layout.MeanFontSize,
		ocrLanguage: DefaultOCRLanguage,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o

	// Deep copy slices and pointers
	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	if o.rules != nil {
		newOpts.rules = make([]layout.Rule, len(o.rules))
		copy(newOpts.rules, o.rules)
	}
	if o.markers != nil {
		m := *o.markers
		newOpts.markers = &m
	}
	if o.title != nil {
		s := *o.title
		newOpts.title = &s
	}
	if o.date != nil {
		s := *o.date
		newOpts.date = &s
	}

	return newOpts
}

// analyzerConfig translates the options into a layout configuration.
func (o ExtractOptions) analyzerConfig() layout.AnalyzerConfig {
	config := layout.DefaultAnalyzerConfig()
	config.LineConfig.FontMetric = o.fontMetric
	config.LineConfig.DropNumericLines = !o.keepNumericLines
	config.LineConfig.SortByY = o.sortByY
	config.TitleConfig.Disabled = o.noTitleMerge

	config.Markers = layout.MarkersForLanguage(o.languageBase())
	if o.markers != nil {
		config.Markers = *o.markers
	}
	config.Rules = o.rules
	return config
}

// languageTag returns the document language, Spanish when unset.
func (o ExtractOptions) languageTag() language.Tag {
	if o.language == "" {
		return language.Spanish
	}
	return render.ParseLanguage(o.language)
}

// languageBase returns the base language subtag ("es"), or "" when unset.
func (o ExtractOptions) languageBase() string {
	if o.language == "" {
		return ""
	}
	base, _ := o.languageTag().Base()
	return base.String()
}
