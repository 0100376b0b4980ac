package layout

import "github.com/tsawler/mathdoc/model"

// AnalyzerConfig holds configuration for every stage of the analyzer
type AnalyzerConfig struct {
	// LineConfig configures line assembly and page number filtering
	LineConfig LineConfig

	// TitleConfig configures multi-line title merging
	TitleConfig TitleConfig

	// ThresholdConfig configures the global heading threshold
	ThresholdConfig ThresholdConfig

	// Rules is the classifier decision list. Nil means DefaultRules(Markers)
	Rules []Rule

	// Markers feed the default rules when Rules is nil
	Markers Markers
}

// DefaultAnalyzerConfig returns a configuration with all defaults
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		LineConfig:      DefaultLineConfig(),
		TitleConfig:     DefaultTitleConfig(),
		ThresholdConfig: DefaultThresholdConfig(),
		Markers:         DefaultMarkers(),
	}
}

// AnalysisResult holds the outcome of analyzing a whole document
type AnalysisResult struct {
	// Lines are the classified lines in page order
	Lines []model.ClassifiedLine

	// Threshold is the global threshold used for every page
	Threshold Threshold

	// PageCount is the number of pages analyzed
	PageCount int

	// Malformed lists fragments excluded for bad geometry
	Malformed []MalformedFragment

	// Suppressed lists fragments removed as page numbers
	Suppressed []PageFragmentRef
}

// PageFragmentRef ties a suppressed fragment's text to its page
type PageFragmentRef struct {
	PageIndex int
	Text      string
}

// IsEmpty reports whether the analysis produced no lines
func (r *AnalysisResult) IsEmpty() bool {
	return r == nil || len(r.Lines) == 0
}

// Analyzer runs line assembly, threshold computation, title merging and
// classification over a document
type Analyzer struct {
	config     AnalyzerConfig
	assembler  *LineAssembler
	classifier *Classifier
}

// NewAnalyzer creates an analyzer with default configuration
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(DefaultAnalyzerConfig())
}

// NewAnalyzerWithConfig creates an analyzer with custom configuration
func NewAnalyzerWithConfig(config AnalyzerConfig) *Analyzer {
	rules := config.Rules
	if rules == nil {
		rules = DefaultRules(config.Markers)
	}
	return &Analyzer{
		config:     config,
		assembler:  NewLineAssemblerWithConfig(config.LineConfig),
		classifier: NewClassifierWithRules(rules),
	}
}

// Analyze processes pages in the order given. The first pass assembles the
// lines of every page; the threshold is computed over all of them; the
// second pass merges titles and classifies page by page.
func (a *Analyzer) Analyze(pages []PageFragments) *AnalysisResult {
	result := &AnalysisResult{PageCount: len(pages)}

	pageLines := make([]PageLines, 0, len(pages))
	var all []Line
	for _, page := range pages {
		pl := a.assembler.Assemble(page)
		pageLines = append(pageLines, pl)
		all = append(all, pl.Lines...)

		result.Malformed = append(result.Malformed, pl.Malformed...)
		for _, f := range pl.Suppressed {
			result.Suppressed = append(result.Suppressed, PageFragmentRef{
				PageIndex: page.PageIndex,
				Text:      f.Text,
			})
		}
	}

	result.Threshold = GlobalThreshold(all, a.config.ThresholdConfig)

	merger := NewTitleMergerWithConfig(result.Threshold, a.config.TitleConfig)
	for _, pl := range pageLines {
		for _, merged := range merger.MergePage(pl.Lines) {
			if cl, ok := a.classifier.ClassifyLine(merged, result.Threshold); ok {
				result.Lines = append(result.Lines, cl)
			}
		}
	}

	return result
}

// AnalyzeLines classifies already assembled lines, grouped by page. It is
// the second pass of Analyze on its own.
func (a *Analyzer) AnalyzeLines(pages [][]Line) *AnalysisResult {
	result := &AnalysisResult{PageCount: len(pages)}

	var all []Line
	for _, lines := range pages {
		all = append(all, lines...)
	}
	result.Threshold = GlobalThreshold(all, a.config.ThresholdConfig)

	merger := NewTitleMergerWithConfig(result.Threshold, a.config.TitleConfig)
	for _, lines := range pages {
		for _, merged := range merger.MergePage(lines) {
			if cl, ok := a.classifier.ClassifyLine(merged, result.Threshold); ok {
				result.Lines = append(result.Lines, cl)
			}
		}
	}
	return result
}
