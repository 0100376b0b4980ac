// Package layout rebuilds text lines from positioned fragments and classifies
// them into semantic categories.
//
// # Pipeline
//
// The [Analyzer] runs the whole pipeline over a document:
//
//	analyzer := layout.NewAnalyzer()
//	result := analyzer.Analyze(pages)
//	for _, line := range result.Lines {
//	    fmt.Println(line.Category, line.Text)
//	}
//
// It works in two passes. The first assembles the lines of every page with a
// [LineAssembler]; the global [Threshold] is then computed over all of them
// by [GlobalThreshold]; the second pass runs the [TitleMerger] and the
// [Classifier] page by page.
//
// # Line Assembly
//
// Fragments with unusable geometry and page numbers in the footer band are
// dropped first. The remaining fragments are grouped, in the order they were
// supplied, by vertical proximity to a running baseline ([LineConfig.SortByY]
// sorts them top to bottom first). Each group is sorted left to right and
// joined with a single space wherever the horizontal gap exceeds the space
// threshold. The line font size is the mean or the maximum fragment size
// ([FontMetric]).
//
// [LineScanner] yields the lines of a page one at a time:
//
//	scanner := layout.NewLineAssembler().Scan(page)
//	for scanner.Next() {
//	    line := scanner.Line()
//	}
//
// # Title Merging
//
// Consecutive oversized lines are folded into one heading when they sit
// within a small vertical distance of each other. Short, elevated lines in a
// smaller font are folded into the open heading as superscript spans.
//
// # Classification
//
// The [Classifier] walks an ordered list of [Rule] values; the first match
// wins. [DefaultRules] checks size, then the lexical [Markers] (exercise,
// example, lemma, note, definition, proposition, theorem, proof), then
// formula symbols. Everything else is a paragraph.
package layout
