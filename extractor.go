package mathdoc

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/tsawler/mathdoc/format"
	"github.com/tsawler/mathdoc/layout"
	"github.com/tsawler/mathdoc/model"
	"github.com/tsawler/mathdoc/ocr"
	"github.com/tsawler/mathdoc/reader"
	"github.com/tsawler/mathdoc/render"
)

// Extractor provides a fluent interface for reconstructing documents from
// PDF files and scanned images. Each configuration method returns a new
// Extractor instance, allowing method chaining without mutating the
// receiver.
type Extractor struct {
	// Source
	filename string
	source   reader.Source

	// Lifecycle
	ownsSource   bool // true if we opened the source and should close it
	sourceOpened bool // true if source has been opened

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		source:       e.source,
		ownsSource:   e.ownsSource,
		sourceOpened: e.sourceOpened,
		options:      e.options.clone(),
		err:          e.err,
	}
}

// ensureSource opens the source if not already open.
func (e *Extractor) ensureSource() error {
	if e.sourceOpened {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	f, err := format.DetectFile(e.filename)
	if err != nil {
		return err
	}

	switch f {
	case format.PDF:
		src, err := reader.OpenPDF(e.filename)
		if err != nil {
			return fmt.Errorf("failed to open PDF: %w", err)
		}
		e.source = src

	case format.Image:
		client, err := ocr.New()
		if err != nil {
			return fmt.Errorf("failed to open image: %w", err)
		}
		if err := client.SetLanguage(e.options.ocrLanguage); err != nil {
			client.Close()
			return fmt.Errorf("failed to set OCR language %q: %w", e.options.ocrLanguage, err)
		}
		e.source = ocr.NewImageSource(client, e.filename)

	default:
		return fmt.Errorf("unsupported file format: %s", e.filename)
	}

	e.ownsSource = true
	e.sourceOpened = true
	return nil
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times.
func (e *Extractor) Close() error {
	if e.ownsSource && e.source != nil {
		err := e.source.Close()
		e.source = nil
		e.ownsSource = false
		e.sourceOpened = false
		return err
	}
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages specifies which pages to process (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	doc, _, err := mathdoc.Open("doc.pdf").Pages(1, 3, 5).Document()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange specifies a range of pages to process (1-indexed, inclusive).
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// FontMetric selects how a line's font size is measured. MeanFontSize is the
// default; MaxFontSize makes heading detection more sensitive.
func (e *Extractor) FontMetric(m layout.FontMetric) *Extractor {
	newExt := e.clone()
	newExt.options.fontMetric = m
	return newExt
}

// KeepNumericLines disables dropping assembled lines that are a bare 1-3
// digit numeral. Page numbers in the page margins are still suppressed.
func (e *Extractor) KeepNumericLines() *Extractor {
	newExt := e.clone()
	newExt.options.keepNumericLines = true
	return newExt
}

// SortByPosition stable-sorts each page's fragments top to bottom before
// grouping them into lines. By default fragments are grouped in the order
// the source yields them. A raised superscript sorts ahead of its heading,
// so it is no longer folded into it.
func (e *Extractor) SortByPosition() *Extractor {
	newExt := e.clone()
	newExt.options.sortByY = true
	return newExt
}

// Rules replaces the classifier decision list. Rules are evaluated in order
// and the first match wins; lines matching no rule are paragraphs.
//
// Example:
//
//	rules := append([]layout.Rule{layout.PrefixRule("corollary", model.CategoryTheorem, "corolario")},
//	    layout.DefaultRules(layout.DefaultMarkers())...)
//	doc, _, err := mathdoc.Open("doc.pdf").Rules(rules...).Document()
func (e *Extractor) Rules(rules ...layout.Rule) *Extractor {
	newExt := e.clone()
	newExt.options.rules = append([]layout.Rule(nil), rules...)
	return newExt
}

// Markers replaces the lexical markers used by the default rules.
func (e *Extractor) Markers(m layout.Markers) *Extractor {
	newExt := e.clone()
	newExt.options.markers = &m
	return newExt
}

// Language sets the document language as a BCP 47 tag ("es", "en-US").
// It selects the lexical markers, the HTML lang attribute and the language
// of the default date. Without it, Spanish and English markers are both
// active and output is Spanish.
func (e *Extractor) Language(lang string) *Extractor {
	newExt := e.clone()
	if _, err := language.Parse(lang); err != nil {
		newExt.err = fmt.Errorf("invalid language %q: %w", lang, err)
		return newExt
	}
	newExt.options.language = lang
	return newExt
}

// NoTitleMerge disables merging of multi-line headings and superscript
// folding. Oversized lines are still classified as headings one by one.
func (e *Extractor) NoTitleMerge() *Extractor {
	newExt := e.clone()
	newExt.options.noTitleMerge = true
	return newExt
}

// Title sets the document title. By default it is the file name without
// its extension.
func (e *Extractor) Title(title string) *Extractor {
	newExt := e.clone()
	newExt.options.title = &title
	return newExt
}

// Date sets the document date string. By default it is today's date
// formatted for the document language.
func (e *Extractor) Date(date string) *Extractor {
	newExt := e.clone()
	newExt.options.date = &date
	return newExt
}

// OCRLanguage sets the Tesseract language for image inputs ("spa",
// "spa+eng"). The default is DefaultOCRLanguage.
func (e *Extractor) OCRLanguage(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.ocrLanguage = lang
	return newExt
}

// ============================================================================
// Operations
// ============================================================================

// PageCount returns the number of pages in the source.
// Note: This does NOT close the source, allowing further operations.
//
// Example:
//
//	ext := mathdoc.Open("document.pdf")
//	defer ext.Close()
//	count, err := ext.PageCount()
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if err := e.ensureSource(); err != nil {
		return 0, err
	}
	return e.source.PageCount(), nil
}

// Lines assembles and returns the visual lines of the selected pages,
// before title merging and classification.
// This is a terminal operation that closes the underlying source.
//
// Example:
//
//	lines, _, err := mathdoc.Open("document.pdf").Lines()
//	for _, line := range lines {
//	    fmt.Printf("%.1f %s\n", line.AverageFontSize, line.Text)
//	}
func (e *Extractor) Lines() ([]layout.Line, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureSource(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	pages, err := e.collectPages()
	if err != nil {
		return nil, nil, err
	}

	assembler := layout.NewLineAssemblerWithConfig(e.options.analyzerConfig().LineConfig)
	var lines []layout.Line
	var warnings []Warning
	for _, page := range pages {
		pl := assembler.Assemble(page)
		lines = append(lines, pl.Lines...)
		warnings = append(warnings, malformedWarnings(pl.Malformed)...)
	}
	return lines, warnings, nil
}

// Analyze runs the full layout analysis and returns the detailed result,
// including the threshold and the suppressed page numbers.
// This is a terminal operation that closes the underlying source.
func (e *Extractor) Analyze() (*layout.AnalysisResult, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureSource(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	pages, err := e.collectPages()
	if err != nil {
		return nil, nil, err
	}

	analyzer := layout.NewAnalyzerWithConfig(e.options.analyzerConfig())
	result := analyzer.Analyze(pages)
	return result, analysisWarnings(result), nil
}

// Document reconstructs the classified document.
// An empty result is not an error: the document has no lines and a
// WarningEmptyDocument is returned.
// This is a terminal operation that closes the underlying source.
//
// Example:
//
//	doc, warnings, err := mathdoc.Open("apuntes.pdf").Document()
//	for _, line := range doc.Lines {
//	    fmt.Printf("[%s] %s\n", line.Category, line.Text)
//	}
func (e *Extractor) Document() (*model.Document, []Warning, error) {
	result, warnings, err := e.Analyze()
	if err != nil {
		return nil, warnings, err
	}

	doc := model.NewDocument(e.title(), e.date())
	doc.Lines = append(doc.Lines, result.Lines...)
	doc.Threshold = result.Threshold.Value
	doc.PageCount = result.PageCount
	return doc, warnings, nil
}

// HTML reconstructs the document and renders it as an HTML page to w.
// This is a terminal operation that closes the underlying source.
func (e *Extractor) HTML(w io.Writer) ([]Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return warnings, err
	}
	if err := render.WriteHTML(w, doc, e.htmlOptions()); err != nil {
		return warnings, err
	}
	return warnings, nil
}

// WriteHTML reconstructs the document and writes it as an HTML page to
// path. The file is created once and written once; it is closed on every
// path, and a close failure is reported with any write failure.
// This is a terminal operation that closes the underlying source.
func (e *Extractor) WriteHTML(path string) ([]Warning, error) {
	doc, warnings, err := e.Document()
	if err != nil {
		return warnings, err
	}
	return warnings, render.WriteHTMLFile(path, doc, e.htmlOptions())
}

// HTMLOptions returns the render options matching the configured language.
func (e *Extractor) HTMLOptions() render.HTMLOptions {
	return e.htmlOptions()
}

// ============================================================================
// Internal helpers
// ============================================================================

// resolvePages converts 1-indexed page numbers to 0-indexed and validates them.
// If no pages specified, returns all pages.
func (e *Extractor) resolvePages() ([]int, error) {
	pageCount := e.source.PageCount()

	// If no pages specified, use all pages
	if len(e.options.pages) == 0 {
		pageIndices := make([]int, pageCount)
		for i := 0; i < pageCount; i++ {
			pageIndices[i] = i
		}
		return pageIndices, nil
	}

	// Convert 1-indexed to 0-indexed and validate
	seen := make(map[int]bool)
	var pageIndices []int
	for _, p := range e.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		zeroIndexed := p - 1
		if !seen[zeroIndexed] {
			seen[zeroIndexed] = true
			pageIndices = append(pageIndices, zeroIndexed)
		}
	}

	// Pages are always processed in document order
	sort.Ints(pageIndices)
	return pageIndices, nil
}

// collectPages decodes the selected pages.
func (e *Extractor) collectPages() ([]layout.PageFragments, error) {
	pageIndices, err := e.resolvePages()
	if err != nil {
		return nil, err
	}

	pages := make([]layout.PageFragments, 0, len(pageIndices))
	for _, idx := range pageIndices {
		page, err := e.source.ExtractFragments(idx)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", idx+1, err)
		}
		pages = append(pages, layout.PageFragments{
			PageIndex:  idx,
			PageWidth:  page.Width,
			PageHeight: page.Height,
			Fragments:  page.Fragments,
		})
	}
	return pages, nil
}

// title returns the configured title, the file name without extension, or
// the title the source reports about itself.
func (e *Extractor) title() string {
	if e.options.title != nil {
		return *e.options.title
	}
	if e.filename != "" {
		base := filepath.Base(e.filename)
		return strings.TrimSuffix(base, filepath.Ext(base))
	}
	if titled, ok := e.source.(interface{ Title() string }); ok {
		return titled.Title()
	}
	return ""
}

// date returns the configured date or today's date in the document language.
func (e *Extractor) date() string {
	if e.options.date != nil {
		return *e.options.date
	}
	return render.FormatDate(time.Now(), e.options.languageTag())
}

func (e *Extractor) htmlOptions() render.HTMLOptions {
	opts := render.DefaultHTMLOptions()
	if base := e.options.languageBase(); base != "" {
		opts.Lang = base
	}
	return opts
}

func malformedWarnings(malformed []layout.MalformedFragment) []Warning {
	warnings := make([]Warning, 0, len(malformed))
	for _, m := range malformed {
		warnings = append(warnings, Warning{
			Kind:    WarningMalformedFragment,
			Page:    m.PageIndex + 1,
			Message: fmt.Sprintf("skipped fragment %q: %v", m.Fragment.Text, m.Err),
		})
	}
	return warnings
}

func analysisWarnings(result *layout.AnalysisResult) []Warning {
	warnings := malformedWarnings(result.Malformed)
	if result.Threshold.Fallback {
		warnings = append(warnings, Warning{
			Kind: WarningThresholdFallback,
			Message: fmt.Sprintf("%d line(s) measured; heading threshold uses fallback size %.1f",
				result.Threshold.LineCount, result.Threshold.BaseFontSize),
		})
	}
	if result.IsEmpty() {
		warnings = append(warnings, Warning{
			Kind:    WarningEmptyDocument,
			Message: "no lines were produced",
		})
	}
	return warnings
}
