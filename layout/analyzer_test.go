package layout

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/mathdoc/model"
	"github.com/tsawler/mathdoc/text"
)

type classified struct {
	Category model.Category
	Text     string
	Page     int
}

func summarize(lines []model.ClassifiedLine) []classified {
	out := make([]classified, len(lines))
	for i, l := range lines {
		out[i] = classified{Category: l.Category, Text: l.Text, Page: l.PageIndex}
	}
	return out
}

// wordFragments lays out the words of s on one line, 6 units per rune with
// a 6 unit space between words
func wordFragments(s string, x, y, size float64) []text.TextFragment {
	var frags []text.TextFragment
	for _, w := range strings.Fields(s) {
		width := float64(len([]rune(w))) * 6
		frags = append(frags, makeLineFragment(w, x, y, width, size))
		x += width + 6
	}
	return frags
}

func buildPage(index int, lines ...[]text.TextFragment) PageFragments {
	page := PageFragments{PageIndex: index, PageWidth: 612, PageHeight: 800}
	for _, l := range lines {
		page.Fragments = append(page.Fragments, l...)
	}
	return page
}

func TestAnalyzer_SingleTitle(t *testing.T) {
	page := buildPage(0, []text.TextFragment{
		makeLineFragment("T", 0, 10, 12, 20),
		makeLineFragment("itle", 15, 10, 30, 20),
	})

	result := NewAnalyzer().Analyze([]PageFragments{page})
	want := []classified{{model.CategoryHeading, "Title", 0}}
	if diff := cmp.Diff(want, summarize(result.Lines)); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
	if !result.Threshold.Fallback {
		t.Error("expected fallback threshold for a one-line document")
	}
}

func TestAnalyzer_Document(t *testing.T) {
	page1 := buildPage(0,
		wordFragments("Capitulo Uno", 100, 60, 24),
		wordFragments("Sea G un grupo finito.", 72, 120, 11),
		wordFragments("Definición 1 Un grupo es", 72, 140, 11),
		wordFragments("Ejercicio 3: probar", 72, 160, 11),
		[]text.TextFragment{makeLineFragment("1", 306, 770, 6, 10)},
	)
	page2 := buildPage(1,
		wordFragments("∫ f dx = 0", 72, 100, 11),
		wordFragments("Demostración. Trivial.", 72, 120, 11),
		[]text.TextFragment{makeLineFragment("2", 306, 770, 6, 10)},
	)

	result := NewAnalyzer().Analyze([]PageFragments{page1, page2})

	want := []classified{
		{model.CategoryHeading, "Capitulo Uno", 0},
		{model.CategoryParagraph, "Sea G un grupo finito.", 0},
		{model.CategoryDefinition, "Definición 1 Un grupo es", 0},
		{model.CategoryExercise, "Ejercicio 3: probar", 0},
		{model.CategoryFormula, "∫ f dx = 0", 1},
		{model.CategoryProof, "Demostración. Trivial.", 1},
	}
	if diff := cmp.Diff(want, summarize(result.Lines)); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}

	if result.PageCount != 2 {
		t.Errorf("expected 2 pages, got %d", result.PageCount)
	}
	if len(result.Suppressed) != 2 {
		t.Errorf("expected 2 suppressed page numbers, got %v", result.Suppressed)
	}
	for _, l := range result.Lines {
		if l.Text == "1" || l.Text == "2" {
			t.Errorf("page number leaked into output: %q", l.Text)
		}
	}
}

func TestAnalyzer_ThresholdIsGlobal(t *testing.T) {
	// Page 2 alone has a mean of 14; across the document the mean is lower
	// and its 16pt line becomes a heading
	page1 := buildPage(0,
		wordFragments("body one", 72, 100, 10),
		wordFragments("body two", 72, 120, 10),
		wordFragments("body three", 72, 140, 10),
		wordFragments("body four", 72, 160, 10),
	)
	page2 := buildPage(1,
		wordFragments("Section", 72, 100, 16),
		wordFragments("text", 72, 120, 12),
	)

	result := NewAnalyzer().Analyze([]PageFragments{page1, page2})
	headings := 0
	for _, l := range result.Lines {
		if l.Category == model.CategoryHeading {
			headings++
			if l.Text != "Section" {
				t.Errorf("unexpected heading %q", l.Text)
			}
		}
	}
	if headings != 1 {
		t.Errorf("expected 1 heading, got %d", headings)
	}
}

func TestAnalyzer_Empty(t *testing.T) {
	result := NewAnalyzer().Analyze(nil)
	if !result.IsEmpty() {
		t.Error("expected empty result")
	}
	if !result.Threshold.Fallback || !approxEqual(result.Threshold.Value, 14.4) {
		t.Errorf("expected fallback threshold 14.4, got %+v", result.Threshold)
	}

	result = NewAnalyzer().Analyze([]PageFragments{buildPage(0), buildPage(1)})
	if !result.IsEmpty() || result.PageCount != 2 {
		t.Errorf("expected two empty pages, got %+v", result)
	}
}

func TestAnalyzer_MalformedReported(t *testing.T) {
	page := buildPage(0,
		wordFragments("fine text", 72, 100, 12),
		[]text.TextFragment{makeLineFragment("bad", 72, -5, 10, 12)},
	)
	result := NewAnalyzer().Analyze([]PageFragments{page})
	if len(result.Malformed) != 1 || result.Malformed[0].Fragment.Text != "bad" {
		t.Errorf("expected one malformed fragment, got %+v", result.Malformed)
	}
	if len(result.Lines) != 1 {
		t.Errorf("expected 1 line, got %d", len(result.Lines))
	}
}

func TestAnalyzer_SuppliedOrderAndSuperscript(t *testing.T) {
	// The raised mark arrives after its heading and the note arrives last
	// although it sits highest on the page
	page := buildPage(0,
		wordFragments("Conjuntos", 72, 100, 20),
		[]text.TextFragment{makeLineFragment("a,b", 160, 92, 18, 10)},
		wordFragments("Texto normal.", 72, 150, 10),
		wordFragments("Más texto.", 72, 170, 10),
		wordFragments("Nota: arriba", 72, 60, 10),
	)

	result := NewAnalyzer().Analyze([]PageFragments{page})
	want := []classified{
		{model.CategoryHeading, "Conjuntosa,b", 0},
		{model.CategoryParagraph, "Texto normal.", 0},
		{model.CategoryParagraph, "Más texto.", 0},
		{model.CategoryNote, "Nota: arriba", 0},
	}
	if diff := cmp.Diff(want, summarize(result.Lines)); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	wantSpans := []model.Span{{Text: "Conjuntos"}, {Text: "a,b", Superscript: true}}
	if diff := cmp.Diff(wantSpans, result.Lines[0].Spans); diff != "" {
		t.Errorf("spans mismatch (-want +got):\n%s", diff)
	}

	// Sorting by position moves the mark and the note ahead of the heading
	config := DefaultAnalyzerConfig()
	config.LineConfig.SortByY = true
	sorted := NewAnalyzerWithConfig(config).Analyze([]PageFragments{page})
	wantSorted := []classified{
		{model.CategoryNote, "Nota: arriba", 0},
		{model.CategoryParagraph, "a,b", 0},
		{model.CategoryHeading, "Conjuntos", 0},
		{model.CategoryParagraph, "Texto normal.", 0},
		{model.CategoryParagraph, "Más texto.", 0},
	}
	if diff := cmp.Diff(wantSorted, summarize(sorted.Lines)); diff != "" {
		t.Errorf("sorted mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzer_NoMergeMode(t *testing.T) {
	config := DefaultAnalyzerConfig()
	config.TitleConfig.Disabled = true

	lines := [][]Line{{
		makeLine("Big", 100, 20),
		makeLine("Title", 101, 20),
		makeLine("body", 150, 10),
		makeLine("body", 170, 10),
	}}

	merged := NewAnalyzer().AnalyzeLines(lines)
	plain := NewAnalyzerWithConfig(config).AnalyzeLines(lines)

	wantMerged := []classified{
		{model.CategoryHeading, "Big Title", 0},
		{model.CategoryParagraph, "body", 0},
		{model.CategoryParagraph, "body", 0},
	}
	wantPlain := []classified{
		{model.CategoryHeading, "Big", 0},
		{model.CategoryHeading, "Title", 0},
		{model.CategoryParagraph, "body", 0},
		{model.CategoryParagraph, "body", 0},
	}
	if diff := cmp.Diff(wantMerged, summarize(merged.Lines)); diff != "" {
		t.Errorf("merged mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantPlain, summarize(plain.Lines)); diff != "" {
		t.Errorf("plain mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzer_CustomRules(t *testing.T) {
	config := DefaultAnalyzerConfig()
	config.Rules = []Rule{PrefixRule("note", model.CategoryNote, "remark")}

	result := NewAnalyzerWithConfig(config).AnalyzeLines([][]Line{{
		makeLine("Remark 1", 100, 12),
		makeLine("Teorema", 120, 12),
	}})
	want := []classified{
		{model.CategoryNote, "Remark 1", 0},
		{model.CategoryParagraph, "Teorema", 0},
	}
	if diff := cmp.Diff(want, summarize(result.Lines)); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}
