package reader

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/mathdoc/internal/pdftest"
)

func TestOpenPDF_Missing(t *testing.T) {
	if _, err := OpenPDF("does-not-exist.pdf"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPDF_ExtractFragments(t *testing.T) {
	path := pdftest.WriteFile(t, "notes.pdf", "Apuntes",
		pdftest.Page{Lines: []pdftest.Line{
			{Text: "Heading", X: 72, Y: 700, Size: 24},
			{Text: "Body text", X: 72, Y: 650, Size: 12},
		}},
		pdftest.Page{Lines: []pdftest.Line{
			{Text: "Second", X: 72, Y: 700, Size: 12},
		}},
	)

	src, err := OpenPDF(path)
	if err != nil {
		t.Fatalf("OpenPDF: %v", err)
	}
	defer src.Close()

	if got := src.PageCount(); got != 2 {
		t.Fatalf("PageCount() = %d, want 2", got)
	}
	if got := src.Title(); got != "Apuntes" {
		t.Errorf("Title() = %q, want %q", got, "Apuntes")
	}

	page, err := src.ExtractFragments(0)
	if err != nil {
		t.Fatalf("ExtractFragments(0): %v", err)
	}
	if page.Width != 612 || page.Height != 792 {
		t.Errorf("expected inherited 612x792 MediaBox, got %vx%v", page.Width, page.Height)
	}

	var heading, body strings.Builder
	var headingY, bodyY float64
	for _, f := range page.Fragments {
		if f.PageWidth != 612 || f.PageHeight != 792 {
			t.Fatalf("fragment missing page size: %+v", f)
		}
		switch f.FontSize {
		case 24:
			heading.WriteString(f.Text)
			headingY = f.Y
		case 12:
			body.WriteString(f.Text)
			bodyY = f.Y
		}
	}

	if heading.String() != "Heading" {
		t.Errorf("heading glyphs = %q", heading.String())
	}
	if body.String() != "Body text" {
		t.Errorf("body glyphs = %q", body.String())
	}
	if math.Abs(headingY-92) > 0.01 || math.Abs(bodyY-142) > 0.01 {
		t.Errorf("expected top-down Y 92 and 142, got %v and %v", headingY, bodyY)
	}
	if headingY >= bodyY {
		t.Error("heading should be above body in top-down coordinates")
	}

	if _, err := src.ExtractFragments(2); !errors.Is(err, ErrPageOutOfRange) {
		t.Errorf("expected ErrPageOutOfRange, got %v", err)
	}
}

func TestPDF_CloseTwice(t *testing.T) {
	path := pdftest.WriteFile(t, "one.pdf", "", pdftest.Page{})
	src, err := OpenPDF(path)
	if err != nil {
		t.Fatalf("OpenPDF: %v", err)
	}
	if err := src.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := src.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if src.PageCount() != 0 {
		t.Error("closed source should report no pages")
	}
	if _, err := src.ExtractFragments(0); err == nil {
		t.Error("expected error from closed source")
	}
}

// redirectObject points the xref entry of object obj at the offset recorded
// for object target, so resolving obj finds the wrong object
func redirectObject(t *testing.T, data []byte, obj, target int) []byte {
	t.Helper()
	start := bytes.Index(data, []byte("\nxref\n"))
	if start < 0 {
		t.Fatal("xref table not found")
	}
	start += len("\nxref\n")
	start += bytes.IndexByte(data[start:], '\n') + 1

	const entryLen = 20
	out := bytes.Clone(data)
	src := out[start+target*entryLen : start+target*entryLen+10]
	copy(out[start+obj*entryLen:], src)
	return out
}

func TestPDF_CorruptPageTree(t *testing.T) {
	// Object 5 is the first page; pointing it at the catalog makes the
	// decoder panic while walking the page tree
	data := pdftest.Build("", pdftest.Page{Lines: []pdftest.Line{
		{Text: "Hola", X: 72, Y: 700, Size: 12},
	}})
	path := filepath.Join(t.TempDir(), "corrupt.pdf")
	if err := os.WriteFile(path, redirectObject(t, data, 5, 1), 0o644); err != nil {
		t.Fatal(err)
	}

	src, err := OpenPDF(path)
	if err != nil {
		t.Fatalf("OpenPDF: %v", err)
	}
	defer src.Close()

	page, err := src.ExtractFragments(0)
	if err == nil {
		t.Fatal("expected error for corrupt page tree")
	}
	if len(page.Fragments) != 0 {
		t.Errorf("expected no fragments, got %d", len(page.Fragments))
	}
}

func TestPDF_LeftBleed(t *testing.T) {
	path := pdftest.WriteFile(t, "bleed.pdf", "", pdftest.Page{Lines: []pdftest.Line{
		{Text: "A", X: -4, Y: 700, Size: 12},
		{Text: "B", X: -50, Y: 650, Size: 12},
	}})

	src, err := OpenPDF(path)
	if err != nil {
		t.Fatalf("OpenPDF: %v", err)
	}
	defer src.Close()

	page, err := src.ExtractFragments(0)
	if err != nil {
		t.Fatalf("ExtractFragments(0): %v", err)
	}
	xs := map[string]float64{}
	for _, f := range page.Fragments {
		xs[f.Text] = f.X
	}
	if got, ok := xs["A"]; !ok || got != 0 {
		t.Errorf("expected A clamped to X 0, got %v (found %v)", got, ok)
	}
	if got, ok := xs["B"]; !ok || math.Abs(got+50) > 0.01 {
		t.Errorf("expected B left at X -50, got %v (found %v)", got, ok)
	}
}
