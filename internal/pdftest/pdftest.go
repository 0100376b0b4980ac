// Package pdftest writes small single-font PDF files for tests.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Line is one run of text placed with a Td operator. X and Y are in PDF user
// space (origin bottom-left).
type Line struct {
	Text string
	X, Y float64
	Size float64
}

// Page is the content of one page
type Page struct {
	Lines []Line
}

// Build returns a PDF with one page per Page. Pages inherit a US Letter
// MediaBox from the page tree root. The font is Courier with explicit
// widths of 600 units per glyph.
func Build(title string, pages ...Page) []byte {
	// 1 catalog, 2 pages, 3 font, 4 info, then a page + content pair per page
	objs := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"", // filled in once page object numbers are known
		fontObject(),
		fmt.Sprintf("<< /Title (%s) >>", escape(title)),
	}

	kids := make([]string, 0, len(pages))
	for _, p := range pages {
		pageNum := len(objs) + 1
		contentNum := pageNum + 1
		kids = append(kids, fmt.Sprintf("%d 0 R", pageNum))

		content := contentStream(p.Lines)
		objs = append(objs,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", contentNum),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}
	objs[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d /MediaBox [0 0 612 792] >>",
		strings.Join(kids, " "), len(pages))

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objs)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R /Info 4 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(objs)+1, xref)
	return buf.Bytes()
}

// WriteFile builds a PDF into a temporary directory and returns its path
func WriteFile(t testing.TB, name, title string, pages ...Page) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, Build(title, pages...), 0o644); err != nil {
		t.Fatalf("write test pdf: %v", err)
	}
	return path
}

func fontObject() string {
	widths := strings.TrimSpace(strings.Repeat("600 ", 126-32+1))
	return "<< /Type /Font /Subtype /Type1 /BaseFont /Courier /FirstChar 32 /LastChar 126 /Widths [" + widths + "] >>"
}

func contentStream(lines []Line) string {
	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "BT /F1 %g Tf %g %g Td (%s) Tj ET", l.Size, l.X, l.Y, escape(l.Text))
	}
	return sb.String()
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
