package reader

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/mathdoc/text"
)

// PDF is a Source backed by github.com/ledongthuc/pdf
type PDF struct {
	file   *os.File
	reader *pdf.Reader
}

// Ensure PDF implements Source
var _ Source = (*PDF)(nil)

// maxBleed is how far left of the MediaBox, in points, a glyph may start
// and still be placed on the page
const maxBleed = 9.0

// OpenPDF opens a PDF file for fragment extraction
func OpenPDF(filename string) (*PDF, error) {
	f, r, err := pdf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", filename, err)
	}
	return &PDF{file: f, reader: r}, nil
}

// Close closes the underlying file. It is safe to call Close multiple times.
func (p *PDF) Close() error {
	if p.file == nil {
		return nil
	}
	err := p.file.Close()
	p.file = nil
	p.reader = nil
	return err
}

// PageCount returns the number of pages
func (p *PDF) PageCount() int {
	if p.reader == nil {
		return 0
	}
	return p.reader.NumPage()
}

// Title returns the document information title, if any
func (p *PDF) Title() string {
	if p.reader == nil {
		return ""
	}
	info := p.reader.Trailer().Key("Info")
	if info.IsNull() {
		return ""
	}
	return strings.TrimSpace(info.Key("Title").Text())
}

// ExtractFragments decodes the glyphs of one page. Y is converted from PDF
// user space (origin bottom-left) to top-down page coordinates relative to
// the MediaBox.
func (p *PDF) ExtractFragments(pageIndex int) (page Page, err error) {
	if p.reader == nil {
		return Page{}, fmt.Errorf("pdf is closed")
	}

	// The decoder panics on corrupt objects, both while walking the page
	// tree and while decoding content streams
	defer func() {
		if r := recover(); r != nil {
			page = Page{}
			err = fmt.Errorf("page %d: decode: %v", pageIndex+1, r)
		}
	}()

	if pageIndex < 0 || pageIndex >= p.reader.NumPage() {
		return Page{}, fmt.Errorf("%w: %d (0-%d)", ErrPageOutOfRange, pageIndex, p.reader.NumPage()-1)
	}

	pdfPage := p.reader.Page(pageIndex + 1)
	if pdfPage.V.IsNull() {
		return Page{}, fmt.Errorf("page %d: missing page object", pageIndex+1)
	}

	box := mediaBox(pdfPage)
	page = Page{
		Index:  pageIndex,
		Width:  box.urx - box.llx,
		Height: box.ury - box.lly,
	}

	content := pdfPage.Content()
	page.Fragments = make([]text.TextFragment, 0, len(content.Text))
	for _, t := range content.Text {
		if t.S == "" || t.S == "\n" {
			continue
		}
		page.Fragments = append(page.Fragments, text.TextFragment{
			Text:       t.S,
			X:          clampOffset(t.X - box.llx),
			Y:          box.ury - t.Y,
			Width:      t.W,
			Height:     t.FontSize,
			FontName:   t.Font,
			FontSize:   t.FontSize,
			PageWidth:  page.Width,
			PageHeight: page.Height,
		})
	}
	return page, nil
}

// clampOffset pulls glyphs that start slightly left of the MediaBox onto
// its edge. Larger offsets are left negative and rejected as malformed.
func clampOffset(x float64) float64 {
	if x < 0 && x >= -maxBleed {
		return 0
	}
	return x
}

type rect struct {
	llx, lly, urx, ury float64
}

// mediaBox returns the page MediaBox, walking up the page tree for an
// inherited one, or US Letter when none is usable
func mediaBox(page pdf.Page) rect {
	fallback := rect{0, 0, DefaultPageWidth, DefaultPageHeight}

	node := page.V
	for depth := 0; depth < 32 && !node.IsNull(); depth++ {
		box := node.Key("MediaBox")
		if !box.IsNull() {
			if r, ok := parseRect(box); ok {
				return r
			}
			return fallback
		}
		node = node.Key("Parent")
	}
	return fallback
}

func parseRect(v pdf.Value) (rect, bool) {
	if v.Kind() != pdf.Array || v.Len() != 4 {
		return rect{}, false
	}
	var n [4]float64
	for i := 0; i < 4; i++ {
		item := v.Index(i)
		switch item.Kind() {
		case pdf.Integer, pdf.Real:
			n[i] = item.Float64()
		default:
			return rect{}, false
		}
	}
	r := rect{
		llx: min(n[0], n[2]),
		lly: min(n[1], n[3]),
		urx: max(n[0], n[2]),
		ury: max(n[1], n[3]),
	}
	if r.urx-r.llx <= 0 || r.ury-r.lly <= 0 {
		return rect{}, false
	}
	return r, true
}
