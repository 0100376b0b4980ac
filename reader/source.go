package reader

import (
	"errors"
	"fmt"

	"github.com/tsawler/mathdoc/text"
)

// Default page size (US Letter, in points) used when a source cannot
// determine the real one
const (
	DefaultPageWidth  = 612.0
	DefaultPageHeight = 792.0
)

// ErrPageOutOfRange is returned when a page index does not exist
var ErrPageOutOfRange = errors.New("page out of range")

// Page is one decoded page: its size and its fragments in decoder order
type Page struct {
	Index     int
	Width     float64
	Height    float64
	Fragments []text.TextFragment
}

// Source decodes a page-based document into positioned text fragments.
// Pages are addressed by 0-based index.
type Source interface {
	// PageCount returns the number of pages
	PageCount() int

	// ExtractFragments decodes one page
	ExtractFragments(pageIndex int) (Page, error)

	// Close releases the underlying document
	Close() error
}

// Static is a Source over pages that are already in memory
type Static struct {
	pages []Page
}

// Ensure Static implements Source
var _ Source = (*Static)(nil)

// NewStatic creates a Static source. Page indices are renumbered to match
// their position.
func NewStatic(pages ...Page) *Static {
	s := &Static{pages: make([]Page, len(pages))}
	for i, p := range pages {
		p.Index = i
		s.pages[i] = p
	}
	return s
}

// PageCount returns the number of pages
func (s *Static) PageCount() int {
	return len(s.pages)
}

// ExtractFragments returns a copy of the page. Fragment page dimensions are
// filled in from the page when missing.
func (s *Static) ExtractFragments(pageIndex int) (Page, error) {
	if pageIndex < 0 || pageIndex >= len(s.pages) {
		return Page{}, fmt.Errorf("%w: %d (0-%d)", ErrPageOutOfRange, pageIndex, len(s.pages)-1)
	}
	p := s.pages[pageIndex]
	out := Page{
		Index:     p.Index,
		Width:     p.Width,
		Height:    p.Height,
		Fragments: make([]text.TextFragment, len(p.Fragments)),
	}
	copy(out.Fragments, p.Fragments)
	stampPageSize(out.Fragments, out.Width, out.Height)
	return out, nil
}

// Close is a no-op
func (s *Static) Close() error {
	return nil
}

// stampPageSize fills in missing fragment page dimensions
func stampPageSize(fragments []text.TextFragment, width, height float64) {
	for i := range fragments {
		if fragments[i].PageWidth == 0 {
			fragments[i].PageWidth = width
		}
		if fragments[i].PageHeight == 0 {
			fragments[i].PageHeight = height
		}
	}
}
