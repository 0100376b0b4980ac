package layout

import (
	"math"
	"regexp"
	"strings"

	"github.com/tsawler/mathdoc/text"
)

// residualPageNumber matches a bare 1-3 digit numeral left over after the
// per-fragment filter, e.g. a page number split across two fragments.
var residualPageNumber = regexp.MustCompile(`^\d{1,3}$`)

// PageNumberConfig holds the geometric bounds used to recognise page numbers
type PageNumberConfig struct {
	// BottomRatio is the fraction of page height below which a fragment is in
	// the footer band (default: 0.9)
	BottomRatio float64

	// LeftMarginRatio and RightMarginRatio bound the side margins as fractions
	// of page width (defaults: 0.2 and 0.8)
	LeftMarginRatio  float64
	RightMarginRatio float64

	// CenterTolerance is the maximum horizontal distance from the page center
	// for a centered page number (default: 20 units)
	CenterTolerance float64
}

// DefaultPageNumberConfig returns the default page number bounds
func DefaultPageNumberConfig() PageNumberConfig {
	return PageNumberConfig{
		BottomRatio:      0.9,
		LeftMarginRatio:  0.2,
		RightMarginRatio: 0.8,
		CenterTolerance:  20.0,
	}
}

// IsPageNumber reports whether a fragment is a page number artifact: it sits
// in the footer band, its text is purely numeric, and it is near either side
// margin or the horizontal center. Page dimensions on the fragment take
// precedence over the ones passed in.
func (c PageNumberConfig) IsPageNumber(frag text.TextFragment, pageWidth, pageHeight float64) bool {
	if frag.PageWidth > 0 {
		pageWidth = frag.PageWidth
	}
	if frag.PageHeight > 0 {
		pageHeight = frag.PageHeight
	}
	if pageWidth <= 0 || pageHeight <= 0 {
		return false
	}

	if frag.Y <= pageHeight*c.BottomRatio {
		return false
	}
	if !frag.IsNumeric() {
		return false
	}

	nearLeft := frag.X < pageWidth*c.LeftMarginRatio
	nearRight := frag.X > pageWidth*c.RightMarginRatio
	centered := math.Abs(frag.X-pageWidth/2) <= c.CenterTolerance
	return nearLeft || nearRight || centered
}

// IsPageNumber applies the default page number bounds
func IsPageNumber(frag text.TextFragment, pageWidth, pageHeight float64) bool {
	return DefaultPageNumberConfig().IsPageNumber(frag, pageWidth, pageHeight)
}

// IsResidualPageNumber reports whether an assembled line is nothing but a
// 1-3 digit numeral.
func IsResidualPageNumber(lineText string) bool {
	return residualPageNumber.MatchString(strings.TrimSpace(lineText))
}
