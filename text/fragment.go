package text

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrMalformedFragment is returned by Validate for fragments whose geometry
// cannot be placed on a page.
var ErrMalformedFragment = errors.New("malformed fragment")

// TextFragment represents a piece of extracted text with position.
//
// Coordinates use a top-down convention: Y grows towards the bottom of the
// page, so a smaller Y is visually higher. Sources that decode bottom-up
// coordinates convert before handing fragments out.
type TextFragment struct {
	Text     string
	X, Y     float64
	Width    float64
	Height   float64
	FontName string
	FontSize float64

	// PageWidth and PageHeight describe the page the fragment was found on.
	// Zero means unknown; consumers fall back to page-level dimensions.
	PageWidth  float64
	PageHeight float64
}

// Right returns the X coordinate where the fragment ends.
func (f TextFragment) Right() float64 {
	return f.X + f.Width
}

// Validate reports whether the fragment geometry is usable. Non-finite or
// negative position, width or font size yields an error wrapping
// ErrMalformedFragment.
func (f TextFragment) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"x", f.X},
		{"y", f.Y},
		{"width", f.Width},
		{"font size", f.FontSize},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrMalformedFragment, c.name)
		}
		if c.value < 0 {
			return fmt.Errorf("%w: %s is negative (%g)", ErrMalformedFragment, c.name, c.value)
		}
	}
	return nil
}

// IsNumeric returns true if the trimmed text is non-empty and made only of
// decimal digits.
func (f TextFragment) IsNumeric() bool {
	return IsDigits(strings.TrimSpace(f.Text))
}

// IsDigits returns true if s is non-empty and every rune is an ASCII digit,
// the same set the residual page number filter accepts.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
