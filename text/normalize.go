package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize trims s and converts it to Unicode NFC.
//
// Decoders frequently emit an accented letter as a base glyph followed by a
// combining mark in a separate fragment. Composing the assembled line makes
// "definición" compare equal to "definición".
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
