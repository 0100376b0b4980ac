// Package text defines the positioned text fragment that every document
// source produces and the layout engine consumes.
//
// # Fragments
//
// A [TextFragment] is the smallest positioned unit of extracted text: a glyph
// or a short run, with its X/Y position, advance width, font size and the
// dimensions of the page it belongs to. Y grows downward.
//
// Fragments with unusable geometry are detected with [TextFragment.Validate]:
//
//	if err := frag.Validate(); errors.Is(err, text.ErrMalformedFragment) {
//	    // skip it
//	}
//
// # Normalization
//
// [Normalize] trims and NFC-composes assembled text so lexical matching is
// independent of how the decoder split accented glyphs.
package text
