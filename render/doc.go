// Package render serializes a reconstructed model.Document.
//
// [WriteHTML] produces a standalone HTML page: the document title as h1, the
// date, and one element per classified line. Headings become h2 with
// superscript spans mapped to sup; lexical blocks become div elements with a
// category class; everything else is a paragraph. [WriteOutline] produces a
// plain-text listing of categories and lines for terminals and diffs.
//
// The layout engine never emits markup. All escaping happens here, through
// golang.org/x/net/html.
package render
