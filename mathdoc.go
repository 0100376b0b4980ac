// Package mathdoc reconstructs semantically tagged documents (headings,
// definitions, theorems, proofs, exercises, formulas) from the positioned
// text of PDF files and scanned page images.
//
// Basic usage:
//
//	doc, warnings, err := mathdoc.Open("apuntes.pdf").Document()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", mathdoc.FormatWarnings(warnings))
//	}
//
// Straight to HTML:
//
//	_, err := mathdoc.Open("apuntes.pdf").
//	    Language("es").
//	    Date("octubre 19, 2026").
//	    WriteHTML("apuntes.html")
//
// For advanced use cases, the reader, layout and render packages are also
// available.
package mathdoc

import (
	"github.com/tsawler/mathdoc/reader"
)

// Open opens a PDF or image file and returns an Extractor for fluent
// configuration. The file is opened lazily by the first operation and
// closed by terminal operations such as Document().
//
// Example:
//
//	doc, warnings, err := mathdoc.Open("document.pdf").Document()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromSource creates an Extractor from an already-opened reader.Source.
// This is useful for in-memory pages or custom decoders.
// Note: The caller is responsible for closing the source.
//
// Example:
//
//	src := reader.NewStatic(pages...)
//	defer src.Close()
//	doc, warnings, err := mathdoc.FromSource(src).Title("Notas").Document()
func FromSource(src reader.Source) *Extractor {
	return &Extractor{
		source:       src,
		ownsSource:   false,
		sourceOpened: true,
		options:      defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := mathdoc.Must(mathdoc.Open("document.pdf").PageCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a call to Document() or Lines() and
// panics if the error is non-nil. It discards warnings and returns just the
// value.
//
// Example:
//
//	doc := mathdoc.MustResult(mathdoc.Open("document.pdf").Document())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
