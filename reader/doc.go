// Package reader provides the document sources that feed the layout engine.
//
// A [Source] decodes a page-based document and yields, per page, the page
// size and its positioned text fragments:
//
//	src, err := reader.OpenPDF("notes.pdf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer src.Close()
//
//	for i := 0; i < src.PageCount(); i++ {
//	    page, err := src.ExtractFragments(i)
//	    ...
//	}
//
// [PDF] is backed by github.com/ledongthuc/pdf and converts coordinates to
// the top-down convention of the text package. [Static] serves pages that
// are already in memory.
package reader
