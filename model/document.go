package model

// Document represents a reconstructed document ready for rendering
type Document struct {
	// Title and Date are pass-through values supplied by the caller
	Title string
	Date  string

	// Lines are the classified lines in page order, in source order within a page
	Lines []ClassifiedLine

	// Threshold is the global heading font-size threshold used
	Threshold float64

	// PageCount is the number of pages that were processed
	PageCount int
}

// NewDocument creates a new empty document
func NewDocument(title, date string) *Document {
	return &Document{
		Title: title,
		Date:  date,
		Lines: make([]ClassifiedLine, 0),
	}
}

// Add appends a classified line
func (d *Document) Add(line ClassifiedLine) {
	d.Lines = append(d.Lines, line)
}

// IsEmpty reports whether no lines were produced
func (d *Document) IsEmpty() bool {
	return d == nil || len(d.Lines) == 0
}

// LinesByCategory returns all lines with the given category
func (d *Document) LinesByCategory(c Category) []ClassifiedLine {
	if d == nil {
		return nil
	}
	var result []ClassifiedLine
	for _, l := range d.Lines {
		if l.Category == c {
			result = append(result, l)
		}
	}
	return result
}

// CountByCategory returns the number of lines per category
func (d *Document) CountByCategory() map[Category]int {
	counts := make(map[Category]int)
	if d == nil {
		return counts
	}
	for _, l := range d.Lines {
		counts[l.Category]++
	}
	return counts
}

// PageLines returns the lines that came from the given 0-based page
func (d *Document) PageLines(pageIndex int) []ClassifiedLine {
	if d == nil {
		return nil
	}
	var result []ClassifiedLine
	for _, l := range d.Lines {
		if l.PageIndex == pageIndex {
			result = append(result, l)
		}
	}
	return result
}
