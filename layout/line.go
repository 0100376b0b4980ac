package layout

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tsawler/mathdoc/text"
)

// FontMetric selects how a line's font size is derived from its fragments
type FontMetric int

const (
	// MeanFontSize averages fragment font sizes. A heading with a few small
	// glyphs (superscripts, symbols) is pulled towards body size.
	MeanFontSize FontMetric = iota

	// MaxFontSize uses the largest fragment font size. More lines qualify as
	// headings, including body lines holding one oversized symbol.
	MaxFontSize
)

// String returns a string representation of the metric
func (m FontMetric) String() string {
	switch m {
	case MeanFontSize:
		return "mean"
	case MaxFontSize:
		return "max"
	default:
		return "unknown"
	}
}

// ParseFontMetric parses "mean" or "max"
func ParseFontMetric(s string) (FontMetric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mean", "average", "avg":
		return MeanFontSize, nil
	case "max", "maximum":
		return MaxFontSize, nil
	default:
		return MeanFontSize, fmt.Errorf("unknown font metric %q (want mean or max)", s)
	}
}

// Line represents a single reconstructed line of text on a page
type Line struct {
	// Text is the assembled, trimmed, NFC-normalized text
	Text string

	// AverageFontSize is the line's font size per the configured FontMetric
	AverageFontSize float64

	// Y is the mean Y of the line's fragments (top-down)
	Y float64

	// PageIndex is the 0-based page the line belongs to
	PageIndex int

	// Index is the line's position among emitted lines on its page
	Index int

	// Fragments are the fragments of this line, sorted left to right
	Fragments []text.TextFragment
}

// HasLargerFont returns true if this line's font is larger than the given size
func (line *Line) HasLargerFont(size float64) bool {
	if line == nil {
		return false
	}
	return line.AverageFontSize > size
}

// IsEmpty returns true if the line has no text content
func (line *Line) IsEmpty() bool {
	if line == nil {
		return true
	}
	return strings.TrimSpace(line.Text) == ""
}

// LineConfig holds configuration for line assembly
type LineConfig struct {
	// VerticalTolerance is the maximum Y distance from the running baseline
	// for a fragment to join the current line (default: 5.0)
	VerticalTolerance float64

	// SpaceThreshold is the horizontal gap above which a space is inserted
	// between consecutive fragments (default: 3.0)
	SpaceThreshold float64

	// FontMetric selects mean or max fragment size (default: MeanFontSize)
	FontMetric FontMetric

	// SortByY stable-sorts fragments top to bottom before grouping. When
	// false, fragments are grouped in the order the source supplied them and
	// lines come out in that order (default: false)
	SortByY bool

	// DropNumericLines drops assembled lines that are a bare 1-3 digit
	// numeral (default: true)
	DropNumericLines bool

	// PageNumbers bounds the per-fragment page number filter
	PageNumbers PageNumberConfig
}

// DefaultLineConfig returns the default line assembly configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{
		VerticalTolerance: 5.0,
		SpaceThreshold:    3.0,
		FontMetric:        MeanFontSize,
		SortByY:           false,
		DropNumericLines:  true,
		PageNumbers:       DefaultPageNumberConfig(),
	}
}

// PageFragments holds the fragments of one page together with its size
type PageFragments struct {
	PageIndex  int
	PageWidth  float64
	PageHeight float64
	Fragments  []text.TextFragment
}

// MalformedFragment records a fragment excluded for unusable geometry
type MalformedFragment struct {
	PageIndex int
	Fragment  text.TextFragment
	Err       error
}

// PageLines is the eager result of assembling one page
type PageLines struct {
	PageIndex  int
	Lines      []Line
	Malformed  []MalformedFragment
	Suppressed []text.TextFragment
}

// LineAssembler groups the fragments of a page into lines
type LineAssembler struct {
	config LineConfig
}

// NewLineAssembler creates a line assembler with default configuration
func NewLineAssembler() *LineAssembler {
	return &LineAssembler{config: DefaultLineConfig()}
}

// NewLineAssemblerWithConfig creates a line assembler with custom configuration
func NewLineAssemblerWithConfig(config LineConfig) *LineAssembler {
	return &LineAssembler{config: config}
}

// Config returns the assembler configuration
func (a *LineAssembler) Config() LineConfig {
	return a.config
}

// Assemble collects every line of a page
func (a *LineAssembler) Assemble(page PageFragments) PageLines {
	scanner := a.Scan(page)
	result := PageLines{PageIndex: page.PageIndex}
	for scanner.Next() {
		result.Lines = append(result.Lines, scanner.Line())
	}
	result.Malformed = scanner.Malformed()
	result.Suppressed = scanner.Suppressed()
	return result
}

// Scan filters and groups the page's fragments and returns a scanner that
// builds lines one at a time. Grouping happens up front; text assembly and
// the final numeric filter run on each call to Next.
func (a *LineAssembler) Scan(page PageFragments) *LineScanner {
	s := &LineScanner{
		config:    a.config,
		pageIndex: page.PageIndex,
	}

	kept := make([]text.TextFragment, 0, len(page.Fragments))
	for _, frag := range page.Fragments {
		if err := frag.Validate(); err != nil {
			s.malformed = append(s.malformed, MalformedFragment{
				PageIndex: page.PageIndex,
				Fragment:  frag,
				Err:       err,
			})
			continue
		}
		if a.config.PageNumbers.IsPageNumber(frag, page.PageWidth, page.PageHeight) {
			s.suppressed = append(s.suppressed, frag)
			continue
		}
		kept = append(kept, frag)
	}

	if a.config.SortByY {
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].Y < kept[j].Y
		})
	}

	s.groups = groupByBaseline(kept, a.config.VerticalTolerance)
	return s
}

// groupByBaseline walks fragments in order and starts a new group whenever a
// fragment is more than tolerance away from the current group's baseline.
// The baseline is the Y of the group's first fragment and does not drift as
// fragments are attached.
func groupByBaseline(fragments []text.TextFragment, tolerance float64) [][]text.TextFragment {
	var groups [][]text.TextFragment
	var current []text.TextFragment
	var baseline float64
	hasBaseline := false

	for _, frag := range fragments {
		if !hasBaseline || absFloat64(frag.Y-baseline) > tolerance {
			if len(current) > 0 {
				groups = append(groups, current)
			}
			current = []text.TextFragment{frag}
			baseline = frag.Y
			hasBaseline = true
			continue
		}
		current = append(current, frag)
	}

	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// LineScanner yields the lines of one page. It is not restartable; once Next
// returns false the scanner holds no more groups.
type LineScanner struct {
	config    LineConfig
	pageIndex int

	groups  [][]text.TextFragment
	pos     int
	emitted int
	line    Line

	malformed  []MalformedFragment
	suppressed []text.TextFragment
}

// Next advances to the next non-empty line. It returns false when the page
// is exhausted.
func (s *LineScanner) Next() bool {
	for s.pos < len(s.groups) {
		group := s.groups[s.pos]
		s.pos++

		line := s.buildLine(group)
		if line.Text == "" {
			continue
		}
		if s.config.DropNumericLines && IsResidualPageNumber(line.Text) {
			s.suppressed = append(s.suppressed, line.Fragments...)
			continue
		}

		line.Index = s.emitted
		s.emitted++
		s.line = line
		return true
	}

	s.groups = nil
	s.line = Line{}
	return false
}

// Line returns the line produced by the last successful call to Next
func (s *LineScanner) Line() Line {
	return s.line
}

// Malformed returns the fragments excluded for unusable geometry
func (s *LineScanner) Malformed() []MalformedFragment {
	return s.malformed
}

// Suppressed returns the fragments removed as page numbers so far
func (s *LineScanner) Suppressed() []text.TextFragment {
	return s.suppressed
}

// buildLine sorts a group left to right and computes its text and metrics
func (s *LineScanner) buildLine(group []text.TextFragment) Line {
	fragments := make([]text.TextFragment, len(group))
	copy(fragments, group)
	sort.SliceStable(fragments, func(i, j int) bool {
		return fragments[i].X < fragments[j].X
	})

	line := Line{
		PageIndex: s.pageIndex,
		Fragments: fragments,
	}
	line.Text = text.Normalize(assembleText(fragments, s.config.SpaceThreshold))
	line.AverageFontSize = fontSize(fragments, s.config.FontMetric)

	totalY := 0.0
	for _, f := range fragments {
		totalY += f.Y
	}
	line.Y = totalY / float64(len(fragments))

	return line
}

// assembleText concatenates fragments, inserting one space wherever the gap
// between the end of one fragment and the start of the next exceeds threshold
func assembleText(fragments []text.TextFragment, threshold float64) string {
	var sb strings.Builder
	for i, frag := range fragments {
		if i > 0 {
			gap := frag.X - fragments[i-1].Right()
			if gap > threshold {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(frag.Text)
	}
	return sb.String()
}

// fontSize computes the line font size for the given metric
func fontSize(fragments []text.TextFragment, metric FontMetric) float64 {
	if len(fragments) == 0 {
		return 0
	}
	if metric == MaxFontSize {
		maxSize := fragments[0].FontSize
		for _, f := range fragments[1:] {
			if f.FontSize > maxSize {
				maxSize = f.FontSize
			}
		}
		return maxSize
	}

	total := 0.0
	for _, f := range fragments {
		total += f.FontSize
	}
	return total / float64(len(fragments))
}

func absFloat64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
