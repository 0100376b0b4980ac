package layout

// ThresholdConfig holds configuration for the global heading threshold
type ThresholdConfig struct {
	// Ratio multiplies the mean line font size (default: 1.2)
	Ratio float64

	// FallbackFontSize replaces the mean when there are too few lines to
	// measure body text (default: 12.0)
	FallbackFontSize float64

	// MinLines is the minimum number of lines needed to trust the mean.
	// With a single line the mean is the line itself and nothing could ever
	// exceed it (default: 2)
	MinLines int
}

// DefaultThresholdConfig returns the default threshold configuration
func DefaultThresholdConfig() ThresholdConfig {
	return ThresholdConfig{
		Ratio:            1.2,
		FallbackFontSize: 12.0,
		MinLines:         2,
	}
}

// Threshold is the document-wide font size above which a line is a heading
type Threshold struct {
	// Value is Ratio x BaseFontSize
	Value float64

	// BaseFontSize is the mean line font size, or the fallback
	BaseFontSize float64

	// LineCount is the number of lines that were measured
	LineCount int

	// Fallback is true when BaseFontSize is the configured fallback
	Fallback bool
}

// Exceeds reports whether size is above the threshold
func (t Threshold) Exceeds(size float64) bool {
	return size > t.Value
}

// GlobalThreshold computes the heading threshold over every line of a
// document. It must see all pages before any line is classified.
func GlobalThreshold(lines []Line, config ThresholdConfig) Threshold {
	t := Threshold{LineCount: len(lines)}

	minLines := config.MinLines
	if minLines < 1 {
		minLines = 1
	}

	if len(lines) < minLines {
		t.BaseFontSize = config.FallbackFontSize
		t.Fallback = true
	} else {
		total := 0.0
		for _, l := range lines {
			total += l.AverageFontSize
		}
		t.BaseFontSize = total / float64(len(lines))
	}

	t.Value = t.BaseFontSize * config.Ratio
	return t
}
