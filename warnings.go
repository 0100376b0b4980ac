package mathdoc

import (
	"fmt"
	"strings"
)

// WarningKind identifies the non-fatal condition behind a Warning.
type WarningKind int

const (
	// WarningMalformedFragment means a fragment had unusable geometry and
	// was left out.
	WarningMalformedFragment WarningKind = iota + 1

	// WarningEmptyDocument means no lines were produced at all.
	WarningEmptyDocument

	// WarningThresholdFallback means there were too few lines to measure
	// body text, so the heading threshold uses the fallback font size.
	WarningThresholdFallback
)

func (k WarningKind) String() string {
	switch k {
	case WarningMalformedFragment:
		return "malformed fragment"
	case WarningEmptyDocument:
		return "empty document"
	case WarningThresholdFallback:
		return "threshold fallback"
	default:
		return "unknown"
	}
}

// Warning is a non-fatal condition met during extraction.
type Warning struct {
	Kind WarningKind

	// Page is the 1-based page the warning refers to, or 0 for the document
	Page int

	Message string
}

func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
