package deckraw

import (
	"fmt"
	"strings"
)

// WarningCode classifies non-fatal extraction problems.
type WarningCode int

const (
	// WarnMalformedSlide marks a slide whose XML could not be parsed; the
	// slide is kept as an empty placeholder to preserve index alignment.
	WarnMalformedSlide WarningCode = iota
	// WarnRecursionLimit marks a slide abandoned because its group nesting
	// exceeded the configured depth.
	WarnRecursionLimit
	// WarnShapeSkipped marks a single shape dropped because part of it
	// could not be parsed.
	WarnShapeSkipped
)

// String returns a short name for the warning code.
func (c WarningCode) String() string {
	switch c {
	case WarnMalformedSlide:
		return "malformed-slide"
	case WarnRecursionLimit:
		return "recursion-limit"
	case WarnShapeSkipped:
		return "shape-skipped"
	default:
		return "unknown"
	}
}

// Warning records a recoverable problem encountered during extraction.
// Warnings accompany results instead of failing the operation: the
// extractor trades precision for completeness.
type Warning struct {
	Code    WarningCode
	Slide   int // 1-based slide number, 0 when not slide-specific
	Message string
}

// String formats the warning for logging.
func (w Warning) String() string {
	if w.Slide > 0 {
		return fmt.Sprintf("[%s] slide %d: %s", w.Code, w.Slide, w.Message)
	}
	return fmt.Sprintf("[%s] %s", w.Code, w.Message)
}

// FormatWarnings joins warnings into a newline-separated string suitable
// for logging. Returns "" for an empty list.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}
