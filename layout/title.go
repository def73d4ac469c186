package layout

import "strings"

// TitleCandidate describes one text shape considered for the slide title.
// Candidates are supplied in document order.
type TitleCandidate struct {
	// IsPlaceholder marks an explicit title or center-title placeholder.
	IsPlaceholder bool
	// MaxFontSize is the shape's largest run font size in points, 0 when
	// no run declares one.
	MaxFontSize float64
	// FirstLine is the shape's first text line.
	FirstLine string
}

// TitleConfig holds configuration for title detection.
type TitleConfig struct {
	// MaxLength bounds the title length in runes when the font-size
	// heuristic is used, so an entire paragraph cannot masquerade as a
	// title. Placeholder titles are not truncated.
	MaxLength int
}

// DefaultTitleConfig returns the default title detection configuration.
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{MaxLength: 80}
}

// TitleDetector chooses a slide title from an explicit title placeholder
// or, failing that, the text shape with the largest font size.
type TitleDetector struct {
	config TitleConfig
}

// NewTitleDetector creates a detector with default configuration.
func NewTitleDetector() *TitleDetector {
	return &TitleDetector{config: DefaultTitleConfig()}
}

// NewTitleDetectorWithConfig creates a detector with custom configuration.
func NewTitleDetectorWithConfig(config TitleConfig) *TitleDetector {
	return &TitleDetector{config: config}
}

// Detect returns the slide title and the index of the candidate that
// supplied it. A placeholder with non-empty text always wins; otherwise the
// single largest font size decides, with the result truncated to the
// configured bound. When nothing qualifies, ok is false and the slide has
// no title (explicit absence, not an empty string).
func (d *TitleDetector) Detect(candidates []TitleCandidate) (title string, index int, ok bool) {
	for i, c := range candidates {
		if c.IsPlaceholder && firstPhysicalLine(c.FirstLine) != "" {
			return firstPhysicalLine(c.FirstLine), i, true
		}
	}

	best := -1
	var bestSize float64
	for i, c := range candidates {
		if c.MaxFontSize > bestSize && firstPhysicalLine(c.FirstLine) != "" {
			best, bestSize = i, c.MaxFontSize
		}
	}
	if best < 0 {
		return "", -1, false
	}
	return truncateRunes(firstPhysicalLine(candidates[best].FirstLine), d.config.MaxLength), best, true
}

// firstPhysicalLine cuts a line at any embedded break and trims it.
func firstPhysicalLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
