// Package layout turns geometry-resolved slide content into a reading
// model: it classifies blocks into left/right columns, detects slide
// titles, sorts blocks into reading order, and linearizes slides into
// column-tagged raw text.
package layout
