package layout

import "github.com/deckraw/deckraw/model"

// ColumnConfig holds configuration for column classification.
type ColumnConfig struct {
	// SplitRatio is the slide-width fraction dividing left from right.
	// A block whose horizontal center is at or left of
	// SplitRatio*slideWidth is classified left. The 0.45 default is an
	// empirically tuned constant for two-column resume-style layouts.
	SplitRatio float64
}

// DefaultColumnConfig returns the default classification configuration.
func DefaultColumnConfig() ColumnConfig {
	return ColumnConfig{SplitRatio: 0.45}
}

// ColumnClassifier buckets blocks into a two-column reading model using a
// slide-width-relative threshold.
type ColumnClassifier struct {
	config ColumnConfig
}

// NewColumnClassifier creates a classifier with default configuration.
func NewColumnClassifier() *ColumnClassifier {
	return &ColumnClassifier{config: DefaultColumnConfig()}
}

// NewColumnClassifierWithConfig creates a classifier with custom configuration.
func NewColumnClassifierWithConfig(config ColumnConfig) *ColumnClassifier {
	return &ColumnClassifier{config: config}
}

// Classify assigns a column from a block's horizontal center and the slide
// width. It is a pure function; classification happens once per block at
// creation time and is never re-evaluated.
func (c *ColumnClassifier) Classify(centerX, slideWidth int) model.Column {
	if slideWidth <= 0 {
		return model.ColumnRight
	}
	if float64(centerX) <= c.config.SplitRatio*float64(slideWidth) {
		return model.ColumnLeft
	}
	return model.ColumnRight
}
