package deckraw

// Tuning defaults. The column split and title bound are empirically tuned
// constants preserved from observed two-column resume decks; override them
// through the corresponding Extractor methods.
const (
	DefaultColumnSplit   = 0.45
	DefaultTitleLimit    = 80
	DefaultMaxGroupDepth = 32
)

// ExtractOptions holds configuration for presentation extraction.
type ExtractOptions struct {
	// Slide selection (1-indexed); nil means all slides.
	slides []int

	// Layout tuning.
	columnSplit float64
	titleLimit  int

	// Traversal guard.
	maxGroupDepth int

	// Content filtering.
	excludeNotes   bool
	excludeFooters bool

	// Per-slide parallelism; values below 2 mean sequential.
	concurrency int
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		slides:        nil,
		columnSplit:   DefaultColumnSplit,
		titleLimit:    DefaultTitleLimit,
		maxGroupDepth: DefaultMaxGroupDepth,
		concurrency:   1,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := o
	if o.slides != nil {
		newOpts.slides = make([]int, len(o.slides))
		copy(newOpts.slides, o.slides)
	}
	return newOpts
}
