package deckraw

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/deckraw/deckraw/format"
	"github.com/deckraw/deckraw/hints"
	"github.com/deckraw/deckraw/layout"
	"github.com/deckraw/deckraw/model"
	"github.com/deckraw/deckraw/pptx"
)

// Extractor provides a fluent interface for extracting presentation
// content. Each configuration method returns a new Extractor instance,
// making chains safe to share and reuse.
type Extractor struct {
	// Source: exactly one of filename/data is used.
	filename string
	data     []byte

	// Configuration.
	options ExtractOptions
}

// clone creates a copy of the Extractor with a deep copy of options, so
// each chain method returns an independent instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		data:     e.data,
		options:  e.options.clone(),
	}
}

// ============================================================================
// Configuration methods (each returns a new Extractor instance)
// ============================================================================

// Slides restricts extraction to the given slide numbers (1-indexed).
// Multiple calls are cumulative. Slides keep their original indices in the
// output.
func (e *Extractor) Slides(nums ...int) *Extractor {
	newExt := e.clone()
	newExt.options.slides = append(newExt.options.slides, nums...)
	return newExt
}

// ColumnSplit overrides the left/right split threshold as a fraction of
// slide width. The default is DefaultColumnSplit.
func (e *Extractor) ColumnSplit(ratio float64) *Extractor {
	newExt := e.clone()
	newExt.options.columnSplit = ratio
	return newExt
}

// TitleLimit overrides the rune bound applied to font-size-heuristic
// titles. The default is DefaultTitleLimit.
func (e *Extractor) TitleLimit(n int) *Extractor {
	newExt := e.clone()
	newExt.options.titleLimit = n
	return newExt
}

// GroupDepth overrides the maximum group nesting depth. Slides nested
// deeper fail closed and degrade to empty placeholders.
func (e *Extractor) GroupDepth(n int) *Extractor {
	newExt := e.clone()
	newExt.options.maxGroupDepth = n
	return newExt
}

// ExcludeNotes drops speaker notes from slides and raw text.
func (e *Extractor) ExcludeNotes() *Extractor {
	newExt := e.clone()
	newExt.options.excludeNotes = true
	return newExt
}

// ExcludeFooters skips footer, date and slide-number placeholder shapes.
func (e *Extractor) ExcludeFooters() *Extractor {
	newExt := e.clone()
	newExt.options.excludeFooters = true
	return newExt
}

// Concurrency sets the number of slides parsed in parallel. Slide order in
// the output is unaffected; results are collected into index-keyed slots.
func (e *Extractor) Concurrency(n int) *Extractor {
	newExt := e.clone()
	newExt.options.concurrency = n
	return newExt
}

// ============================================================================
// Terminal operations
// ============================================================================

// Extraction runs the full pipeline and returns the structured result:
// ordered slides, whole-document raw text, and scanned hints.
func (e *Extractor) Extraction() (*model.RawExtraction, []Warning, error) {
	pkg, err := e.open()
	if err != nil {
		return nil, nil, err
	}

	nums := e.slideNumbers(pkg)
	slides := make([]model.Slide, len(nums))
	slideWarnings := make([][]Warning, len(nums))

	workers := e.options.concurrency
	if workers < 2 || len(nums) < 2 {
		for i, n := range nums {
			slides[i], slideWarnings[i] = e.extractSlide(pkg, n)
		}
	} else {
		if workers > len(nums) {
			workers = len(nums)
		}
		var wg sync.WaitGroup
		indices := make(chan int)
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range indices {
					slides[i], slideWarnings[i] = e.extractSlide(pkg, nums[i])
				}
			}()
		}
		for i := range nums {
			indices <- i
		}
		close(indices)
		wg.Wait()
	}

	var warnings []Warning
	for _, ws := range slideWarnings {
		warnings = append(warnings, ws...)
	}

	rawText := layout.LinearizeDocument(slides)
	return &model.RawExtraction{
		Slides:      slides,
		RawText:     rawText,
		Hints:       hints.Scan(rawText),
		SlideWidth:  pkg.SlideWidth(),
		SlideHeight: pkg.SlideHeight(),
	}, warnings, nil
}

// RawText runs the pipeline and returns only the column-tagged linear text.
func (e *Extractor) RawText() (string, []Warning, error) {
	result, warnings, err := e.Extraction()
	if err != nil {
		return "", warnings, err
	}
	return result.RawText, warnings, nil
}

// Hints runs the pipeline and returns only the scanned contact hints.
func (e *Extractor) Hints() (model.Hints, []Warning, error) {
	result, warnings, err := e.Extraction()
	if err != nil {
		return model.Hints{}, warnings, err
	}
	return result.Hints, warnings, nil
}

// SlideCount opens the package and returns the number of slide parts.
func (e *Extractor) SlideCount() (int, error) {
	pkg, err := e.open()
	if err != nil {
		return 0, err
	}
	return pkg.SlideCount(), nil
}

// ============================================================================
// Pipeline internals
// ============================================================================

// open loads and validates the input, returning the parsed package.
func (e *Extractor) open() (*pptx.Package, error) {
	data := e.data
	if data == nil {
		if e.filename == "" {
			return nil, fmt.Errorf("%w: no input specified", ErrInvalidPackage)
		}
		var err error
		data, err = os.ReadFile(e.filename)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPackage, err)
		}
	}
	if format.DetectFromBytes(data) != format.Presentation {
		return nil, fmt.Errorf("%w: not a presentation package", ErrInvalidPackage)
	}
	return pptx.NewPackage(data)
}

// slideNumbers resolves the slide selection against the package, keeping
// package order and dropping out-of-range requests.
func (e *Extractor) slideNumbers(pkg *pptx.Package) []int {
	if len(e.options.slides) == 0 {
		nums := make([]int, pkg.SlideCount())
		for i := range nums {
			nums[i] = i + 1
		}
		return nums
	}
	selected := make(map[int]bool, len(e.options.slides))
	for _, n := range e.options.slides {
		selected[n] = true
	}
	var nums []int
	for n := 1; n <= pkg.SlideCount(); n++ {
		if selected[n] {
			nums = append(nums, n)
		}
	}
	return nums
}

// extractSlide parses one slide and assembles its blocks, title and notes.
// Slide-level failures are converted into an empty placeholder slide so the
// caller's slide-index alignment is preserved.
func (e *Extractor) extractSlide(pkg *pptx.Package, n int) (model.Slide, []Warning) {
	part, err := pkg.Slide(n, pptx.Options{
		MaxGroupDepth:  e.options.maxGroupDepth,
		IncludeNotes:   !e.options.excludeNotes,
		ExcludeFooters: e.options.excludeFooters,
	})
	if err != nil {
		code := WarnMalformedSlide
		if errors.Is(err, pptx.ErrRecursionLimit) {
			code = WarnRecursionLimit
		}
		return model.Slide{Index: n}, []Warning{{Code: code, Slide: n, Message: err.Error()}}
	}

	var warnings []Warning
	for _, d := range part.Diagnostics {
		warnings = append(warnings, Warning{Code: WarnShapeSkipped, Slide: n, Message: d})
	}

	title, titleShape := e.detectTitle(part.Shapes)

	classifier := layout.NewColumnClassifierWithConfig(layout.ColumnConfig{
		SplitRatio: e.options.columnSplit,
	})

	var blocks []model.Block
	for i := range part.Shapes {
		if i == titleShape {
			// The explicit title placeholder is consumed by the title,
			// not repeated as body content.
			continue
		}
		blocks = append(blocks, buildBlock(&part.Shapes[i], classifier, pkg.SlideWidth()))
	}

	return model.Slide{
		Index:  n,
		Title:  title,
		Notes:  part.Notes,
		Blocks: layout.OrderBlocks(blocks),
	}, warnings
}

// detectTitle runs title detection over the slide's text shapes. The
// second return is the shape index to omit from the block list: the chosen
// placeholder shape, or -1 when no placeholder supplied the title (a
// heuristic title leaves its source block in place).
func (e *Extractor) detectTitle(shapes []pptx.ShapeText) (string, int) {
	var candidates []layout.TitleCandidate
	var shapeIdx []int
	for i := range shapes {
		s := &shapes[i]
		if s.Kind != model.KindParagraph || len(s.Lines) == 0 {
			continue
		}
		candidates = append(candidates, layout.TitleCandidate{
			IsPlaceholder: s.IsTitlePlaceholder(),
			MaxFontSize:   s.MaxFontSize,
			FirstLine:     s.Lines[0].Text,
		})
		shapeIdx = append(shapeIdx, i)
	}

	detector := layout.NewTitleDetectorWithConfig(layout.TitleConfig{
		MaxLength: e.options.titleLimit,
	})
	title, idx, ok := detector.Detect(candidates)
	if !ok {
		return "", -1
	}
	if candidates[idx].IsPlaceholder {
		return title, shapeIdx[idx]
	}
	return title, -1
}

// buildBlock converts a shape's text yield into an immutable content block,
// classifying its column once from the resolved geometry. Geometry-less
// shapes default to the right column so their content is never lost.
func buildBlock(s *pptx.ShapeText, classifier *layout.ColumnClassifier, slideWidth int) model.Block {
	column := model.ColumnRight
	if s.HasGeometry {
		column = classifier.Classify(s.BBox.CenterX(), slideWidth)
	}

	block := model.Block{
		Kind:   s.Kind,
		Column: column,
		BBox:   s.BBox,
	}
	if s.Kind == model.KindTable {
		block.Rows = s.Rows
		return block
	}

	level := 0
	lines := make([]string, len(s.Lines))
	for i, line := range s.Lines {
		lines[i] = line.Text
		if i == 0 || line.Level < level {
			level = line.Level
		}
	}
	block.Level = level
	block.Lines = lines
	return block
}
