package layout

import (
	"fmt"
	"sort"
	"strings"

	"github.com/deckraw/deckraw/model"
)

// OrderBlocks returns the blocks sorted into reading order: by top edge,
// then left edge, ascending. The sort is stable, so blocks with identical
// geometry keep their document order.
func OrderBlocks(blocks []model.Block) []model.Block {
	sorted := make([]model.Block, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BBox.Y != sorted[j].BBox.Y {
			return sorted[i].BBox.Y < sorted[j].BBox.Y
		}
		return sorted[i].BBox.X < sorted[j].BBox.X
	})
	return sorted
}

// LinearizeSlide renders one slide as column-tagged text. The first line is
// always the slide header ("[Slide N]", with the title appended when one
// exists). Paragraph and diagram lines carry a [L]/[R] tag; table rows are
// emitted untagged since their pipe-joined form is already structured.
// Notes become a single trailing "Notes:" line.
func LinearizeSlide(s model.Slide) string {
	var lines []string
	if s.HasTitle() {
		lines = append(lines, fmt.Sprintf("[Slide %d] %s", s.Index, s.Title))
	} else {
		lines = append(lines, fmt.Sprintf("[Slide %d]", s.Index))
	}

	for _, b := range s.Blocks {
		if b.Kind == model.KindTable {
			lines = append(lines, b.Rows...)
			continue
		}
		for _, line := range b.Lines {
			lines = append(lines, b.Column.Tag()+" "+line)
		}
	}

	if s.Notes != "" {
		lines = append(lines, "Notes: "+flattenLine(s.Notes))
	}
	return strings.Join(lines, "\n")
}

// LinearizeDocument concatenates the per-slide texts in slide order,
// separated by a blank line. This is the whole-document raw text handed to
// hint scanning and to downstream consumers.
func LinearizeDocument(slides []model.Slide) string {
	parts := make([]string, 0, len(slides))
	for _, s := range slides {
		parts = append(parts, LinearizeSlide(s))
	}
	return strings.Join(parts, "\n\n")
}

// flattenLine collapses embedded line breaks so notes stay on one line.
func flattenLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
