package layout

import (
	"strings"
	"testing"

	"github.com/deckraw/deckraw/model"
)

func paragraphAt(x, y int, column model.Column, lines ...string) model.Block {
	return model.Block{
		Kind:   model.KindParagraph,
		Column: column,
		BBox:   model.NewBBox(x, y, 100, 20),
		Lines:  lines,
	}
}

func TestOrderBlocks(t *testing.T) {
	blocks := []model.Block{
		paragraphAt(50, 300, model.ColumnLeft, "third"),
		paragraphAt(500, 100, model.ColumnRight, "second"),
		paragraphAt(50, 100, model.ColumnLeft, "first"),
	}
	sorted := OrderBlocks(blocks)
	want := []string{"first", "second", "third"}
	for i, w := range want {
		if sorted[i].Lines[0] != w {
			t.Errorf("position %d = %q, want %q", i, sorted[i].Lines[0], w)
		}
	}
	// The input slice is left untouched.
	if blocks[0].Lines[0] != "third" {
		t.Error("OrderBlocks must not mutate its input")
	}
}

func TestOrderBlocksStableOnTies(t *testing.T) {
	blocks := []model.Block{
		paragraphAt(50, 100, model.ColumnLeft, "doc-order-1"),
		paragraphAt(50, 100, model.ColumnLeft, "doc-order-2"),
	}
	sorted := OrderBlocks(blocks)
	if sorted[0].Lines[0] != "doc-order-1" || sorted[1].Lines[0] != "doc-order-2" {
		t.Errorf("tie break must keep document order, got %q then %q", sorted[0].Lines[0], sorted[1].Lines[0])
	}
}

func TestLinearizeSlideWithTitle(t *testing.T) {
	s := model.Slide{
		Index: 1,
		Title: "John Doe",
		Blocks: []model.Block{
			paragraphAt(50, 100, model.ColumnLeft, "john@example.com"),
			paragraphAt(500, 100, model.ColumnRight, "Led backend team"),
		},
	}
	got := LinearizeSlide(s)
	want := "[Slide 1] John Doe\n[L] john@example.com\n[R] Led backend team"
	if got != want {
		t.Errorf("LinearizeSlide = %q, want %q", got, want)
	}
}

func TestLinearizeSlideWithoutTitle(t *testing.T) {
	s := model.Slide{
		Index: 2,
		Blocks: []model.Block{
			{Kind: model.KindTable, Column: model.ColumnRight, Rows: []string{"Skill | Level", "Go | Expert"}},
		},
	}
	got := LinearizeSlide(s)
	// Table rows are emitted untagged, under a bare slide header.
	want := "[Slide 2]\nSkill | Level\nGo | Expert"
	if got != want {
		t.Errorf("LinearizeSlide = %q, want %q", got, want)
	}
}

func TestLinearizeSlideNotes(t *testing.T) {
	s := model.Slide{
		Index: 3,
		Notes: "line one\nline two",
	}
	got := LinearizeSlide(s)
	if !strings.HasSuffix(got, "Notes: line one line two") {
		t.Errorf("notes should flatten to one trailing line, got %q", got)
	}
}

func TestLinearizeDocument(t *testing.T) {
	slides := []model.Slide{
		{Index: 1, Title: "A"},
		{Index: 2},
	}
	got := LinearizeDocument(slides)
	want := "[Slide 1] A\n\n[Slide 2]"
	if got != want {
		t.Errorf("LinearizeDocument = %q, want %q", got, want)
	}
}

func TestLinearizeEmptySlideKeepsHeader(t *testing.T) {
	// A malformed-slide placeholder still appears in raw text, keeping
	// slide numbering aligned for readers.
	got := LinearizeSlide(model.Slide{Index: 5})
	if got != "[Slide 5]" {
		t.Errorf("empty slide = %q, want bare header", got)
	}
}
