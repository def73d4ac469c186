package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBBoxEdges(t *testing.T) {
	b := NewBBox(10, 20, 100, 50)

	if b.Left() != 10 {
		t.Errorf("Left = %d, want 10", b.Left())
	}
	if b.Right() != 110 {
		t.Errorf("Right = %d, want 110", b.Right())
	}
	if b.Top() != 20 {
		t.Errorf("Top = %d, want 20", b.Top())
	}
	if b.Bottom() != 70 {
		t.Errorf("Bottom = %d, want 70", b.Bottom())
	}
	if b.CenterX() != 60 {
		t.Errorf("CenterX = %d, want 60", b.CenterX())
	}
	if b.CenterY() != 45 {
		t.Errorf("CenterY = %d, want 45", b.CenterY())
	}
}

func TestBBoxIsZero(t *testing.T) {
	if !(BBox{}).IsZero() {
		t.Error("zero-value BBox should report IsZero")
	}
	if (BBox{X: 1}).IsZero() {
		t.Error("non-zero BBox should not report IsZero")
	}
}

func TestBBoxJSONRoundTrip(t *testing.T) {
	b := NewBBox(3, 4, 5, 6)
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "[3,4,5,6]" {
		t.Errorf("marshal = %s, want [3,4,5,6]", data)
	}
	var got BBox
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != b {
		t.Errorf("round trip = %+v, want %+v", got, b)
	}
}

func TestBlockKindString(t *testing.T) {
	tests := []struct {
		kind BlockKind
		want string
	}{
		{KindParagraph, "paragraph"},
		{KindTable, "table"},
		{KindDiagramText, "diagram-text"},
		{KindUnknown, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("BlockKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestColumnTag(t *testing.T) {
	if ColumnLeft.Tag() != "[L]" {
		t.Errorf("left tag = %q", ColumnLeft.Tag())
	}
	if ColumnRight.Tag() != "[R]" {
		t.Errorf("right tag = %q", ColumnRight.Tag())
	}
}

func TestBlockJSONParagraph(t *testing.T) {
	b := Block{
		Kind:   KindParagraph,
		Column: ColumnLeft,
		BBox:   NewBBox(1, 2, 3, 4),
		Level:  0,
		Lines:  []string{"hello"},
	}
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	for _, want := range []string{`"kind":"paragraph"`, `"column":"left"`, `"bbox":[1,2,3,4]`, `"level":0`, `"lines":["hello"]`} {
		if !strings.Contains(s, want) {
			t.Errorf("JSON %s missing %s", s, want)
		}
	}
	if strings.Contains(s, `"rows"`) {
		t.Errorf("paragraph JSON should not contain rows: %s", s)
	}
}

func TestBlockJSONTable(t *testing.T) {
	b := Block{
		Kind:   KindTable,
		Column: ColumnRight,
		Rows:   []string{"a | b"},
	}
	data, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"rows":["a | b"]`) {
		t.Errorf("table JSON missing rows: %s", s)
	}
	if strings.Contains(s, `"level"`) || strings.Contains(s, `"lines"`) {
		t.Errorf("table JSON should not carry level/lines: %s", s)
	}
}

func TestBlockText(t *testing.T) {
	p := Block{Kind: KindParagraph, Lines: []string{"one", "two"}}
	if got := p.Text(); got != "one\ntwo" {
		t.Errorf("paragraph Text = %q", got)
	}
	tb := Block{Kind: KindTable, Rows: []string{"a | b"}}
	if got := tb.Text(); got != "a | b" {
		t.Errorf("table Text = %q", got)
	}
}

func TestSlideJSONNullables(t *testing.T) {
	s := Slide{Index: 2}
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	str := string(data)
	for _, want := range []string{`"index":2`, `"title":null`, `"notes":null`, `"blocks":[]`} {
		if !strings.Contains(str, want) {
			t.Errorf("JSON %s missing %s", str, want)
		}
	}

	s.Title = "Experience"
	data, _ = json.Marshal(s)
	if !strings.Contains(string(data), `"title":"Experience"`) {
		t.Errorf("titled slide JSON = %s", data)
	}
}

func TestHintsEmpty(t *testing.T) {
	var h Hints
	if !h.Empty() {
		t.Error("zero Hints should be empty")
	}
	h.Emails = []string{"a@b.co"}
	if h.Empty() {
		t.Error("Hints with an email should not be empty")
	}
}
