package model

import (
	"bytes"
	"encoding/json"
)

// BlockKind identifies the type of content a Block carries.
type BlockKind int

const (
	KindUnknown BlockKind = iota
	// KindParagraph is a run of leveled text lines from a plain shape.
	KindParagraph
	// KindTable is tabular content rendered as pipe-joined row strings.
	KindTable
	// KindDiagramText is text recovered from an embedded diagram.
	KindDiagramText
)

// String returns the wire name of the block kind.
func (k BlockKind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindTable:
		return "table"
	case KindDiagramText:
		return "diagram-text"
	default:
		return "unknown"
	}
}

// Column identifies which side of the slide a block belongs to.
type Column int

const (
	// ColumnLeft holds blocks whose center falls at or left of the split threshold.
	ColumnLeft Column = iota
	// ColumnRight holds everything else, including geometry-less blocks.
	ColumnRight
)

// String returns the wire name of the column.
func (c Column) String() string {
	if c == ColumnLeft {
		return "left"
	}
	return "right"
}

// Tag returns the column prefix used in linearized raw text.
func (c Column) Tag() string {
	if c == ColumnLeft {
		return "[L]"
	}
	return "[R]"
}

// Block is one extracted, geometry-tagged unit of slide content. Blocks are
// immutable after creation and owned by the Slide that produced them.
type Block struct {
	Kind   BlockKind
	Column Column
	BBox   BBox
	// Level is the indent depth. It applies to paragraph and diagram-text
	// blocks; tables carry no level.
	Level int
	// Lines holds the text lines for paragraph and diagram-text blocks.
	Lines []string
	// Rows holds the pipe-joined row strings for table blocks.
	Rows []string
}

// MarshalJSON emits kind/column/bbox plus either lines (with level) or rows,
// matching the block's kind.
func (b Block) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"kind":`)
	writeJSON(&buf, b.Kind.String())
	buf.WriteString(`,"column":`)
	writeJSON(&buf, b.Column.String())
	buf.WriteString(`,"bbox":`)
	bb, err := b.BBox.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf.Write(bb)
	if b.Kind == KindTable {
		buf.WriteString(`,"rows":`)
		writeJSON(&buf, nonNil(b.Rows))
	} else {
		buf.WriteString(`,"level":`)
		writeJSON(&buf, b.Level)
		buf.WriteString(`,"lines":`)
		writeJSON(&buf, nonNil(b.Lines))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Text returns the block's content as a single string, one line per row
// or line, without column tags.
func (b Block) Text() string {
	src := b.Lines
	if b.Kind == KindTable {
		src = b.Rows
	}
	var buf bytes.Buffer
	for i, s := range src {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(s)
	}
	return buf.String()
}

func writeJSON(buf *bytes.Buffer, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		buf.WriteString("null")
		return
	}
	buf.Write(data)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
