package pptx

import (
	"fmt"
	"strconv"

	"github.com/deckraw/deckraw/model"
)

// Slide is the extracted content of one slide part: its text-bearing shapes
// in document order, optional speaker notes, and any per-shape diagnostics
// recorded while walking.
type Slide struct {
	Index       int
	Shapes      []ShapeText
	Notes       string
	Diagnostics []string
}

// ShapeText is the text yield of a single visited shape, with its resolved
// absolute geometry. It is the raw material for title detection, column
// classification and block assembly.
type ShapeText struct {
	Kind model.BlockKind
	// Placeholder is the shape's placeholder type attribute ("title",
	// "ctrTitle", "body", "ftr", ...), empty for non-placeholder shapes.
	Placeholder string
	// MaxFontSize is the largest run font size in points found anywhere in
	// the shape, 0 when no run declares one.
	MaxFontSize float64
	// HasGeometry reports whether an absolute offset could be resolved.
	// Geometry-less shapes keep a zero BBox.
	HasGeometry bool
	BBox        model.BBox
	// Lines holds leveled text for paragraph and diagram shapes.
	Lines []Line
	// Rows holds pipe-joined row text for table shapes.
	Rows []string
}

// Line is one extracted text line with its indent level.
type Line struct {
	Level int
	Text  string
}

// IsTitlePlaceholder reports whether the shape is an explicit title or
// center-title placeholder.
func (s ShapeText) IsTitlePlaceholder() bool {
	return s.Placeholder == "title" || s.Placeholder == "ctrTitle"
}

// isFooterPlaceholder matches footer, date and slide-number placeholders.
func isFooterPlaceholder(ph string) bool {
	return ph == "ftr" || ph == "dt" || ph == "sldNum"
}

// walker performs the depth-first shape traversal, threading the accumulated
// group offset down the recursion as explicit parameters so traversal stays
// reentrant.
type walker struct {
	opts    Options
	diagram func(relID string) ([]string, bool)
	out     []ShapeText
	diags   []string
}

func (w *walker) walk(nodes []shapeNodeXML, ancestor Offset, hasAncestor bool, depth int) error {
	if depth > w.opts.MaxGroupDepth {
		return ErrRecursionLimit
	}
	for i := range nodes {
		n := &nodes[i]
		switch n.Kind {
		case shapeText:
			w.visitShape(n.Sp, ancestor, hasAncestor)
		case shapeGroup:
			local, _ := w.parseOffset(n.Group.GrpSpPr.Xfrm)
			groupOff, groupHas := ComposeOffset(ancestor, hasAncestor, local)
			if err := w.walk(n.Group.Nodes, groupOff, groupHas, depth+1); err != nil {
				return err
			}
		case shapeFrame:
			w.visitFrame(n.Frame, ancestor, hasAncestor)
		case shapeOther:
			// Pictures, charts, connectors: benign, skipped without note.
		}
	}
	return nil
}

// visitShape extracts paragraphs from a plain shape, emitting at most one
// ShapeText when non-empty text remains.
func (w *walker) visitShape(sp *spXML, ancestor Offset, hasAncestor bool) {
	ph := placeholderType(sp)
	if w.opts.ExcludeFooters && isFooterPlaceholder(ph) {
		return
	}
	if sp.TxBody == nil {
		return
	}
	lines, maxSize := paragraphLines(sp.TxBody)
	if len(lines) == 0 {
		return
	}
	bbox, hasGeom := w.resolveBBox(sp.SpPr.Xfrm, ancestor, hasAncestor)
	w.out = append(w.out, ShapeText{
		Kind:        model.KindParagraph,
		Placeholder: ph,
		MaxFontSize: maxSize,
		HasGeometry: hasGeom,
		BBox:        bbox,
		Lines:       lines,
	})
}

// visitFrame handles graphic frames: a table yields rows, a diagram yields
// level-1 label lines, anything else is skipped without a diagnostic.
func (w *walker) visitFrame(frame *graphicFrameXML, ancestor Offset, hasAncestor bool) {
	bbox, hasGeom := w.resolveBBox(frame.Xfrm, ancestor, hasAncestor)

	if tbl := frame.Graphic.Data.Tbl; tbl != nil {
		rows := tableRows(tbl)
		if len(rows) == 0 {
			return
		}
		w.out = append(w.out, ShapeText{
			Kind:        model.KindTable,
			HasGeometry: hasGeom,
			BBox:        bbox,
			Rows:        rows,
		})
		return
	}

	runs := w.diagramRuns(&frame.Graphic.Data)
	if len(runs) == 0 {
		return
	}
	lines := make([]Line, 0, len(runs))
	for _, r := range runs {
		lines = append(lines, Line{Level: 1, Text: r})
	}
	w.out = append(w.out, ShapeText{
		Kind:        model.KindDiagramText,
		HasGeometry: hasGeom,
		BBox:        bbox,
		Lines:       lines,
	})
}

// diagramRuns resolves a diagram's text: first through its data-part
// relationship, then by scanning any inline graphic data subtree.
func (w *walker) diagramRuns(data *graphicDataXML) []string {
	if data.RelIDs != nil && data.RelIDs.DM != "" && w.diagram != nil {
		if runs, ok := w.diagram(data.RelIDs.DM); ok {
			return runs
		}
		w.diags = append(w.diags, fmt.Sprintf("diagram data part %s unresolved", data.RelIDs.DM))
	}
	if len(data.Inner) > 0 {
		return scanTextRuns(data.Inner)
	}
	return nil
}

// resolveBBox composes the shape's local transform with the accumulated
// ancestor offset and converts to pixel space.
func (w *walker) resolveBBox(xfrm *xfrmXML, ancestor Offset, hasAncestor bool) (model.BBox, bool) {
	local, _ := w.parseOffset(xfrm)
	off, ok := ComposeOffset(ancestor, hasAncestor, local)
	if !ok {
		return model.BBox{}, false
	}
	var cx, cy int64
	if xfrm != nil && xfrm.Ext != nil {
		cx = w.parseLength(xfrm.Ext.CX)
		cy = w.parseLength(xfrm.Ext.CY)
	}
	return model.BBox{
		X:      ToPixels(off.X),
		Y:      ToPixels(off.Y),
		Width:  ToPixels(cx),
		Height: ToPixels(cy),
	}, true
}

// parseOffset reads a transform's offset, returning nil when the transform
// is absent and recording a diagnostic when it is present but corrupt.
func (w *walker) parseOffset(xfrm *xfrmXML) (*Offset, bool) {
	if xfrm == nil || xfrm.Off == nil {
		return nil, false
	}
	x, errX := strconv.ParseInt(xfrm.Off.X, 10, 64)
	y, errY := strconv.ParseInt(xfrm.Off.Y, 10, 64)
	if errX != nil || errY != nil {
		w.diags = append(w.diags, fmt.Sprintf("unparseable offset (%q,%q), shape treated as geometry-less", xfrm.Off.X, xfrm.Off.Y))
		return nil, false
	}
	return &Offset{X: x, Y: y}, true
}

func (w *walker) parseLength(s string) int64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func placeholderType(sp *spXML) string {
	if sp.NvSpPr == nil || sp.NvSpPr.NvPr.Ph == nil {
		return ""
	}
	return sp.NvSpPr.NvPr.Ph.Type
}
