package pptx

import (
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// cellDelimiter joins non-empty cell texts into one table row string.
const cellDelimiter = " | "

// paragraphLines converts a text body into leveled lines. Each paragraph is
// one line; an explicit break element inserts a literal newline inside the
// paragraph's text rather than starting a new line. Paragraphs with empty
// trimmed text are dropped. The second return is the largest run font size
// (in points) seen anywhere in the body, 0 when none is declared.
func paragraphLines(body *txBodyXML) ([]Line, float64) {
	var lines []Line
	var maxSize float64
	for i := range body.Paragraphs {
		p := &body.Paragraphs[i]
		text, size := paragraphText(p)
		if size > maxSize {
			maxSize = size
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines = append(lines, Line{Level: paragraphLevel(p), Text: text})
	}
	return lines, maxSize
}

// paragraphText concatenates a paragraph's runs and fields in document
// order, mapping break elements to newlines, and returns the largest run
// font size alongside.
func paragraphText(p *paragraphXML) (string, float64) {
	var sb strings.Builder
	var maxSize float64
	for i := range p.Items {
		item := &p.Items[i]
		switch item.XMLName.Local {
		case "br":
			sb.WriteByte('\n')
		case "r", "fld":
			sb.WriteString(item.Text)
		default:
			// endParaRPr and friends carry no text.
			continue
		}
		if size := runFontSize(item.RPr); size > maxSize {
			maxSize = size
		}
	}
	return norm.NFC.String(strings.TrimRight(sb.String(), " \t")), maxSize
}

func paragraphLevel(p *paragraphXML) int {
	if p.PPr == nil || p.PPr.Lvl == "" {
		return 0
	}
	lvl, err := strconv.Atoi(p.PPr.Lvl)
	if err != nil || lvl < 0 {
		return 0
	}
	return lvl
}

// runFontSize converts the sz attribute (hundredths of a point) to points.
func runFontSize(rpr *rPrXML) float64 {
	if rpr == nil || rpr.Sz == "" {
		return 0
	}
	sz, err := strconv.Atoi(rpr.Sz)
	if err != nil || sz <= 0 {
		return 0
	}
	return float64(sz) / 100
}

// tableRows renders a table as one string per row, joining the non-empty
// cell texts with " | ". A row whose every cell is empty is dropped
// entirely, never emitted as a blank line.
func tableRows(tbl *tblXML) []string {
	var rows []string
	for i := range tbl.Rows {
		var cells []string
		for j := range tbl.Rows[i].Cells {
			if text := cellText(&tbl.Rows[i].Cells[j]); text != "" {
				cells = append(cells, text)
			}
		}
		if len(cells) == 0 {
			continue
		}
		rows = append(rows, strings.Join(cells, cellDelimiter))
	}
	return rows
}

// cellText flattens a cell's paragraphs into a single space-joined string.
func cellText(tc *tcXML) string {
	if tc.TxBody == nil {
		return ""
	}
	lines, _ := paragraphLines(tc.TxBody)
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, strings.ReplaceAll(line.Text, "\n", " "))
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// notesText flattens the text of a notes shape tree. Slide-image and
// slide-number placeholders are skipped; they mirror the slide, not the
// speaker's notes.
func notesText(nodes []shapeNodeXML) string {
	var parts []string
	for i := range nodes {
		n := &nodes[i]
		if n.Kind != shapeText || n.Sp.TxBody == nil {
			continue
		}
		if ph := placeholderType(n.Sp); ph == "sldImg" || ph == "sldNum" {
			continue
		}
		lines, _ := paragraphLines(n.Sp.TxBody)
		for _, line := range lines {
			parts = append(parts, line.Text)
		}
	}
	return strings.Join(parts, "\n")
}
