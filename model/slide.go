package model

import (
	"bytes"
	"encoding/json"
)

// Slide aggregates the extracted content of one slide. Blocks are stored in
// reading order (sorted by geometry), not in document order.
type Slide struct {
	// Index is the 1-based slide number as it appears in the package.
	Index int
	// Title is the detected slide title. Empty means no title was found;
	// the JSON form encodes absence as null, never as an empty string.
	Title string
	// Notes is the raw speaker-notes text, empty when the slide has none.
	Notes string
	// Blocks is the slide content in reading order.
	Blocks []Block
}

// HasTitle reports whether a title was detected for the slide.
func (s Slide) HasTitle() bool {
	return s.Title != ""
}

// MarshalJSON encodes absent title/notes as null rather than "".
func (s Slide) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"index":`)
	writeJSON(&buf, s.Index)
	buf.WriteString(`,"title":`)
	writeNullable(&buf, s.Title)
	buf.WriteString(`,"notes":`)
	writeNullable(&buf, s.Notes)
	buf.WriteString(`,"blocks":`)
	blocks := s.Blocks
	if blocks == nil {
		blocks = []Block{}
	}
	writeJSON(&buf, blocks)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeNullable(buf *bytes.Buffer, s string) {
	if s == "" {
		buf.WriteString("null")
		return
	}
	writeJSON(buf, s)
}

// Hints holds contact-like tokens scanned from the whole-document raw text.
// Each set is de-duplicated and sorted.
type Hints struct {
	Emails   []string `json:"emails"`
	Phones   []string `json:"phones"`
	URLs     []string `json:"urls"`
	LinkedIn []string `json:"linkedin"`
}

// Empty reports whether no hints of any kind were found.
func (h Hints) Empty() bool {
	return len(h.Emails) == 0 && len(h.Phones) == 0 && len(h.URLs) == 0 && len(h.LinkedIn) == 0
}

// RawExtraction is the root output of the extractor: the ordered slide list,
// the column-tagged linear text for the whole package, and the scanned hints.
type RawExtraction struct {
	Slides  []Slide `json:"slides"`
	RawText string  `json:"raw_text"`
	Hints   Hints   `json:"hints"`
	// SlideWidth and SlideHeight give the slide coordinate frame in pixels,
	// for callers that want to interpret block geometry.
	SlideWidth  int `json:"slide_width"`
	SlideHeight int `json:"slide_height"`
}

// JSON returns the extraction encoded as JSON.
func (r *RawExtraction) JSON() ([]byte, error) {
	return json.Marshal(r)
}
