package pptx

import (
	"bytes"
	"encoding/xml"
	"strings"

	"golang.org/x/net/html/charset"
	"golang.org/x/text/unicode/norm"
)

// scanTextRuns streams through an XML fragment and collects the character
// data of every <t> element, in document order. Diagram data parts bury
// their labels in a deep point/property tree that has no stable shape worth
// declaring structs for, so a token scan is used instead.
func scanTextRuns(data []byte) []string {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	// Fragments from innerxml captures lack the document's namespace
	// declarations; tolerate unknown prefixes.
	dec.Strict = false

	var runs []string
	inText := false
	var current strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			break
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		case xml.EndElement:
			if t.Name.Local == "t" && inText {
				inText = false
				if text := norm.NFC.String(strings.TrimSpace(current.String())); text != "" {
					runs = append(runs, text)
				}
			}
		}
	}
	return runs
}
