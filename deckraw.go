// Package deckraw extracts structured content from zipped OOXML
// presentation packages: per-slide text blocks with resolved geometry and
// column assignment, slide titles and speaker notes, a column-tagged linear
// raw text for the whole deck, and regex-scanned contact hints.
//
// Basic usage:
//
//	result, warnings, err := deckraw.Open("resume.pptx").Extraction()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", deckraw.FormatWarnings(warnings))
//	}
//
// With options:
//
//	text, _, err := deckraw.FromBytes(data).
//	    Slides(1, 2).
//	    ExcludeFooters().
//	    RawText()
//
// Extraction is best-effort: only an unreadable package fails the whole
// operation; malformed slides degrade to empty placeholders reported as
// warnings.
package deckraw

import (
	"github.com/deckraw/deckraw/pptx"
)

// ErrInvalidPackage is returned when the input cannot be opened as a
// presentation package. It is the only hard failure the extractor reports.
var ErrInvalidPackage = pptx.ErrInvalidPackage

// Open prepares an Extractor for a presentation file. The file is read and
// validated lazily, when a terminal operation runs.
//
// Example:
//
//	result, warnings, err := deckraw.Open("deck.pptx").Extraction()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromBytes prepares an Extractor over in-memory package bytes. The bytes
// are treated as read-only and must not be mutated while the Extractor is
// in use.
//
// Example:
//
//	result, warnings, err := deckraw.FromBytes(data).Extraction()
func FromBytes(data []byte) *Extractor {
	return &Extractor{
		data:    data,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	count := deckraw.Must(deckraw.Open("deck.pptx").SlideCount())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult wraps a terminal operation returning (T, []Warning, error),
// panicking on error and discarding warnings.
//
// Example:
//
//	text := deckraw.MustResult(deckraw.Open("deck.pptx").RawText())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
