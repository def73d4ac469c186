// Package format provides input format detection for the deckraw library.
package format

import (
	"archive/zip"
	"bytes"
	"path/filepath"
	"strings"
)

// Format represents a recognized input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Presentation indicates a zipped OOXML presentation package (.pptx).
	Presentation
)

// String returns the string representation of the format.
func (f Format) String() string {
	if f == Presentation {
		return "Presentation"
	}
	return "Unknown"
}

// Detect determines the format from a filename extension.
func Detect(filename string) Format {
	if strings.ToLower(filepath.Ext(filename)) == ".pptx" {
		return Presentation
	}
	return Unknown
}

// DetectFromBytes inspects content to determine the format. It is more
// reliable than extension-based detection: the bytes must be a zip archive
// whose entries include presentation parts.
func DetectFromBytes(data []byte) Format {
	if !hasZipMagic(data) {
		return Unknown
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Unknown
	}
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/") {
			return Presentation
		}
	}
	return Unknown
}

// hasZipMagic checks the PK\x03\x04 local-file-header signature.
func hasZipMagic(data []byte) bool {
	return len(data) >= 4 &&
		data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04
}
