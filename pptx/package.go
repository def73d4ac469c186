package pptx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// ErrInvalidPackage indicates the input is not a readable presentation
// package: the zip container cannot be opened or it holds no slide parts.
var ErrInvalidPackage = errors.New("invalid presentation package")

// ErrRecursionLimit indicates a slide's group nesting exceeded the
// configured depth and its traversal was abandoned.
var ErrRecursionLimit = errors.New("group nesting exceeds recursion limit")

const (
	slidePrefix = "ppt/slides/slide"
	slideSuffix = ".xml"

	// Standard 4:3 slide size in EMUs, used when the presentation part
	// does not declare one.
	defaultSlideCX = 9144000
	defaultSlideCY = 6858000
)

// Options controls how slide content is extracted.
type Options struct {
	// MaxGroupDepth bounds group recursion; traversal past this depth
	// fails the slide with ErrRecursionLimit.
	MaxGroupDepth int
	// IncludeNotes attaches speaker notes when a notes part exists.
	IncludeNotes bool
	// ExcludeFooters skips footer, date and slide-number placeholders.
	ExcludeFooters bool
}

// DefaultOptions returns the extraction defaults.
func DefaultOptions() Options {
	return Options{
		MaxGroupDepth: 32,
		IncludeNotes:  true,
	}
}

// Package is an opened presentation container. It is read-only and safe for
// concurrent use once constructed.
type Package struct {
	files      map[string]*zip.File
	slideNames []string
	widthPx    int
	heightPx   int
}

// NewPackage opens a presentation package from raw bytes. It fails with
// ErrInvalidPackage when the bytes are not a zip archive or the archive
// contains no slide parts.
func NewPackage(data []byte) (*Package, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPackage, err)
	}

	p := &Package{files: make(map[string]*zip.File, len(zr.File))}
	for _, f := range zr.File {
		p.files[f.Name] = f
		if strings.HasPrefix(f.Name, slidePrefix) && strings.HasSuffix(f.Name, slideSuffix) {
			p.slideNames = append(p.slideNames, f.Name)
		}
	}
	if len(p.slideNames) == 0 {
		return nil, fmt.Errorf("%w: no slide parts", ErrInvalidPackage)
	}

	// slide10.xml must sort after slide2.xml, so order numerically.
	sort.Slice(p.slideNames, func(i, j int) bool {
		return slideNumber(p.slideNames[i]) < slideNumber(p.slideNames[j])
	})

	p.widthPx, p.heightPx = p.slideSize()
	return p, nil
}

// SlideCount returns the number of slide parts in the package.
func (p *Package) SlideCount() int {
	return len(p.slideNames)
}

// SlideWidth returns the slide width in pixels.
func (p *Package) SlideWidth() int {
	return p.widthPx
}

// SlideHeight returns the slide height in pixels.
func (p *Package) SlideHeight() int {
	return p.heightPx
}

// Slide parses the n-th slide (1-based) and extracts its shape content.
// Structural failures (unparseable XML, recursion overflow) are returned as
// errors; per-shape problems are recorded as diagnostics on the result.
func (p *Package) Slide(n int, opts Options) (*Slide, error) {
	if n < 1 || n > len(p.slideNames) {
		return nil, fmt.Errorf("slide %d out of range 1..%d", n, len(p.slideNames))
	}
	name := p.slideNames[n-1]

	data, err := p.readPart(name)
	if err != nil {
		return nil, fmt.Errorf("slide %d: %w", n, err)
	}
	var doc slideXML
	if err := decodeXML(data, &doc); err != nil {
		return nil, fmt.Errorf("slide %d: %w", n, err)
	}

	w := &walker{
		opts:    opts,
		diagram: p.diagramResolver(name),
	}
	if err := w.walk(doc.CSld.SpTree.Nodes, Offset{}, false, 0); err != nil {
		return nil, fmt.Errorf("slide %d: %w", n, err)
	}

	slide := &Slide{
		Index:       n,
		Shapes:      w.out,
		Diagnostics: w.diags,
	}
	if opts.IncludeNotes {
		slide.Notes = p.slideNotes(name)
	}
	return slide, nil
}

// slideNumber extracts the numeric part of a slide part name; unparseable
// names sort last.
func slideNumber(name string) int {
	s := strings.TrimSuffix(strings.TrimPrefix(name, slidePrefix), slideSuffix)
	num, err := strconv.Atoi(s)
	if err != nil {
		return int(^uint(0) >> 1)
	}
	return num
}

// slideSize reads sldSz from the presentation part, falling back to the
// standard 4:3 frame.
func (p *Package) slideSize() (int, int) {
	cx, cy := int64(defaultSlideCX), int64(defaultSlideCY)
	if data, err := p.readPart("ppt/presentation.xml"); err == nil {
		var pres presentationXML
		if decodeXML(data, &pres) == nil && pres.SldSz != nil {
			if v, err := strconv.ParseInt(pres.SldSz.CX, 10, 64); err == nil && v > 0 {
				cx = v
			}
			if v, err := strconv.ParseInt(pres.SldSz.CY, 10, 64); err == nil && v > 0 {
				cy = v
			}
		}
	}
	return ToPixels(cx), ToPixels(cy)
}

// slideNotes locates and flattens the notes part related to a slide part.
// Missing or unreadable notes yield the empty string; notes are optional.
func (p *Package) slideNotes(slideName string) string {
	target := p.relTarget(slideName, "notesSlide")
	if target == "" {
		return ""
	}
	data, err := p.readPart(target)
	if err != nil {
		return ""
	}
	var doc notesSlideXML
	if err := decodeXML(data, &doc); err != nil {
		return ""
	}
	return notesText(doc.CSld.SpTree.Nodes)
}

// diagramResolver returns a lookup from a diagram data relationship ID to
// the text runs of the referenced data part.
func (p *Package) diagramResolver(slideName string) func(relID string) ([]string, bool) {
	return func(relID string) ([]string, bool) {
		rels, err := p.relationships(slideName)
		if err != nil {
			return nil, false
		}
		for _, rel := range rels {
			if rel.ID != relID {
				continue
			}
			data, err := p.readPart(resolveTarget(path.Dir(slideName), rel.Target))
			if err != nil {
				return nil, false
			}
			return scanTextRuns(data), true
		}
		return nil, false
	}
}

// relTarget resolves the first relationship of a part whose type ends in
// relType, returning the absolute part name or "".
func (p *Package) relTarget(partName, relType string) string {
	rels, err := p.relationships(partName)
	if err != nil {
		return ""
	}
	for _, rel := range rels {
		if strings.HasSuffix(rel.Type, relType) {
			return resolveTarget(path.Dir(partName), rel.Target)
		}
	}
	return ""
}

// relationships parses the .rels document that accompanies a part.
func (p *Package) relationships(partName string) ([]relationshipXML, error) {
	relName := path.Join(path.Dir(partName), "_rels", path.Base(partName)+".rels")
	data, err := p.readPart(relName)
	if err != nil {
		return nil, err
	}
	var rels relationshipsXML
	if err := decodeXML(data, &rels); err != nil {
		return nil, err
	}
	return rels.Rels, nil
}

// resolveTarget turns a relationship target (usually relative, e.g.
// "../notesSlides/notesSlide1.xml") into an absolute part name.
func resolveTarget(baseDir, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return path.Join(baseDir, target)
}

func (p *Package) readPart(name string) ([]byte, error) {
	f, ok := p.files[name]
	if !ok {
		return nil, fmt.Errorf("part %s not found", name)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("part %s: %w", name, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// decodeXML unmarshals a part, honoring any declared character encoding.
func decodeXML(data []byte, v any) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = charset.NewReaderLabel
	return dec.Decode(v)
}
