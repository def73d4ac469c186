// Package pptx reads zipped OOXML presentation packages. It enumerates slide
// parts in numeric order, walks each slide's shape tree (nested groups,
// tables, graphic frames), resolves absolute shape geometry by composing
// group offsets, and extracts text, table rows, diagram labels, and speaker
// notes. Parsing is best-effort: a shape that cannot be decoded is skipped
// with a diagnostic and the rest of the slide is still extracted.
package pptx
