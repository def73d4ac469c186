package pptx

// emuPerPixel is the OOXML length ratio: 9525 EMUs per pixel at 96 DPI.
const emuPerPixel = 9525

// Offset is a translation in EMUs.
type Offset struct {
	X int64
	Y int64
}

// Add returns the sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// ToPixels converts an EMU length to pixels, truncating toward zero.
// Truncation (never rounding up) keeps ordering comparisons stable across
// repeated conversions on the same document.
func ToPixels(emu int64) int {
	return int(emu / emuPerPixel)
}

// ComposeOffset combines an accumulated ancestor offset with a shape's local
// offset. A shape with no local offset inherits the ancestor position
// unchanged. The second return reports whether the result carries any
// resolvable geometry at all.
func ComposeOffset(ancestor Offset, hasAncestor bool, local *Offset) (Offset, bool) {
	if local == nil {
		return ancestor, hasAncestor
	}
	return ancestor.Add(*local), true
}
