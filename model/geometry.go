package model

import "fmt"

// BBox represents a bounding box in pixel space. The origin is the top-left
// corner of the slide; Y increases downward.
type BBox struct {
	X      int // Left
	Y      int // Top
	Width  int
	Height int
}

// NewBBox creates a bounding box from coordinates.
func NewBBox(x, y, width, height int) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate.
func (b BBox) Left() int {
	return b.X
}

// Right returns the right edge X coordinate.
func (b BBox) Right() int {
	return b.X + b.Width
}

// Top returns the top edge Y coordinate.
func (b BBox) Top() int {
	return b.Y
}

// Bottom returns the bottom edge Y coordinate.
func (b BBox) Bottom() int {
	return b.Y + b.Height
}

// CenterX returns the horizontal center of the box.
func (b BBox) CenterX() int {
	return b.X + b.Width/2
}

// CenterY returns the vertical center of the box.
func (b BBox) CenterY() int {
	return b.Y + b.Height/2
}

// IsZero reports whether the box carries no geometry at all.
func (b BBox) IsZero() bool {
	return b.X == 0 && b.Y == 0 && b.Width == 0 && b.Height == 0
}

// MarshalJSON encodes the box as a compact [x,y,w,h] array.
func (b BBox) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("[%d,%d,%d,%d]", b.X, b.Y, b.Width, b.Height)), nil
}

// UnmarshalJSON decodes the [x,y,w,h] array form.
func (b *BBox) UnmarshalJSON(data []byte) error {
	var v [4]int
	if _, err := fmt.Sscanf(string(data), "[%d,%d,%d,%d]", &v[0], &v[1], &v[2], &v[3]); err != nil {
		return fmt.Errorf("bbox: %w", err)
	}
	b.X, b.Y, b.Width, b.Height = v[0], v[1], v[2], v[3]
	return nil
}
