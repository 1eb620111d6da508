package pixedit

import "fmt"

// Crop is a view over a sub-rectangle of an inner image. The requested
// ranges are clamped to the inner bounds at construction, so a Crop never
// reports a range wider than the intersection.
//
// Access outside the cropped bounds is a programming error and panics;
// use PixelAt for reads that may fall outside.
type Crop[P Pixel] struct {
	inner  Image[P]
	xs, ys Span
}

// NewCrop creates a view of inner restricted to the intersection of
// (xs, ys) with inner's bounds.
func NewCrop[P Pixel](inner Image[P], xs, ys Span) *Crop[P] {
	ixs, iys := inner.Bounds()
	return &Crop[P]{
		inner: inner,
		xs:    xs.Intersect(ixs),
		ys:    ys.Intersect(iys),
	}
}

func (c *Crop[P]) check(x, y int) {
	if !c.xs.Contains(x) || !c.ys.Contains(y) {
		panic(fmt.Sprintf("pixedit: crop access at (%d, %d) outside %v, %v", x, y, c.xs, c.ys))
	}
}

// GetPixel returns the pixel at (x, y). Panics outside the cropped bounds.
func (c *Crop[P]) GetPixel(x, y int) P {
	c.check(x, y)
	return c.inner.GetPixel(x, y)
}

// SetPixel sets the pixel at (x, y). Panics outside the cropped bounds.
func (c *Crop[P]) SetPixel(x, y int, px P) {
	c.check(x, y)
	c.inner.SetPixel(x, y, px)
}

// Bounds returns the cropped coordinate ranges.
func (c *Crop[P]) Bounds() (xs, ys Span) {
	return c.xs, c.ys
}
