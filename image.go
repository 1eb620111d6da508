package pixedit

import "image/color"

// Pixel is the constraint every concrete pixel representation must satisfy.
//
// A pixel value is opaque to the engine: the only requirements are total,
// side-effect-free equality (used for undo diffing and dirty suppression)
// and a pure projection to a displayable color with optional transparency.
// Integer, floating or multi-channel representations are all supported as
// long as they are comparable value types.
type Pixel interface {
	comparable

	// Color returns the displayable color of the pixel.
	// Must be a pure function of the pixel value.
	Color() color.RGBA
}

// Image is the capability contract for an addressable 2D pixel grid.
//
// Bounds are inclusive signed ranges that may grow over the image's
// lifetime but must never shrink. GetPixel and SetPixel outside the
// reported bounds are programming errors; implementations are allowed to
// panic. Use PixelAt and SetPixelAt for accesses that may legitimately
// fall outside the bounds.
//
// All three methods are expected to be O(1).
type Image[P Pixel] interface {
	// GetPixel returns the pixel at (x, y).
	GetPixel(x, y int) P

	// SetPixel sets the pixel at (x, y) to px.
	SetPixel(x, y int, px P)

	// Bounds returns the inclusive coordinate ranges covered by the image.
	Bounds() (xs, ys Span)
}

// InBounds reports whether (x, y) lies within img's bounds.
func InBounds[P Pixel](img Image[P], x, y int) bool {
	xs, ys := img.Bounds()
	return xs.Contains(x) && ys.Contains(y)
}

// PixelAt is a bounds-checked read. It returns the pixel at (x, y) and
// true, or the zero pixel and false when (x, y) is outside img's bounds.
// The render cache uses it to sample tile patches that extend past the
// image edge.
func PixelAt[P Pixel](img Image[P], x, y int) (P, bool) {
	if !InBounds(img, x, y) {
		var zero P
		return zero, false
	}
	return img.GetPixel(x, y), true
}

// SetPixelAt is a bounds-checked write. It reports whether the write was
// applied. Brush application uses it so off-canvas offsets are silently
// dropped instead of failing the stroke.
func SetPixelAt[P Pixel](img Image[P], x, y int, px P) bool {
	if !InBounds(img, x, y) {
		return false
	}
	img.SetPixel(x, y, px)
	return true
}

// Dimensions returns the width and height of img's bounds.
func Dimensions[P Pixel](img Image[P]) (w, h int) {
	xs, ys := img.Bounds()
	return xs.Len(), ys.Len()
}
