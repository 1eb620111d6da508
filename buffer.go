package pixedit

import "fmt"

// Buffer is a dense, row-major implementation of Image with an arbitrary
// signed origin. It is the built-in pixel store; callers with their own
// representation implement Image directly instead.
type Buffer[P Pixel] struct {
	minX, minY    int
	width, height int
	pix           []P
}

// NewBuffer creates a width x height buffer with its origin at (0, 0),
// filled with the zero pixel.
func NewBuffer[P Pixel](width, height int) *Buffer[P] {
	return NewBufferAt[P](0, 0, width, height)
}

// NewBufferAt creates a width x height buffer whose top-left pixel is at
// (minX, minY).
func NewBufferAt[P Pixel](minX, minY, width, height int) *Buffer[P] {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("pixedit: invalid buffer size %dx%d", width, height))
	}
	return &Buffer[P]{
		minX:   minX,
		minY:   minY,
		width:  width,
		height: height,
		pix:    make([]P, width*height),
	}
}

func (b *Buffer[P]) index(x, y int) int {
	if !InBounds[P](b, x, y) {
		xs, ys := b.Bounds()
		panic(fmt.Sprintf("pixedit: buffer access at (%d, %d) outside %v, %v", x, y, xs, ys))
	}
	return (y-b.minY)*b.width + (x - b.minX)
}

// GetPixel returns the pixel at (x, y). Panics outside the bounds.
func (b *Buffer[P]) GetPixel(x, y int) P {
	return b.pix[b.index(x, y)]
}

// SetPixel sets the pixel at (x, y). Panics outside the bounds.
func (b *Buffer[P]) SetPixel(x, y int, px P) {
	b.pix[b.index(x, y)] = px
}

// Bounds returns the inclusive coordinate ranges covered by the buffer.
func (b *Buffer[P]) Bounds() (xs, ys Span) {
	return Span{Lo: b.minX, Hi: b.minX + b.width - 1},
		Span{Lo: b.minY, Hi: b.minY + b.height - 1}
}

// Fill sets every pixel in the buffer to px.
func (b *Buffer[P]) Fill(px P) {
	for i := range b.pix {
		b.pix[i] = px
	}
}

// Grow extends the buffer so that its bounds cover at least xs and ys.
// Existing content is preserved; new pixels hold the zero value. Bounds
// only ever grow: spans already inside the current bounds are no-ops.
func (b *Buffer[P]) Grow(xs, ys Span) {
	if xs.Empty() || ys.Empty() {
		return
	}
	curX, curY := b.Bounds()
	minX, minY := min(curX.Lo, xs.Lo), min(curY.Lo, ys.Lo)
	maxX, maxY := max(curX.Hi, xs.Hi), max(curY.Hi, ys.Hi)
	if minX == curX.Lo && minY == curY.Lo && maxX == curX.Hi && maxY == curY.Hi {
		return
	}

	width := maxX - minX + 1
	height := maxY - minY + 1
	pix := make([]P, width*height)
	for y := curY.Lo; y <= curY.Hi; y++ {
		srcRow := (y - b.minY) * b.width
		dstRow := (y-minY)*width + (curX.Lo - minX)
		copy(pix[dstRow:dstRow+b.width], b.pix[srcRow:srcRow+b.width])
	}

	b.minX, b.minY = minX, minY
	b.width, b.height = width, height
	b.pix = pix
}
