package pixedit

import (
	"image"
	"image/color"
)

// Patch is a fixed-size RGBA pixel buffer, the unit of texture upload.
// The render cache samples one Patch per tile; backends upload its Data
// to whatever texture representation they use.
type Patch struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPatch creates a patch with the given dimensions, fully transparent.
func NewPatch(width, height int) *Patch {
	return &Patch{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the patch.
func (p *Patch) Width() int {
	return p.width
}

// Height returns the height of the patch.
func (p *Patch) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Patch) Data() []uint8 {
	return p.data
}

// Set sets the color of a single pixel. Coordinates are patch-local.
func (p *Patch) Set(x, y int, c color.RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// At returns the color of a single pixel. Coordinates are patch-local.
func (p *Patch) At(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// ToImage converts the patch to an image.RGBA. The returned image is a
// copy; modifying it does not affect the patch.
func (p *Patch) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}
