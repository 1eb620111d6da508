package backend

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/pixedit"
)

// softwareMaxTextureSide is the texture ceiling the software backend
// reports. Patches are plain heap memory here, so the value is a tradeoff
// between tile count and refresh granularity rather than a hardware limit.
const softwareMaxTextureSide = 256

// Software is a CPU compositing backend. Textures are image.RGBA copies of
// the uploaded patches, and DrawTexture composites them into a framebuffer
// that grows to cover everything drawn, including negative coordinates.
//
// Software is NOT safe for concurrent use, matching the engine's
// single-goroutine contract.
type Software struct {
	fb       *image.RGBA
	textures map[pixedit.TextureID]*image.RGBA
	nextID   pixedit.TextureID
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() pixedit.Backend {
		return NewSoftware()
	})
}

// NewSoftware creates a new software compositing backend with an empty
// framebuffer.
func NewSoftware() *Software {
	return &Software{
		fb:       image.NewRGBA(image.Rectangle{}),
		textures: make(map[pixedit.TextureID]*image.RGBA),
	}
}

// Name returns the backend identifier.
func (b *Software) Name() string {
	return BackendSoftware
}

// MaxTextureSide returns the largest texture edge the backend accepts.
func (b *Software) MaxTextureSide() int {
	return softwareMaxTextureSide
}

// Frame returns the framebuffer holding everything composited so far.
// The returned image is live; it is replaced when the framebuffer grows.
func (b *Software) Frame() *image.RGBA {
	return b.fb
}

// Clear fills the current framebuffer with a solid color.
func (b *Software) Clear(c color.RGBA) {
	draw.Draw(b.fb, b.fb.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Alloc implements pixedit.Backend. The patch is copied; later mutation of
// the patch does not affect the texture.
func (b *Software) Alloc(label string, p *pixedit.Patch) pixedit.TextureID {
	b.nextID++
	b.textures[b.nextID] = p.ToImage()
	pixedit.Logger().Debug("software: texture allocated", "label", label, "texture", b.nextID)
	return b.nextID
}

// Update implements pixedit.Backend. Updating an unknown texture is a no-op.
func (b *Software) Update(id pixedit.TextureID, p *pixedit.Patch) {
	if _, ok := b.textures[id]; !ok {
		return
	}
	b.textures[id] = p.ToImage()
}

// DrawTexture implements pixedit.Backend. The texture is composited over
// the framebuffer at (x, y); when the target rectangle differs from the
// texture dimensions it is scaled with nearest-neighbor filtering, which
// keeps pixel art crisp.
func (b *Software) DrawTexture(id pixedit.TextureID, x, y, w, h int) {
	tex, ok := b.textures[id]
	if !ok || w < 1 || h < 1 {
		return
	}
	r := image.Rect(x, y, x+w, y+h)
	b.ensure(r)

	if tex.Rect.Dx() == w && tex.Rect.Dy() == h {
		draw.Draw(b.fb, r, tex, tex.Rect.Min, draw.Over)
		return
	}
	draw.NearestNeighbor.Scale(b.fb, r, tex, tex.Rect, draw.Over, nil)
}

// StrokeRect implements pixedit.OverlayDrawer.
func (b *Software) StrokeRect(x, y, w, h int, c color.RGBA) {
	if w < 1 || h < 1 {
		return
	}
	b.ensure(image.Rect(x, y, x+w, y+h))
	for i := 0; i < w; i++ {
		b.fb.SetRGBA(x+i, y, c)
		b.fb.SetRGBA(x+i, y+h-1, c)
	}
	for i := 0; i < h; i++ {
		b.fb.SetRGBA(x, y+i, c)
		b.fb.SetRGBA(x+w-1, y+i, c)
	}
}

// StrokePolyline implements pixedit.OverlayDrawer.
func (b *Software) StrokePolyline(pts []pixedit.Point, c color.RGBA) {
	if len(pts) == 0 {
		return
	}
	r := image.Rect(pts[0].X, pts[0].Y, pts[0].X+1, pts[0].Y+1)
	for _, p := range pts[1:] {
		r = r.Union(image.Rect(p.X, p.Y, p.X+1, p.Y+1))
	}
	b.ensure(r)

	for i := 1; i < len(pts); i++ {
		b.line(pts[i-1], pts[i], c)
	}
	if len(pts) == 1 {
		b.fb.SetRGBA(pts[0].X, pts[0].Y, c)
	}
}

// ensure grows the framebuffer to cover r, preserving existing content.
func (b *Software) ensure(r image.Rectangle) {
	if r.In(b.fb.Rect) {
		return
	}
	u := b.fb.Rect.Union(r)
	nf := image.NewRGBA(u)
	draw.Draw(nf, b.fb.Rect, b.fb, b.fb.Rect.Min, draw.Src)
	b.fb = nf
}

// line rasterizes one segment with the integer midpoint walk.
func (b *Software) line(p0, p1 pixedit.Point, c color.RGBA) {
	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}
	err := dx + dy

	x, y := p0.X, p0.Y
	for {
		b.fb.SetRGBA(x, y, c)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
