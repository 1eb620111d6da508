package pixedit

import "image/color"

// TextureID is an opaque handle to a backend texture. Each backend
// maintains the mapping between IDs and its actual texture resources.
type TextureID uint64

// InvalidTexture is the zero value, representing a null texture handle.
const InvalidTexture TextureID = 0

// Backend is the host rendering collaborator. The tile cache calls Alloc
// exactly once per tile (on first visibility), Update exactly once per
// dirty refresh, and DrawTexture once per tile per draw pass. Textures are
// never deallocated during a session.
//
// Allocation or update failures are the host's concern: a backend either
// succeeds or aborts at its own level. The engine performs no retry and no
// degraded mode.
type Backend interface {
	// MaxTextureSide returns the largest texture dimension the backend
	// supports. The tile cache reads it once at construction to pick the
	// tile width, capped at MaxTileWidth.
	MaxTextureSide() int

	// Alloc creates a texture from an initial patch and returns its handle.
	Alloc(label string, p *Patch) TextureID

	// Update fully replaces the contents of a texture with a patch of the
	// same dimensions it was allocated with.
	Update(id TextureID, p *Patch)

	// DrawTexture draws the texture as a w x h rectangle with its top-left
	// corner at (x, y), in the backend's screen space.
	DrawTexture(id TextureID, x, y, w, h int)
}

// OverlayDrawer is an optional interface for backends that can draw
// immediate-mode overlays on top of the tile pass. The editor uses it for
// the hover cell and the brush outline preview; backends without it simply
// render no preview.
type OverlayDrawer interface {
	// StrokeRect outlines a w x h rectangle with top-left corner at (x, y).
	StrokeRect(x, y, w, h int, c color.RGBA)

	// StrokePolyline strokes line segments connecting consecutive points.
	StrokePolyline(pts []Point, c color.RGBA)
}
