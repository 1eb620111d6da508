package pixedit

import "fmt"

// MaxTileWidth caps the tile edge length regardless of what the backend
// reports, bounding per-tile memory and upload cost.
const MaxTileWidth = 512

// TilePos identifies a tile by its integer tile coordinates, derived from
// pixel coordinates by floor division by the tile width.
type TilePos struct {
	X, Y int
}

// tile is one cached render patch: a backend texture plus a dirty flag.
// Tiles are created on first visibility and never destroyed during a
// session.
type tile struct {
	tex   TextureID
	dirty bool
}

// TileCache partitions the logical image into fixed-size square tiles,
// lazily materializes a backend texture per visible tile, and regenerates
// only the tiles writes have actually touched.
//
// The cache owns its tile table outright; no other component mutates it.
type TileCache[P Pixel] struct {
	backend   Backend
	tiles     map[TilePos]*tile
	tileWidth int
}

// NewTileCache creates a cache bound to a backend. The tile width is the
// backend's maximum texture dimension capped at MaxTileWidth, chosen once
// for the cache's lifetime.
func NewTileCache[P Pixel](backend Backend) *TileCache[P] {
	tw := backend.MaxTextureSide()
	if tw < 1 || tw > MaxTileWidth {
		tw = MaxTileWidth
	}
	return &TileCache[P]{
		backend:   backend,
		tiles:     make(map[TilePos]*tile),
		tileWidth: tw,
	}
}

// TileWidth returns the edge length of the cache's tiles in pixels.
func (c *TileCache[P]) TileWidth() int {
	return c.tileWidth
}

// TileAt returns the tile position containing pixel coordinate (x, y).
func (c *TileCache[P]) TileAt(x, y int) TilePos {
	return TilePos{X: floorDiv(x, c.tileWidth), Y: floorDiv(y, c.tileWidth)}
}

// MarkDirty flags the tile containing (x, y) for regeneration on the next
// draw pass. Marking is idempotent; marking a tile that has not been
// materialized yet is a no-op (no speculative creation).
func (c *TileCache[P]) MarkDirty(x, y int) {
	if t, ok := c.tiles[c.TileAt(x, y)]; ok {
		t.dirty = true
	}
}

// IsDirty reports whether the tile containing (x, y) is materialized and
// flagged dirty.
func (c *TileCache[P]) IsDirty(x, y int) bool {
	t, ok := c.tiles[c.TileAt(x, y)]
	return ok && t.dirty
}

// Draw walks every tile whose index range intersects img's bounds:
// materializes missing tiles (one Alloc per tile, ever), refreshes dirty
// ones (one Update per refresh), and draws each at its tile-local screen
// rectangle offset by (originX, originY).
func (c *TileCache[P]) Draw(img Image[P], originX, originY int) {
	xs, ys := img.Bounds()
	if xs.Empty() || ys.Empty() {
		return
	}
	tw := c.tileWidth

	for ty := floorDiv(ys.Lo, tw); ty <= floorDiv(ys.Hi, tw); ty++ {
		for tx := floorDiv(xs.Lo, tw); tx <= floorDiv(xs.Hi, tw); tx++ {
			pos := TilePos{X: tx, Y: ty}

			t, ok := c.tiles[pos]
			if !ok {
				tex := c.backend.Alloc(fmt.Sprintf("tile %d,%d", tx, ty), c.samplePatch(img, pos))
				t = &tile{tex: tex}
				c.tiles[pos] = t
				Logger().Debug("materialized tile", "tile", pos, "texture", tex)
			} else if t.dirty {
				c.backend.Update(t.tex, c.samplePatch(img, pos))
				t.dirty = false
				Logger().Debug("refreshed tile", "tile", pos)
			}

			c.backend.DrawTexture(t.tex, originX+tx*tw, originY+ty*tw, tw, tw)
		}
	}
}

// samplePatch builds the tileWidth x tileWidth pixel patch for a tile by
// bounds-checked reads over the tile's coordinate span. Coordinates
// outside the image bounds become fully transparent, so edge tiles are
// well-defined and uniform in size regardless of the logical image size.
func (c *TileCache[P]) samplePatch(img Image[P], pos TilePos) *Patch {
	tw := c.tileWidth
	x0, y0 := pos.X*tw, pos.Y*tw

	crop := NewCrop(img, Span{Lo: x0, Hi: x0 + tw - 1}, Span{Lo: y0, Hi: y0 + tw - 1})
	patch := NewPatch(tw, tw)
	for y := 0; y < tw; y++ {
		for x := 0; x < tw; x++ {
			if px, ok := PixelAt[P](crop, x0+x, y0+y); ok {
				patch.Set(x, y, px.Color())
			}
		}
	}
	return patch
}

// Track wraps img in a view that marks the owning tile dirty on every
// write before forwarding it. Reads and bounds pass through unchanged.
func (c *TileCache[P]) Track(img Image[P]) *TileTracker[P] {
	return &TileTracker[P]{img: img, tiles: c}
}

// TileTracker is an Image view that forwards writes unchanged but
// additionally marks the owning tile dirty.
type TileTracker[P Pixel] struct {
	img   Image[P]
	tiles *TileCache[P]
}

// GetPixel implements Image.
func (t *TileTracker[P]) GetPixel(x, y int) P {
	return t.img.GetPixel(x, y)
}

// SetPixel implements Image.
func (t *TileTracker[P]) SetPixel(x, y int, px P) {
	t.tiles.MarkDirty(x, y)
	t.img.SetPixel(x, y, px)
}

// Bounds implements Image.
func (t *TileTracker[P]) Bounds() (xs, ys Span) {
	return t.img.Bounds()
}
