package pixedit

import (
	"image/color"
	"testing"
)

// recordingBackend counts backend calls and keeps the last patch uploaded
// per texture, so tests can verify the alloc-once/update-on-dirty contract
// and inspect sampled patch content.
type recordingBackend struct {
	maxSide int
	next    TextureID
	patches map[TextureID]*Patch
	allocs  int
	updates int
	draws   []TextureID
	rects   []Point // StrokeRect origins
	lines   [][]Point
}

func newRecordingBackend(maxSide int) *recordingBackend {
	return &recordingBackend{maxSide: maxSide, patches: make(map[TextureID]*Patch)}
}

func (b *recordingBackend) MaxTextureSide() int { return b.maxSide }

func (b *recordingBackend) Alloc(label string, p *Patch) TextureID {
	b.allocs++
	b.next++
	b.patches[b.next] = p
	return b.next
}

func (b *recordingBackend) Update(id TextureID, p *Patch) {
	b.updates++
	b.patches[id] = p
}

func (b *recordingBackend) DrawTexture(id TextureID, x, y, w, h int) {
	b.draws = append(b.draws, id)
}

func (b *recordingBackend) StrokeRect(x, y, w, h int, c color.RGBA) {
	b.rects = append(b.rects, Point{X: x, Y: y})
}

func (b *recordingBackend) StrokePolyline(pts []Point, c color.RGBA) {
	b.lines = append(b.lines, pts)
}

func TestTileWidthCappedAtCeiling(t *testing.T) {
	tests := []struct {
		maxSide int
		want    int
	}{
		{64, 64},
		{512, 512},
		{4096, MaxTileWidth},
		{0, MaxTileWidth},
	}
	for _, tt := range tests {
		c := NewTileCache[RGBA8](newRecordingBackend(tt.maxSide))
		if got := c.TileWidth(); got != tt.want {
			t.Errorf("maxSide %d: tile width = %d, want %d", tt.maxSide, got, tt.want)
		}
	}
}

func TestTileAtFloorsNegativeCoordinates(t *testing.T) {
	c := NewTileCache[RGBA8](newRecordingBackend(16))
	tests := []struct {
		x, y int
		want TilePos
	}{
		{0, 0, TilePos{0, 0}},
		{15, 15, TilePos{0, 0}},
		{16, 0, TilePos{1, 0}},
		{-1, -1, TilePos{-1, -1}},
		{-16, 0, TilePos{-1, 0}},
		{-17, -33, TilePos{-2, -3}},
	}
	for _, tt := range tests {
		if got := c.TileAt(tt.x, tt.y); got != tt.want {
			t.Errorf("TileAt(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDrawAllocatesOncePerTile(t *testing.T) {
	be := newRecordingBackend(16)
	c := NewTileCache[RGBA8](be)
	img := NewBuffer[RGBA8](40, 20) // 3x2 tiles at width 16

	c.Draw(img, 0, 0)
	if be.allocs != 6 {
		t.Fatalf("allocs after first draw = %d, want 6", be.allocs)
	}
	if len(be.draws) != 6 {
		t.Fatalf("draw calls = %d, want 6", len(be.draws))
	}

	c.Draw(img, 0, 0)
	if be.allocs != 6 {
		t.Errorf("allocs after second draw = %d, want 6 (no reallocation)", be.allocs)
	}
	if be.updates != 0 {
		t.Errorf("updates on clean tiles = %d, want 0", be.updates)
	}
}

func TestDirtyTileRefreshedExactlyOnce(t *testing.T) {
	be := newRecordingBackend(16)
	c := NewTileCache[RGBA8](be)
	img := NewBuffer[RGBA8](40, 20)
	c.Draw(img, 0, 0)

	img.SetPixel(3, 3, White)
	c.MarkDirty(3, 3)
	c.Draw(img, 0, 0)
	if be.updates != 1 {
		t.Fatalf("updates = %d, want 1", be.updates)
	}

	c.Draw(img, 0, 0)
	if be.updates != 1 {
		t.Errorf("updates after clean draw = %d, want 1 (flag cleared)", be.updates)
	}
}

func TestDirtyScopedToOwningTile(t *testing.T) {
	be := newRecordingBackend(16)
	c := NewTileCache[RGBA8](be)
	img := NewBuffer[RGBA8](40, 20)
	c.Draw(img, 0, 0)

	c.MarkDirty(17, 3) // tile (1, 0) only
	if !c.IsDirty(17, 3) {
		t.Error("written tile not dirty")
	}
	for _, p := range []Point{{3, 3}, {33, 3}, {3, 17}, {17, 17}, {33, 17}} {
		if c.IsDirty(p.X, p.Y) {
			t.Errorf("tile containing %v dirty, want clean", p)
		}
	}
}

func TestMarkDirtyOnAbsentTileIsNoop(t *testing.T) {
	be := newRecordingBackend(16)
	c := NewTileCache[RGBA8](be)

	c.MarkDirty(100, 100) // nothing materialized yet
	if be.allocs != 0 {
		t.Errorf("MarkDirty created a tile speculatively")
	}

	img := NewBuffer[RGBA8](8, 8)
	c.Draw(img, 0, 0)
	if be.updates != 0 {
		t.Errorf("stale dirty mark caused an update")
	}
}

func TestPatchSamplingFillsEdgeWithTransparent(t *testing.T) {
	be := newRecordingBackend(16)
	c := NewTileCache[RGBA8](be)
	img := NewBuffer[RGBA8](10, 10) // smaller than one tile
	img.Fill(White)

	c.Draw(img, 0, 0)
	if be.allocs != 1 {
		t.Fatalf("allocs = %d, want 1", be.allocs)
	}
	p := be.patches[1]
	if p.Width() != 16 || p.Height() != 16 {
		t.Fatalf("patch is %dx%d, want 16x16", p.Width(), p.Height())
	}
	if got := p.At(5, 5); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("interior sample = %v, want white", got)
	}
	if got := p.At(12, 5); got != (color.RGBA{}) {
		t.Errorf("sample past image edge = %v, want transparent", got)
	}
}

func TestDrawNegativeOriginImage(t *testing.T) {
	be := newRecordingBackend(16)
	c := NewTileCache[RGBA8](be)
	img := NewBufferAt[RGBA8](-20, -20, 40, 40) // spans tiles (-2..1, -2..1)

	c.Draw(img, 0, 0)
	// x tiles: floor(-20/16) = -2 .. floor(19/16) = 1 -> 4, same for y.
	if be.allocs != 16 {
		t.Errorf("allocs = %d, want 16", be.allocs)
	}
	if !c.IsDirty(-20, -20) {
		c.MarkDirty(-20, -20)
		if !c.IsDirty(-20, -20) {
			t.Error("negative-coordinate tile not addressable")
		}
	}
}

func TestTileTrackerMarksOnWrite(t *testing.T) {
	be := newRecordingBackend(16)
	c := NewTileCache[RGBA8](be)
	img := NewBuffer[RGBA8](40, 20)
	c.Draw(img, 0, 0)

	v := c.Track(img)
	v.SetPixel(20, 5, White)

	if !c.IsDirty(20, 5) {
		t.Error("tracked write did not dirty its tile")
	}
	if got := img.GetPixel(20, 5); got != White {
		t.Errorf("tracked write did not reach image: %v", got)
	}
	if c.IsDirty(3, 3) {
		t.Error("unrelated tile dirtied")
	}
}
