// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpucanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/pixedit"
)

// Common errors returned or recorded by Backend operations.
var (
	// ErrBackendClosed is returned when operations are attempted on a closed backend.
	ErrBackendClosed = errors.New("gpucanvas: backend is closed")

	// ErrNilDrawContext is returned when a nil TextureDrawer is passed.
	ErrNilDrawContext = errors.New("gpucanvas: nil draw context")

	// ErrInvalidTextureSide is returned when maxTextureSide is not positive.
	ErrInvalidTextureSide = errors.New("gpucanvas: invalid max texture side")

	// ErrNoTextureCreator is recorded when the draw context cannot create textures.
	ErrNoTextureCreator = errors.New("gpucanvas: draw context has no texture creator")

	// ErrTextureCreationFailed is recorded when texture creation fails.
	ErrTextureCreationFailed = errors.New("gpucanvas: texture creation failed")

	// ErrTextureNotUpdatable is recorded when a texture does not support
	// in-place updates.
	ErrTextureNotUpdatable = errors.New("gpucanvas: texture does not support updates")
)

// textureDestroyer is the interface for destroying textures.
// This matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Backend uploads pixedit tile patches as GPU textures and draws them
// through a gpucontext.TextureDrawer. It implements pixedit.Backend.
//
// Tile textures are created lazily on first Alloc and live until Close;
// Update re-uploads a dirty tile's pixels into its existing texture.
type Backend struct {
	dc       gpucontext.TextureDrawer
	maxSide  int
	textures map[pixedit.TextureID]any
	nextID   pixedit.TextureID
	err      error // first recorded failure, sticky until Err is read
	closed   bool
}

// New creates a Backend drawing through dc.
//
// The dc parameter should be obtained from gogpu.Context.AsTextureDrawer().
// maxTextureSide is the device texture limit the host queried; the tile
// cache caps it further at pixedit.MaxTileWidth.
//
// Returns error if dc is nil or maxTextureSide is not positive.
func New(dc gpucontext.TextureDrawer, maxTextureSide int) (*Backend, error) {
	if dc == nil {
		return nil, ErrNilDrawContext
	}
	if maxTextureSide <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTextureSide, maxTextureSide)
	}
	return &Backend{
		dc:       dc,
		maxSide:  maxTextureSide,
		textures: make(map[pixedit.TextureID]any),
	}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded limits).
func MustNew(dc gpucontext.TextureDrawer, maxTextureSide int) *Backend {
	b, err := New(dc, maxTextureSide)
	if err != nil {
		panic(err)
	}
	return b
}

// MaxTextureSide implements pixedit.Backend.
func (b *Backend) MaxTextureSide() int {
	return b.maxSide
}

// Alloc implements pixedit.Backend. The patch data is straight-alpha RGBA,
// uploaded as-is. On failure it records the error and returns
// pixedit.InvalidTexture.
func (b *Backend) Alloc(label string, p *pixedit.Patch) pixedit.TextureID {
	if b.closed {
		b.setErr(ErrBackendClosed)
		return pixedit.InvalidTexture
	}

	creator := b.dc.TextureCreator()
	if creator == nil {
		b.setErr(fmt.Errorf("%w (alloc %q)", ErrNoTextureCreator, label))
		return pixedit.InvalidTexture
	}

	tex, err := creator.NewTextureFromRGBA(p.Width(), p.Height(), p.Data())
	if err != nil {
		b.setErr(fmt.Errorf("%w (alloc %q): %w", ErrTextureCreationFailed, label, err))
		return pixedit.InvalidTexture
	}

	b.nextID++
	b.textures[b.nextID] = tex
	pixedit.Logger().Debug("gpucanvas: texture allocated", "label", label, "texture", b.nextID)
	return b.nextID
}

// Update implements pixedit.Backend. The texture keeps its identity; only
// its pixel contents are replaced.
func (b *Backend) Update(id pixedit.TextureID, p *pixedit.Patch) {
	if b.closed {
		b.setErr(ErrBackendClosed)
		return
	}
	tex, ok := b.textures[id]
	if !ok {
		return
	}

	updater, ok := tex.(gpucontext.TextureUpdater)
	if !ok {
		b.setErr(fmt.Errorf("%w (texture %d)", ErrTextureNotUpdatable, id))
		return
	}
	if err := updater.UpdateData(p.Data()); err != nil {
		b.setErr(fmt.Errorf("gpucanvas: texture %d update failed: %w", id, err))
	}
}

// DrawTexture implements pixedit.Backend.
//
// Note: w and h are currently implied by the texture dimensions; drawing
// with a transform can be added when gpucontext grows one.
func (b *Backend) DrawTexture(id pixedit.TextureID, x, y, w, h int) {
	if b.closed {
		b.setErr(ErrBackendClosed)
		return
	}
	tex, ok := b.textures[id]
	if !ok {
		return
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		b.setErr(fmt.Errorf("gpucanvas: texture %d is not drawable", id))
		return
	}
	if err := b.dc.DrawTexture(gpuTex, float32(x), float32(y)); err != nil {
		b.setErr(fmt.Errorf("gpucanvas: draw texture %d failed: %w", id, err))
	}
}

// Err returns the first failure recorded since the last call and clears it.
// Returns nil if no failure occurred.
func (b *Backend) Err() error {
	err := b.err
	b.err = nil
	return err
}

// Close destroys all tile textures and releases the backend.
// After Close, the Backend should not be used.
// Close is idempotent - multiple calls are safe.
func (b *Backend) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	for id, tex := range b.textures {
		if destroyer, ok := tex.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		delete(b.textures, id)
	}
	b.dc = nil
	return nil
}

// setErr records the first failure; later failures are dropped until the
// host drains Err.
func (b *Backend) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
	pixedit.Logger().Warn("gpucanvas: backend failure", "error", err)
}
