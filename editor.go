package pixedit

import (
	"image/color"
	"math"
)

// Key identifies a discrete key the editor reacts to. The host maps its
// own key codes onto these; anything else is reported as KeyNone and
// ignored.
type Key uint8

// Keys the editor understands.
const (
	KeyNone Key = iota
	KeyZ
	KeyY
)

// Modifiers is a bitmask of modifier keys held during a key event.
type Modifiers uint8

// Modifier flags.
const (
	// ModCommand is the primary command modifier: Ctrl on most platforms,
	// Cmd on macOS. The host decides which physical key maps to it.
	ModCommand Modifiers = 1 << iota
	ModShift
)

// KeyEvent is one discrete key press with its modifier state.
type KeyEvent struct {
	Key Key
	Mod Modifiers
}

// command is the editor action a key event resolves to.
type command uint8

const (
	cmdNone command = iota
	cmdUndo
	cmdRedo
)

// resolve maps a key event to an editor command. Command+Z is undo;
// Command+Y or Command+Shift+Z is redo. Everything else is ignored.
func (e KeyEvent) resolve() command {
	if e.Mod&ModCommand == 0 {
		return cmdNone
	}
	shift := e.Mod&ModShift != 0
	switch {
	case e.Key == KeyZ && !shift:
		return cmdUndo
	case e.Key == KeyY && !shift:
		return cmdRedo
	case e.Key == KeyZ && shift:
		return cmdRedo
	}
	return cmdNone
}

// Input is everything the host reports for one interaction tick.
type Input struct {
	// OriginX, OriginY is the screen position the image's (0, 0) pixel
	// renders at. Pointer positions are interpreted relative to it.
	OriginX, OriginY int

	// Hover is the current pointer position, or nil when the pointer is
	// not over the canvas.
	Hover *Pointer

	// Paint is the pointer position of an active click or drag, or nil
	// when no paint interaction is in progress.
	Paint *Pointer

	// GestureStart is true on the tick a click or drag begins. It opens a
	// new undo frame.
	GestureStart bool

	// Keys are the discrete key events of this tick, in order.
	Keys []KeyEvent
}

// hoverColor outlines the hovered pixel cell and the brush preview.
var hoverColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}

// Editor composes the engine per interaction tick: it translates host
// input into brush application and undo/redo commands, and drives the tile
// cache's draw pass. Construct one Editor per logical canvas; all state
// (tiles, undo stacks, tile width) lives in the instance.
type Editor[P Pixel] struct {
	tiles   *TileCache[P]
	history *History[P]
	backend Backend
}

// NewEditor creates an editor bound to a host render backend.
func NewEditor[P Pixel](backend Backend) *Editor[P] {
	return &Editor[P]{
		tiles:   NewTileCache[P](backend),
		history: NewHistory[P](),
		backend: backend,
	}
}

// Tiles returns the editor's render cache.
func (e *Editor[P]) Tiles() *TileCache[P] {
	return e.tiles
}

// History returns the editor's undo log.
func (e *Editor[P]) History() *History[P] {
	return e.history
}

// pixelAt converts a pointer position to the integer pixel cell it falls
// in, flooring relative to the rendered origin.
func (e *Editor[P]) pixelAt(in Input, p *Pointer) (x, y int) {
	return int(math.Floor(p.X)) - in.OriginX, int(math.Floor(p.Y)) - in.OriginY
}

// Edit runs one interaction tick: gesture bookkeeping, undo/redo commands,
// the render pass, brush application and hover preview, in that order.
//
// Undo and redo are applied through the tile tracker so that every
// restored pixel re-marks its tile dirty. Brush writes additionally pass
// through the undo tracker, so a single write records a delta and dirties
// its tile, or does neither when the pixel value is unchanged.
func (e *Editor[P]) Edit(img Image[P], in Input, brush Brush, px P) {
	if in.GestureStart {
		e.history.NewFrame()
	}

	for _, ev := range in.Keys {
		switch ev.resolve() {
		case cmdUndo:
			e.history.Undo(e.tiles.Track(img))
		case cmdRedo:
			e.history.Redo(e.tiles.Track(img))
		}
	}

	// The draw pass reads the raw image: rendering reflects the latest
	// committed state and needs none of the tracking views.
	e.tiles.Draw(img, in.OriginX, in.OriginY)

	overlay, _ := e.backend.(OverlayDrawer)

	if in.Paint != nil {
		cx, cy := e.pixelAt(in, in.Paint)
		tracked := e.history.Track(e.tiles.Track(img))
		brush.Offsets(cx, cy, func(x, y int) {
			SetPixelAt[P](tracked, x, y, px)
		})
		if overlay != nil {
			pts := brush.Outline(cx, cy)
			for i := range pts {
				pts[i].X += in.OriginX
				pts[i].Y += in.OriginY
			}
			overlay.StrokePolyline(pts, hoverColor)
		}
		return
	}

	if in.Hover != nil && overlay != nil {
		cx, cy := e.pixelAt(in, in.Hover)
		overlay.StrokeRect(in.OriginX+cx, in.OriginY+cy, 1, 1, hoverColor)
	}
}
