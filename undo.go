package pixedit

// delta is one recorded pixel change: the value that was overwritten and
// the value that replaced it.
type delta[P Pixel] struct {
	x, y     int
	old, new P
}

// frame is the set of deltas produced by one continuous interaction
// gesture, in the order the writes occurred.
type frame[P Pixel] []delta[P]

// DefaultMaxFrames is the default undo history depth.
const DefaultMaxFrames = 100

// History is a sparse undo/redo log. It records only the pixels a gesture
// actually changed, grouped into frames (one frame per gesture), and can
// replay or reverse them against any Image in guaranteed order.
//
// History does not hold a reference to the image being edited: every
// operation takes the image explicitly, so one history can follow an image
// through whatever view chain the caller composes.
type History[P Pixel] struct {
	// done holds committed frames, oldest first.
	done []frame[P]
	// redo holds undone frames, most recently undone last.
	redo []frame[P]

	// MaxFrames bounds the done stack. Opening a frame beyond the bound
	// silently discards the oldest one (history truncation, not an error).
	MaxFrames int
}

// NewHistory creates an empty history with DefaultMaxFrames depth.
func NewHistory[P Pixel]() *History[P] {
	return &History[P]{MaxFrames: DefaultMaxFrames}
}

// NewFrame opens a new empty frame. Call it exactly once per interaction
// gesture start (click or drag start). If the done stack exceeds
// MaxFrames, the oldest frame is dropped.
func (h *History[P]) NewFrame() {
	h.done = append(h.done, nil)
	if h.MaxFrames > 0 && len(h.done) > h.MaxFrames {
		n := copy(h.done, h.done[1:])
		h.done = h.done[:n]
	}
}

// Frames returns the number of frames on the done stack, including an
// open empty frame if any.
func (h *History[P]) Frames() int { return len(h.done) }

// RedoFrames returns the number of frames available to Redo.
func (h *History[P]) RedoFrames() int { return len(h.redo) }

// Set is the recording write path. It reads the current value at (x, y);
// if it differs from px, the change is appended to the active frame, the
// write is applied to img and the redo stack is cleared (a fresh edit
// invalidates redo history). Writing an equal value is a complete no-op:
// no frame entry, no image write.
//
// If no frame is open, one is opened implicitly.
func (h *History[P]) Set(img Image[P], x, y int, px P) {
	if len(h.done) == 0 {
		h.done = append(h.done, nil)
	}

	old := img.GetPixel(x, y)
	if old == px {
		return
	}

	last := len(h.done) - 1
	h.done[last] = append(h.done[last], delta[P]{x: x, y: y, old: old, new: px})
	img.SetPixel(x, y, px)
	h.redo = h.redo[:0]
}

// Undo reverses the most recent non-empty frame against img, writing each
// recorded old value in reverse order, and moves the frame to the redo
// stack. Empty frames on top of the stack are discarded on the way. With
// no non-empty frame left, Undo is a silent no-op.
func (h *History[P]) Undo(img Image[P]) {
	var fr frame[P]
	for {
		if len(h.done) == 0 {
			return
		}
		fr = h.done[len(h.done)-1]
		h.done = h.done[:len(h.done)-1]
		if len(fr) > 0 {
			break
		}
	}

	Logger().Debug("undo frame", "pixels", len(fr))
	for i := len(fr) - 1; i >= 0; i-- {
		d := fr[i]
		if checksEnabled {
			assertf(img.GetPixel(d.x, d.y) == d.new,
				"undo history does not match image at (%d, %d)", d.x, d.y)
		}
		img.SetPixel(d.x, d.y, d.old)
	}
	h.redo = append(h.redo, fr)
}

// Redo re-applies the most recently undone frame against img, writing each
// recorded new value in forward order, and moves the frame back to the
// done stack. With an empty redo stack, Redo is a silent no-op.
func (h *History[P]) Redo(img Image[P]) {
	if len(h.redo) == 0 {
		return
	}
	fr := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]

	Logger().Debug("redo frame", "pixels", len(fr))
	for _, d := range fr {
		if checksEnabled {
			assertf(img.GetPixel(d.x, d.y) == d.old,
				"redo history does not match image at (%d, %d)", d.x, d.y)
		}
		img.SetPixel(d.x, d.y, d.new)
	}
	h.done = append(h.done, fr)
}

// Track wraps img in a view whose writes go through the recording path.
// Reads and bounds pass through unchanged.
func (h *History[P]) Track(img Image[P]) *UndoTracker[P] {
	return &UndoTracker[P]{img: img, history: h}
}

// UndoTracker is an Image view that records writes into a History before
// forwarding them. Compose it outside a TileTracker so that a value
// restored by undo is also re-marked dirty for re-render.
type UndoTracker[P Pixel] struct {
	img     Image[P]
	history *History[P]
}

// GetPixel implements Image.
func (t *UndoTracker[P]) GetPixel(x, y int) P {
	return t.img.GetPixel(x, y)
}

// SetPixel implements Image. The write is recorded and forwarded, or
// dropped entirely when the value is unchanged.
func (t *UndoTracker[P]) SetPixel(x, y int, px P) {
	t.history.Set(t.img, x, y, px)
}

// Bounds implements Image.
func (t *UndoTracker[P]) Bounds() (xs, ys Span) {
	return t.img.Bounds()
}
