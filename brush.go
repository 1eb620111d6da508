package pixedit

// Brush describes the shape a stroke paints with.
// This is a sealed interface - only types in this package implement it.
//
// Brushes are pure values: the same brush can be reused across strokes and
// editors. Shapes are defined by integer half-extents, the radius along
// each axis measured from the center pixel, so non-square shapes are
// supported. A half-extent of 0 degenerates to a single row, column or
// point, never to an empty set.
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	// Only types in this package can implement Brush.
	brushMarker()

	// Offsets calls fn for every pixel coordinate the brush covers when
	// centered at (cx, cy), scanline by scanline.
	Offsets(cx, cy int, fn func(x, y int))

	// Outline returns the boundary polyline of the brush centered at
	// (cx, cy), for live preview rendering. Only the boundary is
	// produced, so the cost is linear in the brush extent rather than
	// quadratic.
	Outline(cx, cy int) []Point

	// HalfExtents returns the brush half-extents.
	HalfExtents() (hw, hh int)
}

// EllipseBrush covers the discrete ellipse dy²·hw² <= hw²·hh² − hh²·dx².
// The covered span of each scanline is solved with a monotonic boundary
// search; no point inside the ellipse is ever tested individually.
type EllipseBrush struct {
	HalfWidth, HalfHeight int
}

// RectBrush covers all offsets with |dx| <= hw and |dy| <= hh.
type RectBrush struct {
	HalfWidth, HalfHeight int
}

// Ellipse creates an ellipse brush with the given half-extents.
// Negative half-extents are treated as 0.
func Ellipse(hw, hh int) EllipseBrush {
	return EllipseBrush{HalfWidth: max(hw, 0), HalfHeight: max(hh, 0)}
}

// Rect creates a rectangle brush with the given half-extents.
// Negative half-extents are treated as 0.
func Rect(hw, hh int) RectBrush {
	return RectBrush{HalfWidth: max(hw, 0), HalfHeight: max(hh, 0)}
}

// brushMarker implements the sealed Brush interface.
func (EllipseBrush) brushMarker() {}

// brushMarker implements the sealed Brush interface.
func (RectBrush) brushMarker() {}

// HalfExtents implements Brush.
func (b EllipseBrush) HalfExtents() (hw, hh int) {
	return b.HalfWidth, b.HalfHeight
}

// HalfExtents implements Brush.
func (b RectBrush) HalfExtents() (hw, hh int) {
	return b.HalfWidth, b.HalfHeight
}

// Offsets implements Brush.
func (b EllipseBrush) Offsets(cx, cy int, fn func(x, y int)) {
	hw, hh := max(b.HalfWidth, 0), max(b.HalfHeight, 0)
	for dy := -hh; dy <= hh; dy++ {
		m := ellipseHalfWidth(hw, hh, dy)
		for dx := -m; dx <= m; dx++ {
			fn(cx+dx, cy+dy)
		}
	}
}

// Offsets implements Brush.
func (b RectBrush) Offsets(cx, cy int, fn func(x, y int)) {
	hw, hh := max(b.HalfWidth, 0), max(b.HalfHeight, 0)
	for dy := -hh; dy <= hh; dy++ {
		for dx := -hw; dx <= hw; dx++ {
			fn(cx+dx, cy+dy)
		}
	}
}

// Outline implements Brush. The right boundary is traced top to bottom and
// mirrored to the left boundary bottom to top, using the same per-scanline
// solver as Offsets, so outline and fill agree on every boundary pixel.
func (b EllipseBrush) Outline(cx, cy int) []Point {
	hw, hh := max(b.HalfWidth, 0), max(b.HalfHeight, 0)
	pts := make([]Point, 0, 4*hh+3)
	for dy := -hh; dy <= hh; dy++ {
		m := ellipseHalfWidth(hw, hh, dy)
		pts = append(pts, Point{X: cx + m, Y: cy + dy})
	}
	for dy := hh; dy >= -hh; dy-- {
		m := ellipseHalfWidth(hw, hh, dy)
		pts = append(pts, Point{X: cx - m, Y: cy + dy})
	}
	// Close the loop.
	pts = append(pts, pts[0])
	return pts
}

// Outline implements Brush.
func (b RectBrush) Outline(cx, cy int) []Point {
	hw, hh := max(b.HalfWidth, 0), max(b.HalfHeight, 0)
	return []Point{
		{X: cx - hw, Y: cy - hh},
		{X: cx + hw, Y: cy - hh},
		{X: cx + hw, Y: cy + hh},
		{X: cx - hw, Y: cy + hh},
		{X: cx - hw, Y: cy - hh},
	}
}
