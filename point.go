package pixedit

// Point represents an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Pointer is a host pointer position in the same coordinate space the
// backend renders into. It is floating point because hosts commonly report
// sub-pixel positions; the editor floors it to a pixel cell.
type Pointer struct {
	X, Y float64
}
