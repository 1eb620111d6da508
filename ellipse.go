package pixedit

// Discrete ellipse geometry for the ellipse brush.
//
// A point (dx, dy) is covered by an ellipse with half-extents (hw, hh)
// when dy²·hw² <= hw²·hh² − hh²·dx². The inequality is evaluated in exact
// integer arithmetic; there is no floating point anywhere in the brush
// path. The same inclusive inequality is used for both fill and outline,
// so the preview outline passes exactly through the outermost filled
// pixels of every scanline.

// ellipseContains reports whether offset (dx, dy) is inside the discrete
// ellipse with half-extents (hw, hh).
func ellipseContains(hw, hh, dx, dy int) bool {
	return dy*dy*hw*hw <= hw*hw*hh*hh-hh*hh*dx*dx
}

// ellipseHalfWidth returns the largest dx such that (dx, dy) is covered,
// for dy in [-hh, hh]. Coverage is monotone in |dx| for fixed dy, so the
// boundary is found with FindBoundary instead of per-pixel testing.
func ellipseHalfWidth(hw, hh, dy int) int {
	return FindBoundary(hw, func(dx int) bool {
		return ellipseContains(hw, hh, dx, dy)
	})
}
