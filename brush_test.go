package pixedit

import "testing"

// collect gathers the covered coordinate set of a brush at a center.
func collect(b Brush, cx, cy int) map[Point]bool {
	set := make(map[Point]bool)
	b.Offsets(cx, cy, func(x, y int) {
		set[Point{X: x, Y: y}] = true
	})
	return set
}

func TestRectBrushCoverage(t *testing.T) {
	set := collect(Rect(1, 1), 5, 5)
	if len(set) != 9 {
		t.Fatalf("Rect(1,1) covers %d pixels, want 9", len(set))
	}
	for y := 4; y <= 6; y++ {
		for x := 4; x <= 6; x++ {
			if !set[Point{X: x, Y: y}] {
				t.Errorf("missing (%d, %d)", x, y)
			}
		}
	}
}

func TestRectBrushNonSquare(t *testing.T) {
	set := collect(Rect(2, 0), 0, 0)
	if len(set) != 5 {
		t.Fatalf("Rect(2,0) covers %d pixels, want 5", len(set))
	}
	for dx := -2; dx <= 2; dx++ {
		if !set[Point{X: dx, Y: 0}] {
			t.Errorf("missing (%d, 0)", dx)
		}
	}
}

func TestEllipseBrushMatchesBruteForce(t *testing.T) {
	// The scanline enumeration must agree with per-pixel evaluation of
	// the ellipse inequality for every offset in the bounding box.
	for hw := 0; hw <= 12; hw++ {
		for hh := 0; hh <= 12; hh++ {
			set := collect(Ellipse(hw, hh), 0, 0)
			for dy := -hh - 1; dy <= hh+1; dy++ {
				for dx := -hw - 1; dx <= hw+1; dx++ {
					want := abs(dx) <= hw && abs(dy) <= hh &&
						ellipseContains(hw, hh, dx, dy)
					if got := set[Point{X: dx, Y: dy}]; got != want {
						t.Fatalf("hw=%d hh=%d (%d, %d): covered=%v, want %v",
							hw, hh, dx, dy, got, want)
					}
				}
			}
		}
	}
}

func TestEllipseBrushDegenerateColumn(t *testing.T) {
	// Ellipse(0, 3) is a vertical line: dx=0, dy in [-3, 3], at any center.
	for _, c := range []Point{{0, 0}, {17, -4}, {-100, 250}} {
		set := collect(Ellipse(0, 3), c.X, c.Y)
		if len(set) != 7 {
			t.Fatalf("center %v: covers %d pixels, want 7", c, len(set))
		}
		for dy := -3; dy <= 3; dy++ {
			if !set[Point{X: c.X, Y: c.Y + dy}] {
				t.Errorf("center %v: missing (%d, %d)", c, c.X, c.Y+dy)
			}
		}
	}
}

func TestEllipseBrushDegeneratePoint(t *testing.T) {
	set := collect(Ellipse(0, 0), 3, 3)
	if len(set) != 1 || !set[Point{X: 3, Y: 3}] {
		t.Fatalf("Ellipse(0,0) covers %v, want exactly (3,3)", set)
	}
}

func TestEllipseOutlineAgreesWithFill(t *testing.T) {
	// Every outline point must be a covered boundary pixel: covered by the
	// fill, with its outward horizontal neighbor uncovered.
	for hw := 0; hw <= 10; hw++ {
		for hh := 0; hh <= 10; hh++ {
			b := Ellipse(hw, hh)
			fill := collect(b, 0, 0)
			for _, p := range b.Outline(0, 0) {
				if !fill[p] {
					t.Fatalf("hw=%d hh=%d: outline point %v not filled", hw, hh, p)
				}
				if p.X != 0 {
					out := p.X + 1
					if p.X < 0 {
						out = p.X - 1
					}
					if fill[Point{X: out, Y: p.Y}] {
						t.Fatalf("hw=%d hh=%d: outline point %v is not on the boundary", hw, hh, p)
					}
				}
			}
		}
	}
}

func TestEllipseOutlineIsLinearInExtent(t *testing.T) {
	b := Ellipse(50, 30)
	pts := b.Outline(0, 0)
	// Two mirrored boundary columns per scanline plus the closing point.
	want := 2*(2*30+1) + 1
	if len(pts) != want {
		t.Errorf("outline has %d points, want %d", len(pts), want)
	}
}

func TestRectOutline(t *testing.T) {
	pts := Rect(2, 1).Outline(10, 10)
	want := []Point{{8, 9}, {12, 9}, {12, 11}, {8, 11}, {8, 9}}
	if len(pts) != len(want) {
		t.Fatalf("outline has %d points, want %d", len(pts), len(want))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestBrushNegativeExtentsClamp(t *testing.T) {
	if set := collect(Ellipse(-3, -3), 0, 0); len(set) != 1 {
		t.Errorf("Ellipse(-3,-3) covers %d pixels, want 1", len(set))
	}
	if set := collect(Rect(-1, 2), 0, 0); len(set) != 5 {
		t.Errorf("Rect(-1,2) covers %d pixels, want 5", len(set))
	}
}
