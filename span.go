package pixedit

import "fmt"

// Span is an inclusive range of signed integer coordinates.
// A Span with Hi < Lo is empty.
type Span struct {
	Lo, Hi int
}

// Sp is a convenience function to create a Span.
func Sp(lo, hi int) Span {
	return Span{Lo: lo, Hi: hi}
}

// Contains reports whether v lies within the span.
func (s Span) Contains(v int) bool {
	return v >= s.Lo && v <= s.Hi
}

// Empty reports whether the span contains no values.
func (s Span) Empty() bool {
	return s.Hi < s.Lo
}

// Len returns the number of values in the span, 0 if empty.
func (s Span) Len() int {
	if s.Empty() {
		return 0
	}
	return s.Hi - s.Lo + 1
}

// Intersect returns the overlap of two spans.
// The result is empty if the spans do not overlap.
func (s Span) Intersect(o Span) Span {
	r := s
	if o.Lo > r.Lo {
		r.Lo = o.Lo
	}
	if o.Hi < r.Hi {
		r.Hi = o.Hi
	}
	return r
}

// String returns a human-readable representation, e.g. "[-3, 12]".
func (s Span) String() string {
	return fmt.Sprintf("[%d, %d]", s.Lo, s.Hi)
}

// floorDiv divides a by b rounding toward negative infinity.
// Tile indices are derived with floor division so that negative pixel
// coordinates map to distinct negative tiles instead of sharing tile 0
// with the positive side.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
