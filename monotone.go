package pixedit

// FindBoundary locates the boundary of a monotone boolean predicate over
// the integer domain [0, hi]: it returns the largest v with pred(v) true.
//
// The caller guarantees pred(0) is true and that pred is monotone — once
// it becomes false it stays false for all larger values. The search is a
// binary chop that terminates in at most ceil(log2(hi))+1 probes and
// handles hi == 0 without looping.
//
// The ellipse brush uses it to solve the covered half-width per scanline,
// but it is a standalone numeric utility.
func FindBoundary(hi int, pred func(int) bool) int {
	if hi < 0 {
		return 0
	}
	if pred(hi) {
		return hi
	}
	// Invariant: pred(lo) true, pred(hi) false.
	lo := 0
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if pred(mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
