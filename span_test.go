package pixedit

import "testing"

func TestSpanContains(t *testing.T) {
	tests := []struct {
		name string
		s    Span
		v    int
		want bool
	}{
		{"inside", Sp(-3, 12), 0, true},
		{"low edge", Sp(-3, 12), -3, true},
		{"high edge", Sp(-3, 12), 12, true},
		{"below", Sp(-3, 12), -4, false},
		{"above", Sp(-3, 12), 13, false},
		{"single", Sp(7, 7), 7, true},
		{"empty", Sp(5, 4), 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Contains(tt.v); got != tt.want {
				t.Errorf("%v.Contains(%d) = %v, want %v", tt.s, tt.v, got, tt.want)
			}
		})
	}
}

func TestSpanLen(t *testing.T) {
	tests := []struct {
		s    Span
		want int
	}{
		{Sp(0, 0), 1},
		{Sp(-3, 3), 7},
		{Sp(5, 4), 0},
	}
	for _, tt := range tests {
		if got := tt.s.Len(); got != tt.want {
			t.Errorf("%v.Len() = %d, want %d", tt.s, got, tt.want)
		}
	}
}

func TestSpanIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{"overlap", Sp(0, 10), Sp(5, 15), Sp(5, 10)},
		{"contained", Sp(0, 10), Sp(3, 4), Sp(3, 4)},
		{"disjoint", Sp(0, 3), Sp(5, 9), Sp(5, 3)},
		{"identical", Sp(-2, 2), Sp(-2, 2), Sp(-2, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if tt.want.Empty() {
				if !got.Empty() {
					t.Errorf("%v.Intersect(%v) = %v, want empty", tt.a, tt.b, got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("%v.Intersect(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 16, 0},
		{15, 16, 0},
		{16, 16, 1},
		{-1, 16, -1},
		{-16, 16, -1},
		{-17, 16, -2},
		{33, 16, 2},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}
