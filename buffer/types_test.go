package buffer

import "testing"

func TestClampPos(t *testing.T) {
	lineLen := func(row int) int { return []int{3, 0, 5}[row] }
	cases := []struct {
		in   Pos
		want Pos
	}{
		{in: Pos{Row: 1, GraphemeCol: 0}, want: Pos{Row: 1, GraphemeCol: 0}},
		{in: Pos{Row: -4, GraphemeCol: -1}, want: Pos{Row: 0, GraphemeCol: 0}},
		{in: Pos{Row: 0, GraphemeCol: 9}, want: Pos{Row: 0, GraphemeCol: 3}},
		{in: Pos{Row: 1, GraphemeCol: 2}, want: Pos{Row: 1, GraphemeCol: 0}},
		{in: Pos{Row: 7, GraphemeCol: 7}, want: Pos{Row: 2, GraphemeCol: 5}},
	}
	for _, tc := range cases {
		if got := ClampPos(tc.in, 3, lineLen); got != tc.want {
			t.Fatalf("ClampPos(%v)=%v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestClampPos_DegenerateInputs(t *testing.T) {
	if got := ClampPos(Pos{Row: 3, GraphemeCol: 3}, 0, nil); got != (Pos{}) {
		t.Fatalf("ClampPos with no rows=%v, want (0,0)", got)
	}
	if got := ClampPos(Pos{GraphemeCol: 2}, 1, func(int) int { return -1 }); got != (Pos{}) {
		t.Fatalf("ClampPos with negative line length=%v, want (0,0)", got)
	}
}

func TestClampInt(t *testing.T) {
	cases := []struct{ v, lo, hi, want int }{
		{v: 5, lo: 0, hi: 3, want: 3},
		{v: -2, lo: 0, hi: 3, want: 0},
		{v: 2, lo: 0, hi: 3, want: 2},
		{v: 9, lo: 0, hi: -1, want: 0},
	}
	for _, tc := range cases {
		if got := clampInt(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Fatalf("clampInt(%d,%d,%d)=%d, want %d", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}
