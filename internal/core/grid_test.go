package core

import "testing"

func TestGridIndexRowMajor(t *testing.T) {
	g := NewGrid[uint8](4, 3)
	if got := g.Index(0, 0); got != 0 {
		t.Fatalf("Index(0,0)=%d, expected 0", got)
	}
	if got := g.Index(3, 2); got != 11 {
		t.Fatalf("Index(3,2)=%d, expected 11", got)
	}
	*g.At(1, 2) = 7
	if got := g.Cells()[g.Index(1, 2)]; got != 7 {
		t.Fatalf("At did not write through to backing slice, got %d", got)
	}
}

func TestGridInBounds(t *testing.T) {
	g := NewGrid[int](5, 2)
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{4, 1, true},
		{5, 1, false},
		{-1, 0, false},
		{0, 2, false},
	}
	for _, tc := range cases {
		if got := g.InBounds(tc.x, tc.y); got != tc.want {
			t.Fatalf("InBounds(%d,%d)=%v, expected %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestGridClampsDegenerateSize(t *testing.T) {
	g := NewGrid[int](0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
}

func TestGridFillAndClear(t *testing.T) {
	g := NewGrid[int](3, 3)
	g.Fill(9)
	for i, v := range g.Cells() {
		if v != 9 {
			t.Fatalf("cell %d=%d after Fill, expected 9", i, v)
		}
	}
	g.Clear()
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d=%d after Clear, expected 0", i, v)
		}
	}
}
