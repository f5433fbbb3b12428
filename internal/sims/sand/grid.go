package sand

import "sandmaker/internal/core"

// Cell is one grid position.
type Cell struct {
	State   Kind
	Wetness uint8 // 0 dry .. 100 soaked
	// ComboTimer counts ticks until the cell may react again.
	ComboTimer uint8
}

const maxWetness = 100

// minGridSide is the smallest side that still leaves one interior cell.
const minGridSide = 3

// Grid is the fixed-size cell buffer. The outermost ring is Bedrock and is
// restored by the constructor and by Reset; nothing else writes it.
type Grid struct {
	*core.Grid[Cell]
	borderTimer uint8
}

// NewGrid allocates a w*h grid (clamped to at least 3x3) with an empty
// interior and a Bedrock border whose cooldown is borderTimer.
func NewGrid(w, h int, borderTimer uint8) *Grid {
	if w < minGridSide {
		w = minGridSide
	}
	if h < minGridSide {
		h = minGridSide
	}
	g := &Grid{Grid: core.NewGrid[Cell](w, h), borderTimer: borderTimer}
	g.Reset()
	return g
}

// Reset empties the interior and rebuilds the border.
func (g *Grid) Reset() {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := g.At(x, y)
			if g.OnBorder(x, y) {
				*c = Cell{State: Bedrock, ComboTimer: g.borderTimer}
				continue
			}
			*c = Cell{}
		}
	}
}

// OnBorder reports whether (x, y) is part of the permanent Bedrock ring.
func (g *Grid) OnBorder(x, y int) bool {
	return x == 0 || y == 0 || x == g.W-1 || y == g.H-1
}

// Interior reports whether (x, y) is inside the grid and off the border.
func (g *Grid) Interior(x, y int) bool {
	return x > 0 && y > 0 && x < g.W-1 && y < g.H-1
}

// Count returns how many cells hold kind k.
func (g *Grid) Count(k Kind) int {
	n := 0
	for _, c := range g.Cells() {
		if c.State == k {
			n++
		}
	}
	return n
}
