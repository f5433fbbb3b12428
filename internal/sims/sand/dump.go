package sand

import "strings"

var glyphs = [kindCount]byte{
	Empty:   '.',
	Sand:    'S',
	Rock:    'R',
	Bedrock: 'B',
	Water:   'W',
	Acid:    'A',
}

// Glyph returns the single-character symbol used by Dump and Load.
func (k Kind) Glyph() byte {
	if !k.Valid() {
		return '?'
	}
	return glyphs[k]
}

// Dump renders the grid as one line of glyphs per row.
func (w *World) Dump() string {
	g := w.grid
	var b strings.Builder
	b.Grow((g.W + 1) * g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			b.WriteByte(g.At(x, y).State.Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Load places the interior of a glyph picture onto the grid, with the first
// line at interior row 1 and the first column at interior column 1. Unknown
// glyphs and cells falling on the border are skipped. Cells are written with
// zero wetness and cooldown.
func (w *World) Load(picture string) {
	g := w.grid
	lines := strings.Split(strings.Trim(picture, "\n"), "\n")
	for row, line := range lines {
		for col := 0; col < len(line); col++ {
			k, ok := kindForGlyph(line[col])
			if !ok {
				continue
			}
			x, y := col+1, row+1
			if !g.Interior(x, y) {
				continue
			}
			*g.At(x, y) = Cell{State: k}
		}
	}
}

func kindForGlyph(b byte) (Kind, bool) {
	for k, gl := range glyphs {
		if gl == b && Kind(k) != Bedrock {
			return Kind(k), true
		}
	}
	return Empty, false
}
