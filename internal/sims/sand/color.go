package sand

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorOf resolves the display color of c. Empty cells always show the Empty
// color and lose any residual wetness; other cells blend from dry to wet by
// their wetness fraction.
func (r *Registry) ColorOf(c *Cell) color.NRGBA {
	m := r.Properties(c.State)
	if c.State == Empty {
		c.Wetness = 0
		return m.DryColor
	}
	t := float64(c.Wetness) / maxWetness
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return lerpNRGBA(m.DryColor, m.WetColor, t)
}

func lerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.NRGBA{R: r, G: g, B: bl, A: uint8(alpha + 0.5)}
}

// ColorAt resolves the display color of the cell at (x, y).
func (w *World) ColorAt(x, y int) color.NRGBA {
	return w.materials.ColorOf(w.grid.At(x, y))
}

// ForEachCell visits every cell in row-major order with its kind and resolved
// color. Intended for renderers, once per frame.
func (w *World) ForEachCell(fn func(x, y int, k Kind, c color.NRGBA)) {
	g := w.grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			cell := g.At(x, y)
			col := w.materials.ColorOf(cell)
			fn(x, y, cell.State, col)
		}
	}
}

// WetnessMask returns each cell's wetness as a fraction in [0, 1].
func (w *World) WetnessMask() []float32 {
	cells := w.grid.Cells()
	out := make([]float32, len(cells))
	for i, c := range cells {
		out[i] = float32(c.Wetness) / maxWetness
	}
	return out
}

// CooldownMask returns each interior cell's reaction cooldown normalized to
// the longest interior cooldown currently present. The border is left at 0.
func (w *World) CooldownMask() []float32 {
	g := w.grid
	out := make([]float32, g.W*g.H)
	longest := uint8(0)
	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			if t := g.At(x, y).ComboTimer; t > longest {
				longest = t
			}
		}
	}
	if longest == 0 {
		return out
	}
	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			out[g.Index(x, y)] = float32(g.At(x, y).ComboTimer) / float32(longest)
		}
	}
	return out
}
