package sand

import "image/color"

// MaxBrushRadius is the largest radius the interactive controls offer.
const MaxBrushRadius = 8

// Brush is the user's paint selection: an index into PaintableKinds and a
// square radius.
type Brush struct {
	index  int
	radius int
}

// Material returns the selected paintable material.
func (b Brush) Material() Kind { return paintable[b.index] }

// Index returns the selected position in PaintableKinds.
func (b Brush) Index() int { return b.index }

// Radius returns the brush radius.
func (b Brush) Radius() int { return b.radius }

// SetRadius stores n, clamping negatives to zero.
func (b *Brush) SetRadius(n int) {
	if n < 0 {
		n = 0
	}
	b.radius = n
}

// Select chooses the paintable material at index i. Out-of-range indices
// leave the selection unchanged and report false.
func (b *Brush) Select(i int) bool {
	if i < 0 || i >= len(paintable) {
		return false
	}
	b.index = i
	return true
}

// Cycle advances to the next paintable material, wrapping around.
func (b *Brush) Cycle() {
	b.index = (b.index + 1) % len(paintable)
}

// Brush returns the current brush state.
func (w *World) Brush() Brush { return w.brush }

// BrushRadius returns the current brush radius.
func (w *World) BrushRadius() int { return w.brush.radius }

// SetBrushRadius sets the brush radius; negative values clamp to zero.
func (w *World) SetBrushRadius(n int) {
	if n < 0 {
		w.log.Warnf("brush radius %d clamped to 0", n)
	}
	w.brush.SetRadius(n)
}

// SelectMaterial selects the paintable material at index i.
func (w *World) SelectMaterial(i int) bool {
	if !w.brush.Select(i) {
		w.log.Warnf("material index %d out of range [0,%d)", i, len(paintable))
		return false
	}
	w.log.Debugf("selected %s", w.brush.Material())
	return true
}

// CycleMaterial selects the next paintable material.
func (w *World) CycleMaterial() {
	w.brush.Cycle()
	w.log.Debugf("selected %s", w.brush.Material())
}

// SelectedMaterial returns the material the brush paints.
func (w *World) SelectedMaterial() Kind { return w.brush.Material() }

// PaintableMaterials lists the names of the brush materials in order.
func (w *World) PaintableMaterials() []string {
	names := make([]string, len(paintable))
	for i, k := range paintable {
		names[i] = k.String()
	}
	return names
}

// CurrentMaterialName returns the name of the selected material.
func (w *World) CurrentMaterialName() string { return w.brush.Material().String() }

// CurrentMaterialColor returns the dry color of the selected material.
func (w *World) CurrentMaterialColor() color.NRGBA {
	return w.materials.Properties(w.brush.Material()).DryColor
}

// SetMaterialColor overrides the color of a paintable material.
func (w *World) SetMaterialColor(k Kind, c color.NRGBA) bool {
	if !w.materials.SetColor(k, c) {
		w.log.Warnf("color override rejected for %s", k)
		return false
	}
	w.log.Debugf("%s color set to %v", k, c)
	return true
}

// RandomizeMaterialColor gives the selected material a random color.
func (w *World) RandomizeMaterialColor() color.NRGBA {
	c, _ := w.materials.RandomizeColor(w.brush.Material(), w.rng)
	return c
}

// PaintBrush stamps the selected material at (x, y) with the brush radius.
func (w *World) PaintBrush(x, y int) int {
	return w.Paint(x, y, w.brush.Material(), w.brush.radius)
}

// Paint sets every Empty interior cell within the square of the given radius
// around (x, y) to k and returns how many cells changed. Occupied cells are
// left alone. Non-paintable kinds paint nothing; a negative radius is
// treated as zero.
func (w *World) Paint(x, y int, k Kind, radius int) int {
	if !IsPaintable(k) {
		w.log.Warnf("refusing to paint non-paintable %s", k)
		return 0
	}
	if radius < 0 {
		radius = 0
	}
	g := w.grid
	painted := 0
	for py := max(y-radius, 1); py <= min(y+radius, g.H-2); py++ {
		for px := max(x-radius, 1); px <= min(x+radius, g.W-2); px++ {
			c := g.At(px, py)
			if c.State != Empty {
				continue
			}
			c.State = k
			painted++
		}
	}
	return painted
}
