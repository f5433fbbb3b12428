//go:build ebiten

package ui

import (
	"image/color"

	"sandmaker/internal/render"
	"sandmaker/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	wetnessTint  = color.NRGBA{R: 64, G: 164, B: 223, A: 255}
	cooldownTint = color.NRGBA{R: 255, G: 120, B: 40, A: 255}
)

// Overlay draws optional debugging visuals on top of the sandbox: per-cell
// wetness (key 1) and reaction cooldown (key 2).
type Overlay struct {
	world   *sand.World
	scale   int
	painter *render.GridPainter

	showWetness  bool
	showCooldown bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(world *sand.World, scale int) *Overlay {
	size := world.Size()
	return &Overlay{
		world:   world,
		scale:   scale,
		painter: render.NewGridPainter(size.W, size.H),
	}
}

// Update toggles the overlays.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showWetness = !o.showWetness
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showCooldown = !o.showCooldown
	}
}

// Draw renders the enabled overlays onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showWetness {
		o.painter.BlitMask(screen, o.world.WetnessMask(), wetnessTint, o.scale)
	}
	if o.showCooldown {
		o.painter.BlitMask(screen, o.world.CooldownMask(), cooldownTint, o.scale)
	}
}
