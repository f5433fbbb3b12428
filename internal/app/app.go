//go:build ebiten

package app

import (
	"fmt"

	"sandmaker/internal/core"
	"sandmaker/internal/render"
	"sandmaker/internal/sims/sand"
	"sandmaker/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sandbox world to the ebiten.Game interface. Input is turned
// into commands, drained between ticks, and the world is stepped at a fixed
// rate independent of the frame rate.
type Game struct {
	world   *sand.World
	queue   *sand.CommandQueue
	clock   *core.FixedStep
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	log     core.Logger

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided world.
func New(world *sand.World, cfg Config, log core.Logger) *Game {
	size := world.Size()
	queue := sand.NewCommandQueue(256)
	scale := max(cfg.CellSize, 1)
	return &Game{
		world:    world,
		queue:    queue,
		clock:    core.NewFixedStep(cfg.TPS),
		painter:  render.NewGridPainter(size.W, size.H),
		hud:      ui.NewHUD(world, queue, cfg.HUDWidth),
		overlay:  ui.NewOverlay(world, scale),
		log:      log,
		scale:    scale,
		hudWidth: cfg.HUDWidth,
		seed:     cfg.Seed,
	}
}

// Queue exposes the command queue so other goroutines can drive the world.
func (g *Game) Queue() *sand.CommandQueue { return g.queue }

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.queue.Submit(sand.ResetCmd())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.world.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.queue.Submit(sand.CycleMaterialCmd())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.queue.Submit(sand.RandomizeColorCmd())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.seed++
		g.queue.Submit(sand.SeedTerrainCmd(g.seed))
	}
	for i, key := range []ebiten.Key{ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8} {
		if inpututil.IsKeyJustPressed(key) {
			g.queue.Submit(sand.SelectMaterialCmd(i))
		}
	}
	g.handleBrushSize()

	g.overlay.Update()
	consumed := g.hud.Update(g.gridWidth())
	if !consumed {
		g.handlePaint()
	}

	g.world.Drain(g.queue)

	switch {
	case g.paused && g.tickOnce:
		g.world.Step()
		g.clock.Advance()
	case g.paused:
		g.clock.Advance()
	default:
		for n := g.clock.Advance(); n > 0; n-- {
			g.world.Step()
		}
	}
	g.tickOnce = false
	g.hud.SetStatus(g.status())
	return nil
}

func (g *Game) handleBrushSize() {
	delta := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		delta++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		delta--
	}
	if _, wy := ebiten.Wheel(); wy > 0 {
		delta++
	} else if wy < 0 {
		delta--
	}
	if delta == 0 {
		return
	}
	radius := min(max(g.world.BrushRadius()+delta, 0), sand.MaxBrushRadius)
	g.queue.Submit(sand.BrushRadiusCmd(radius))
}

func (g *Game) handlePaint() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.gridWidth() {
		return
	}
	g.queue.Submit(sand.PaintAt(mx/g.scale, my/g.scale))
}

func (g *Game) status() string {
	state := "running"
	if g.paused {
		state = "paused"
	}
	return fmt.Sprintf("%s  t=%d  r=%d", state, g.world.Ticks(), g.world.BrushRadius())
}

func (g *Game) gridWidth() int { return g.world.Size().W * g.scale }

// Draw renders the current world state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
