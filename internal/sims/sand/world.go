package sand

import "sandmaker/internal/core"

// SimName is the registry key of the sandbox.
const SimName = "sand"

// World is the complete simulation state: grid, materials, reaction table,
// brush and random stream. It is owned by a single loop and is not safe for
// concurrent use; other goroutines talk to it through a CommandQueue.
type World struct {
	cfg Config

	grid      *Grid
	materials *Registry
	reactions *ReactionTable
	brush     Brush

	display []uint8
	ticks   uint64

	rng *core.RNG
	log core.Logger

	// leftFirst picks the scan direction of a row; nil means a fair coin.
	leftFirst func() bool
}

// New returns a sandbox with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a sandbox configured from the provided options.
func NewWithConfig(cfg Config) *World {
	materials := NewRegistry()
	rng := core.NewRNG(cfg.Seed)
	grid := NewGrid(cfg.Width, cfg.Height, materials.delayTimer(Bedrock))
	cfg.Width, cfg.Height = grid.W, grid.H
	w := &World{
		cfg:       cfg,
		grid:      grid,
		materials: materials,
		reactions: NewReactionTable(rng),
		display:   make([]uint8, grid.W*grid.H),
		rng:       rng,
		log:       core.NopLogger{},
	}
	w.brush.SetRadius(cfg.Params.BrushRadius)
	if cfg.Params.Terrain {
		w.SeedTerrain(cfg.Seed)
	}
	return w
}

// SetLogger replaces the world's logger. A nil logger discards output.
func (w *World) SetLogger(l core.Logger) {
	if l == nil {
		l = core.NopLogger{}
	}
	w.log = l
}

// Name returns the simulation identifier.
func (w *World) Name() string { return SimName }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Grid exposes the cell buffer.
func (w *World) Grid() *Grid { return w.grid }

// Materials exposes the material registry.
func (w *World) Materials() *Registry { return w.materials }

// Reactions exposes the reaction table.
func (w *World) Reactions() *ReactionTable { return w.reactions }

// Ticks returns the number of completed Step calls since the last Reset.
func (w *World) Ticks() uint64 { return w.ticks }

// Cells exposes the material kind of every cell as display values.
func (w *World) Cells() []uint8 {
	for i, c := range w.grid.Cells() {
		w.display[i] = uint8(c.State)
	}
	return w.display
}

// Reset reseeds the random stream, re-rolls the reaction table and empties
// the grid. A zero seed reuses the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective)
	w.reactions.Clear()
	w.reactions.Reroll(w.rng)
	w.ResetGrid()
	if w.cfg.Params.Terrain {
		w.SeedTerrain(effective)
	}
}

// ResetGrid sets every interior cell back to Empty and restores the border.
func (w *World) ResetGrid() {
	w.grid.Reset()
	w.ticks = 0
	w.log.Infof("grid reset (%dx%d)", w.grid.W, w.grid.H)
}

func init() {
	core.Register(SimName, func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
