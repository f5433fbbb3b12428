package sand

import "testing"

// newTestWorld returns a seeded world whose reaction table is the identity,
// so tests opt into specific reactions with Reactions().Set.
func newTestWorld(t *testing.T, w, h int) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Seed = 7
	world := NewWithConfig(cfg)
	world.reactions.Clear()
	return world
}

func scanFrom(leftFirst bool) func() bool {
	return func() bool { return leftFirst }
}

func snapshot(w *World) []Cell {
	return append([]Cell(nil), w.grid.Cells()...)
}
