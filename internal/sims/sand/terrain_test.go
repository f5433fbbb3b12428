package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedTerrainFillsInteriorOnly(t *testing.T) {
	w := newTestWorld(t, 60, 40)
	n := w.SeedTerrain(5)
	require.Positive(t, n)

	g := w.Grid()
	assert.Equal(t, n, g.Count(Sand)+g.Count(Rock)+g.Count(Water))
	assert.Equal(t, 2*60+2*38, g.Count(Bedrock))
	assert.Positive(t, g.Count(Sand))

	// The bottom interior row sits under every dune.
	for x := 1; x <= g.W-2; x++ {
		assert.NotEqual(t, Empty, g.At(x, g.H-2).State, "column %d", x)
	}
	assert.Zero(t, w.SeedTerrain(5), "a second pass with the same seed has nothing left to fill")
}

func TestSeedTerrainKeepsExistingMaterial(t *testing.T) {
	w := newTestWorld(t, 60, 40)
	w.Paint(30, 37, Acid, 0)
	n := w.SeedTerrain(5)
	assert.Equal(t, Acid, w.Grid().At(30, 37).State)
	g := w.Grid()
	assert.Equal(t, n, g.Count(Sand)+g.Count(Rock)+g.Count(Water))
}

func TestSeedTerrainDeterministic(t *testing.T) {
	a := newTestWorld(t, 48, 32)
	b := newTestWorld(t, 48, 32)
	a.SeedTerrain(17)
	b.SeedTerrain(17)
	assert.Equal(t, a.Dump(), b.Dump())
}

func TestTerrainOnReset(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 40, 30
	cfg.Params.Terrain = true
	w := NewWithConfig(cfg)
	seeded := w.Dump()
	assert.NotEqual(t, NewGrid(40, 30, 255).Count(Empty), w.Grid().Count(Empty))

	w.Reset(0)
	assert.Equal(t, seeded, w.Dump(), "reset with the configured seed regrows the same terrain")
}
