package sand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sandmaker/internal/core"
)

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":                "40",
		"h":                "-3",
		"seed":             "12",
		"brush":            "3",
		"terrain":          "true",
		"terrain_scale":    "-1",
		"spread_threshold": "500",
		"dry_odds":         "often",
		"sink_odds":        "50",
	})
	assert.Equal(t, 40, c.Width)
	assert.Equal(t, 150, c.Height)
	assert.Equal(t, int64(12), c.Seed)
	assert.Equal(t, 3, c.Params.BrushRadius)
	assert.True(t, c.Params.Terrain)
	assert.Equal(t, 24.0, c.Params.TerrainScale)
	assert.Equal(t, maxWetness, c.Params.SpreadThreshold)
	assert.Equal(t, 300, c.Params.DryOdds)
	assert.Equal(t, 50, c.Params.SinkThroughOdds)

	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestRegisteredFactory(t *testing.T) {
	assert.Contains(t, core.SimNames(), SimName)
	sim, err := core.New(SimName, map[string]string{"w": "32", "h": "24"})
	require.NoError(t, err)
	require.IsType(t, &World{}, sim)
	assert.Equal(t, "sand", sim.Name())
	assert.Equal(t, core.Size{W: 32, H: 24}, sim.Size())
	assert.Len(t, sim.Cells(), 32*24)
}

func TestParameters(t *testing.T) {
	w := newTestWorld(t, 20, 20)

	snap := w.Parameters()
	p, ok := snap.Lookup("material_name")
	require.True(t, ok)
	assert.Equal(t, "SAND", p.Value)

	assert.True(t, w.SetIntParameter("brush", 20))
	assert.Equal(t, MaxBrushRadius, w.BrushRadius())

	assert.True(t, w.SetIntParameter("material", 2))
	assert.Equal(t, Rock, w.SelectedMaterial())

	assert.True(t, w.SetIntParameter("sink_odds", 0))
	assert.Equal(t, 1, w.Config().Params.SinkThroughOdds)

	assert.False(t, w.SetIntParameter("terrain_dune_height", 1))
	assert.True(t, w.SetFloatParameter("terrain_dune_height", 2))
	assert.Equal(t, 0.9, w.Config().Params.TerrainDuneHeight)
	assert.False(t, w.SetIntParameter("nope", 1))

	p, ok = w.Parameters().Lookup("brush")
	require.True(t, ok)
	assert.Equal(t, "8", p.Value)
	assert.Len(t, w.ParameterControls(), len(parameterControls))
}

func TestParameterInterfacesThroughSim(t *testing.T) {
	var sim core.Sim = newTestWorld(t, 20, 20)

	controls, ok := sim.(core.ParameterControlsProvider)
	require.True(t, ok)
	setter, ok := sim.(core.IntParameterSetter)
	require.True(t, ok)
	params, ok := sim.(core.ParameterProvider)
	require.True(t, ok)

	var brush core.ParameterControl
	for _, c := range controls.ParameterControls() {
		if c.Key == "brush" {
			brush = c
		}
	}
	require.Equal(t, "brush", brush.Key)
	assert.Equal(t, 0, brush.ClampInt(-3), "brush control reaches radius zero")

	assert.True(t, setter.SetIntParameter("brush", 0))
	p, ok := params.Parameters().Lookup("brush")
	require.True(t, ok)
	assert.Equal(t, "0", p.Value)

	floats, ok := sim.(core.FloatParameterSetter)
	require.True(t, ok)
	assert.True(t, floats.SetFloatParameter("terrain_dune_height", 0.5))
}
