package tui

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sandmaker/internal/sims/sand"
)

func newTestFrontend(t *testing.T) (*Frontend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(20, 12)

	cfg := sand.DefaultConfig()
	cfg.Width = 20
	cfg.Height = 20
	world := sand.NewWithConfig(cfg)
	return New(screen, world, Options{TPS: 60, Seed: 1}, nil), screen
}

func TestMouseClickPaintsThroughQueue(t *testing.T) {
	f, screen := newTestFrontend(t)
	defer screen.Fini()
	f.paused = true

	c := f.handleEvent(tcell.NewEventMouse(5, 3, tcell.Button1, tcell.ModNone))
	assert.Equal(t, ctlNone, c)
	assert.Equal(t, 1, f.Queue().Len())
	assert.Zero(t, f.world.Grid().Count(sand.Sand), "nothing changes before the loop drains")

	f.update()
	assert.Equal(t, 9, f.world.Grid().Count(sand.Sand))
	assert.Equal(t, sand.Sand, f.world.Grid().At(5, 6).State, "terminal row 3 maps to grid row 6")
}

func TestKeysMapToCommandsAndControls(t *testing.T) {
	f, screen := newTestFrontend(t)
	defer screen.Fini()

	key := func(r rune) control {
		return f.handleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}

	assert.Equal(t, ctlNone, key('s'))
	assert.Equal(t, ctlNone, key('3'))
	f.update()
	assert.Equal(t, sand.Rock, f.world.SelectedMaterial(), "commands apply in submission order")

	assert.Equal(t, ctlQuit, key('q'))
	assert.Equal(t, ctlQuit, f.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.Equal(t, ctlPause, key(' '))
	assert.Equal(t, ctlStep, key('n'))
	assert.Equal(t, ctlBrushUp, key(']'))
	assert.Equal(t, ctlBrushDown, f.handleEvent(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone)))
	assert.Equal(t, ctlResize, f.handleEvent(tcell.NewEventResize(30, 16)), "resize is handled by the loop")
}

func TestControlsApplyOnLoop(t *testing.T) {
	f, screen := newTestFrontend(t)
	defer screen.Fini()

	assert.True(t, f.apply(ctlBrushUp))
	assert.Equal(t, 2, f.world.BrushRadius())
	for i := 0; i < 5; i++ {
		f.apply(ctlBrushDown)
	}
	assert.Equal(t, 0, f.world.BrushRadius())

	assert.True(t, f.apply(ctlPause))
	assert.True(t, f.paused)
	f.world.Paint(10, 2, sand.Sand, 0)
	f.update()
	assert.Equal(t, uint64(0), f.world.Ticks(), "paused worlds do not advance")

	f.apply(ctlStep)
	f.update()
	assert.Equal(t, uint64(1), f.world.Ticks())

	assert.True(t, f.apply(ctlTerrain))
	assert.Positive(t, f.world.Grid().Count(sand.Sand))
	assert.True(t, f.apply(ctlFullReset))
	assert.Equal(t, 18*18, f.world.Grid().Count(sand.Empty))

	assert.True(t, f.apply(ctlResize))
	assert.False(t, f.apply(ctlQuit))
}

func TestDrawUsesHalfBlocks(t *testing.T) {
	f, screen := newTestFrontend(t)
	defer screen.Fini()
	*f.world.Grid().At(4, 2) = sand.Cell{State: sand.Water}

	f.draw()

	r, _, style, _ := screen.GetContent(4, 1)
	assert.Equal(t, halfBlock, r)
	fg, bg, _ := style.Decompose()
	water := f.world.Materials().Properties(sand.Water).DryColor
	empty := f.world.Materials().Properties(sand.Empty).DryColor
	assert.Equal(t, tcell.NewRGBColor(int32(water.R), int32(water.G), int32(water.B)), fg)
	assert.Equal(t, tcell.NewRGBColor(int32(empty.R), int32(empty.G), int32(empty.B)), bg)

	_, _, border, _ := screen.GetContent(0, 0)
	fg, _, _ = border.Decompose()
	bedrock := f.world.Materials().Properties(sand.Bedrock).DryColor
	assert.Equal(t, tcell.NewRGBColor(int32(bedrock.R), int32(bedrock.G), int32(bedrock.B)), fg)

	r, _, _, _ = screen.GetContent(3, 10)
	assert.Equal(t, 'S', r, "status line starts with the material name")
}

func TestRunQuitsOnKey(t *testing.T) {
	f, screen := newTestFrontend(t)
	defer screen.Fini()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- f.Run(ctx) }()
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-ctx.Done():
		t.Fatal("Run did not return after quit key")
	}
}
