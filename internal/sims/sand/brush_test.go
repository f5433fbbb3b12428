package sand

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaintFillsSquare(t *testing.T) {
	w := newTestWorld(t, 12, 12)
	n := w.Paint(5, 5, Sand, 1)
	assert.Equal(t, 9, n)
	assert.Equal(t, 9, w.Grid().Count(Sand))
	for y := 4; y <= 6; y++ {
		for x := 4; x <= 6; x++ {
			assert.Equal(t, Sand, w.Grid().At(x, y).State)
		}
	}
}

func TestPaintLeavesOccupiedCells(t *testing.T) {
	w := newTestWorld(t, 12, 12)
	*w.Grid().At(5, 5) = Cell{State: Rock, Wetness: 12}
	n := w.Paint(5, 5, Sand, 1)
	assert.Equal(t, 8, n)
	assert.Equal(t, Cell{State: Rock, Wetness: 12}, *w.Grid().At(5, 5))
}

func TestPaintClipsAtBorder(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	assert.Equal(t, 4, w.Paint(1, 1, Water, 1))
	assert.Equal(t, 0, w.Paint(-5, -5, Water, 2))
	assert.Equal(t, 1, w.Paint(20, 20, Water, 12), "only the overlap with the interior is painted")
	assert.Equal(t, 2*10+2*8, w.Grid().Count(Bedrock))
}

func TestPaintRadiusZeroAndNegative(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	assert.Equal(t, 1, w.Paint(3, 3, Acid, 0))
	assert.Equal(t, 1, w.Paint(6, 6, Acid, -4))
	assert.Equal(t, 0, w.Paint(4, 4, Bedrock, 2))
	assert.Equal(t, 0, w.Paint(4, 4, Empty, 2))
}

func TestBrushSelection(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	assert.Equal(t, Sand, w.SelectedMaterial())
	assert.Equal(t, []string{"SAND", "WATER", "ROCK", "ACID"}, w.PaintableMaterials())

	require.True(t, w.SelectMaterial(3))
	assert.Equal(t, "ACID", w.CurrentMaterialName())
	assert.False(t, w.SelectMaterial(4))
	assert.False(t, w.SelectMaterial(-1))
	assert.Equal(t, Acid, w.SelectedMaterial(), "invalid selections keep the current one")

	w.CycleMaterial()
	assert.Equal(t, Sand, w.SelectedMaterial(), "cycling wraps around")

	w.SetBrushRadius(-3)
	assert.Equal(t, 0, w.BrushRadius())
	w.SetBrushRadius(2)
	assert.Equal(t, 25, w.PaintBrush(5, 5))
}

func TestMaterialColorOverrides(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	require.True(t, w.SelectMaterial(1))
	c := w.RandomizeMaterialColor()
	assert.Equal(t, c, w.CurrentMaterialColor())
	assert.False(t, w.SetMaterialColor(Bedrock, c))
}

func TestPaintHugeRadiusVisitsOnlyInterior(t *testing.T) {
	w := newTestWorld(t, 12, 12)
	w.SetBrushRadius(1 << 20)

	done := make(chan int, 1)
	go func() { done <- w.PaintBrush(5, 5) }()
	select {
	case n := <-done:
		assert.Equal(t, 10*10, n)
	case <-time.After(3 * time.Second):
		t.Fatal("painting with a huge radius did not finish")
	}
	assert.Equal(t, 2*12+2*10, w.Grid().Count(Bedrock))
}
