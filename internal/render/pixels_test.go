package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"sandmaker/internal/core"
	"sandmaker/internal/sims/sand"
)

type checker struct{ w, h int }

func (c checker) Size() core.Size { return core.Size{W: c.w, H: c.h} }

func (c checker) ColorAt(x, y int) color.NRGBA {
	return color.NRGBA{R: uint8(x), G: uint8(y), B: 9, A: 10}
}

func TestFillOpaqueRowMajor(t *testing.T) {
	src := checker{w: 3, h: 2}
	buf := make([]byte, 4*3*2)
	fillOpaqueRGBA(buf, src)

	assert.Equal(t, []byte{0, 0, 9, 255}, buf[0:4])
	assert.Equal(t, []byte{2, 1, 9, 255}, buf[4*5:4*6])
}

func TestFillOpaqueFromWorld(t *testing.T) {
	w := sand.New(5, 5)
	w.Paint(2, 2, sand.Sand, 0)
	size := w.Size()
	buf := make([]byte, 4*size.W*size.H)
	fillOpaqueRGBA(buf, w)

	base := 4 * (2*size.W + 2)
	dry := w.Materials().Properties(sand.Sand).DryColor
	assert.Equal(t, []byte{dry.R, dry.G, dry.B, 255}, buf[base:base+4], "half-transparent sand is drawn opaque")
}

func TestFillMask(t *testing.T) {
	buf := make([]byte, 4*3)
	fillMaskRGBA(buf, []float32{0, 1, 2}, color.NRGBA{R: 255, G: 128, A: 255})

	assert.Equal(t, []byte{0, 0, 0, 0}, buf[0:4])
	assert.Equal(t, uint8(140), buf[7])
	assert.Equal(t, buf[4:8], buf[8:12], "intensity clamps at 1")
	assert.LessOrEqual(t, buf[4], buf[7], "color channels are premultiplied")
	assert.Zero(t, buf[6])
}
