package render

import (
	"image/color"
	"math"

	"sandmaker/internal/core"
)

// Source reports the display color of every grid cell.
type Source interface {
	Size() core.Size
	ColorAt(x, y int) color.NRGBA
}

// fillOpaqueRGBA writes the colors of src into buf row by row. Alpha is
// forced to 255: cells are drawn over the background without blending.
func fillOpaqueRGBA(buf []byte, src Source) {
	size := src.Size()
	i := 0
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := src.ColorAt(x, y)
			buf[i+0] = c.R
			buf[i+1] = c.G
			buf[i+2] = c.B
			buf[i+3] = 0xff
			i += 4
		}
	}
}

// fillMaskRGBA converts an intensity mask in [0, 1] into premultiplied RGBA
// pixels tinted by tint. Zero intensity is fully transparent.
func fillMaskRGBA(buf []byte, mask []float32, tint color.NRGBA) {
	const (
		maxAlpha      = 140.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)
	for i, v := range mask {
		base := i * 4
		intensity := clamp01(float64(v))
		if intensity == 0 {
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
			continue
		}
		alpha := math.Round(maxAlpha * math.Pow(intensity, intensityBias))
		glow := glowBase + glowRange*math.Sqrt(intensity)
		premul := glow * alpha / 255
		buf[base+0] = scaleComponent(tint.R, premul)
		buf[base+1] = scaleComponent(tint.G, premul)
		buf[base+2] = scaleComponent(tint.B, premul)
		buf[base+3] = uint8(alpha)
	}
}

func scaleComponent(v uint8, factor float64) uint8 {
	scaled := math.Round(float64(v) * factor)
	if scaled > 255 {
		return 255
	}
	if scaled < 0 {
		return 0
	}
	return uint8(scaled)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
