package sand

import (
	"math"

	perlin "github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

const (
	perlinAlpha = 2
	perlinBeta  = 2
	perlinN     = 3
)

// SeedTerrain fills empty interior cells with a generated landscape: a sand
// dune profile from Perlin noise, rock outcrops inside the dunes and water
// pockets above them from OpenSimplex noise. Existing material is kept.
// It returns how many cells were filled.
func (w *World) SeedTerrain(seed int64) int {
	p := w.cfg.Params
	g := w.grid
	scale := p.TerrainScale
	if scale <= 0 {
		scale = DefaultConfig().Params.TerrainScale
	}

	dunes := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed)
	rocks := opensimplex.NewNormalized(seed)
	pools := opensimplex.NewNormalized(seed + 1)

	interiorH := g.H - 2
	duneMax := p.TerrainDuneHeight * float64(interiorH)
	filled := 0
	for x := 1; x <= g.W-2; x++ {
		// Noise2D is roughly within [-1, 1]; map it to [0.25, 1] of the dune height.
		n := dunes.Noise2D(float64(x)/scale, 0)
		height := int(math.Round(duneMax * (0.625 + 0.375*clampUnit(n))))
		surface := g.H - 1 - height
		for y := 1; y <= g.H-2; y++ {
			c := g.At(x, y)
			if c.State != Empty {
				continue
			}
			switch {
			case y >= surface:
				c.State = Sand
				if rocks.Eval2(float64(x)/(scale/3), float64(y)/(scale/3)) < p.TerrainRockThreshold {
					c.State = Rock
				}
			case y >= surface-interiorH/6 && pools.Eval2(float64(x)/scale, float64(y)/scale) < p.TerrainWaterThreshold:
				c.State = Water
			default:
				continue
			}
			filled++
		}
	}
	w.log.Infof("seeded terrain (seed %d): %d cells", seed, filled)
	return filled
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
