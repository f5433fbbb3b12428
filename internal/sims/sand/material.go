package sand

import (
	"image/color"
	"strings"

	"github.com/hsluv/hsluv-go"

	"sandmaker/internal/core"
)

// Kind enumerates the material a cell can hold. The numeric value doubles as
// the display value returned by World.Cells.
type Kind uint8

const (
	Empty Kind = iota
	Sand
	Rock
	Bedrock
	Water
	Acid

	kindCount
)

var kindNames = [kindCount]string{
	Empty:   "EMPTY",
	Sand:    "SAND",
	Rock:    "ROCK",
	Bedrock: "BEDROCK",
	Water:   "WATER",
	Acid:    "ACID",
}

// String returns the upper-case material name.
func (k Kind) String() string {
	if !k.Valid() {
		return "UNKNOWN"
	}
	return kindNames[k]
}

// Valid reports whether k is one of the enumerated kinds.
func (k Kind) Valid() bool { return k < kindCount }

// Kinds lists every material kind in ordinal order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind resolves a case-insensitive material name.
func ParseKind(name string) (Kind, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return Empty, false
}

// paintable is the ordered set of materials a user may place with the brush.
var paintable = [...]Kind{Sand, Water, Rock, Acid}

// PaintableKinds returns the brush materials in selection order.
func PaintableKinds() []Kind {
	out := make([]Kind, len(paintable))
	copy(out, paintable[:])
	return out
}

// IsPaintable reports whether k can be placed with the brush.
func IsPaintable(k Kind) bool {
	for _, p := range paintable {
		if p == k {
			return true
		}
	}
	return false
}

// Material holds the physical properties of one material kind.
type Material struct {
	DryColor color.NRGBA
	WetColor color.NRGBA

	Liquid      bool
	Submersible bool

	Density       int
	ReactionDelay int
	// FallSpeed marks the mobility category; zero means the material never
	// moves on its own.
	FallSpeed int
}

// Mobile reports whether the material takes part in movement.
func (m Material) Mobile() bool { return m.FallSpeed > 0 }

// Color overrides derive the wet shade by darkening the dry one.
const (
	overrideWetDarken = 30
	randomWetDarken   = 25
)

// Registry is the per-world material property table.
type Registry struct {
	mats [kindCount]Material
}

// NewRegistry returns a registry populated with the reference materials.
func NewRegistry() *Registry {
	r := &Registry{}
	r.mats[Empty] = Material{
		DryColor: color.NRGBA{R: 13, G: 13, B: 13, A: 255},
		WetColor: color.NRGBA{R: 13, G: 13, B: 13, A: 255},
	}
	r.mats[Sand] = Material{
		DryColor:      color.NRGBA{R: 226, G: 202, B: 118, A: 128},
		WetColor:      color.NRGBA{R: 145, G: 129, B: 73, A: 255},
		Submersible:   true,
		Density:       5,
		ReactionDelay: 5,
		FallSpeed:     1,
	}
	r.mats[Rock] = Material{
		DryColor:      color.NRGBA{R: 33, G: 33, B: 33, A: 255},
		WetColor:      color.NRGBA{R: 15, G: 15, B: 15, A: 255},
		Density:       10,
		ReactionDelay: 150,
	}
	r.mats[Bedrock] = Material{
		DryColor:      color.NRGBA{R: 10, G: 10, B: 10, A: 255},
		WetColor:      color.NRGBA{R: 10, G: 10, B: 10, A: 255},
		Density:       500,
		ReactionDelay: 500,
	}
	r.mats[Water] = Material{
		DryColor:      color.NRGBA{R: 0, G: 84, B: 119, A: 255},
		WetColor:      color.NRGBA{R: 0, G: 84, B: 119, A: 255},
		Liquid:        true,
		Submersible:   true,
		Density:       3,
		ReactionDelay: 5,
		FallSpeed:     1,
	}
	r.mats[Acid] = Material{
		DryColor:      color.NRGBA{R: 176, G: 191, B: 26, A: 255},
		WetColor:      color.NRGBA{R: 176, G: 191, B: 26, A: 255},
		Liquid:        true,
		Submersible:   true,
		Density:       4,
		ReactionDelay: 5,
		FallSpeed:     1,
	}
	return r
}

// Properties returns the material for k. Kinds outside the enumeration
// yield the zero Material.
func (r *Registry) Properties(k Kind) Material {
	if !k.Valid() {
		return Material{}
	}
	return r.mats[k]
}

// delayTimer converts a material's reaction delay into a cell cooldown,
// saturating at the uint8 range.
func (r *Registry) delayTimer(k Kind) uint8 {
	d := r.Properties(k).ReactionDelay
	switch {
	case d <= 0:
		return 0
	case d > 255:
		return 255
	default:
		return uint8(d)
	}
}

// SetColor overrides the dry color of a paintable material and derives its
// wet color. Non-paintable kinds are rejected.
func (r *Registry) SetColor(k Kind, c color.NRGBA) bool {
	if !IsPaintable(k) {
		return false
	}
	r.mats[k].DryColor = c
	r.mats[k].WetColor = darken(c, overrideWetDarken)
	return true
}

// RandomizeColor assigns a random saturated color to a paintable material and
// returns it. Hues are drawn in HSLuv so every pick has similar lightness.
func (r *Registry) RandomizeColor(k Kind, rng *core.RNG) (color.NRGBA, bool) {
	if !IsPaintable(k) {
		return color.NRGBA{}, false
	}
	hue := rng.Float64() * 360
	sat := 70 + rng.Float64()*30
	light := 45 + rng.Float64()*30
	cr, cg, cb := hsluv.HsluvToRGB(hue, sat, light)
	c := color.NRGBA{R: unit8(cr), G: unit8(cg), B: unit8(cb), A: 255}
	r.mats[k].DryColor = c
	r.mats[k].WetColor = darken(c, randomWetDarken)
	return c, true
}

func unit8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

func darken(c color.NRGBA, by uint8) color.NRGBA {
	sub := func(v uint8) uint8 {
		if v < by {
			return 0
		}
		return v - by
	}
	return color.NRGBA{R: sub(c.R), G: sub(c.G), B: sub(c.B), A: c.A}
}
