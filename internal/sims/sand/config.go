package sand

import "strconv"

// Params holds the tunable odds and amounts used by the update engine.
// Odds are "one in N" denominators.
type Params struct {
	BrushRadius int

	ReshuffleOdds   int
	SinkThroughOdds int

	LiquidWetGain   int
	SpreadThreshold int
	SpreadWetGain   int
	GiveBackOdds    int
	GiveBackAmount  int
	DryOdds         int
	DryAmount       int

	Terrain               bool
	TerrainScale          float64
	TerrainDuneHeight     float64
	TerrainRockThreshold  float64
	TerrainWaterThreshold float64
}

// Config controls the sandbox dimensions and engine parameters.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the reference 150x150 configuration.
func DefaultConfig() Config {
	return Config{
		Width:  150,
		Height: 150,
		Seed:   1,
		Params: Params{
			BrushRadius:           1,
			ReshuffleOdds:         10,
			SinkThroughOdds:       200,
			LiquidWetGain:         5,
			SpreadThreshold:       80,
			SpreadWetGain:         1,
			GiveBackOdds:          10,
			GiveBackAmount:        2,
			DryOdds:               300,
			DryAmount:             1,
			TerrainScale:          24,
			TerrainDuneHeight:     0.3,
			TerrainRockThreshold:  0.35,
			TerrainWaterThreshold: 0.3,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	positiveInt := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				*dst = parsed
			}
		}
	}
	nonNegativeInt := func(key string, dst *int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				*dst = parsed
			}
		}
	}
	float := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}

	positiveInt("w", &c.Width)
	positiveInt("h", &c.Height)
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	nonNegativeInt("brush", &c.Params.BrushRadius)
	positiveInt("reshuffle_odds", &c.Params.ReshuffleOdds)
	positiveInt("sink_odds", &c.Params.SinkThroughOdds)
	nonNegativeInt("liquid_wet_gain", &c.Params.LiquidWetGain)
	nonNegativeInt("spread_threshold", &c.Params.SpreadThreshold)
	nonNegativeInt("spread_wet_gain", &c.Params.SpreadWetGain)
	positiveInt("give_back_odds", &c.Params.GiveBackOdds)
	nonNegativeInt("give_back_amount", &c.Params.GiveBackAmount)
	positiveInt("dry_odds", &c.Params.DryOdds)
	nonNegativeInt("dry_amount", &c.Params.DryAmount)
	if v, ok := cfg["terrain"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Params.Terrain = parsed
		}
	}
	float("terrain_scale", &c.Params.TerrainScale)
	float("terrain_dune_height", &c.Params.TerrainDuneHeight)
	float("terrain_rock_threshold", &c.Params.TerrainRockThreshold)
	float("terrain_water_threshold", &c.Params.TerrainWaterThreshold)
	if c.Params.TerrainScale <= 0 {
		c.Params.TerrainScale = DefaultConfig().Params.TerrainScale
	}
	if c.Params.SpreadThreshold > maxWetness {
		c.Params.SpreadThreshold = maxWetness
	}
	return c
}
