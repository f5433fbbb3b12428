package sand

import (
	"strconv"

	"sandmaker/internal/core"
)

var (
	_ core.Sim                       = (*World)(nil)
	_ core.ParameterProvider         = (*World)(nil)
	_ core.ParameterControlsProvider = (*World)(nil)
	_ core.IntParameterSetter        = (*World)(nil)
	_ core.FloatParameterSetter      = (*World)(nil)
)

// Parameters reports the current engine tunables grouped for display.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.grid.W),
				intParam("h", "Height", w.grid.H),
				int64Param("seed", "Seed", w.cfg.Seed),
				{Key: "ticks", Label: "Ticks", Type: core.ParamTypeInt, Value: strconv.FormatUint(w.ticks, 10)},
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				intParam("material", "Material index", w.brush.index),
				{Key: "material_name", Label: "Material", Type: core.ParamTypeString, Value: w.CurrentMaterialName()},
				intParam("brush", "Brush radius", w.brush.radius),
			},
		},
		{
			Name: "Movement",
			Params: []core.Parameter{
				intParam("sink_odds", "Sink-through odds (1 in N)", p.SinkThroughOdds),
			},
		},
		{
			Name: "Reactions",
			Params: []core.Parameter{
				intParam("reshuffle_odds", "Reshuffle odds (1 in N)", p.ReshuffleOdds),
			},
		},
		{
			Name: "Wetness",
			Params: []core.Parameter{
				intParam("liquid_wet_gain", "Liquid contact gain", p.LiquidWetGain),
				intParam("spread_threshold", "Spread threshold", p.SpreadThreshold),
				intParam("spread_wet_gain", "Spread gain", p.SpreadWetGain),
				intParam("give_back_odds", "Give-back odds (1 in N)", p.GiveBackOdds),
				intParam("give_back_amount", "Give-back amount", p.GiveBackAmount),
				intParam("dry_odds", "Drying odds (1 in N)", p.DryOdds),
				intParam("dry_amount", "Drying amount", p.DryAmount),
			},
		},
		{
			Name: "Terrain",
			Params: []core.Parameter{
				boolParam("terrain", "Seed on reset", p.Terrain),
				floatParam("terrain_scale", "Noise scale", p.TerrainScale),
				floatParam("terrain_dune_height", "Dune height", p.TerrainDuneHeight),
				floatParam("terrain_rock_threshold", "Rock threshold", p.TerrainRockThreshold),
				floatParam("terrain_water_threshold", "Water threshold", p.TerrainWaterThreshold),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

var parameterControls = []core.ParameterControl{
	{Key: "material", Label: "Material", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: float64(len(paintable) - 1), HasMin: true, HasMax: true},
	{Key: "brush", Label: "Brush size", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaxBrushRadius, HasMin: true, HasMax: true},
	{Key: "reshuffle_odds", Label: "Reshuffle 1/N", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 100, HasMin: true, HasMax: true},
	{Key: "sink_odds", Label: "Sink-through 1/N", Type: core.ParamTypeInt, Step: 25, Min: 1, Max: 1000, HasMin: true, HasMax: true},
	{Key: "liquid_wet_gain", Label: "Wet gain", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: maxWetness, HasMin: true, HasMax: true},
	{Key: "dry_odds", Label: "Drying 1/N", Type: core.ParamTypeInt, Step: 50, Min: 1, Max: 5000, HasMin: true, HasMax: true},
	{Key: "terrain_dune_height", Label: "Dune height", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 0.9, HasMin: true, HasMax: true},
}

// ParameterControls lists the HUD-adjustable parameters.
func (w *World) ParameterControls() []core.ParameterControl {
	return append([]core.ParameterControl(nil), parameterControls...)
}

func controlFor(key string) (core.ParameterControl, bool) {
	for _, c := range parameterControls {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

// SetIntParameter updates an integer parameter, clamping to its control bounds.
func (w *World) SetIntParameter(key string, value int) bool {
	ctrl, ok := controlFor(key)
	if !ok || ctrl.Type != core.ParamTypeInt {
		return false
	}
	value = ctrl.ClampInt(value)
	p := &w.cfg.Params
	switch key {
	case "material":
		return w.SelectMaterial(value)
	case "brush":
		w.SetBrushRadius(value)
	case "reshuffle_odds":
		p.ReshuffleOdds = value
	case "sink_odds":
		p.SinkThroughOdds = value
	case "liquid_wet_gain":
		p.LiquidWetGain = value
	case "dry_odds":
		p.DryOdds = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point parameter, clamping to its bounds.
func (w *World) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := controlFor(key)
	if !ok || ctrl.Type != core.ParamTypeFloat {
		return false
	}
	value = ctrl.ClampFloat(value)
	switch key {
	case "terrain_dune_height":
		w.cfg.Params.TerrainDuneHeight = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
