//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"sandmaker/internal/core"
	"sandmaker/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the material picker and parameter panel to the right of the
// sandbox view. Material and color changes go through the command queue;
// parameter adjustments call the world's setters directly because the HUD
// runs on the loop that owns the world.
type HUD struct {
	world       *sand.World
	queue       *sand.CommandQueue
	params      core.ParameterProvider
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter

	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	swatches   []image.Rectangle
	randomRect image.Rectangle
	controls   []hudControlState

	panelOffsetX int
	status       string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided world and panel width.
func NewHUD(world *sand.World, queue *sand.CommandQueue, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{world: world, queue: queue, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	var sim core.Sim = world
	if provider, ok := sim.(core.ParameterProvider); ok {
		h.params = provider
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			if ctrl.Key == "material" {
				continue
			}
			h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	h.layout()
	return h
}

// SetStatus replaces the status line shown under the title.
func (h *HUD) SetStatus(s string) {
	if h != nil {
		h.status = s
	}
}

// Update refreshes the cached parameter snapshot and handles HUD clicks.
// It reports whether the click was consumed by the panel.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	if h.params != nil {
		h.snapshot = h.params.Parameters()
	}
	h.refreshControlValues()
	return h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the sandbox view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.world.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawMaterials()
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		state.hasValue = false
		state.value = "--"
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		}
	}
}

func (h *HUD) handleInput() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	for i, rect := range h.swatches {
		if pointInRect(px, my, rect) {
			h.queue.Submit(sand.SelectMaterialCmd(i))
			return true
		}
	}
	if pointInRect(px, my, h.randomRect) {
		h.queue.Submit(sand.RandomizeColorCmd())
		return true
	}
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return true
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return true
		}
	}
	return true
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	switch state.control.Type {
	case core.ParamTypeInt:
		step := int(math.Round(state.control.Step))
		if step <= 0 {
			step = 1
		}
		target := state.control.ClampInt(state.intValue + direction*step)
		if target == state.intValue {
			return
		}
		if h.intSetter != nil && h.intSetter.SetIntParameter(state.control.Key, target) {
			state.intValue = target
			state.value = strconv.Itoa(target)
		}
	case core.ParamTypeFloat:
		step := state.control.Step
		if step <= 0 {
			step = 0.05
		}
		target := state.control.ClampFloat(state.floatValue + float64(direction)*step)
		if math.Abs(target-state.floatValue) < 1e-9 {
			return
		}
		if h.floatSetter != nil && h.floatSetter.SetFloatParameter(state.control.Key, target) {
			state.floatValue = target
			state.value = formatFloat(state.control, target)
		}
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	switch state.control.Type {
	case core.ParamTypeInt:
		return state.control.ClampInt(state.intValue+direction) != state.intValue
	case core.ParamTypeFloat:
		return math.Abs(state.control.ClampFloat(state.floatValue+float64(direction)*1e-6)-state.floatValue) > 0
	default:
		return false
	}
}

func (h *HUD) drawMaterials() {
	face := basicfont.Face7x13
	text.Draw(h.panel, "Sandmaker", face, panelPadding, panelPadding+headerBaseline, labelColor)
	if h.status != "" {
		text.Draw(h.panel, h.status, face, panelPadding, panelPadding+headerBaseline+statusSpacing, dimColor)
	}

	selected := h.world.Brush().Index()
	for i, k := range sand.PaintableKinds() {
		rect := h.swatches[i]
		if i == selected {
			h.fillRect(rect.Inset(-2), color.RGBA{R: 230, G: 230, B: 240, A: 255})
		}
		swatch := h.world.Materials().Properties(k).DryColor
		swatch.A = 255
		h.fillRect(image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+swatchSize, rect.Max.Y), swatch)
		h.fillRect(image.Rect(rect.Min.X+swatchSize, rect.Min.Y, rect.Max.X, rect.Max.Y), color.RGBA{R: 32, G: 34, B: 40, A: 255})
		text.Draw(h.panel, fmt.Sprintf("%d %s", i+1, k), face, rect.Min.X+swatchSize+buttonGap, rect.Min.Y+16, labelColor)
	}
	h.drawButton(h.randomRect, "Random color", true)
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)
		valueColor := labelColor
		if !state.hasValue {
			valueColor = dimColor
		}
		valueX := state.minusRect.Min.X - buttonGap - text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", state.hasValue && h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", state.hasValue && h.canAdjust(state, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) fillRect(rect image.Rectangle, c color.Color) {
	if h.pixel == nil || rect.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) layout() {
	if h.width <= 0 {
		return
	}
	top := materialsTop
	h.swatches = h.swatches[:0]
	for range sand.PaintableKinds() {
		h.swatches = append(h.swatches, image.Rect(panelPadding, top, h.width-panelPadding, top+swatchSize))
		top += swatchSize + buttonGap
	}
	h.randomRect = image.Rect(panelPadding, top, h.width-panelPadding, top+buttonSize)
	top += buttonSize + sectionGap

	for i := range h.controls {
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
		top += lineHeight
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	precision := 1
	switch step := ctrl.Step; {
	case step <= 0:
		precision = 2
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	swatchSize     = 22
	sectionGap     = 18
	headerBaseline = 18
	statusSpacing  = 18
	labelBaseline  = 24
	materialsTop   = panelPadding + headerBaseline + statusSpacing + 14
)
