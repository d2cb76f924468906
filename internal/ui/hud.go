//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"duel-ca/pkg/core"
)

// SnapshotProvider exposes the values the HUD lists.
type SnapshotProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the scoreboard panel to the right of the simulation view and
// the +/- buttons of its adjustable controls.
type HUD struct {
	sources []SnapshotProvider
	width   int
	height  int
	panel   *ebiten.Image
	groups  []core.ParameterGroup

	controls     []hudControlState
	setter       core.IntParameterSetter
	panelOffsetX int

	pixel *ebiten.Image
}

// NewHUD constructs a HUD of the given panel size listing the snapshots of
// every source in order. Controls are looked up by key in those snapshots
// and adjusted through setter.
func NewHUD(width, height int, setter core.IntParameterSetter, controls []core.ParameterControl, sources ...SnapshotProvider) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sources: sources, width: width, height: height, setter: setter}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.controls = make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		h.controls[i] = hudControlState{control: ctrl, value: "--"}
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Contains reports whether the screen point lies on the panel.
func (h *HUD) Contains(x, y int) bool {
	if h == nil || h.width <= 0 {
		return false
	}
	return x >= h.panelOffsetX && x < h.panelOffsetX+h.width && y >= 0 && y < h.height
}

// Update refreshes the cached snapshots and handles button clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.groups = h.groups[:0]
	for _, src := range h.sources {
		h.groups = append(h.groups, src.Parameters().Groups...)
	}
	h.layout()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the HUD panel at the given horizontal offset.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 || h.height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.panel.Bounds().Dy() != h.height {
		h.panel = ebiten.NewImage(h.width, h.height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawGroups()
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		for _, g := range h.groups {
			for _, p := range g.Params {
				if p.Key != state.control.Key || p.Type != core.ParamTypeInt {
					continue
				}
				parsed, err := strconv.Atoi(p.Value)
				if err != nil {
					continue
				}
				state.intValue = parsed
				state.value = p.Value
				state.hasValue = true
			}
		}
	}
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || h.setter == nil {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.control.Clamp(state.intValue + direction*step)
	if target == state.intValue {
		return
	}
	if h.setter.SetIntParameter(state.control.Key, target) {
		state.intValue = target
		state.value = strconv.Itoa(target)
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if h.setter == nil {
		return false
	}
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	return state.control.Clamp(state.intValue+direction*step) != state.intValue
}

// layout assigns rows: each group has a header line followed by one line per
// parameter; controls follow the last group.
func (h *HUD) layout() {
	top := panelPadding
	for _, g := range h.groups {
		top += lineHeight * (1 + len(g.Params))
		top += groupGap
	}
	for i := range h.controls {
		rowTop := top + i*controlHeight
		buttonY := rowTop + (controlHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = rowTop
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func (h *HUD) drawGroups() {
	face := basicfont.Face7x13
	y := panelPadding
	for _, g := range h.groups {
		y += lineHeight
		text.Draw(h.panel, g.Name, face, panelPadding, y, toneColor(g.Tone))
		for _, p := range g.Params {
			y += lineHeight
			text.Draw(h.panel, p.Label, face, panelPadding+indent, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
		}
		y += groupGap
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", state.hasValue && h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", state.hasValue && h.canAdjust(state, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func toneColor(tone string) color.Color {
	switch tone {
	case "red":
		return color.RGBA{R: 255, G: 80, B: 80, A: 255}
	case "blue":
		return color.RGBA{R: 90, G: 140, B: 255, A: 255}
	case "paused":
		return color.RGBA{R: 240, G: 220, B: 60, A: 255}
	case "running":
		return color.RGBA{R: 80, G: 220, B: 120, A: 255}
	default:
		return color.RGBA{R: 120, G: 220, B: 230, A: 255}
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control  core.ParameterControl
	value    string
	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding  = 12
	lineHeight    = 16
	groupGap      = 10
	indent        = 8
	controlHeight = 36
	buttonSize    = 24
	buttonGap     = 6
	labelBaseline = 22
)
