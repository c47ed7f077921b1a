//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"worldgen/internal/core"
	"worldgen/internal/sims/worldmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the generation menu: one numeric field per parameter control,
// a Generate button and a tab that slides the panel in and out.
type HUD struct {
	sim         core.Sim
	width       int
	viewW       int
	panel       *ebiten.Image
	lastHeight  int
	snapshot    core.ParameterSnapshot
	slide       *MenuSlide
	onGenerate  func()
	controls    []hudControlState
	intSetter   core.IntParameterSetter
	focused     int
	generateBtn image.Rectangle
	title       string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation. The panel is width
// pixels wide and sits against the right edge of a view viewW pixels wide.
// onGenerate runs when the Generate button is pressed.
func NewHUD(sim core.Sim, width, viewW int, onGenerate func()) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, viewW: viewW, onGenerate: onGenerate, focused: -1}
	h.slide = NewMenuSlide(float32(viewW-width), float32(viewW))
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.title = buildTitle(sim)
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	return h
}

// Update refreshes the cached parameter snapshot, advances the slide by dt
// seconds and handles menu input. It reports whether the HUD consumed the
// mouse this frame.
func (h *HUD) Update(dt float32) bool {
	if h == nil {
		return false
	}
	h.slide.Update(dt)
	if provider, ok := h.sim.(parameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
	h.refreshControlValues()
	h.handleTyping()
	return h.handleClick()
}

// Editing reports whether a field has keyboard focus.
func (h *HUD) Editing() bool { return h != nil && h.focused >= 0 }

// Contains reports whether screen point (x, y) is over the panel or its tab.
func (h *HUD) Contains(x, y int) bool {
	if h == nil {
		return false
	}
	if pointInRect(x, y, h.tabRect()) {
		return true
	}
	left := int(h.slide.X())
	return x >= left && x < left+h.width && y >= 0 && y < h.lastHeight
}

// Draw paints the menu panel at its current slide position.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 230})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.slide.X()), 0)
	screen.DrawImage(h.panel, op)

	label := ">"
	if !h.slide.IsOpen() {
		label = "<"
	}
	h.drawButton(screen, h.tabRect(), label, true)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Menu"
	}
	return fmt.Sprintf("%s menu", sim.Name())
}

func (h *HUD) tabRect() image.Rectangle {
	x := int(h.slide.X())
	return image.Rect(x-tabWidth, panelPadding, x, panelPadding+tabHeight)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		if i == h.focused {
			continue
		}
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = param.Value
		state.hasValue = true
	}
}

func (h *HUD) handleTyping() {
	if h.focused < 0 {
		return
	}
	state := &h.controls[h.focused]
	for _, r := range ebiten.AppendInputChars(nil) {
		if (r >= '0' && r <= '9') || (r == '-' && state.value == "") {
			state.value += string(r)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && state.value != "" {
		state.value = state.value[:len(state.value)-1]
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		h.commitFocused()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.focused = -1
	}
}

// commitFocused stores the text of the focused field. Empty or unparsable
// text becomes 0.
func (h *HUD) commitFocused() {
	if h.focused < 0 {
		return
	}
	state := &h.controls[h.focused]
	h.focused = -1
	if h.intSetter == nil {
		return
	}
	value := state.control.Clamp(worldmap.ParseField(state.value))
	h.intSetter.SetIntParameter(state.control.Key, value)
}

func (h *HUD) handleClick() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if pointInRect(mx, my, h.tabRect()) {
		h.commitFocused()
		h.slide.Toggle()
		return true
	}
	if !h.Contains(mx, my) {
		h.commitFocused()
		return false
	}
	px := mx - int(h.slide.X())
	if pointInRect(px, my, h.generateBtn) {
		h.commitFocused()
		if h.onGenerate != nil {
			h.onGenerate()
		}
		return true
	}
	for i := range h.controls {
		state := &h.controls[i]
		switch {
		case pointInRect(px, my, state.fieldRect):
			h.commitFocused()
			h.focused = i
			state.value = ""
		case state.hasValue && pointInRect(px, my, state.minusRect):
			h.commitFocused()
			h.applyAdjustment(state, -1)
		case state.hasValue && pointInRect(px, my, state.plusRect):
			h.commitFocused()
			h.applyAdjustment(state, 1)
		default:
			continue
		}
		return true
	}
	h.commitFocused()
	return true
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if h.intSetter == nil || direction == 0 {
		return
	}
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.control.Clamp(state.intValue + direction*step)
	if target == state.intValue {
		return
	}
	if h.intSetter.SetIntParameter(state.control.Key, target) {
		state.intValue = target
		state.value = strconv.Itoa(target)
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for _, group := range h.snapshot.Groups {
		if group.Summary != "" {
			text.Draw(h.panel, group.Summary, face, panelPadding, headerY+infoSpacing/2, color.RGBA{R: 160, G: 160, B: 170, A: 255})
			break
		}
	}
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})

		fieldBg := color.RGBA{R: 36, G: 38, B: 46, A: 255}
		if i == h.focused {
			fieldBg = color.RGBA{R: 60, G: 64, B: 84, A: 255}
		}
		h.fillRect(h.panel, state.fieldRect, fieldBg)
		value := state.value
		if i == h.focused {
			value += "_"
		}
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue && i != h.focused {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, value)
		valueX := state.fieldRect.Max.X - fieldInset - bounds.Dx()
		text.Draw(h.panel, value, face, valueX, labelY, valueColor)

		h.drawButton(h.panel, state.minusRect, "-", state.hasValue && h.canAdjust(state, -1))
		h.drawButton(h.panel, state.plusRect, "+", state.hasValue && h.canAdjust(state, 1))
	}
	h.drawButton(h.panel, h.generateBtn, "Generate", h.onGenerate != nil)
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if h.intSetter == nil {
		return false
	}
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	return state.control.Clamp(state.intValue+direction*step) != state.intValue
}

func (h *HUD) fillRect(dst *ebiten.Image, rect image.Rectangle, c color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(dst *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	h.fillRect(dst, rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		fieldRect := image.Rect(minusRect.Min.X-buttonGap-fieldWidth, buttonY, minusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].fieldRect = fieldRect
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
	top := controlsTop + len(h.controls)*lineHeight + lineHeight/2
	h.generateBtn = image.Rect(panelPadding, top, h.width-panelPadding, top+buttonSize)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	fieldRect image.Rectangle
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	fieldWidth     = 64
	fieldInset     = 4
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 30
	tabWidth       = 20
	tabHeight      = 40
)
