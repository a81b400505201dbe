//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"voidlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Host is what the HUD reads and adjusts.
type Host interface {
	core.ControlsProvider
	core.ControlAdjuster
}

// HUD renders the control panel to the right of the simulation view: one row
// per adjustable control with -/+ buttons, followed by informational lines.
type HUD struct {
	host       Host
	width      int
	panel      *ebiten.Image
	lastHeight int

	controls     []hudControlState
	info         []string
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided host and panel width.
func NewHUD(host Host, width int, title string) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{host: host, width: width, title: title}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if h.title == "" {
		h.title = "Controls"
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
	return h != nil && h.width > 0 && x >= h.panelOffsetX && x < h.panelOffsetX+h.width
}

// Update refreshes the control values from the host and handles clicks on
// the -/+ buttons. It reports whether a click was consumed.
func (h *HUD) Update(panelOffsetX int, info []string) bool {
	if h == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	h.info = info
	h.refreshControls()
	return h.handleInput()
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControls() {
	params := h.host.Controls()
	if len(h.controls) != len(params) {
		h.controls = make([]hudControlState, len(params))
	}
	for i, p := range params {
		h.controls[i].control = p
	}
	h.layoutControls()
}

func (h *HUD) handleInput() bool {
	if len(h.controls) == 0 {
		return false
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if !h.Contains(mx, my) {
		return false
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if pointInRect(px, my, state.minusRect) {
			h.host.AdjustControl(state.control.Key, -1)
			return true
		}
		if pointInRect(px, my, state.plusRect) {
			h.host.AdjustControl(state.control.Key, 1)
			return true
		}
	}
	return true
}

func (h *HUD) drawControls() {
	if h.panel == nil {
		return
	}
	face := basicfont.Face7x13
	labelColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)

		value := strconv.Itoa(state.control.Value) + " " + state.control.Unit
		bounds := text.BoundString(face, value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, value, face, valueX, labelY, labelColor)

		h.drawButton(state.minusRect, "-", state.control.CanDecrease())
		h.drawButton(state.plusRect, "+", state.control.CanIncrease())
	}

	infoY := controlsTop + len(h.controls)*lineHeight + infoSpacing
	for i, line := range h.info {
		text.Draw(h.panel, line, face, panelPadding, infoY+i*infoLineHeight, color.RGBA{R: 160, G: 160, B: 170, A: 255})
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

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ScaledParam

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 12
	infoLineHeight = 18
	controlsTop    = panelPadding + headerBaseline + 14
)
