//go:build ebiten

package ui

import (
	"image/color"

	"mazeglow/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the parameter panel to the right of the maze view.
type HUD struct {
	src        parameterProvider
	width      int
	panel      *ebiten.Image
	lastHeight int
	lines      []string
	visible    bool
}

// NewHUD constructs a HUD reading from src with the given panel width.
func NewHUD(src parameterProvider, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{src: src, width: width, visible: true}
}

// Width returns the horizontal space the panel occupies, zero when hidden.
func (h *HUD) Width() int {
	if h == nil || !h.visible {
		return 0
	}
	return h.width
}

// Toggle shows or hides the panel.
func (h *HUD) Toggle() {
	if h != nil {
		h.visible = !h.visible
	}
}

// Update refreshes the cached rows from the parameter source.
func (h *HUD) Update() {
	if h == nil || !h.visible {
		return
	}
	h.lines = append(Lines(h.src.Parameters()), "")
	h.lines = append(h.lines, KeyHelp...)
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || !h.visible || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	for _, line := range h.lines {
		if y > height-panelPadding {
			break
		}
		c := valueColor
		if len(line) > 0 && line[0] != ' ' {
			c = headerColor
		}
		text.Draw(h.panel, line, face, panelPadding, y, c)
		y += lineHeight
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	valueColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding = 12
	lineHeight   = 16
)
