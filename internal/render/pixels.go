package render

import (
	"image"
	"image/color"

	"mazeglow/internal/core"
)

// HueMode selects how a phase maps onto the six-sector colour wheel.
type HueMode uint8

const (
	// HueSectors walks the wheel once per period, one sector every 60 phases.
	HueSectors HueMode = iota
	// HueAlternate picks the sector from the phase within its 60-step ramp.
	HueAlternate
)

func (m HueMode) String() string {
	if m == HueAlternate {
		return "alternate"
	}
	return "sectors"
}

const sectorSpan = core.PhasePeriod / 6

var (
	wallColor    = color.RGBA{}
	unreachColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// sector channel masks: red, green, blue.
var sectorChannels = [6][3]bool{
	{true, false, false},
	{true, true, false},
	{false, true, false},
	{false, true, true},
	{false, false, true},
	{true, false, true},
}

// PixelFor returns the colour of a single cell. Walls are transparent, open
// unreached cells opaque white.
func PixelFor(c core.Cell, mode HueMode) color.RGBA {
	if c.Wall {
		return wallColor
	}
	if c.Value < 0 {
		return unreachColor
	}
	ramp := c.Value % sectorSpan
	bucket := c.Value / sectorSpan
	if mode == HueAlternate {
		bucket = ramp
	}
	v := uint8(255 - ramp*255/sectorSpan)
	px := color.RGBA{A: 255}
	if bucket < len(sectorChannels) {
		ch := sectorChannels[bucket]
		if ch[0] {
			px.R = v
		}
		if ch[1] {
			px.G = v
		}
		if ch[2] {
			px.B = v
		}
	}
	return px
}

// Paint maps every cell to its colour, index-aligned with g.Cells().
func Paint(g *core.Grid, mode HueMode) []color.RGBA {
	cells := g.Cells()
	out := make([]color.RGBA, len(cells))
	for i, c := range cells {
		out[i] = PixelFor(c, mode)
	}
	return out
}

// FillRGBA writes the grid as row-major RGBA bytes into buf, which must hold
// 4*W*H bytes.
func FillRGBA(buf []byte, g *core.Grid, mode HueMode) {
	for i, c := range g.Cells() {
		px := PixelFor(c, mode)
		base := i * 4
		buf[base+0] = px.R
		buf[base+1] = px.G
		buf[base+2] = px.B
		buf[base+3] = px.A
	}
}

// Image paints the grid into a new RGBA image of the grid's size.
func Image(g *core.Grid, mode HueMode) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.W, g.H))
	FillRGBA(img.Pix, g, mode)
	return img
}
