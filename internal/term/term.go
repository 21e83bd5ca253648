// Package term presents a board in a terminal using tcell, packing two grid
// rows into each character cell with the upper half block.
package term

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"mazeglow/internal/core"
	"mazeglow/internal/sim"
	"mazeglow/internal/ui"
)

const (
	frameInterval = 16 * time.Millisecond
	halfBlock     = '▀'
	statusRows    = 1
)

// cellSetter is the part of tcell.Screen the frame painter needs.
type cellSetter interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// FitSize returns the largest grid that fits a terminal of cols x rows,
// leaving room for the status line.
func FitSize(cols, rows int) core.Size {
	h := (rows - statusRows) * 2
	return core.Size{W: max(cols, 3), H: max(h, 3)}
}

// ScreenSize reports the terminal dimensions without taking over the screen.
func ScreenSize() (core.Size, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return core.Size{}, err
	}
	if err := s.Init(); err != nil {
		return core.Size{}, err
	}
	w, h := s.Size()
	s.Fini()
	return core.Size{W: w, H: h}, nil
}

func toColor(c color.RGBA) tcell.Color {
	if c.A == 0 {
		return tcell.ColorBlack
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// paint writes the RGBA buffer of a w x h grid into dst, two rows per line.
func paint(dst cellSetter, buf []byte, w, h int) {
	at := func(x, y int) tcell.Color {
		if y >= h {
			return tcell.ColorBlack
		}
		i := 4 * (x + y*w)
		return toColor(color.RGBA{R: buf[i], G: buf[i+1], B: buf[i+2], A: buf[i+3]})
	}
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			style := tcell.StyleDefault.Foreground(at(x, y)).Background(at(x, y+1))
			dst.SetContent(x, y/2, halfBlock, nil, style)
		}
	}
}

func drawText(dst cellSetter, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		dst.SetContent(x, y, r, nil, style)
		x++
	}
}

// Presenter owns the tcell screen and paces the board.
type Presenter struct {
	screen tcell.Screen
	board  *sim.Board
	step   *core.FixedStep
	buf    []byte
	status bool
}

// New takes over the terminal for board.
func New(board *sim.Board) (*Presenter, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initialising terminal: %w", err)
	}
	s := board.Size()
	return &Presenter{
		screen: screen,
		board:  board,
		step:   core.NewFixedStep(board.Config().TPS),
		buf:    make([]byte, 4*s.W*s.H),
		status: true,
	}, nil
}

// Close restores the terminal.
func (p *Presenter) Close() { p.screen.Fini() }

// Run drives the board until the user quits.
func (p *Presenter) Run() error {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			quit, err := p.handle(ev)
			if err != nil || quit {
				return err
			}
		case now := <-ticker.C:
			for n := p.step.Due(now); n > 0; n-- {
				p.board.Tick()
			}
			p.draw()
		}
	}
}

func (p *Presenter) handle(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		var action sim.Action
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			action = sim.ActionQuit
		case tcell.KeyRune:
			action = sim.ActionForKey(ev.Rune())
		}
		switch action {
		case sim.ActionQuit:
			return true, nil
		case sim.ActionPanel:
			p.status = !p.status
			p.screen.Clear()
		case sim.ActionNone:
		default:
			if err := p.board.Apply(action); err != nil {
				log.Printf("applying key %q: %v", ev.Rune(), err)
			}
		}
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return false, nil
}

func (p *Presenter) draw() {
	s := p.board.Size()
	p.board.FillRGBA(p.buf)
	paint(p.screen, p.buf, s.W, s.H)
	if p.status {
		row := (s.H + 1) / 2
		line := ui.StatusLine(p.board.Parameters(), "mode", "ticks", "lit", "hue", "paused")
		drawText(p.screen, 0, row, line, tcell.StyleDefault.Foreground(tcell.ColorSilver))
	}
	p.screen.Show()
}
