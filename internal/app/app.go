//go:build ebiten

// Package app hosts the ebiten window presenter.
package app

import (
	"errors"
	"log"

	"mazeglow/internal/render"
	"mazeglow/internal/sim"
	"mazeglow/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

var keyActions = []struct {
	key    ebiten.Key
	action sim.Action
}{
	{ebiten.KeyR, sim.ActionRestart},
	{ebiten.KeySpace, sim.ActionPause},
	{ebiten.KeyS, sim.ActionSkip},
	{ebiten.KeyE, sim.ActionHue},
	{ebiten.KeyN, sim.ActionStep},
	{ebiten.KeyH, sim.ActionPanel},
	{ebiten.KeyQ, sim.ActionQuit},
	{ebiten.KeyEscape, sim.ActionQuit},
}

// Game adapts a board to the ebiten.Game interface.
type Game struct {
	board   *sim.Board
	painter *render.GridPainter
	hud     *ui.HUD
	scale   int
}

// New constructs a Game for the provided board.
func New(board *sim.Board, scale int) *Game {
	if scale < 1 {
		scale = 1
	}
	s := board.Size()
	return &Game{
		board:   board,
		painter: render.NewGridPainter(s.W, s.H),
		hud:     ui.NewHUD(board, hudWidth),
		scale:   scale,
	}
}

// Update handles input and advances the board by one logical tick.
func (g *Game) Update() error {
	for _, ka := range keyActions {
		if !inpututil.IsKeyJustPressed(ka.key) {
			continue
		}
		switch ka.action {
		case sim.ActionQuit:
			return ebiten.Termination
		case sim.ActionPanel:
			g.hud.Toggle()
		default:
			if err := g.board.Apply(ka.action); err != nil {
				return err
			}
		}
	}
	g.board.Tick()
	g.hud.Update()
	return nil
}

// Draw renders the current grid and the parameter panel.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.board.Grid(), g.board.HueMode(), g.scale)
	s := g.board.Size()
	g.hud.Draw(screen, s.W*g.scale, s.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.board.Size()
	return s.W*g.scale + g.hud.Width(), s.H*g.scale
}

// Run opens the window and blocks until it is closed.
func Run(board *sim.Board) error {
	cfg := board.Config()
	game := New(board, cfg.Scale)
	s := board.Size()

	ebiten.SetWindowTitle("mazeglow")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(s.W*cfg.Scale+hudWidth, s.H*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("opening %dx%d maze at scale %d", s.W, s.H, cfg.Scale)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
