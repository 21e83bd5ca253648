// Package sim drives maze carving and wave propagation on a single grid.
package sim

import (
	"errors"
	"fmt"
	"log"

	"mazeglow/internal/config"
	"mazeglow/internal/core"
	"mazeglow/internal/maze"
	"mazeglow/internal/render"
	"mazeglow/internal/wave"
)

// Mode tells who currently owns the grid.
type Mode uint8

const (
	// ModeIdle means no carver is attached; ticks propagate the wave.
	ModeIdle Mode = iota
	// ModeCarving means a carver owns the grid; ticks run carve bursts.
	ModeCarving
)

func (m Mode) String() string {
	if m == ModeCarving {
		return "carving"
	}
	return "idle"
}

// ErrCarving is returned when the wave is stepped while a carver owns the grid.
var ErrCarving = errors.New("sim: grid is still being carved")

// Board owns a grid and alternates between carving it and animating it.
type Board struct {
	cfg  config.Config
	grid *core.Grid
	rng  *core.RNG

	carver *maze.Carver
	seed   core.Point

	paused bool
	hue    render.HueMode
	ticks  uint64
	err    error
}

// NewBoard validates cfg, allocates the grid and starts carving.
func NewBoard(cfg config.Config) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		cfg:  cfg,
		grid: core.NewGrid(cfg.Width, cfg.Height),
		rng:  core.NewRNG(cfg.Seed),
	}
	if cfg.Alternate {
		b.hue = render.HueAlternate
	}
	if err := b.Generate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Name identifies the board in window titles and reports.
func (b *Board) Name() string { return "mazeglow" }

// Size returns the grid dimensions.
func (b *Board) Size() core.Size { return b.grid.Size() }

// Grid exposes the grid for read access.
func (b *Board) Grid() *core.Grid { return b.grid }

// Config returns the configuration the board was built with.
func (b *Board) Config() config.Config { return b.cfg }

// Mode reports whether the board is carving or idle.
func (b *Board) Mode() Mode {
	if b.carver != nil {
		return ModeCarving
	}
	return ModeIdle
}

// Seed returns the cell the current maze was carved from.
func (b *Board) Seed() core.Point { return b.seed }

// Err returns the error that stopped the last carve, if any.
func (b *Board) Err() error { return b.err }

// Ticks returns the number of ticks processed since the last generation.
func (b *Board) Ticks() uint64 { return b.ticks }

// Generate discards any carve in progress, walls off the grid and starts a
// new maze drawn from the board's RNG stream.
func (b *Board) Generate() error {
	c, err := maze.New(b.grid, b.rng)
	if err != nil {
		return err
	}
	c.SetBudget(b.cfg.Budget)
	b.carver = c
	b.seed = c.Seed()
	b.ticks = 0
	b.err = nil
	return nil
}

// Reset reseeds the RNG and generates a new maze.
func (b *Board) Reset(seed int64) error {
	b.cfg.Seed = seed
	b.rng = core.NewRNG(seed)
	return b.Generate()
}

// Tick advances one logical tick unless paused.
func (b *Board) Tick() {
	if b.paused {
		return
	}
	b.Advance()
}

// Advance runs one tick regardless of pause: a burst of carve iterations
// while carving, otherwise a single wave step.
func (b *Board) Advance() {
	b.ticks++
	if b.carver == nil {
		wave.Step(b.grid)
		return
	}
	for i := 0; i < b.cfg.Burst; i++ {
		if !b.carver.Iterate() {
			b.endCarve()
			return
		}
	}
}

func (b *Board) endCarve() {
	if err := b.carver.Err(); err != nil {
		b.err = err
		log.Printf("maze generation stopped: %v", err)
	}
	b.carver = nil
}

// Propagate runs one wave step. It fails while a carver owns the grid.
func (b *Board) Propagate() error {
	if b.carver != nil {
		return ErrCarving
	}
	wave.Step(b.grid)
	b.ticks++
	return nil
}

// SkipCarve asks the active carver to finish on its next iteration.
func (b *Board) SkipCarve() {
	if b.carver != nil {
		b.carver.RequestFinish()
	}
}

// RunUntilIdle ticks until carving ends or maxTicks ticks have run, ignoring
// pause. It returns the carve error, if any.
func (b *Board) RunUntilIdle(maxTicks int) error {
	for i := 0; b.carver != nil && i < maxTicks; i++ {
		b.Advance()
	}
	return b.err
}

// TogglePause flips the pause flag.
func (b *Board) TogglePause() { b.paused = !b.paused }

// Paused reports whether ticks are suspended.
func (b *Board) Paused() bool { return b.paused }

// ToggleHueMode switches between the two colour wheel mappings.
func (b *Board) ToggleHueMode() {
	if b.hue == render.HueAlternate {
		b.hue = render.HueSectors
		return
	}
	b.hue = render.HueAlternate
}

// HueMode returns the active colour wheel mapping.
func (b *Board) HueMode() render.HueMode { return b.hue }

// FillRGBA paints the grid into buf as RGBA bytes.
func (b *Board) FillRGBA(buf []byte) { render.FillRGBA(buf, b.grid, b.hue) }

// Pixels returns a freshly painted pixel buffer.
func (b *Board) Pixels() []byte {
	buf := make([]byte, 4*b.grid.W*b.grid.H)
	b.FillRGBA(buf)
	return buf
}

// Parameters reports the board state for HUDs and reports.
func (b *Board) Parameters() core.ParameterSnapshot {
	carving := []core.Parameter{
		core.StringParam("mode", "Mode", b.Mode().String()),
		core.IntParam("burst", "Iterations per tick", b.cfg.Burst),
		core.IntParam("open", "Open cells", b.grid.OpenCount()),
	}
	if b.carver != nil {
		carving = append(carving,
			core.IntParam("frontier", "Frontier walls", b.carver.FrontierLen()),
			core.IntParam("budget", "Budget left", b.carver.Budget()),
		)
	}
	if b.err != nil {
		carving = append(carving, core.StringParam("error", "Error", b.err.Error()))
	}
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", b.grid.W),
				core.IntParam("h", "Height", b.grid.H),
				core.Int64Param("seed", "Seed", b.cfg.Seed),
				core.StringParam("origin", "Origin", pointString(b.seed)),
			},
		},
		{Name: "Carving", Params: carving},
		{
			Name: "Wave",
			Params: []core.Parameter{
				core.Int64Param("ticks", "Ticks", int64(b.ticks)),
				core.IntParam("lit", "Lit cells", wave.LitCount(b.grid)),
				core.StringParam("hue", "Hue mode", b.hue.String()),
				core.BoolParam("paused", "Paused", b.paused),
				core.IntParam("tps", "Ticks per second", b.cfg.TPS),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func pointString(p core.Point) string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
