// Package maze carves perfect mazes into a core.Grid one step at a time.
//
// A Carver grows the maze from a seed cell on the odd lattice. Each Iterate
// call jumps a random distance around a circular frontier of candidate walls
// and carves the candidate only when exactly one of its neighbours is already
// open, so the open cells always form a tree.
package maze

import (
	"slices"

	"mazeglow/internal/core"
)

// DefaultBudget is the candidate-visit allowance of a fresh Carver. It is
// large enough that carving normally ends only when asked to.
const DefaultBudget = 1_000_000_000

// Bounds of the random jump taken around the frontier per Iterate call.
const (
	skipMin = 50
	skipMax = 199
)

var (
	// seedDirs is the order walls around the seed enter the frontier.
	seedDirs = [4]core.Point{core.North, core.West, core.South, core.East}
	// scanDirs is the order a candidate's neighbours are inspected.
	scanDirs = [4]core.Point{core.East, core.South, core.West, core.North}
	// growDirs is the order walls around a new corridor end are appended.
	growDirs = [4]core.Point{core.North, core.West, core.South, core.East}
)

// Carver is a resumable maze generator bound to one grid.
type Carver struct {
	grid *core.Grid
	rng  *core.RNG
	seed core.Point

	carve  core.Rect // cells that may be opened
	margin core.Rect // cells that may join the frontier

	frontier []core.Point
	cursor   int
	budget   int

	active   bool
	finished bool
	carved   int
	err      error
}

// New walls off the whole grid, opens a random seed cell on the odd lattice
// and returns a Carver ready to Iterate.
func New(grid *core.Grid, rng *core.RNG) (*Carver, error) {
	in := grid.Interior()
	if in.W < 3 || in.H < 3 {
		return nil, ErrGridTooSmall
	}
	seed := core.Point{
		X: 2*rng.IntN(in.W/2) + 1,
		Y: 2*rng.IntN(in.H/2) + 1,
	}
	return newCarver(grid, rng, seed), nil
}

func newCarver(grid *core.Grid, rng *core.RNG, seed core.Point) *Carver {
	grid.Clear()
	in := grid.Interior()
	c := &Carver{
		grid:   grid,
		rng:    rng,
		seed:   seed,
		carve:  core.Rect{MinX: 1, MinY: 1, MaxX: in.W - 2, MaxY: in.H - 2},
		margin: core.Rect{MinX: 1, MinY: 1, MaxX: in.W - 3, MaxY: in.H - 3},
		budget: DefaultBudget,
		active: true,
	}
	grid.Open(seed)
	for _, d := range seedDirs {
		if n := seed.Add(d); c.carve.Contains(n) {
			c.frontier = append(c.frontier, n)
		}
	}
	return c
}

// Iterate performs one carving attempt. It returns false once carving has
// ended, either normally or because of an error reported by Err.
func (c *Carver) Iterate() bool {
	if !c.active {
		return false
	}
	if c.budget <= 0 || len(c.frontier) == 0 {
		c.Finish()
		return false
	}

	skip := c.rng.Between(skipMin, skipMax)
	c.budget -= skip
	c.cursor = (c.cursor + skip) % len(c.frontier)

	cand := c.frontier[c.cursor]
	if !c.carve.Contains(cand) {
		return c.fail(ErrFrontierOutOfBounds, cand)
	}
	heading, ok := c.soleOpening(cand)
	if !ok {
		return true
	}

	c.grid.Open(cand)
	beyond := cand.Add(heading)
	if !c.carve.Contains(beyond) {
		return c.fail(ErrBeyondOutOfBounds, beyond)
	}
	c.grid.Open(beyond)
	c.carved++

	for _, d := range growDirs {
		n := beyond.Add(d)
		if c.margin.Contains(n) && c.grid.IsWall(n) {
			c.frontier = append(c.frontier, n)
		}
	}

	c.frontier = slices.Delete(c.frontier, c.cursor, c.cursor+1)
	if len(c.frontier) == 0 {
		c.Finish()
		return false
	}
	if c.cursor >= len(c.frontier) {
		c.cursor = 0
	}
	return true
}

// soleOpening inspects the in-bounds neighbours of a candidate wall. When
// exactly one is open it returns the heading from that neighbour through the
// candidate. Zero or several open neighbours leave the candidate alone.
func (c *Carver) soleOpening(cand core.Point) (core.Point, bool) {
	var heading core.Point
	open := 0
	for _, d := range scanDirs {
		n := cand.Add(d)
		if !c.carve.Contains(n) || c.grid.IsWall(n) {
			continue
		}
		open++
		if open > 1 {
			return core.Point{}, false
		}
		heading = core.Point{}.Sub(d)
	}
	return heading, open == 1
}

func (c *Carver) fail(err error, at core.Point) bool {
	c.err = &CarveError{Err: err, Point: at}
	c.active = false
	return false
}

// Finish ends carving and lights the seed at phase 0. Further calls are
// no-ops. A carver stopped by an error is deactivated without lighting.
func (c *Carver) Finish() {
	c.active = false
	if c.finished || c.err != nil {
		return
	}
	c.finished = true
	cell := c.grid.At(c.seed.X, c.seed.Y)
	cell.Value = 0
	cell.Next = 0
}

// RequestFinish zeroes the budget so the next Iterate finishes carving.
func (c *Carver) RequestFinish() { c.budget = 0 }

// Complete iterates until carving ends and returns Err.
func (c *Carver) Complete() error {
	for c.Iterate() {
	}
	return c.err
}

// Active reports whether carving is still in progress.
func (c *Carver) Active() bool { return c.active }

// Err returns the fatal error that stopped carving, if any.
func (c *Carver) Err() error { return c.err }

// Seed returns the cell carving started from.
func (c *Carver) Seed() core.Point { return c.seed }

// Budget returns the remaining candidate-visit allowance.
func (c *Carver) Budget() int { return c.budget }

// SetBudget replaces the remaining candidate-visit allowance.
func (c *Carver) SetBudget(n int) { c.budget = n }

// FrontierLen returns the number of candidate walls awaiting evaluation.
func (c *Carver) FrontierLen() int { return len(c.frontier) }

// Carved returns how many corridor segments have been opened.
func (c *Carver) Carved() int { return c.carved }
