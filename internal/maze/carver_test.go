package maze

import (
	"errors"
	"slices"
	"testing"

	"mazeglow/internal/core"
)

func carveAll(t *testing.T, w, h int, seed int64) (*core.Grid, *Carver) {
	t.Helper()
	grid := core.NewGrid(w, h)
	c, err := New(grid, core.NewRNG(seed))
	if err != nil {
		t.Fatalf("New(%dx%d): %v", w, h, err)
	}
	c.SetBudget(2_000_000)
	if err := c.Complete(); err != nil {
		t.Fatalf("carving %dx%d seed %d: %v", w, h, seed, err)
	}
	return grid, c
}

func TestNewRejectsGridWithoutInterior(t *testing.T) {
	for _, size := range []core.Size{{W: 2, H: 9}, {W: 9, H: 2}, {W: 1, H: 1}, {W: 9, H: 1}} {
		if _, err := New(core.NewGrid(size.W, size.H), core.NewRNG(1)); !errors.Is(err, ErrGridTooSmall) {
			t.Fatalf("New(%dx%d) err = %v, expected ErrGridTooSmall", size.W, size.H, err)
		}
	}
}

func TestNewSeedsOnOddLattice(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		grid := core.NewGrid(20, 13)
		c, err := New(grid, core.NewRNG(seed))
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		s := c.Seed()
		if s.X%2 != 1 || s.Y%2 != 1 {
			t.Fatalf("seed %+v not on the odd lattice", s)
		}
		if !c.carve.Contains(s) {
			t.Fatalf("seed %+v outside carvable interior %+v", s, c.carve)
		}
		if grid.OpenCount() != 1 || grid.IsWall(s) {
			t.Fatalf("only the seed should be open after New, got %d open cells", grid.OpenCount())
		}
		if c.FrontierLen() == 0 || c.FrontierLen() > 4 {
			t.Fatalf("seed frontier has %d walls", c.FrontierLen())
		}
		for _, p := range c.frontier {
			if !c.carve.Contains(p) {
				t.Fatalf("seed frontier wall %+v outside interior", p)
			}
		}
		if !c.Active() || c.Budget() != DefaultBudget {
			t.Fatal("fresh carver should be active with the default budget")
		}
	}
}

func TestNewClearsPreviousMaze(t *testing.T) {
	grid, _ := carveAll(t, 15, 15, 4)
	if grid.OpenCount() < 2 {
		t.Fatal("expected a carved maze")
	}
	if _, err := New(grid, core.NewRNG(5)); err != nil {
		t.Fatalf("New: %v", err)
	}
	if grid.OpenCount() != 1 {
		t.Fatalf("restarting should wall everything but the seed, got %d open", grid.OpenCount())
	}
	for _, cell := range grid.Cells() {
		if cell.Value != core.Unlit {
			t.Fatal("restart should leave every cell unlit")
		}
	}
}

func TestCarvedMazeIsSpanningTree(t *testing.T) {
	sizes := []core.Size{{W: 21, H: 21}, {W: 31, H: 17}, {W: 40, H: 24}, {W: 9, H: 33}}
	for _, size := range sizes {
		for seed := int64(1); seed <= 3; seed++ {
			grid, c := carveAll(t, size.W, size.H, seed)
			report := Analyze(grid, c.Seed())
			if !report.Perfect() {
				t.Fatalf("%dx%d seed %d: maze not perfect: %+v", size.W, size.H, seed, report)
			}
			if report.Components != 1 {
				t.Fatalf("%dx%d seed %d: expected one component, got %d", size.W, size.H, seed, report.Components)
			}
			if c.Carved() == 0 {
				t.Fatalf("%dx%d seed %d: nothing carved", size.W, size.H, seed)
			}
			if got := report.Open; got != 2*c.Carved()+1 {
				t.Fatalf("each carve opens two cells: open=%d carved=%d", got, c.Carved())
			}
		}
	}
}

func TestCarvedMazeStaysInsideInterior(t *testing.T) {
	grid, _ := carveAll(t, 24, 18, 11)
	in := grid.Interior()
	for y := 0; y < grid.H; y++ {
		for x := 0; x < grid.W; x++ {
			if grid.At(x, y).Wall {
				continue
			}
			if x < 1 || y < 1 || x > in.W-2 || y > in.H-2 {
				t.Fatalf("open cell (%d,%d) outside interior %+v", x, y, in)
			}
		}
	}
}

func TestCarveDeterministicPerSeed(t *testing.T) {
	a, _ := carveAll(t, 25, 19, 77)
	b, _ := carveAll(t, 25, 19, 77)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same RNG seed should carve the same maze")
	}
	c, _ := carveAll(t, 25, 19, 78)
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different RNG seeds should carve different mazes")
	}
}

func TestFinishLightsSeedOnce(t *testing.T) {
	grid := core.NewGrid(11, 11)
	c, err := New(grid, core.NewRNG(9))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s := c.Seed()
	c.Finish()
	if c.Active() || grid.At(s.X, s.Y).Value != 0 {
		t.Fatalf("after Finish active=%v seed=%d", c.Active(), grid.At(s.X, s.Y).Value)
	}
	c.Finish()
	if c.Active() || grid.At(s.X, s.Y).Value != 0 {
		t.Fatalf("after second Finish active=%v seed=%d", c.Active(), grid.At(s.X, s.Y).Value)
	}
	if c.Iterate() {
		t.Fatal("Iterate after Finish should report false")
	}
}

func TestRequestFinishStopsOnNextIterate(t *testing.T) {
	grid := core.NewGrid(31, 31)
	c, err := New(grid, core.NewRNG(2))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 10; i++ {
		c.Iterate()
	}
	open := grid.OpenCount()
	c.RequestFinish()
	if c.Iterate() {
		t.Fatal("Iterate with zero budget should finish")
	}
	if c.Active() || c.Err() != nil {
		t.Fatalf("expected clean finish, active=%v err=%v", c.Active(), c.Err())
	}
	if grid.OpenCount() != open {
		t.Fatal("finishing should not carve")
	}
	s := c.Seed()
	if grid.At(s.X, s.Y).Value != 0 {
		t.Fatal("finish should light the seed")
	}
}

func TestSmallestGridFinishesImmediately(t *testing.T) {
	grid := core.NewGrid(3, 3)
	c, err := New(grid, core.NewRNG(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.FrontierLen() != 0 {
		t.Fatalf("3x3 grid has no carvable walls, frontier=%d", c.FrontierLen())
	}
	if c.Iterate() {
		t.Fatal("empty frontier should finish")
	}
	if grid.At(1, 1).Value != 0 {
		t.Fatal("seed should be lit")
	}
}

func TestFiveByFiveCarvesCorner(t *testing.T) {
	grid := core.NewGrid(5, 5)
	c := newCarver(grid, core.NewRNG(42), core.Point{X: 1, Y: 1})
	if err := c.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	want := map[core.Point]bool{
		{X: 1, Y: 1}: true,
		{X: 2, Y: 1}: true,
		{X: 3, Y: 1}: true,
		{X: 1, Y: 2}: true,
		{X: 1, Y: 3}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			open := !grid.At(x, y).Wall
			if open != want[core.Point{X: x, Y: y}] {
				t.Fatalf("cell (%d,%d) open=%v, expected %v", x, y, open, !open)
			}
		}
	}
	if c.Carved() != 2 || grid.At(1, 1).Value != 0 {
		t.Fatalf("carved=%d seed=%d", c.Carved(), grid.At(1, 1).Value)
	}
}

func TestCandidateWithoutOpenNeighbourStays(t *testing.T) {
	grid := core.NewGrid(7, 7)
	c := newCarver(grid, core.NewRNG(1), core.Point{X: 1, Y: 1})
	c.frontier = []core.Point{{X: 5, Y: 2}}
	c.cursor = 0

	before := slices.Clone(grid.Cells())
	if !c.Iterate() {
		t.Fatal("isolated candidate should not end carving")
	}
	if c.FrontierLen() != 1 || !slices.Equal(before, grid.Cells()) {
		t.Fatal("isolated candidate must stay queued without carving")
	}
}

func TestCandidateBetweenOpenCellsSkipped(t *testing.T) {
	grid := core.NewGrid(7, 7)
	c := newCarver(grid, core.NewRNG(1), core.Point{X: 1, Y: 1})
	grid.Open(core.Point{X: 3, Y: 1})
	c.frontier = []core.Point{{X: 2, Y: 1}}
	c.cursor = 0

	before := slices.Clone(grid.Cells())
	if !c.Iterate() {
		t.Fatal("ambiguous candidate should not end carving")
	}
	if c.FrontierLen() != 1 || !slices.Equal(before, grid.Cells()) {
		t.Fatal("candidate with two open neighbours must not be carved")
	}
	if c.Carved() != 0 {
		t.Fatal("nothing should have been carved")
	}
}

func TestBeyondOutsideInteriorIsFatal(t *testing.T) {
	grid := core.NewGrid(7, 7)
	c := newCarver(grid, core.NewRNG(1), core.Point{X: 1, Y: 1})
	grid.Open(core.Point{X: 4, Y: 3})
	c.frontier = []core.Point{{X: 5, Y: 3}}
	c.cursor = 0

	if c.Iterate() {
		t.Fatal("Iterate should stop on a corridor leaving the interior")
	}
	err := c.Err()
	if !errors.Is(err, ErrBeyondOutOfBounds) {
		t.Fatalf("err = %v, expected ErrBeyondOutOfBounds", err)
	}
	var ce *CarveError
	if !errors.As(err, &ce) || ce.Point != (core.Point{X: 6, Y: 3}) {
		t.Fatalf("expected CarveError at (6,3), got %v", err)
	}
	if c.Active() {
		t.Fatal("carver must stop after a fatal error")
	}
	if grid.IsWall(core.Point{X: 5, Y: 3}) {
		t.Fatal("candidate was opened before the bounds check and should stay open")
	}
	c.Finish()
	if grid.At(1, 1).Value != core.Unlit {
		t.Fatal("a failed carve must not light the seed")
	}
	if c.Iterate() {
		t.Fatal("failed carver must stay stopped")
	}
}

func TestFrontierOutsideInteriorIsFatal(t *testing.T) {
	grid := core.NewGrid(7, 7)
	c := newCarver(grid, core.NewRNG(1), core.Point{X: 1, Y: 1})
	c.frontier = []core.Point{{X: 0, Y: 3}}
	c.cursor = 0

	if c.Iterate() {
		t.Fatal("Iterate should stop on a frontier wall in the outer ring")
	}
	if !errors.Is(c.Err(), ErrFrontierOutOfBounds) {
		t.Fatalf("err = %v, expected ErrFrontierOutOfBounds", c.Err())
	}
	if errors.Is(c.Err(), ErrBeyondOutOfBounds) {
		t.Fatal("frontier failure must be distinguishable from corridor failure")
	}
}
