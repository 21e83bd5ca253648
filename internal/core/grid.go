package core

// Unlit marks an open cell that the wave has not reached yet.
const Unlit = -1

// PhasePeriod is the number of distinct phase values a lit cell cycles through.
const PhasePeriod = 360

// Cell is one square of the maze. Wall cells always carry Unlit values.
type Cell struct {
	Wall  bool
	Value int
	Next  int
}

// Lit reports whether the cell is open and has been reached by the wave.
func (c Cell) Lit() bool { return !c.Wall && c.Value >= 0 }

// Grid stores W*H cells in row-major order with a stride of W.
type Grid struct {
	W, H  int
	cells []Cell
}

// NewGrid allocates a grid with the given dimensions, fully walled.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &Grid{W: w, H: h, cells: make([]Cell, w*h)}
	g.Clear()
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write cells directly.
func (g *Grid) Cells() []Cell { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return x + y*g.W }

// At returns a pointer to the cell at (x, y).
func (g *Grid) At(x, y int) *Cell { return &g.cells[g.Index(x, y)] }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Open carves the cell at p, leaving its phase unlit.
func (g *Grid) Open(p Point) {
	c := g.At(p.X, p.Y)
	c.Wall = false
}

// IsWall reports whether the cell at p is a wall.
func (g *Grid) IsWall(p Point) bool { return g.cells[g.Index(p.X, p.Y)].Wall }

// Interior returns the usable odd-sized extent of the grid. An even dimension
// loses its last row or column.
func (g *Grid) Interior() Size {
	w2, h2 := g.W, g.H
	if w2%2 == 0 {
		w2--
	}
	if h2%2 == 0 {
		h2--
	}
	return Size{W: w2, H: h2}
}

// Clear walls every cell and resets all phases to Unlit.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Wall: true, Value: Unlit, Next: Unlit}
	}
}

// OpenCount returns the number of non-wall cells.
func (g *Grid) OpenCount() int {
	n := 0
	for _, c := range g.cells {
		if !c.Wall {
			n++
		}
	}
	return n
}
