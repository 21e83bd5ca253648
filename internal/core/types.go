package core

// Size describes the dimensions of a grid.
type Size struct {
	W int
	H int
}

// Point addresses a cell by column and row.
type Point struct {
	X, Y int
}

// Add returns p offset by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// Sub returns p offset by -d.
func (p Point) Sub(d Point) Point { return Point{X: p.X - d.X, Y: p.Y - d.Y} }

// Orthogonal unit offsets.
var (
	East  = Point{X: 1}
	South = Point{Y: 1}
	West  = Point{X: -1}
	North = Point{Y: -1}
)

// Rect is an inclusive rectangle of cell coordinates.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}
