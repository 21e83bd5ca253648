package maze

import "mazeglow/internal/core"

// Report summarises the open-cell graph of a grid. Two open cells are joined
// when they share a side.
type Report struct {
	Open        int
	Edges       int
	Reachable   int
	Components  int
	BorderClean bool
}

// Perfect reports whether the open cells form a single tree rooted at the
// seed with nothing carved into the outer ring.
func (r Report) Perfect() bool {
	return r.Open > 0 && r.Reachable == r.Open && r.Edges == r.Open-1 && r.BorderClean
}

// Analyze walks the open cells of g. Reachable counts cells connected to seed;
// it is zero when seed is a wall or off the grid.
func Analyze(g *core.Grid, seed core.Point) Report {
	r := Report{BorderClean: true}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(x, y).Wall {
				continue
			}
			r.Open++
			if x == 0 || y == 0 || x == g.W-1 || y == g.H-1 {
				r.BorderClean = false
			}
			if x+1 < g.W && !g.At(x+1, y).Wall {
				r.Edges++
			}
			if y+1 < g.H && !g.At(x, y+1).Wall {
				r.Edges++
			}
		}
	}

	seen := make([]bool, g.W*g.H)
	for i, c := range g.Cells() {
		if c.Wall || seen[i] {
			continue
		}
		r.Components++
		size := flood(g, core.Point{X: i % g.W, Y: i / g.W}, seen)
		if g.InBounds(seed.X, seed.Y) && seen[g.Index(seed.X, seed.Y)] && r.Reachable == 0 {
			r.Reachable = size
		}
	}
	return r
}

// flood marks every open cell connected to start and returns how many it
// marked.
func flood(g *core.Grid, start core.Point, seen []bool) int {
	stack := []core.Point{start}
	seen[g.Index(start.X, start.Y)] = true
	n := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++
		for _, d := range scanDirs {
			q := p.Add(d)
			if !g.InBounds(q.X, q.Y) {
				continue
			}
			i := g.Index(q.X, q.Y)
			if seen[i] || g.Cells()[i].Wall {
				continue
			}
			seen[i] = true
			stack = append(stack, q)
		}
	}
	return n
}
