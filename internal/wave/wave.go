// Package wave spreads a cyclic phase through the open cells of a maze.
package wave

import "mazeglow/internal/core"

// neighbourOrder is the scan order for unlit cells; the last lit neighbour
// in this order decides the inherited phase.
var neighbourOrder = [4]core.Point{core.East, core.South, core.North, core.West}

// Step advances the grid by one synchronous tick. Lit cells move one phase
// forward and unlit open cells pick up the phase of a lit neighbour. Walls are
// never touched.
func Step(g *core.Grid) {
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := &cells[g.Index(x, y)]
			if c.Wall {
				continue
			}
			if c.Value >= 0 {
				c.Next = (c.Value + 1) % core.PhasePeriod
				continue
			}
			for _, d := range neighbourOrder {
				nx, ny := x+d.X, y+d.Y
				if !g.InBounds(nx, ny) {
					continue
				}
				if n := cells[g.Index(nx, ny)]; n.Lit() {
					c.Next = max(c.Value, n.Value)
				}
			}
		}
	}
	for i := range cells {
		if !cells[i].Wall {
			cells[i].Value = cells[i].Next
		}
	}
}

// LitCount returns the number of open cells the wave has reached.
func LitCount(g *core.Grid) int {
	n := 0
	for _, c := range g.Cells() {
		if c.Lit() {
			n++
		}
	}
	return n
}
