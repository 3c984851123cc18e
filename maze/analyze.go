package maze

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// passable reports whether a step from c in direction d crosses an open
// internal wall.
func (g *Grid) passable(c *Cell, d Direction) (*Cell, bool) {
	n := g.Neighbor(c, d)
	if n == nil || c.HasWall(d) || n.HasWall(d.Opposite()) {
		return nil, false
	}
	return n, true
}

// Reachable returns the number of cells reachable from the given position
// through open internal walls, including the position itself.
func Reachable(g *Grid, from CellPosition) int {
	start := g.CellAt(from.Row, from.Col)
	if start == nil {
		return 0
	}

	seen := mapset.New[*Cell]()
	seen.Put(start)
	q := queue.New[*Cell]()
	q.Enqueue(start)
	for !q.Empty() {
		c := q.Dequeue()
		for _, d := range AllDirections() {
			if n, ok := g.passable(c, d); ok && !seen.Has(n) {
				seen.Put(n)
				q.Enqueue(n)
			}
		}
	}
	return seen.Size()
}

// Solve returns the shortest path between two positions, both ends
// included, or nil when to cannot be reached from from.
func Solve(g *Grid, from, to CellPosition) []CellPosition {
	start, end := g.CellAt(from.Row, from.Col), g.CellAt(to.Row, to.Col)
	if start == nil || end == nil {
		return nil
	}

	cameFrom := map[*Cell]*Cell{start: nil}
	q := queue.New[*Cell]()
	q.Enqueue(start)
	for !q.Empty() {
		c := q.Dequeue()
		if c == end {
			var path []CellPosition
			for ; c != nil; c = cameFrom[c] {
				path = append([]CellPosition{c.pos}, path...)
			}
			return path
		}
		for _, d := range AllDirections() {
			if n, ok := g.passable(c, d); ok {
				if _, seen := cameFrom[n]; !seen {
					cameFrom[n] = c
					q.Enqueue(n)
				}
			}
		}
	}
	return nil
}

// OpenBoundaryWalls lists every outward-facing wall that is open, in
// row-major order and North, East, South, West order within a cell.
func OpenBoundaryWalls(g *Grid) []Opening {
	var openings []Opening
	for _, c := range g.BoundaryCells() {
		for _, d := range AllDirections() {
			if g.Neighbor(c, d) == nil && !c.HasWall(d) {
				openings = append(openings, Opening{Cell: c.pos, Direction: d})
			}
		}
	}
	return openings
}

// CountOpenInternalWalls returns the number of open passages between cells.
func CountOpenInternalWalls(g *Grid) int {
	count := 0
	g.ForEachCell(func(c *Cell) {
		// East and South only, so each shared wall is counted once.
		for _, d := range []Direction{East, South} {
			if _, ok := g.passable(c, d); ok {
				count++
			}
		}
	})
	return count
}

// Consistent reports whether every internal wall flag matches the flag of
// the neighbor across it.
func Consistent(g *Grid) bool {
	ok := true
	g.ForEachCell(func(c *Cell) {
		for _, d := range AllDirections() {
			if n := g.Neighbor(c, d); n != nil && c.HasWall(d) != n.HasWall(d.Opposite()) {
				ok = false
			}
		}
	})
	return ok
}
