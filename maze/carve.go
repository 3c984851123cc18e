package maze

import "fmt"

// Neighbor pairs an adjacent cell with the direction leading to it.
type Neighbor struct {
	Direction Direction
	Cell      *Cell
}

// directionBetween returns the direction from a to b when they share a wall.
func directionBetween(a, b *Cell) (Direction, bool) {
	for _, d := range AllDirections() {
		if a.pos.Step(d) == b.pos {
			return d, true
		}
	}
	return North, false
}

// RemoveWall opens the wall shared by two adjacent cells on both sides.
// Cells that are not grid neighbors are a caller bug and yield ErrNonAdjacentWallRemoval.
func RemoveWall(a, b *Cell) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil cell", ErrNonAdjacentWallRemoval)
	}

	d, ok := directionBetween(a, b)
	if !ok {
		return fmt.Errorf("%w: %v and %v", ErrNonAdjacentWallRemoval, a.pos, b.pos)
	}

	a.setWall(d, false)
	b.setWall(d.Opposite(), false)
	return nil
}

// UnvisitedNeighbors lists the existing, unvisited neighbors of c in North,
// East, South, West order.
func UnvisitedNeighbors(c *Cell, g *Grid) []Neighbor {
	result := make([]Neighbor, 0, 4)
	for _, d := range AllDirections() {
		n := g.Neighbor(c, d)
		if n != nil && !n.Visited {
			result = append(result, Neighbor{Direction: d, Cell: n})
		}
	}
	return result
}
