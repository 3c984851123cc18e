package maze

import "fmt"

const (
	minDimension = 4   // Smallest width or height after normalization.
	maxDimension = 256 // Largest width or height accepted by Build.
)

// Grid owns a rectangular array of cells addressed by row and column.
type Grid struct {
	width  int       // Width of the grid (number of columns)
	height int       // Height of the grid (number of rows)
	cells  [][]*Cell // 2D grid of cells indexed [row][col]
}

// NewGrid allocates a grid of the given dimensions, normalized by NormalizeDimension.
func NewGrid(width, height int) (*Grid, error) {
	g := &Grid{}
	if err := g.Build(width, height); err != nil {
		return nil, err
	}
	return g, nil
}

// NormalizeDimension rounds an odd dimension down to the nearest even value
// and raises anything below the minimum to the minimum.
func NormalizeDimension(n int) int {
	if n%2 != 0 {
		n--
	}
	if n < minDimension {
		n = minDimension
	}
	return n
}

// Build replaces the cell array with width*height fresh cells.
// Non-positive or oversized dimensions are rejected with ErrInvalidDimensions.
func (g *Grid) Build(width, height int) error {
	if min(width, height) <= 0 || max(width, height) > maxDimension {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	width, height = NormalizeDimension(width), NormalizeDimension(height)
	cells := make([][]*Cell, height)
	for row := range cells {
		cells[row] = make([]*Cell, width)
		for col := range cells[row] {
			cells[row][col] = newCell(row, col)
		}
	}

	g.width, g.height, g.cells = width, height, cells
	return nil
}

// Reset restores every wall and clears every visited flag. Cell identity is kept.
func (g *Grid) Reset() {
	g.ForEachCell(func(c *Cell) {
		c.close()
	})
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBound reports whether row and col address a cell of the grid.
func (g *Grid) InBound(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// CellAt returns the cell at the given position, or nil if out of bounds.
func (g *Grid) CellAt(row, col int) *Cell {
	if !g.InBound(row, col) {
		return nil
	}
	return g.cells[row][col]
}

// Neighbor returns the cell adjacent to c in direction d, or nil past the edge.
func (g *Grid) Neighbor(c *Cell, d Direction) *Cell {
	if c == nil || !d.IsValid() {
		return nil
	}
	p := c.pos.Step(d)
	return g.CellAt(p.Row, p.Col)
}

// ForEachCell calls fn for every cell in row-major order.
func (g *Grid) ForEachCell(fn func(c *Cell)) {
	for _, row := range g.cells {
		for _, c := range row {
			fn(c)
		}
	}
}

// IsBoundary reports whether c lies on the outer edge of the grid.
func (g *Grid) IsBoundary(c *Cell) bool {
	p := c.pos
	return p.Row == 0 || p.Row == g.height-1 || p.Col == 0 || p.Col == g.width-1
}

// BoundaryCells returns every edge cell in row-major order.
func (g *Grid) BoundaryCells() []*Cell {
	var cells []*Cell
	g.ForEachCell(func(c *Cell) {
		if g.IsBoundary(c) {
			cells = append(cells, c)
		}
	})
	return cells
}

// outwardWall returns the side of a boundary cell that faces outside the grid.
// East/west edges take precedence over north/south for corner cells.
func (g *Grid) outwardWall(c *Cell) (Direction, bool) {
	switch {
	case c.pos.Col == 0:
		return West, true
	case c.pos.Col == g.width-1:
		return East, true
	case c.pos.Row == 0:
		return North, true
	case c.pos.Row == g.height-1:
		return South, true
	default:
		return North, false
	}
}
