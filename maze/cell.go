package maze

// CellPosition represents the position of a cell in the maze grid.
// Row 0 is the north edge and Col 0 is the west edge.
type CellPosition struct {
	Row int `json:"row" bson:"row"` // Row index of the cell
	Col int `json:"col" bson:"col"` // Column index of the cell
}

// Step returns the position one cell away in direction d.
func (p CellPosition) Step(d Direction) CellPosition {
	dr, dc := d.Delta()
	return CellPosition{Row: p.Row + dr, Col: p.Col + dc}
}

// Cell represents a single cell in a maze grid.
// A fresh cell has all four walls present and is unvisited.
type Cell struct {
	NorthWall bool // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool // WestWall indicates whether there is a wall on the west side of the cell.
	Visited   bool // Visited is set once the carving algorithm or the center room claims the cell.

	pos CellPosition
}

func newCell(row, col int) *Cell {
	c := &Cell{pos: CellPosition{Row: row, Col: col}}
	c.close()
	return c
}

// Pos returns the immutable grid position of the cell.
func (c *Cell) Pos() CellPosition {
	return c.pos
}

// HasWall reports whether the wall on side d is present.
// An invalid direction reports a wall.
func (c *Cell) HasWall(d Direction) bool {
	switch d {
	case North:
		return c.NorthWall
	case East:
		return c.EastWall
	case South:
		return c.SouthWall
	case West:
		return c.WestWall
	default:
		return true
	}
}

func (c *Cell) setWall(d Direction, present bool) {
	switch d {
	case North:
		c.NorthWall = present
	case East:
		c.EastWall = present
	case South:
		c.SouthWall = present
	case West:
		c.WestWall = present
	}
}

// close restores all walls and clears the visited flag.
func (c *Cell) close() {
	c.NorthWall = true
	c.SouthWall = true
	c.EastWall = true
	c.WestWall = true
	c.Visited = false
}
