package maze

// CellState is the renderer-facing view of a cell. A true flag means the
// wall on that side is present.
type CellState struct {
	Row   int  `json:"row" bson:"row"`
	Col   int  `json:"col" bson:"col"`
	North bool `json:"north" bson:"north"`
	East  bool `json:"east" bson:"east"`
	South bool `json:"south" bson:"south"`
	West  bool `json:"west" bson:"west"`
}

// Layout is a snapshot of a grid and the openings carved into it.
type Layout struct {
	Width      int            `json:"width" bson:"width"`
	Height     int            `json:"height" bson:"height"`
	Cells      []CellState    `json:"cells" bson:"cells"`
	Start      CellPosition   `json:"start" bson:"start"`
	Entrance   *Opening       `json:"entrance,omitempty" bson:"entrance,omitempty"`
	Exit       *Opening       `json:"exit,omitempty" bson:"exit,omitempty"`
	CenterRoom []CellPosition `json:"center_room,omitempty" bson:"centerRoom,omitempty"`
	Steps      int            `json:"steps" bson:"steps"`
	Complete   bool           `json:"complete" bson:"complete"`
}

// Snapshot copies the wall state of every cell in row-major order.
func (g *Grid) Snapshot() []CellState {
	cells := make([]CellState, 0, g.width*g.height)
	g.ForEachCell(func(c *Cell) {
		cells = append(cells, CellState{
			Row:   c.pos.Row,
			Col:   c.pos.Col,
			North: c.NorthWall,
			East:  c.EastWall,
			South: c.SouthWall,
			West:  c.WestWall,
		})
	})
	return cells
}

// Layout returns a snapshot of the driver's grid. It is safe to call between steps.
func (d *Driver) Layout() Layout {
	l := Layout{
		Width:    d.grid.width,
		Height:   d.grid.height,
		Cells:    d.grid.Snapshot(),
		Entrance: d.entrance,
		Exit:     d.exit,
		Steps:    d.algo.Steps(),
		Complete: d.exit != nil,
	}
	if d.start != nil {
		l.Start = d.start.pos
	}
	for _, c := range d.room {
		l.CenterRoom = append(l.CenterRoom, c.pos)
	}
	return l
}

// Restore rebuilds a grid from a layout snapshot. Visited flags are set for
// every cell so a restored grid reads as fully carved.
func (l Layout) Restore() (*Grid, error) {
	g, err := NewGrid(l.Width, l.Height)
	if err != nil {
		return nil, err
	}
	if g.width != l.Width || g.height != l.Height || len(l.Cells) != l.Width*l.Height {
		return nil, ErrInvalidDimensions
	}
	for _, s := range l.Cells {
		c := g.CellAt(s.Row, s.Col)
		if c == nil {
			return nil, ErrInvalidDimensions
		}
		c.NorthWall, c.EastWall, c.SouthWall, c.WestWall = s.North, s.East, s.South, s.West
		c.Visited = true
	}
	return g, nil
}
