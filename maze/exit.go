package maze

import (
	"fmt"
	"strings"
)

// Corner selects one of the four corner cells of the grid.
type Corner int

const (
	NorthWest Corner = iota
	NorthEast
	SouthWest
	SouthEast
)

var cornerNames = map[Corner]string{
	NorthWest: "northwest",
	NorthEast: "northeast",
	SouthWest: "southwest",
	SouthEast: "southeast",
}

// ParseCorner parses a corner name such as "northwest" (case-insensitive).
func ParseCorner(s string) (Corner, error) {
	for c, name := range cornerNames {
		if strings.EqualFold(s, name) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidCorner, s)
}

func (c Corner) String() string {
	if name, ok := cornerNames[c]; ok {
		return name
	}
	return "unknown"
}

// IsValid reports whether c names one of the four corners.
func (c Corner) IsValid() bool {
	return c >= NorthWest && c <= SouthEast
}

// MarshalText implements encoding.TextMarshaler.
func (c Corner) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, ErrInvalidCorner
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Corner) UnmarshalText(text []byte) error {
	parsed, err := ParseCorner(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Cell returns the corner cell of g.
func (c Corner) Cell(g *Grid) *Cell {
	switch c {
	case NorthWest:
		return g.CellAt(0, 0)
	case NorthEast:
		return g.CellAt(0, g.width-1)
	case SouthWest:
		return g.CellAt(g.height-1, 0)
	case SouthEast:
		return g.CellAt(g.height-1, g.width-1)
	default:
		return nil
	}
}

// Opening records a boundary wall opened to the outside of the grid.
type Opening struct {
	Cell      CellPosition `json:"cell" bson:"cell"`
	Direction Direction    `json:"direction" bson:"direction"`
}

// openOutward clears the outward-facing wall of boundary cell c.
// The wall has no neighbor, so no opposite flag needs updating.
func openOutward(g *Grid, c *Cell) (Opening, error) {
	d, ok := g.outwardWall(c)
	if !ok {
		return Opening{}, fmt.Errorf("cell %v is not on the boundary", c.pos)
	}
	c.setWall(d, false)
	return Opening{Cell: c.pos, Direction: d}, nil
}

// CarveCorner opens the outward wall of a fixed corner cell. Corner cells
// open on their east or west side, so a northwest entrance faces West, never South.
func CarveCorner(g *Grid, corner Corner) (Opening, error) {
	c := corner.Cell(g)
	if c == nil {
		return Opening{}, fmt.Errorf("%w: %d", ErrInvalidCorner, corner)
	}
	return openOutward(g, c)
}

// CarveExit opens the outward wall of a uniformly chosen boundary cell.
// Cells listed in exclude are never chosen.
func CarveExit(g *Grid, rng Rand, exclude ...*Cell) (Opening, error) {
	candidates := make([]*Cell, 0, 2*(g.width+g.height))
	for _, c := range g.BoundaryCells() {
		skip := false
		for _, e := range exclude {
			if c == e {
				skip = true
				break
			}
		}
		if !skip {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return Opening{}, ErrEmptyBoundarySet
	}

	return openOutward(g, candidates[rng.Intn(len(candidates))])
}
