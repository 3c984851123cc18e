package maze

import (
	"fmt"
	"strings"
)

// Direction represents one of the four sides of a cell.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns the four directions in their fixed enumeration order.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid reports whether d is one of the four cardinal directions.
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the direction facing d across a shared wall.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the row and column offsets of a step in direction d.
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("invalid direction %d", d)
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	for _, candidate := range AllDirections() {
		if strings.EqualFold(string(text), candidate.String()) {
			*d = candidate
			return nil
		}
	}
	return fmt.Errorf("invalid direction %q", text)
}
