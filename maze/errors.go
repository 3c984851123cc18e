package maze

import "errors"

var (
	ErrInvalidDimensions      = errors.New("invalid maze dimensions")
	ErrNonAdjacentWallRemoval = errors.New("cells are not adjacent")
	ErrEmptyBoundarySet       = errors.New("grid has no boundary cells")
	ErrAlreadyRunning         = errors.New("generation already running")
	ErrNotRunning             = errors.New("no generation running")
	ErrInvalidCorner          = errors.New("invalid corner")
	ErrForeignCell            = errors.New("cell is not part of the grid")
)
