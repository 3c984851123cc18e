package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze persistence operations.
type MazeRepo interface {
	// Save inserts or replaces a finished maze.
	Save(ctx context.Context, record *dmn.MazeRecord) error

	// ByID retrieves a maze by its unique ID.
	// Returns dmn.ErrMazeNotFound if there is no such maze.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
}
