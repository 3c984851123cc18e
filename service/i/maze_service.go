package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// MazeGenerator generates finished mazes and looks them up.
type MazeGenerator interface {
	Generate(ctx context.Context, opts dmn.MazeOptions) (*dmn.MazeRecord, error)
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
	// Recent returns up to limit finished mazes, newest first.
	Recent(ctx context.Context, limit int) ([]*dmn.MazeRecord, error)
}

// SessionManager drives mazes one step at a time on behalf of remote hosts.
type SessionManager interface {
	// Open starts a generation session and returns its ID, control token and initial layout.
	Open(ctx context.Context, opts dmn.MazeOptions) (uuid.UUID, string, maze.Layout, error)

	// Step advances the session by up to n steps and reports whether the maze is finished.
	Step(ctx context.Context, id uuid.UUID, n int) (maze.Layout, bool, error)

	// Abandon discards the session.
	Abandon(ctx context.Context, id uuid.UUID) error
}
