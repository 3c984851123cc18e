package i

import (
	"context"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// LayoutCache keeps recently generated mazes close at hand.
type LayoutCache interface {
	Put(ctx context.Context, record *dmn.MazeRecord) error
	// Get returns dmn.ErrMazeNotFound on a miss.
	Get(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
}

// Locker grants exclusive access to a key. The returned func releases it.
type Locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

// RecentIndex orders finished mazes by creation time.
type RecentIndex interface {
	Add(ctx context.Context, id uuid.UUID, createdAt time.Time) error
	// Latest returns up to limit IDs, newest first.
	Latest(ctx context.Context, limit int64) ([]uuid.UUID, error)
}

// SessionStore shares generation session progress between instances.
type SessionStore interface {
	// Put stores the state and keeps it for at least ttl.
	Put(ctx context.Context, state *dmn.SessionState, ttl time.Duration) error
	// Get returns dmn.ErrSessionNotFound when the session is unknown.
	Get(ctx context.Context, id uuid.UUID) (*dmn.SessionState, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
