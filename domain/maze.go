// Package domain holds the records shared by the service and infrastructure layers.
package domain

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

var (
	ErrMazeNotFound    = errors.New("maze not found")
	ErrSessionNotFound = errors.New("session not found")
)

// MazeOptions describes the maze a caller asks for. Zero values fall back to
// the service defaults.
type MazeOptions struct {
	Width          int          `json:"width"`
	Height         int          `json:"height"`
	CenterRoom     *bool        `json:"center_room,omitempty"`
	EntranceCorner *maze.Corner `json:"entrance_corner,omitempty"`
	ExitCorner     *maze.Corner `json:"exit_corner,omitempty"`
	Seed           int64        `json:"seed"` // 0 lets the service pick a seed
}

// MazeRecord is a finished maze as persisted and cached.
type MazeRecord struct {
	ID        uuid.UUID   `bson:"_id" json:"id"`
	Seed      int64       `bson:"seed" json:"seed"`
	Layout    maze.Layout `bson:"layout" json:"layout"`
	CreatedAt time.Time   `bson:"createdAt" json:"created_at"`
}

// SessionState is the shared progress of an incremental generation run.
// Options are fully resolved, so replaying Steps driver steps from them
// rebuilds the run exactly.
type SessionState struct {
	ID         uuid.UUID   `json:"id"`
	Options    MazeOptions `json:"options"`
	Steps      int         `json:"steps"`
	LastActive time.Time   `json:"last_active"`
}
