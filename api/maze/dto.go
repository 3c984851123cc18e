// Package mazeapi provides the request and response bodies of the maze API.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// GenerateRequest describes the maze to build. Omitted fields use the server defaults.
type GenerateRequest struct {
	Width          int          `json:"width" binding:"omitempty,min=1,max=256"`
	Height         int          `json:"height" binding:"omitempty,min=1,max=256"`
	CenterRoom     *bool        `json:"center_room"`
	EntranceCorner *maze.Corner `json:"entrance_corner"`
	ExitCorner     *maze.Corner `json:"exit_corner"`
	Seed           int64        `json:"seed"`
}

func (r GenerateRequest) options() dmn.MazeOptions {
	return dmn.MazeOptions{
		Width:          r.Width,
		Height:         r.Height,
		CenterRoom:     r.CenterRoom,
		EntranceCorner: r.EntranceCorner,
		ExitCorner:     r.ExitCorner,
		Seed:           r.Seed,
	}
}

// MazeResponse represents a finished maze.
type MazeResponse struct {
	ID        uuid.UUID   `json:"id"`
	Seed      int64       `json:"seed"`
	Layout    maze.Layout `json:"layout"`
	ASCII     string      `json:"ascii"`
	CreatedAt time.Time   `json:"created_at"`
}

// MazeSummary is one entry of the recent mazes listing.
type MazeSummary struct {
	ID        uuid.UUID `json:"id"`
	Seed      int64     `json:"seed"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionResponse is returned when an incremental session opens.
type SessionResponse struct {
	ID     uuid.UUID   `json:"id"`
	Token  string      `json:"token"`
	Layout maze.Layout `json:"layout"`
}

// StepResponse carries the layout after a batch of steps.
type StepResponse struct {
	Done   bool        `json:"done"`
	Layout maze.Layout `json:"layout"`
}
