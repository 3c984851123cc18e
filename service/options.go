package service

import (
	"log"
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
)

// Defaults fills in options a request leaves unset.
type Defaults struct {
	Width      int
	Height     int
	CenterRoom bool
	Seed       int64 // 0 seeds each maze from the clock
}

// resolve fills every unset option from the defaults. The result always
// carries a non-zero seed and a center room choice, so it reproduces the maze.
func (d Defaults) resolve(opts dmn.MazeOptions, now time.Time) dmn.MazeOptions {
	if opts.Width == 0 {
		opts.Width = d.Width
	}
	if opts.Height == 0 {
		opts.Height = d.Height
	}

	if opts.CenterRoom == nil {
		centerRoom := d.CenterRoom
		opts.CenterRoom = &centerRoom
	}

	if opts.Seed == 0 {
		opts.Seed = d.Seed
	}
	if opts.Seed == 0 {
		opts.Seed = now.UnixNano()
	}
	return opts
}

// newDriver builds a driver from resolved options.
func newDriver(opts dmn.MazeOptions, logger *log.Logger) (*maze.Driver, error) {
	return maze.New(maze.Config{
		Width:          opts.Width,
		Height:         opts.Height,
		CenterRoom:     opts.CenterRoom != nil && *opts.CenterRoom,
		EntranceCorner: opts.EntranceCorner,
		ExitCorner:     opts.ExitCorner,
		Seed:           opts.Seed,
		Logger:         logger,
	})
}

// driverFor resolves opts against the defaults and builds a driver.
// It returns the seed actually used so the maze can be reproduced.
func (d Defaults) driverFor(opts dmn.MazeOptions, now time.Time, logger *log.Logger) (*maze.Driver, int64, error) {
	resolved := d.resolve(opts, now)
	driver, err := newDriver(resolved, logger)
	if err != nil {
		return nil, 0, err
	}
	return driver, resolved.Seed, nil
}
