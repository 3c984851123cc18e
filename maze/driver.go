/*
Package maze generates perfect mazes over a rectangular grid of wall-flagged
cells.

Generation is a randomized depth-first search with an explicit backtracking
stack. A Driver runs it either to completion in one call (Generate) or one
step per call (Start followed by Step), optionally carving a 2x2 center room
before the first step, a fixed corner entrance, and a boundary exit once the
run completes. Both modes produce identical grids for identical random
sequences.

The Grid is single-writer: only the generation flow mutates it, and a reader
observing an incremental run must only read cells between Step calls.
*/
package maze

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"
)

// Config configures a Driver.
type Config struct {
	Width          int         // Requested width, normalized by NormalizeDimension
	Height         int         // Requested height, normalized by NormalizeDimension
	CenterRoom     bool        // Pre-carve the 2x2 center room and start there
	EntranceCorner *Corner     // Corner opened before generation; nil for none
	ExitCorner     *Corner     // Fixed exit corner; nil for a random boundary exit
	Seed           int64       // Seed for the default random source; 0 uses the clock
	Rand           Rand        // Random source; overrides Seed when set
	Logger         *log.Logger // Optional logger; nil discards
}

// Driver orchestrates a generation run over its own Grid and owns the
// running state. A Driver is not safe for concurrent use.
type Driver struct {
	grid     *Grid
	algo     *Backtracker
	rng      Rand
	logger   *log.Logger
	cfg      Config
	running  bool
	start    *Cell
	room     []*Cell
	entrance *Opening
	exit     *Opening
}

// New validates cfg and builds the grid. Generation starts with Start or Generate.
func New(cfg Config) (*Driver, error) {
	if cfg.EntranceCorner != nil && !cfg.EntranceCorner.IsValid() {
		return nil, fmt.Errorf("%w: entrance %d", ErrInvalidCorner, *cfg.EntranceCorner)
	}
	if cfg.ExitCorner != nil && !cfg.ExitCorner.IsValid() {
		return nil, fmt.Errorf("%w: exit %d", ErrInvalidCorner, *cfg.ExitCorner)
	}
	if cfg.EntranceCorner != nil && cfg.ExitCorner != nil && *cfg.EntranceCorner == *cfg.ExitCorner {
		return nil, fmt.Errorf("%w: entrance and exit share corner %s", ErrInvalidCorner, *cfg.ExitCorner)
	}

	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}

	rng := cfg.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Driver{
		grid:   grid,
		algo:   NewBacktracker(grid, rng),
		rng:    rng,
		logger: logger,
		cfg:    cfg,
	}, nil
}

// Start resets the grid, carves the optional entrance and center room and
// pushes the start cell. It returns ErrAlreadyRunning without touching the
// grid while a run is in progress.
func (d *Driver) Start() error {
	if d.running {
		d.logger.Printf("[WARN] generation request rejected: run in progress")
		return ErrAlreadyRunning
	}

	d.grid.Reset()
	d.algo.Abandon()
	d.room, d.entrance, d.exit = nil, nil, nil

	d.start = NorthWest.Cell(d.grid)
	if d.cfg.EntranceCorner != nil {
		opening, err := CarveCorner(d.grid, *d.cfg.EntranceCorner)
		if err != nil {
			return err
		}
		d.entrance = &opening
		d.start = d.cfg.EntranceCorner.Cell(d.grid)
	}

	if d.cfg.CenterRoom {
		start, room, err := CarveCenterRoom(d.grid, d.rng)
		if err != nil {
			return err
		}
		d.start, d.room = start, room[:]
	}

	if err := d.algo.Start(d.start); err != nil {
		return err
	}
	d.running = true
	d.logger.Printf("[INFO] generation started: %dx%d from %v", d.grid.width, d.grid.height, d.start.pos)
	return nil
}

// Step performs exactly one carving step. The step that observes completion
// also carves the exit, ends the run and returns true.
func (d *Driver) Step() (bool, error) {
	if !d.running {
		return false, ErrNotRunning
	}

	done, err := d.algo.Step()
	if err != nil {
		d.Abandon()
		return false, err
	}
	if !done {
		return false, nil
	}

	if err := d.carveExit(); err != nil {
		d.Abandon()
		return false, err
	}
	d.running = false
	d.logger.Printf("[INFO] generation complete: %d steps, exit %v %s", d.algo.Steps(), d.exit.Cell, d.exit.Direction)
	return true, nil
}

// Generate runs a full generation synchronously.
func (d *Driver) Generate() error {
	if err := d.Start(); err != nil {
		return err
	}
	for {
		done, err := d.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Abandon discards an in-progress run. The grid keeps the state reached by
// the last completed step.
func (d *Driver) Abandon() {
	d.algo.Abandon()
	d.running = false
}

func (d *Driver) carveExit() error {
	var (
		opening Opening
		err     error
	)
	if d.cfg.ExitCorner != nil {
		opening, err = CarveCorner(d.grid, *d.cfg.ExitCorner)
	} else {
		var exclude []*Cell
		if d.cfg.EntranceCorner != nil {
			exclude = append(exclude, d.cfg.EntranceCorner.Cell(d.grid))
		}
		opening, err = CarveExit(d.grid, d.rng, exclude...)
	}
	if err != nil {
		return err
	}
	d.exit = &opening
	return nil
}

// Running reports whether a run is in progress.
func (d *Driver) Running() bool {
	return d.running
}

// Grid returns the grid being carved.
func (d *Driver) Grid() *Grid {
	return d.grid
}

// Steps returns the number of steps of the current or last run.
func (d *Driver) Steps() int {
	return d.algo.Steps()
}

// Current returns the cell the algorithm is working on, or nil.
func (d *Driver) Current() *Cell {
	return d.algo.Current()
}
