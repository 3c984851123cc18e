package maze

import (
	"fmt"

	"github.com/zyedidia/generic/stack"
)

// Rand is the random source used for every random pick during generation.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// State is the lifecycle state of a Backtracker.
type State int

const (
	Idle State = iota
	Running
	Complete
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Complete:
		return "Complete"
	default:
		return "Unknown"
	}
}

// Backtracker carves a perfect maze with randomized depth-first search driven
// by an explicit stack. Each call to Step performs one unit of work so the
// caller decides the pacing.
type Backtracker struct {
	grid      *Grid
	rng       Rand
	stack     *stack.Stack[*Cell] // Visited cells kept for backtracking.
	state     State
	unvisited int // Cells not yet visited.
	steps     int // Step calls performed while running.
}

// NewBacktracker creates an idle Backtracker over g.
func NewBacktracker(g *Grid, rng Rand) *Backtracker {
	return &Backtracker{
		grid: g,
		rng:  rng,
	}
}

// Start marks start visited, pushes it and moves to Running.
// It returns ErrAlreadyRunning and changes nothing if a run is in progress.
func (b *Backtracker) Start(start *Cell) error {
	if b.state == Running {
		return ErrAlreadyRunning
	}
	if start == nil {
		return fmt.Errorf("%w: nil start", ErrForeignCell)
	}
	if b.grid.CellAt(start.pos.Row, start.pos.Col) != start {
		return fmt.Errorf("%w: start %v", ErrForeignCell, start.pos)
	}

	start.Visited = true
	b.stack = stack.New[*Cell]()
	b.stack.Push(start)
	b.steps = 0
	b.unvisited = 0
	b.grid.ForEachCell(func(c *Cell) {
		if !c.Visited {
			b.unvisited++
		}
	})
	b.state = Running
	return nil
}

// Step performs a single unit of work and reports whether generation is done.
//
// With an empty stack the run is Complete. Otherwise the top cell either
// carves into one uniformly chosen unvisited neighbor, which is pushed, or is
// popped when it has none.
func (b *Backtracker) Step() (bool, error) {
	switch b.state {
	case Complete:
		return true, nil
	case Idle:
		return false, ErrNotRunning
	}

	b.steps++
	if b.stack.Size() == 0 {
		b.state = Complete
		return true, nil
	}

	current := b.stack.Peek()
	neighbors := UnvisitedNeighbors(current, b.grid)
	if len(neighbors) == 0 {
		b.stack.Pop()
		return false, nil
	}

	next := neighbors[b.rng.Intn(len(neighbors))].Cell
	if err := RemoveWall(current, next); err != nil {
		return false, err
	}
	next.Visited = true
	b.unvisited--
	b.stack.Push(next)
	return false, nil
}

// Run steps until the run is Complete.
func (b *Backtracker) Run() error {
	for {
		done, err := b.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Abandon drops the stack and returns to Idle. The grid is left as is.
func (b *Backtracker) Abandon() {
	b.stack = nil
	b.state = Idle
}

// State returns the lifecycle state.
func (b *Backtracker) State() State {
	return b.state
}

// Current returns the cell on top of the stack, or nil when the stack is empty.
func (b *Backtracker) Current() *Cell {
	if b.stack == nil || b.stack.Size() == 0 {
		return nil
	}
	return b.stack.Peek()
}

// Depth returns the number of cells on the stack.
func (b *Backtracker) Depth() int {
	if b.stack == nil {
		return 0
	}
	return b.stack.Size()
}

// Unvisited returns the number of cells not yet visited.
func (b *Backtracker) Unvisited() int {
	return b.unvisited
}

// Steps returns the number of steps performed in the current or last run.
func (b *Backtracker) Steps() int {
	return b.steps
}
