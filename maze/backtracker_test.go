package maze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBacktrackerLifecycle(t *testing.T) {
	g, err := NewGrid(4, 4)
	require.NoError(t, err)
	b := NewBacktracker(g, seeded(1))

	_, err = b.Step()
	assert.True(t, errors.Is(err, ErrNotRunning))
	assert.Equal(t, Idle, b.State())
	assert.Nil(t, b.Current())

	require.NoError(t, b.Start(g.CellAt(0, 0)))
	assert.Equal(t, Running, b.State())
	assert.Equal(t, 15, b.Unvisited())
	assert.Same(t, g.CellAt(0, 0), b.Current())

	snapshot := g.Snapshot()
	assert.True(t, errors.Is(b.Start(g.CellAt(2, 2)), ErrAlreadyRunning))
	assert.Equal(t, snapshot, g.Snapshot())
	assert.Same(t, g.CellAt(0, 0), b.Current())

	require.NoError(t, b.Run())
	assert.Equal(t, Complete, b.State())
	assert.Equal(t, 0, b.Unvisited())
	assert.Equal(t, 0, b.Depth())

	done, err := b.Step()
	assert.NoError(t, err)
	assert.True(t, done)
}

func TestBacktrackerRejectsForeignStart(t *testing.T) {
	g, err := NewGrid(4, 4)
	require.NoError(t, err)
	other, err := NewGrid(4, 4)
	require.NoError(t, err)

	b := NewBacktracker(g, seeded(1))
	assert.True(t, errors.Is(b.Start(other.CellAt(0, 0)), ErrForeignCell))
	assert.True(t, errors.Is(b.Start(nil), ErrForeignCell))
	assert.Equal(t, Idle, b.State())
}

func TestBacktrackerProducesSpanningTree(t *testing.T) {
	for _, size := range [][2]int{{4, 4}, {6, 10}, {10, 10}, {20, 8}} {
		for seed := int64(1); seed <= 5; seed++ {
			g, err := NewGrid(size[0], size[1])
			require.NoError(t, err)
			b := NewBacktracker(g, seeded(seed))
			require.NoError(t, b.Start(g.CellAt(0, 0)))
			require.NoError(t, b.Run())

			total := g.Width() * g.Height()
			assert.Equal(t, total, visitedCount(g))
			assert.Equal(t, total-1, CountOpenInternalWalls(g))
			assert.Equal(t, total, Reachable(g, CellPosition{}))
			assert.True(t, Consistent(g))
			assert.Empty(t, OpenBoundaryWalls(g))
			// Every cell but the start is pushed once, every cell is popped once, plus the final step.
			assert.Equal(t, 2*total, b.Steps())
		}
	}
}

func TestBacktrackerNeverClosesACycle(t *testing.T) {
	g, err := NewGrid(8, 6)
	require.NoError(t, err)
	b := NewBacktracker(g, seeded(42))
	require.NoError(t, b.Start(g.CellAt(0, 0)))

	for {
		current := b.Current()
		depth := b.Depth()
		before := cloneGrid(t, g)

		done, err := b.Step()
		require.NoError(t, err)
		if done {
			break
		}

		if b.Depth() > depth {
			next := b.Current()
			assert.Nil(t, Solve(before, current.Pos(), next.Pos()),
				"%v was already reachable from %v", next.Pos(), current.Pos())
			assert.NotNil(t, Solve(g, current.Pos(), next.Pos()))
		} else {
			assert.Equal(t, depth-1, b.Depth())
		}
	}
}

func TestBacktrackerPicksAmongUnvisitedNeighbors(t *testing.T) {
	g, err := NewGrid(4, 4)
	require.NoError(t, err)
	// From (1,1) the unvisited neighbors are N, E, S, W; index 2 is South.
	b := NewBacktracker(g, &seqRand{vals: []int{2}})
	require.NoError(t, b.Start(g.CellAt(1, 1)))

	done, err := b.Step()
	require.NoError(t, err)
	assert.False(t, done)
	assert.Same(t, g.CellAt(2, 1), b.Current())
	assert.False(t, g.CellAt(1, 1).SouthWall)
	assert.False(t, g.CellAt(2, 1).NorthWall)
	assert.True(t, g.CellAt(2, 1).Visited)
	assert.Equal(t, 14, b.Unvisited())
}

func TestBacktrackerAbandon(t *testing.T) {
	g, err := NewGrid(6, 6)
	require.NoError(t, err)
	b := NewBacktracker(g, seeded(3))
	require.NoError(t, b.Start(g.CellAt(0, 0)))
	for i := 0; i < 5; i++ {
		_, err := b.Step()
		require.NoError(t, err)
	}

	b.Abandon()
	assert.Equal(t, Idle, b.State())
	assert.Equal(t, 0, b.Depth())
	assert.True(t, Consistent(g))

	_, err = b.Step()
	assert.True(t, errors.Is(err, ErrNotRunning))
}
