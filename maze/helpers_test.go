package maze

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// seqRand replays a fixed sequence of picks, each reduced modulo n.
type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func corner(c Corner) *Corner {
	return &c
}

// cloneGrid copies the wall state of g into a fresh grid.
func cloneGrid(t *testing.T, g *Grid) *Grid {
	t.Helper()
	clone, err := Layout{Width: g.Width(), Height: g.Height(), Cells: g.Snapshot()}.Restore()
	require.NoError(t, err)
	return clone
}

func visitedCount(g *Grid) int {
	n := 0
	g.ForEachCell(func(c *Cell) {
		if c.Visited {
			n++
		}
	})
	return n
}
