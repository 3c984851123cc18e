package maze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"odd dimensions round down", 7, 7, 6, 6},
		{"too small raised to minimum", 3, 3, 4, 4},
		{"minimum unchanged", 4, 4, 4, 4},
		{"five rounds to four", 5, 9, 4, 8},
		{"one raised to minimum", 1, 10, 4, 10},
		{"rectangular", 12, 6, 12, 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(tc.width, tc.height)
			require.NoError(t, err)
			assert.Equal(t, tc.wantW, g.Width())
			assert.Equal(t, tc.wantH, g.Height())

			count := 0
			g.ForEachCell(func(c *Cell) {
				count++
				assert.True(t, c.NorthWall && c.EastWall && c.SouthWall && c.WestWall)
				assert.False(t, c.Visited)
			})
			assert.Equal(t, tc.wantW*tc.wantH, count)
		})
	}

	t.Run("rejects non-positive and oversized dimensions", func(t *testing.T) {
		for _, dims := range [][2]int{{0, 4}, {4, 0}, {-2, 6}, {maxDimension + 2, 4}} {
			_, err := NewGrid(dims[0], dims[1])
			assert.True(t, errors.Is(err, ErrInvalidDimensions), "dims %v", dims)
		}
	})
}

func TestGridLookup(t *testing.T) {
	g, err := NewGrid(6, 4)
	require.NoError(t, err)

	t.Run("CellAt is bounds checked", func(t *testing.T) {
		assert.Nil(t, g.CellAt(-1, 0))
		assert.Nil(t, g.CellAt(0, 6))
		assert.Nil(t, g.CellAt(4, 0))
		c := g.CellAt(3, 5)
		require.NotNil(t, c)
		assert.Equal(t, CellPosition{Row: 3, Col: 5}, c.Pos())
	})

	t.Run("Neighbor returns nil past the edge", func(t *testing.T) {
		origin := g.CellAt(0, 0)
		assert.Nil(t, g.Neighbor(origin, North))
		assert.Nil(t, g.Neighbor(origin, West))
		assert.Equal(t, g.CellAt(0, 1), g.Neighbor(origin, East))
		assert.Equal(t, g.CellAt(1, 0), g.Neighbor(origin, South))
		assert.Nil(t, g.Neighbor(origin, Direction(9)))
		assert.Nil(t, g.Neighbor(nil, North))
	})

	t.Run("boundary cells", func(t *testing.T) {
		cells := g.BoundaryCells()
		assert.Len(t, cells, 2*6+2*4-4)
		for _, c := range cells {
			assert.True(t, g.IsBoundary(c))
		}
		assert.False(t, g.IsBoundary(g.CellAt(1, 1)))
	})
}

func TestGridReset(t *testing.T) {
	g, err := NewGrid(4, 4)
	require.NoError(t, err)

	a, b := g.CellAt(1, 1), g.CellAt(1, 2)
	require.NoError(t, RemoveWall(a, b))
	a.Visited = true

	g.Reset()

	assert.Same(t, a, g.CellAt(1, 1))
	assert.True(t, a.EastWall)
	assert.True(t, b.WestWall)
	assert.False(t, a.Visited)
	assert.Equal(t, CellPosition{Row: 1, Col: 1}, a.Pos())
}

func TestDirection(t *testing.T) {
	assert.Equal(t, []Direction{North, East, South, West}, AllDirections())
	for _, d := range AllDirections() {
		assert.Equal(t, d, d.Opposite().Opposite())
		dr, dc := d.Delta()
		or, oc := d.Opposite().Delta()
		assert.Equal(t, 0, dr+or)
		assert.Equal(t, 0, dc+oc)

		text, err := d.MarshalText()
		require.NoError(t, err)
		var parsed Direction
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, d, parsed)
	}
	assert.False(t, Direction(4).IsValid())
}
