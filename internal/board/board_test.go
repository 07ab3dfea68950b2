package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alcazar-gen/alcazar/internal/geometry"
)

func mustBoard(t *testing.T, width, height int) *Board {
	t.Helper()
	b, err := New(width, height)
	require.NoError(t, err)
	return b
}

func vWall(x, y int) geometry.Wall {
	return geometry.Wall{Position: geometry.Coordinates{X: x, Y: y}, Orientation: geometry.Vertical}
}

func hWall(x, y int) geometry.Wall {
	return geometry.Wall{Position: geometry.Coordinates{X: x, Y: y}, Orientation: geometry.Horizontal}
}

func TestNewInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 2}, {2, 0}, {-3, 3}, {1, 1}} {
		_, err := New(dims[0], dims[1])
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	}
}

func TestAddWall(t *testing.T) {
	b := mustBoard(t, 3, 3)

	require.NoError(t, b.AddWall(vWall(1, 1)))
	assert.True(t, b.HasWall(vWall(1, 1)))
	assert.Len(t, b.Walls(), 1)

	assert.ErrorIs(t, b.AddWall(vWall(4, 0)), ErrInvalidWall)
	assert.ErrorIs(t, b.AddWall(hWall(0, 4)), ErrInvalidWall)

	b.RemoveWall(vWall(1, 1))
	assert.False(t, b.HasWall(vWall(1, 1)))
	assert.Len(t, b.OpenWalls(), len(b.PossibleWalls()))
}

func TestValidate(t *testing.T) {
	t.Run("valid board", func(t *testing.T) {
		b := mustBoard(t, 2, 2)
		b.SetEndpoints(geometry.Coordinates{X: 0, Y: 0}, geometry.Coordinates{X: 1, Y: 0})
		require.NoError(t, b.AddWall(vWall(1, 0)))
		assert.NoError(t, b.Validate())
	})

	t.Run("endpoint order", func(t *testing.T) {
		b := mustBoard(t, 2, 2)
		b.SetEndpoints(geometry.Coordinates{X: 1, Y: 0}, geometry.Coordinates{X: 0, Y: 0})
		assert.ErrorIs(t, b.Validate(), ErrEndpointOrder)
	})

	t.Run("endpoint not on edge", func(t *testing.T) {
		b := mustBoard(t, 3, 3)
		b.SetEndpoints(geometry.Coordinates{X: 1, Y: 1}, geometry.Coordinates{X: 2, Y: 2})
		assert.ErrorIs(t, b.Validate(), ErrEndpointNotOnEdge)
	})

	t.Run("border wall seals endpoint", func(t *testing.T) {
		b := mustBoard(t, 3, 3)
		b.SetEndpoints(geometry.Coordinates{X: 1, Y: 0}, geometry.Coordinates{X: 2, Y: 2})
		require.NoError(t, b.AddWall(hWall(1, 0)))
		assert.ErrorIs(t, b.Validate(), ErrEndpointWalledIn)
	})

	t.Run("too many barriers", func(t *testing.T) {
		b := mustBoard(t, 3, 3)
		b.SetEndpoints(geometry.Coordinates{X: 0, Y: 0}, geometry.Coordinates{X: 2, Y: 2})
		require.NoError(t, b.AddWall(vWall(1, 1)))
		require.NoError(t, b.AddWall(vWall(2, 1)))
		require.NoError(t, b.AddWall(hWall(1, 1)))
		assert.ErrorIs(t, b.Validate(), ErrTooManyBarriers)
	})
}

func TestBarrierCount(t *testing.T) {
	b := mustBoard(t, 2, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assert.Equal(t, 2, b.BarrierCount(geometry.Coordinates{X: x, Y: y}))
		}
	}

	require.NoError(t, b.AddWall(vWall(1, 0)))
	assert.Equal(t, 3, b.BarrierCount(geometry.Coordinates{X: 0, Y: 0}))
	assert.Equal(t, 3, b.BarrierCount(geometry.Coordinates{X: 1, Y: 0}))
	assert.Equal(t, 2, b.BarrierCount(geometry.Coordinates{X: 0, Y: 1}))
}

func TestCountPaths(t *testing.T) {
	t.Run("unique on empty 2x2", func(t *testing.T) {
		b := mustBoard(t, 2, 2)
		b.SetEndpoints(geometry.Coordinates{X: 0, Y: 0}, geometry.Coordinates{X: 1, Y: 0})
		assert.Equal(t, 1, b.CountPaths(5))
		assert.True(t, b.HasUniquePath())
	})

	t.Run("parity leaves no path", func(t *testing.T) {
		b := mustBoard(t, 2, 2)
		b.SetEndpoints(geometry.Coordinates{X: 0, Y: 0}, geometry.Coordinates{X: 1, Y: 1})
		assert.Equal(t, 0, b.CountPaths(5))
	})

	t.Run("walls cut paths", func(t *testing.T) {
		b := mustBoard(t, 3, 3)
		b.SetEndpoints(geometry.Coordinates{X: 0, Y: 0}, geometry.Coordinates{X: 2, Y: 0})
		open := b.CountPaths(10)
		assert.GreaterOrEqual(t, open, 2)

		// sever the path along the top row
		require.NoError(t, b.AddWall(vWall(1, 0)))
		walled := b.CountPaths(10)
		assert.Less(t, walled, open)
	})

	t.Run("limit caps the search", func(t *testing.T) {
		b := mustBoard(t, 3, 3)
		b.SetEndpoints(geometry.Coordinates{X: 0, Y: 0}, geometry.Coordinates{X: 2, Y: 0})
		assert.Equal(t, 1, b.CountPaths(1))
		assert.Equal(t, 0, b.CountPaths(0))
	})
}

func TestString(t *testing.T) {
	t.Run("doors on the top border", func(t *testing.T) {
		b := mustBoard(t, 2, 2)
		b.SetEndpoints(geometry.Coordinates{X: 0, Y: 0}, geometry.Coordinates{X: 1, Y: 0})
		require.NoError(t, b.AddWall(vWall(1, 0)))

		expected := "" +
			"+  +  +\n" +
			"|A |B |\n" +
			"+  +  +\n" +
			"|     |\n" +
			"+--+--+\n"
		assert.Equal(t, expected, b.String())
	})

	t.Run("doors on different sides", func(t *testing.T) {
		b := mustBoard(t, 3, 2)
		b.SetEndpoints(geometry.Coordinates{X: 2, Y: 0}, geometry.Coordinates{X: 0, Y: 1})

		expected := "" +
			"+--+--+  +\n" +
			"|      A |\n" +
			"+  +  +  +\n" +
			"|B       |\n" +
			"+  +--+--+\n"
		assert.Equal(t, expected, b.String())
	})
}
