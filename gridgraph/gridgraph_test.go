package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/regionscan/gridgraph"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"NilRows", nil, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
		{"NonRectangularLonger", [][]int{{1}, {2, 3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.New(tc.grid)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopy ensures later mutation of the input does not leak into the grid.
func TestNew_DeepCopy(t *testing.T) {
	rows := [][]byte{{'A', 'B'}, {'C', 'D'}}
	g, err := gridgraph.New(rows)
	require.NoError(t, err)

	rows[0][0] = 'Z'
	assert.Equal(t, byte('A'), g.At(0, 0))
	assert.Equal(t, [][]byte{{'A', 'B'}, {'C', 'D'}}, g.Rows())
}

// TestInBounds checks InBounds and Get on a 3×2 grid.
func TestInBounds(t *testing.T) {
	g, err := gridgraph.New([][]int{
		{0, 1, 2},
		{3, 4, 5},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, 6, g.Len())

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		assert.True(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
		v, ok := g.Get(xy[0], xy[1])
		assert.True(t, ok)
		assert.Equal(t, xy[1]*3+xy[0], v)
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		assert.False(t, g.InBounds(xy[0], xy[1]), "InBounds(%d,%d)", xy[0], xy[1])
		v, ok := g.Get(xy[0], xy[1])
		assert.False(t, ok)
		assert.Zero(t, v)
	}
	assert.Panics(t, func() { g.At(3, 0) })
}

// TestNeighbor checks direction offsets against Get.
func TestNeighbor(t *testing.T) {
	g, err := gridgraph.New([][]int{
		{0, 1, 2},
		{3, 4, 5},
		{6, 7, 8},
	})
	require.NoError(t, err)

	want := map[gridgraph.Direction]int{
		gridgraph.Left:  3,
		gridgraph.Above: 1,
		gridgraph.Right: 5,
		gridgraph.Below: 7,
	}
	for d, v := range want {
		got, ok := g.Neighbor(1, 1, d)
		assert.True(t, ok, d.String())
		assert.Equal(t, v, got, d.String())
		assert.Equal(t, d, d.Opposite().Opposite())
	}
	_, ok := g.Neighbor(0, 0, gridgraph.Left)
	assert.False(t, ok)
	assert.Equal(t, gridgraph.Right, gridgraph.Left.Opposite())
	assert.Equal(t, gridgraph.Below, gridgraph.Above.Opposite())
}

// TestCoordinate verifies round-tripping of row-major indices.
func TestCoordinate(t *testing.T) {
	g, err := gridgraph.New([][]int{{0, 0, 0, 0}, {0, 0, 0, 0}})
	require.NoError(t, err)
	x, y := g.Coordinate(6)
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
}
