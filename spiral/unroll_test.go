package spiral_test

import (
	"testing"

	"github.com/katalvlaran/spiralgrid/spiral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUnroll_ShapeErrors verifies that Unroll and Verify reject empty and
// non-square inputs with the matching sentinel.
func TestUnroll_ShapeErrors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"Nil", nil, spiral.ErrEmptyGrid},
		{"EmptyRows", [][]int{}, spiral.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, spiral.ErrEmptyGrid},
		{"Wide", [][]int{{1, 2}}, spiral.ErrNonSquare},
		{"Ragged", [][]int{{1, 2}, {4}}, spiral.ErrNonSquare},
		{"Tall", [][]int{{1}, {2}}, spiral.ErrNonSquare},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			values, err := spiral.Unroll(tc.grid)
			assert.ErrorIs(t, err, tc.err)
			assert.Nil(t, values)

			assert.ErrorIs(t, spiral.Verify(tc.grid), tc.err)
		})
	}
}

// TestUnroll_ArbitraryGrid reads a grid that is not itself a spiral.
func TestUnroll_ArbitraryGrid(t *testing.T) {
	grid := [][]int{
		{'a', 'b', 'c'},
		{'d', 'e', 'f'},
		{'g', 'h', 'i'},
	}
	values, err := spiral.Unroll(grid)
	require.NoError(t, err)
	assert.Equal(t, []int{'a', 'b', 'c', 'f', 'i', 'h', 'g', 'd', 'e'}, values)
}

// TestVerify_Swapped checks that exchanging two cells is reported at the
// first step that no longer matches.
func TestVerify_Swapped(t *testing.T) {
	grid, err := spiral.Fill(4)
	require.NoError(t, err)
	require.NoError(t, spiral.Verify(grid))

	// swap 13 and 16
	grid[1][1], grid[2][1] = grid[2][1], grid[1][1]
	err = spiral.Verify(grid)
	assert.ErrorIs(t, err, spiral.ErrNotSpiral)
	assert.Contains(t, err.Error(), "step 13 at (1,1) holds 16")
}

// TestVerify_Transposed rejects a counter-clockwise spiral.
func TestVerify_Transposed(t *testing.T) {
	grid := [][]int{
		{1, 8, 7},
		{2, 9, 6},
		{3, 4, 5},
	}
	assert.ErrorIs(t, spiral.Verify(grid), spiral.ErrNotSpiral)
}
