// SPDX-License-Identifier: MIT

package spiral

import "fmt"

// Unroll reads a square grid in spiral order and returns the visited values.
// For any valid size, Unroll(Fill(size)) yields 1, 2, …, size².
//
// Returns ErrEmptyGrid if grid has no rows or no columns, ErrNonSquare if
// any row length differs from the number of rows.
// Complexity: O(n²) time and memory.
func Unroll(grid [][]int) ([]int, error) {
	cells, err := orderOf("Unroll", grid)
	if err != nil {
		return nil, err
	}
	values := make([]int, len(cells))
	for i, c := range cells {
		values[i] = grid[c.Y][c.X]
	}

	return values, nil
}

// Verify reports whether grid is exactly the spiral of its order.
// On mismatch it returns ErrNotSpiral wrapped with the first offending step.
// Shape errors are the same as for Unroll.
// Complexity: O(n²) time and memory.
func Verify(grid [][]int) error {
	cells, err := orderOf("Verify", grid)
	if err != nil {
		return err
	}
	for _, c := range cells {
		if got := grid[c.Y][c.X]; got != c.Value {
			return fmt.Errorf("Verify: step %d at (%d,%d) holds %d: %w", c.Value, c.X, c.Y, got, ErrNotSpiral)
		}
	}

	return nil
}

// orderOf validates that grid is a non-empty square and returns its spiral order.
func orderOf(op string, grid [][]int) ([]Cell, error) {
	n := len(grid)
	if n == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyGrid)
	}
	for y, row := range grid {
		if len(row) != n {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w", op, y, len(row), n, ErrNonSquare)
		}
	}

	return Order(n)
}
