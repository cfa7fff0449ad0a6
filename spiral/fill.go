// SPDX-License-Identifier: MIT

package spiral

import (
	"fmt"
	"math"
)

// Fill returns a size×size grid populated with 1..size² in inward,
// clockwise spiral order, starting at the top-left cell.
//
// Algorithm Outline:
//  1. Borders left=0, right=size, up=0, down=size; cursor at (0,0); counter=0.
//  2. While counter < size², run one lap:
//     Rightward while x < right,  then up++,    x--, y++
//     Downward  while y < down,   then down--,  x--, y--
//     Leftward  while x >= left,  then left++,  x++, y--
//     Upward    while y >= up,    then right--, x++, y++
//     Every step writes ++counter at grid[y][x].
//
// Returns ErrInvalidSize (wrapped with the offending size) if size <= 0 or
// size² overflows int; no grid is allocated in that case.
//
// Complexity: O(size²) time and memory.
func Fill(size int) ([][]int, error) {
	if err := validateSize("Fill", size); err != nil {
		return nil, err
	}
	c := newCursor(size)
	c.walk()

	return c.grid, nil
}

// Order returns the coordinates of a size×size grid in spiral order.
// Cell.Value holds the 1-based step number, so for every returned cell
// Fill(size)[cell.Y][cell.X] == cell.Value.
//
// Returns ErrInvalidSize under the same conditions as Fill.
// Complexity: O(size²) time and memory.
func Order(size int) ([]Cell, error) {
	if err := validateSize("Order", size); err != nil {
		return nil, err
	}
	c := newCursor(size)
	c.trail = make([]Cell, 0, c.total)
	c.walk()

	return c.trail, nil
}

// Sum returns 1+2+…+size², the total of all entries of Fill(size).
// Returns ErrInvalidSize if size is invalid or the total overflows int.
// Complexity: O(1).
func Sum(size int) (int, error) {
	if err := validateSize("Sum", size); err != nil {
		return 0, err
	}
	n := size * size
	// halve whichever factor is even before multiplying
	a, b := n, n+1
	if a%2 == 0 {
		a /= 2
	} else {
		b /= 2
	}
	if b < 0 || a > math.MaxInt/b {
		return 0, fmt.Errorf("Sum: size=%d: total overflows int: %w", size, ErrInvalidSize)
	}

	return a * b, nil
}

// validateSize rejects non-positive orders and orders whose cell count
// does not fit in an int.
func validateSize(op string, size int) error {
	if size <= 0 {
		return fmt.Errorf("%s: size=%d: %w", op, size, ErrInvalidSize)
	}
	if size > math.MaxInt/size {
		return fmt.Errorf("%s: size=%d: size*size overflows int: %w", op, size, ErrInvalidSize)
	}

	return nil
}
