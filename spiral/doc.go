// Package spiral fills square grids with natural numbers laid out in an
// inward, clockwise spiral.
//
// What:
//
//   - Fill(n) returns an n×n grid whose top-left cell holds 1; values grow by
//     one as the cursor sweeps right, down, left and up, shrinking the border
//     by one ring per lap until all n² cells are written.
//   - Order(n) returns the coordinates of an n×n grid in spiral order.
//   - Unroll reads any square grid in spiral order; Verify checks that a grid
//     is exactly the spiral of its order.
//   - Sum(n) is the closed-form total 1+2+…+n² of a filled grid.
//
// Example (n = 4):
//
//	 1  2  3  4
//	12 13 14  5
//	11 16 15  6
//	10  9  8  7
//
// Grids are row-major: grid[y][x] is row y, column x.
//
// Complexity:
//
//   - Fill, Order, Unroll, Verify: O(n²) time, O(n²) memory.
//   - Sum: O(1).
//
// Errors:
//
//   - ErrInvalidSize: order is not positive, or n² overflows int.
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonSquare: a row length differs from the number of rows.
//   - ErrNotSpiral: Verify found a value out of spiral order.
package spiral
