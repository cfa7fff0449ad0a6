// SPDX-License-Identifier: MIT

package spiral

// cursor is the mutable state of one spiral walk: the current position,
// the four border bounds of the still-unfilled ring, the fill counter and
// the grid being written.
//
// Border semantics:
//   - x never reaches right while moving Rightward, never drops below left
//     while moving Leftward.
//   - y never reaches down while moving Downward, never drops below up while
//     moving Upward.
//
// The walk is driven by walk(), which repeats laps until counter == total.
// Each phase is a separate method so that it can be exercised on its own.
type cursor struct {
	x, y                  int
	left, right, up, down int
	counter, total        int
	grid                  [][]int
	trail                 []Cell // nil unless the walk records its visiting order
}

// newCursor allocates a size×size grid and positions the cursor at (0,0)
// with the full grid as the first ring. size must already be validated.
func newCursor(size int) *cursor {
	grid := make([][]int, size)
	for y := range grid {
		grid[y] = make([]int, size)
	}

	return &cursor{
		right: size,
		down:  size,
		total: size * size,
		grid:  grid,
	}
}

// guard reports whether the cursor may still write while moving in d.
// Each direction consults only the bound of its own moving axis.
func (c *cursor) guard(d Direction) bool {
	switch d {
	case Rightward:
		return c.x < c.right
	case Downward:
		return c.y < c.down
	case Leftward:
		return c.x >= c.left
	case Upward:
		return c.y >= c.up
	default:
		return false
	}
}

// sweep writes consecutive counter values while guard(d) holds,
// stepping by d.Delta() after each write.
func (c *cursor) sweep(d Direction) {
	dx, dy := d.Delta()
	for ; c.guard(d); c.x, c.y = c.x+dx, c.y+dy {
		c.counter++
		c.grid[c.y][c.x] = c.counter
		if c.trail != nil {
			c.trail = append(c.trail, Cell{X: c.x, Y: c.y, Value: c.counter})
		}
	}
}

// phase runs one directional segment and then performs its border shrink
// and cursor reset, leaving the cursor on the first cell of the next phase.
func (c *cursor) phase(d Direction) {
	c.sweep(d)
	switch d {
	case Rightward:
		c.up++ // top row consumed
		c.x--
		c.y++
	case Downward:
		c.down--
		c.x--
		c.y--
	case Leftward:
		c.left++
		c.x++
		c.y--
	case Upward:
		c.right--
		c.x++
		c.y++
	}
}

// lap runs all four phases in order. Late laps of even orders may collapse
// to zero-width phases; they still run so the border arithmetic stays aligned.
func (c *cursor) lap() {
	for _, d := range Directions {
		c.phase(d)
	}
}

// walk fills the whole grid.
func (c *cursor) walk() {
	for c.counter < c.total {
		c.lap()
	}
}
