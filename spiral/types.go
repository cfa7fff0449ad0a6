// SPDX-License-Identifier: MIT

package spiral

// Direction selects one of the four phases of a spiral lap.
// Phases run in declaration order: Rightward, Downward, Leftward, Upward.
type Direction int

const (
	// Rightward sweeps along the top row of the remaining ring.
	Rightward Direction = iota
	// Downward sweeps along the right column.
	Downward
	// Leftward sweeps along the bottom row.
	Leftward
	// Upward sweeps along the left column.
	Upward
)

// Directions lists the phases of one lap in execution order.
var Directions = [...]Direction{Rightward, Downward, Leftward, Upward}

// Delta returns the unit step (dx, dy) taken by the cursor in direction d.
// Unknown directions yield (0, 0).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Rightward:
		return 1, 0
	case Downward:
		return 0, 1
	case Leftward:
		return -1, 0
	case Upward:
		return 0, -1
	default:
		return 0, 0
	}
}

// Next returns the clockwise successor of d; Upward wraps to Rightward.
func (d Direction) Next() Direction {
	n := len(Directions)

	return Directions[((int(d)+1)%n+n)%n]
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Rightward:
		return "rightward"
	case Downward:
		return "downward"
	case Leftward:
		return "leftward"
	case Upward:
		return "upward"
	default:
		return "unknown"
	}
}

// Cell is a single grid position with the value written there.
type Cell struct {
	X, Y  int // column and row
	Value int // 1-based step number in spiral order
}
