// Package spiralgrid builds square grids of natural numbers laid out in an
// inward, clockwise spiral.
//
// What is in the module?
//
//	spiral/ — Fill, Order, Unroll, Verify and Sum for n×n spiral grids
//
// Quick example (n = 3):
//
//	1 2 3
//	8 9 4
//	7 6 5
//
// The top-left cell holds 1; the cursor sweeps right, down, left and up,
// and every completed lap shrinks the remaining ring by one cell per side.
//
//	go get github.com/katalvlaran/spiralgrid/spiral
package spiralgrid
