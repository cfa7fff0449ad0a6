// SPDX-License-Identifier: MIT

package spiral

import "errors"

// Sentinel errors for spiral operations. Callers match them with errors.Is;
// context such as the offending size is attached with %w at the call site.
var (
	// ErrInvalidSize indicates a non-positive order, or one whose cell count overflows int.
	ErrInvalidSize = errors.New("spiral: size must be positive")

	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("spiral: input grid must have at least one row and one column")

	// ErrNonSquare indicates a row whose length differs from the number of rows.
	ErrNonSquare = errors.New("spiral: grid is not square")

	// ErrNotSpiral indicates a grid whose values do not follow spiral order.
	ErrNotSpiral = errors.New("spiral: grid is not a spiral")
)
