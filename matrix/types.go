// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage and the
// splitter. Errors and options live in dedicated files (errors.go,
// options.go).
package matrix

// Matrix represents a two-dimensional rectangular array of float64 values.
// Every implementation in this module is value-owning: operations return
// freshly allocated results and never alias their inputs.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Quadrants holds the four equal blocks of an even square matrix.
//
//	[ TopLeft    TopRight    ]
//	[ BottomLeft BottomRight ]
//
// All four blocks share the dimension half of the parent's and are
// independent copies: mutating a block never touches the parent.
type Quadrants struct {
	TopLeft     *Dense
	TopRight    *Dense
	BottomLeft  *Dense
	BottomRight *Dense
}
