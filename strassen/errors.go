// SPDX-License-Identifier: MIT

package strassen

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
)

// ErrUnknownKernel is returned by ParseKernel for an unrecognised name.
var ErrUnknownKernel = errors.New("strassen: unknown kernel")

// DimensionError is returned when the operands of a multiplication have
// disagreeing inner dimensions (a.Cols != b.Rows). It matches
// matrix.ErrIncompatibleDimensions under errors.Is.
type DimensionError struct {
	ARows, ACols int
	BRows, BCols int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("strassen: cannot multiply %dx%d by %dx%d", e.ARows, e.ACols, e.BRows, e.BCols)
}

// Unwrap exposes the matrix sentinel.
func (e *DimensionError) Unwrap() error { return matrix.ErrIncompatibleDimensions }

// panicInvariant aborts the recursion. Shapes inside the engine are
// guaranteed by boundary validation, so any error here is a bug.
func panicInvariant(op string, err error) {
	panic(fmt.Sprintf("strassen: invariant violated in %s: %v", op, err))
}

// must returns an unwrapper for a matrix result inside the recursion:
//
//	c := must("Add")(matrix.Add(a, b))
func must(op string) func(*matrix.Dense, error) *matrix.Dense {
	return func(m *matrix.Dense, err error) *matrix.Dense {
		if err != nil {
			panicInvariant(op, err)
		}

		return m
	}
}
