// SPDX-License-Identifier: MIT

package strassen

import (
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
)

const (
	opDirect   = "MultiplyDirect"
	opStrassen = "Strassen"
	opMultiply = "Multiply"
)

// MultiplyDirect computes the standard product C = A·B with the kernel
// selected by opts (KernelIKJ by default), without any recursion.
// It is the engine's base case and the reference the recursive result is
// checked against.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) (nil → empty → inner dimension).
//   - Stage 2: resolve operands to *Dense, allocate C, run the kernel.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrInvalidShape,
//     *DimensionError (matches matrix.ErrIncompatibleDimensions).
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c).
func MultiplyDirect(a, b matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	da, db, err := resolveOperands(a, b, opDirect)
	if err != nil {
		return nil, err
	}

	return o.direct(da, db), nil
}

// direct runs the configured kernel. Shapes are the caller's guarantee.
func (o *Options) direct(a, b *matrix.Dense) *matrix.Dense {
	m, k, n := a.Rows(), a.Cols(), b.Cols()
	c := must(opDirect)(matrix.NewDense(m, n))
	o.kernel.run(a.RawData(), b.RawData(), c.RawData(), m, n, k, o.blockSize)

	return c
}

// resolveOperands validates a multiplication pair and returns Dense views
// of both operands.
func resolveOperands(a, b matrix.Matrix, op string) (*matrix.Dense, *matrix.Dense, error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		if isIncompatible(err) {
			return nil, nil, fmt.Errorf("%s: %w", op, &DimensionError{
				ARows: a.Rows(), ACols: a.Cols(), BRows: b.Rows(), BCols: b.Cols(),
			})
		}

		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	da, err := matrix.AsDense(a)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	db, err := matrix.AsDense(b)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return da, db, nil
}
