// SPDX-License-Identifier: MIT

package strassen

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/strassen/matrix"
)

// Multiply computes A·B for any compatible pair (A is n×m, B is m×p).
//
// Both operands are zero-padded to one common power-of-two size
// NextPowerOfTwo(max(n, m, p)), multiplied with Strassen, and, when the
// engine trims (the default), cropped back to n×p. With WithTrim(false)
// the padded square is returned as is; see MultiplyPadded.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrInvalidShape (empty operand).
//   - *DimensionError when A.Cols != B.Rows.
//   - ctx.Err() on cancellation.
func (e *Engine) Multiply(ctx context.Context, a, b matrix.Matrix) (*matrix.Dense, error) {
	padded, rows, cols, err := e.multiplyPadded(ctx, a, b)
	if err != nil {
		return nil, err
	}
	if !e.opts.trim || (padded.Rows() == rows && padded.Cols() == cols) {
		return padded, nil
	}

	out, err := matrix.Crop(padded, rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiply, err)
	}

	return out, nil
}

// MultiplyPadded is Multiply without the final crop: the result is the
// full padded square, with the true product in its top-left corner and
// zeros elsewhere.
func (e *Engine) MultiplyPadded(ctx context.Context, a, b matrix.Matrix) (*matrix.Dense, error) {
	padded, _, _, err := e.multiplyPadded(ctx, a, b)

	return padded, err
}

func (e *Engine) multiplyPadded(ctx context.Context, a, b matrix.Matrix) (*matrix.Dense, int, int, error) {
	da, db, err := resolveOperands(a, b, opMultiply)
	if err != nil {
		return nil, 0, 0, err
	}

	size := matrix.NextPowerOfTwo(lo.Max([]int{da.Rows(), da.Cols(), db.Cols()}))
	pa, err := matrix.PadTo(da, size)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%s: %w", opMultiply, err)
	}
	pb, err := matrix.PadTo(db, size)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%s: %w", opMultiply, err)
	}

	c, err := e.recurse(ctx, pa, pb, 0)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%s: %w", opMultiply, err)
	}

	return c, da.Rows(), db.Cols(), nil
}

// Multiply is a convenience wrapper around New(opts...).Multiply.
func Multiply(ctx context.Context, a, b matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	return New(opts...).Multiply(ctx, a, b)
}
