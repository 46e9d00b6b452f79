// SPDX-License-Identifier: MIT

// Package matrix: zero-padding to power-of-two squares and the inverse crop.
//
// Purpose:
//   - Bring an arbitrary r×c matrix to a p×p square, p a power of two, so that
//     a recursive halving algorithm can split it evenly at every level.
//   - Crop a padded product back to the true result shape.
//
// Invariants:
//   - Padding never changes the values of the top-left r×c region; every
//     added cell is exactly 0 (the additive identity).
//   - Pad is idempotent on square power-of-two matrices (returns an equal copy).
package matrix

import (
	"fmt"
	"math/bits"
)

// NextPowerOfTwo returns the smallest power of two ≥ k.
// NextPowerOfTwo(1) == 1; any k ≤ 1 yields 1.
// Complexity: O(1).
func NextPowerOfTwo(k int) int {
	if k <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(k-1))
}

// IsPowerOfTwo reports whether k is a positive power of two.
func IsPowerOfTwo(k int) bool {
	return k > 0 && k&(k-1) == 0
}

// Pad returns a fresh target×target copy of m, target = NextPowerOfTwo(max(rows, cols)),
// with m in the top-left corner and zeros elsewhere.
//
// Implementation:
//   - Stage 1: resolve m to *Dense (validates nil/empty).
//   - Stage 2: compute target and delegate to padInto.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape.
//
// Complexity:
//   - Time O(target²), Space O(target²).
func Pad(m Matrix) (*Dense, error) {
	d, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opPad, err)
	}
	if err = ValidateNonEmpty(d); err != nil {
		return nil, matrixErrorf(opPad, err)
	}

	return padInto(d, NextPowerOfTwo(max(d.r, d.c))), nil
}

// PadTo is Pad with an explicit target size. It lets two operands of
// different shapes share one common padded dimension.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidShape when size is not a power of two or is smaller than
//     either dimension of m.
func PadTo(m Matrix, size int) (*Dense, error) {
	d, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opPadTo, err)
	}
	if err = ValidateNonEmpty(d); err != nil {
		return nil, matrixErrorf(opPadTo, err)
	}
	if !IsPowerOfTwo(size) || size < d.r || size < d.c {
		return nil, matrixErrorf(opPadTo,
			fmt.Errorf("size %d for %dx%d: %w", size, d.r, d.c, ErrInvalidShape))
	}

	return padInto(d, size), nil
}

// padInto copies d row by row into a zeroed size×size buffer.
// Callers guarantee size ≥ d.r and size ≥ d.c.
func padInto(d *Dense, size int) *Dense {
	out := newDense(size, size)
	out.validateNaNInf = d.validateNaNInf
	for i := 0; i < d.r; i++ {
		copy(out.data[i*size:i*size+d.c], d.data[i*d.c:(i+1)*d.c])
	}

	return out
}

// Crop returns a copy of the top-left rows×cols region of m.
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidShape when rows/cols are not positive or exceed m's shape.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func Crop(m Matrix, rows, cols int) (*Dense, error) {
	d, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opCrop, err)
	}
	if rows <= 0 || cols <= 0 || rows > d.r || cols > d.c {
		return nil, matrixErrorf(opCrop,
			fmt.Errorf("%dx%d from %dx%d: %w", rows, cols, d.r, d.c, ErrInvalidShape))
	}

	return d.block(0, 0, rows, cols), nil
}

// block copies the rows×cols window starting at (r0, c0). Bounds are the
// caller's responsibility.
func (m *Dense) block(r0, c0, rows, cols int) *Dense {
	out := newDense(rows, cols)
	out.validateNaNInf = m.validateNaNInf
	for i := 0; i < rows; i++ {
		src := (r0+i)*m.c + c0
		copy(out.data[i*cols:(i+1)*cols], m.data[src:src+cols])
	}

	return out
}
