// SPDX-License-Identifier: MIT

// Package matrix: comparisons and reductions over whole matrices.
//
// Purpose:
//   - Value-based equality (Equal), tolerance-based equality (AllClose,
//     ApproxEqual) and the total sum of entries (SumAll).
//   - Dense fast-paths over flat slices; other Matrix implementations are
//     resolved once through AsDense.
package matrix

import (
	"math"
)

// Equal reports whether a and b have the same shape and bitwise-equal
// entries. Nil or unreadable operands compare unequal.
func Equal(a, b Matrix) bool {
	ok, err := AllClose(a, b, 0, 0)

	return err == nil && ok
}

// AllClose reports whether |a[i,j] − b[i,j]| ≤ atol + rtol·|b[i,j]| for all cells.
// Negative tolerances are normalized to their absolute value.
//
// Errors:
//   - ErrNaNInf for a non-finite tolerance.
//   - ErrNilMatrix, ErrIncompatibleDimensions from the validators.
//
// Complexity:
//   - Time O(r*c), Space O(1) for Dense operands.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	da, err := AsDense(a)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	db, err := AsDense(b)
	if err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	var diff float64
	for idx, av := range da.data {
		bv := db.data[idx]
		if av == bv { // covers ±Inf on both sides
			continue
		}
		diff = math.Abs(av - bv)
		if !(diff <= atol+rtol*math.Abs(bv)) { // NaN never passes
			return false, nil
		}
	}

	return true, nil
}

// ApproxEqual is AllClose with an absolute tolerance taken from the options
// (WithEpsilon; DefaultEpsilon otherwise) and no relative term.
func ApproxEqual(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)

	return AllClose(a, b, 0, o.eps)
}

// SumAll returns the sum of all entries of m, traversed in row-major order.
// A nil matrix sums to 0.
func SumAll(m Matrix) float64 {
	d, err := AsDense(m)
	if err != nil {
		return 0
	}
	var s float64
	for _, v := range d.data {
		s += v
	}

	return s
}
