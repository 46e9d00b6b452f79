// SPDX-License-Identifier: MIT
// Package matrix provides the elementwise linear-algebra kernels used by the
// Strassen engine: addition and subtraction of equally shaped matrices.
// All functions perform strict fail-fast validation and return clear errors
// on dimension mismatches.
//
// Notes:
//   - Kernels use the central validators and wrap sentinels via matrixErrorf.
//   - Results are always freshly allocated *Dense values; operands are never mutated.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd    = "Add"
	opSub    = "Sub"
	opPad    = "Pad"
	opPadTo  = "PadTo"
	opCrop   = "Crop"
	opSplit  = "Split"
	opHStack = "HStack"
	opVStack = "VStack"
	opJoin   = "Join"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: resolve both operands to *Dense (no copy when they already are).
//   - Stage 3: single flat loop 0..n-1 into a fresh result.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := AsDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := AsDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDense(da.r, da.c)
	for idx := range res.data {
		res.data[idx] = da.data[idx] + sign*db.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrIncompatibleDimensions (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A − B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrIncompatibleDimensions (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }
