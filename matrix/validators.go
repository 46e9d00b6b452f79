// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels/facades minimal by delegating nil/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and tests can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and O(1), except ValidateRows which is O(rows).
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → NonEmpty → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense stored in the interface.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty ensures both dimensions are positive.
// Assumes m is not nil.
func ValidateNonEmpty(m Matrix) error {
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateNonEmpty", ErrInvalidShape)
	}

	return nil
}

// ValidateRows ensures a two-dimensional slice is non-empty and rectangular.
//
// Errors: ErrInvalidShape with the offending row index in the message.
// Complexity: O(rows).
func ValidateRows(rows [][]float64) error {
	if len(rows) == 0 {
		return validatorErrorf("ValidateRows: no rows", ErrInvalidShape)
	}
	cols := len(rows[0])
	if cols == 0 {
		return validatorErrorf("ValidateRows: empty row 0", ErrInvalidShape)
	}
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return validatorErrorf(
				fmt.Sprintf("ValidateRows: row %d has %d values, want %d", i, len(rows[i]), cols),
				ErrInvalidShape)
		}
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameShape: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()),
			ErrIncompatibleDimensions)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.Rows(), m.Cols()), ErrInvalidShape)
	}

	return nil
}

// ValidateEvenSquare is the Splitter precondition: square with an even
// dimension. Assumes m is not nil.
func ValidateEvenSquare(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateEvenSquare", err)
	}
	if m.Rows()%2 != 0 {
		return validatorErrorf(fmt.Sprintf("ValidateEvenSquare: odd dimension %d", m.Rows()), ErrInvalidShape)
	}

	return nil
}

// ValidatePowerOfTwoSquare is the recursive engine precondition: square with
// a power-of-two dimension. Assumes m is not nil.
func ValidatePowerOfTwoSquare(m Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidatePowerOfTwoSquare", err)
	}
	if !IsPowerOfTwo(m.Rows()) {
		return validatorErrorf(fmt.Sprintf("ValidatePowerOfTwoSquare: dimension %d", m.Rows()), ErrInvalidShape)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → NonEmpty → a.Cols == b.Rows.
//
// Errors: ErrNilMatrix, ErrInvalidShape, ErrIncompatibleDimensions.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNonEmpty(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNonEmpty(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d × %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()),
			ErrIncompatibleDimensions)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}
