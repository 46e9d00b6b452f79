// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common constructors.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// ZerosLike returns a zero matrix with the shape of m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// IdentityLike returns the identity of dimension Rows(m); m must be square.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}

	return NewIdentity(m.Rows())
}

// FromRows is a short alias of NewDenseFromRows with the default policy.
func FromRows(rows [][]float64) (*Dense, error) { return NewDenseFromRows(rows) }
