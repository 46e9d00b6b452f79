// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by the strassen engine. All public functions MUST return these
// sentinels (optionally wrapped with an operation tag) and tests MUST check
// them via errors.Is. No public function panics on user-triggered errors;
// panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so it can be grepped in logs.
// Detection sites return the bare sentinel (or wrap it with coordinates);
// facades wrap once with the operation tag via matrixErrorf.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> dimension compatibility -> numeric policy.

var (
	// ErrInvalidShape is returned when a matrix is empty, non-rectangular,
	// or fails a squareness/evenness/power-of-two precondition.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrIncompatibleDimensions indicates that the inner dimensions of two
	// operands disagree for multiplication (a.Cols != b.Rows), or that two
	// operands of an elementwise operation have different shapes.
	ErrIncompatibleDimensions = errors.New("matrix: incompatible dimensions")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value where the numeric policy requires
	// finite values (ingestion and Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
