// SPDX-License-Identifier: MIT

// Package matrix provides the dense, value-owning matrix type used by the
// strassen engine, together with the two structural building blocks of a
// padded divide-and-conquer multiplication:
//
//   - Padding: NextPowerOfTwo, Pad, PadTo and the inverse Crop bring any
//     rectangular matrix to a zero-extended power-of-two square and back.
//   - Splitting: Split partitions an even square into four Quadrants;
//     HStack, VStack and Join reassemble them.
//
// Elementwise Add and Sub, value equality (Equal, AllClose, ApproxEqual) and
// SumAll complete the surface. Every operation returns a freshly allocated
// *Dense; no result aliases an input.
//
// Errors are package-level sentinels (ErrInvalidShape,
// ErrIncompatibleDimensions, ErrOutOfRange, ErrNilMatrix, ErrNaNInf), wrapped
// with an operation tag and matched with errors.Is:
//
//	q, err := matrix.Split(m)
//	if errors.Is(err, matrix.ErrInvalidShape) {
//		// odd or non-square input
//	}
//
// Layout is row-major over a flat []float64 (offset = i*cols + j).
package matrix
