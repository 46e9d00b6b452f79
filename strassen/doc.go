// SPDX-License-Identifier: MIT

// Package strassen multiplies dense matrices with Strassen's algorithm.
//
// The engine recursively partitions two n×n operands (n a power of two)
// into quadrants, forms seven half-size products instead of eight, and
// reassembles the result. Below a configurable threshold it falls back to
// a direct O(n³) kernel.
//
// Entry points:
//   - MultiplyDirect: the direct product for any compatible pair.
//   - Engine.Strassen: the recursion on power-of-two squares.
//   - Engine.Multiply: arbitrary shapes; pads to a common power of two,
//     multiplies and crops back to rows(A)×cols(B).
//   - Engine.MultiplyPadded: same, without the crop.
//
// Configuration uses functional options (WithThreshold, WithKernel,
// WithWorkers, ...). With WithWorkers(k > 1) the seven sub-products of the
// top recursion levels run concurrently; results are bit-identical to the
// sequential run because every sub-product executes the same code.
//
// Errors are sentinel-wrapped (see package matrix) and checked with
// errors.Is / errors.As. Internal shape mismatches inside the recursion
// are impossible after boundary validation and panic if they occur.
package strassen
