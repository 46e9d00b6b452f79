// Package strassen is the root of a small module for multiplying dense
// matrices with Strassen's divide-and-conquer algorithm.
//
// Subpackages:
//
//	matrix/        Dense type, validators, padding (Pad, PadTo, Crop), Split/Join
//	strassen/      direct kernels, the recursive engine, the padded Multiply pipeline
//	matrixio/      reading the brace/JSON text format, printing rows and totals
//	config/        defaults, YAML, .env and STRASSEN_* environment, CLI flags
//	cmd/strassen/  the command-line tool (multiply, verify, generate)
//
// Quick start:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})
//	c, _ := strassen.Multiply(ctx, a, b) // [[19 22] [43 50]]
//
// Operands of any compatible shape are zero-padded to one power-of-two
// square, multiplied recursively down to a threshold (256 by default) and
// cropped back to rows(A)×cols(B).
//
// See examples/ for walk counting on a graph and a Markov chain.
package strassen
