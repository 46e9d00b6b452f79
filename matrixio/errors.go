// SPDX-License-Identifier: MIT

package matrixio

import "errors"

var (
	// ErrEmptyInput indicates a file or stream with no content besides whitespace.
	ErrEmptyInput = errors.New("matrixio: empty input")

	// ErrSyntax indicates input that is not a nested list of numbers.
	ErrSyntax = errors.New("matrixio: syntax error")
)
