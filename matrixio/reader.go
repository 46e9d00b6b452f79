// SPDX-License-Identifier: MIT

package matrixio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/katalvlaran/strassen/matrix"
)

// ReadFile memory-maps the file at path read-only and parses it.
//
// Errors:
//   - os errors from opening or mapping the file.
//   - ErrEmptyInput, ErrSyntax from Parse.
//   - matrix.ErrInvalidShape for ragged rows, matrix.ErrNaNInf if opts keep
//     the finiteness policy and a value overflows.
func ReadFile(path string, opts ...matrix.Option) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	// mmap refuses zero-length mappings.
	if info.Size() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyInput)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	defer data.Unmap()

	m, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// Read consumes r fully and parses the result.
func Read(r io.Reader, opts ...matrix.Option) (*matrix.Dense, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return Parse(data, opts...)
}

// Parse decodes a nested number list. Curly braces are accepted as list
// delimiters. src is not retained.
func Parse(src []byte, opts ...matrix.Option) (*matrix.Dense, error) {
	src = bytes.TrimSpace(src)
	if len(src) == 0 {
		return nil, ErrEmptyInput
	}

	buf := make([]byte, len(src))
	for i, ch := range src {
		switch ch {
		case '{':
			ch = '['
		case '}':
			ch = ']'
		}
		buf[i] = ch
	}

	var rows [][]float64
	if err := json.Unmarshal(buf, &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if rows == nil {
		return nil, fmt.Errorf("%w: null", ErrSyntax)
	}

	return matrix.NewDenseFromRows(rows, opts...)
}
