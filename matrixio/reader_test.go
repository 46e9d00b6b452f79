// SPDX-License-Identifier: MIT

package matrixio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/matrixio"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "m.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestParse_Formats(t *testing.T) {
	want := [][]float64{{1, 2, 3}, {4, 5.5, -6}}
	cases := map[string]string{
		"braces":     "{{1,2,3},{4,5.5,-6}}",
		"json":       "[[1, 2, 3], [4, 5.5, -6]]",
		"multiline":  "{\n  {1, 2, 3},\n  {4, 5.5, -6}\n}\n",
		"mixed":      "[{1,2,3},[4,5.5,-6]]",
		"exponent":   "{{1e0,2,3},{4,55e-1,-6}}",
		"whitespace": "  \t{{1,2,3},{4,5.5,-6}}  \n\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := matrixio.Parse([]byte(src))
			require.NoError(t, err)
			if diff := cmp.Diff(want, m.ToRows()); diff != "" {
				t.Fatalf("rows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty", "", matrixio.ErrEmptyInput},
		{"blank", " \n\t ", matrixio.ErrEmptyInput},
		{"unbalanced", "{{1,2},{3,4}", matrixio.ErrSyntax},
		{"letters", "{{a,b}}", matrixio.ErrSyntax},
		{"flat", "{1,2,3}", matrixio.ErrSyntax},
		{"null", "null", matrixio.ErrSyntax},
		{"no rows", "{}", matrix.ErrInvalidShape},
		{"empty row", "{{}}", matrix.ErrInvalidShape},
		{"ragged", "{{1,2},{3}}", matrix.ErrInvalidShape},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrixio.Parse([]byte(tc.src))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParse_DoesNotModifyInput: the source buffer may be a read-only mapping.
func TestParse_DoesNotModifyInput(t *testing.T) {
	src := []byte("{{1,2},{3,4}}")
	_, err := matrixio.Parse(src)
	require.NoError(t, err)
	require.Equal(t, "{{1,2},{3,4}}", string(src))
}

func TestReadFile(t *testing.T) {
	m, err := matrixio.ReadFile(writeTemp(t, "{{1,2},{3,4}}\n"))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.ToRows())
}

func TestReadFile_Errors(t *testing.T) {
	_, err := matrixio.ReadFile(writeTemp(t, ""))
	require.ErrorIs(t, err, matrixio.ErrEmptyInput)

	_, err = matrixio.ReadFile(writeTemp(t, "\n\n"))
	require.ErrorIs(t, err, matrixio.ErrEmptyInput)

	_, err = matrixio.ReadFile(writeTemp(t, "{{1,2},"))
	require.ErrorIs(t, err, matrixio.ErrSyntax)

	_, err = matrixio.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRead(t *testing.T) {
	m, err := matrixio.Read(strings.NewReader("[[7]]"))
	require.NoError(t, err)
	require.Equal(t, 1, m.Rows())
	require.Equal(t, 7.0, m.RawData()[0])
}
