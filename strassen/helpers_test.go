// SPDX-License-Identifier: MIT

package strassen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/matrix"
)

// rows builds a *Dense from literal rows or fails the test.
func rows(t testing.TB, r [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(r)
	require.NoError(t, err)

	return m
}

// filled returns an r×c matrix where every entry is v.
func filled(t testing.TB, r, c int, v float64) *matrix.Dense {
	t.Helper()
	data := make([]float64, r*c)
	for i := range data {
		data[i] = v
	}
	m, err := matrix.NewDenseFromData(r, c, data)
	require.NoError(t, err)

	return m
}

// randomInts returns an r×c matrix with small integer entries in [-9, 9].
// Products of such matrices are exact in float64, so results can be
// compared with matrix.Equal.
func randomInts(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = float64(rng.Intn(19) - 9)
	}
	m, err := matrix.NewDenseFromData(r, c, data)
	require.NoError(t, err)

	return m
}

// randomFloats returns an r×c matrix with U(-1,1) entries.
func randomFloats(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewDenseFromData(r, c, data)
	require.NoError(t, err)

	return m
}

func identity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

// requireClose asserts elementwise |a-b| ≤ atol + rtol·|b|.
func requireClose(t testing.TB, want, got matrix.Matrix, rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "want\n%v\ngot\n%v", want, got)
}
