// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strassen/matrix"
)

func TestEqual(t *testing.T) {
	a := Sequential(t, 2, 3)
	require.True(t, matrix.Equal(a, a.Clone()))
	require.False(t, matrix.Equal(a, Sequential(t, 3, 2)), "shape differs")
	require.False(t, matrix.Equal(a, nil))

	b := a.Clone()
	MustSet(t, b, 1, 1, 5.0000001)
	require.False(t, matrix.Equal(a, b))
}

func TestAllClose(t *testing.T) {
	a := MustRows(t, [][]float64{{1, 100}})
	b := MustRows(t, [][]float64{{1 + 1e-12, 100.00001}})

	ok, err := matrix.AllClose(a, b, 1e-6, 0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, b, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(a, MustDense(t, 2, 2), 0, 0)
	require.ErrorIs(t, err, matrix.ErrIncompatibleDimensions)
}

func TestApproxEqual_Epsilon(t *testing.T) {
	a := MustRows(t, [][]float64{{1}})
	b := MustRows(t, [][]float64{{1.001}})

	ok, err := matrix.ApproxEqual(a, b)
	require.NoError(t, err)
	require.False(t, ok, "default epsilon is 1e-9")

	ok, err = matrix.ApproxEqual(a, b, matrix.WithEpsilon(1e-2))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestSumAll(t *testing.T) {
	require.Equal(t, 21.0, matrix.SumAll(Sequential(t, 2, 3)))
	require.Equal(t, 21.0, matrix.SumAll(hide{Sequential(t, 3, 2)}))
	require.Zero(t, matrix.SumAll(nil))
}
