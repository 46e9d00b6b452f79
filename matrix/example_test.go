// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
)

// ExamplePad shows a 2×3 matrix zero-extended to the next power-of-two square.
func ExamplePad() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	p, _ := matrix.Pad(m)
	fmt.Print(p)
	// Output:
	// [1, 2, 3, 0]
	// [4, 5, 6, 0]
	// [0, 0, 0, 0]
	// [0, 0, 0, 0]
}

// ExampleSplit partitions a 4×4 matrix and reassembles it.
func ExampleSplit() {
	data := make([]float64, 16)
	for i := range data {
		data[i] = float64(i)
	}
	m, _ := matrix.NewDenseFromData(4, 4, data)

	q, _ := matrix.Split(m)
	fmt.Print(q.TopRight)

	back, _ := matrix.Join(q)
	fmt.Println(matrix.Equal(m, back))
	// Output:
	// [2, 3]
	// [6, 7]
	// true
}
