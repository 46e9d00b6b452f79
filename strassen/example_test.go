// SPDX-License-Identifier: MIT
package strassen_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
)

func ExampleMultiply() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewDenseFromRows([][]float64{{5, 6}, {7, 8}})

	c, err := strassen.Multiply(context.Background(), a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)
	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleEngine_MultiplyPadded shows the zero border left by padding a 3×2
// by 2×3 product up to 4×4.
func ExampleEngine_MultiplyPadded() {
	a, _ := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}, {1, 1}})
	b, _ := matrix.NewDenseFromRows([][]float64{{1, 2, 3}, {4, 5, 6}})

	c, _ := strassen.New(strassen.WithThreshold(1)).MultiplyPadded(context.Background(), a, b)
	fmt.Print(c)
	// Output:
	// [1, 2, 3, 0]
	// [4, 5, 6, 0]
	// [5, 7, 9, 0]
	// [0, 0, 0, 0]
}

func ExampleStats() {
	var st strassen.Stats
	e := strassen.New(strassen.WithThreshold(2), strassen.WithStats(&st))
	a, _ := matrix.NewIdentity(8)

	_, _ = e.Strassen(context.Background(), a, a)
	fmt.Printf("%+v\n", st.Snapshot())
	// Output:
	// {Calls:57 BaseCases:49 Splits:8 MaxDepth:2}
}
