// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the padding and splitting
// primitives, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/strassen/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkD *matrix.Dense
	sinkQ matrix.Quadrants
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandomDense(b, n, n, 1337)
			y := RandomDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = m
			}
		})
	}
}

func BenchmarkPad(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n+1), func(b *testing.B) {
			x := RandomDense(b, n+1, n+1, 99)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Pad(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = m
			}
		})
	}
}

func BenchmarkSplitJoin(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := RandomDense(b, n, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				q, err := matrix.Split(x)
				if err != nil {
					b.Fatal(err)
				}
				sinkQ = q
				if sinkD, err = matrix.Join(q); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
