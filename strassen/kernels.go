// SPDX-License-Identifier: MIT

package strassen

import (
	"fmt"
	"strings"
)

// Kernel identifies a direct (schoolbook) multiplication loop nest.
// All kernels compute the same product; they differ in memory access order
// and therefore in speed and in floating-point summation order.
type Kernel int

const (
	// KernelNaive is the textbook i,j,k loop with a scalar accumulator.
	KernelNaive Kernel = iota
	// KernelIKJ uses i,k,j order so the inner loop streams rows of B and C.
	KernelIKJ
	// KernelBlocked tiles i, j and k so three tiles stay cache-resident.
	KernelBlocked
)

var kernelNames = [...]string{"naive", "ikj", "blocked"}

// String returns the name of the kernel.
func (k Kernel) String() string {
	if k.valid() {
		return kernelNames[k]
	}

	return fmt.Sprintf("Kernel(%d)", int(k))
}

func (k Kernel) valid() bool { return k >= 0 && int(k) < len(kernelNames) }

// ParseKernel maps a case-insensitive name back to a Kernel.
func ParseKernel(name string) (Kernel, error) {
	for i, n := range kernelNames {
		if strings.EqualFold(strings.TrimSpace(name), n) {
			return Kernel(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownKernel)
}

// run dispatches to the loop nest. a is m×k, b is k×n, c is m×n and zeroed;
// all row-major.
func (k Kernel) run(a, b, c []float64, m, n, kk, blockSize int) {
	switch k {
	case KernelNaive:
		mulNaive(a, b, c, m, n, kk)
	case KernelBlocked:
		mulBlocked(a, b, c, m, n, kk, blockSize)
	default:
		mulIKJ(a, b, c, m, n, kk)
	}
}

// mulNaive: C[i,j] = Σ_l A[i,l]·B[l,j], loop order i→j→l.
func mulNaive(a, b, c []float64, m, n, k int) {
	var sum float64
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			sum = 0
			for l := 0; l < k; l++ {
				sum += a[i*k+l] * b[l*n+j]
			}
			c[i*n+j] = sum
		}
	}
}

// mulIKJ accumulates a[i,l]·row_l(B) into row_i(C). Zero a[i,l] are not
// skipped: 0·Inf must still yield NaN.
func mulIKJ(a, b, c []float64, m, n, k int) {
	for i := 0; i < m; i++ {
		cRow := c[i*n : (i+1)*n]
		for l := 0; l < k; l++ {
			av := a[i*k+l]
			bRow := b[l*n : (l+1)*n]
			for j, bv := range bRow {
				cRow[j] += av * bv
			}
		}
	}
}

// mulBlocked is mulIKJ over blockSize×blockSize tiles.
func mulBlocked(a, b, c []float64, m, n, k, blockSize int) {
	for i0 := 0; i0 < m; i0 += blockSize {
		iEnd := min(i0+blockSize, m)
		for l0 := 0; l0 < k; l0 += blockSize {
			lEnd := min(l0+blockSize, k)
			for j0 := 0; j0 < n; j0 += blockSize {
				jEnd := min(j0+blockSize, n)
				for i := i0; i < iEnd; i++ {
					for l := l0; l < lEnd; l++ {
						av := a[i*k+l]
						for j := j0; j < jEnd; j++ {
							c[i*n+j] += av * b[l*n+j]
						}
					}
				}
			}
		}
	}
}
