// SPDX-License-Identifier: MIT

// Package strassen: functional configuration of the engine.
//
// WithX constructors panic on nonsensical values; the engine itself never
// panics on user input. Parallel mode yields the same bits as sequential mode.
package strassen

import "runtime"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultThreshold is the dimension at or below which the engine stops
	// recursing and uses the direct kernel. Any value ≥ 1 is correct; this
	// one trades recursion overhead against the 7-vs-8 product saving.
	DefaultThreshold = 256

	// DefaultKernel is the base-case kernel.
	DefaultKernel = KernelIKJ

	// DefaultBlockSize is the tile edge for KernelBlocked. 3 tiles of 64×64
	// float64 fit a typical 32KB L1 cache.
	DefaultBlockSize = 64

	// DefaultWorkers = 1 keeps the engine single-threaded.
	DefaultWorkers = 1

	// DefaultParallelDepth is how many recursion levels fan out their seven
	// sub-products when Workers > 1.
	DefaultParallelDepth = 2

	// DefaultTrim crops padded products back to rows(A)×cols(B) in Multiply.
	DefaultTrim = true
)

// ---------- Internal panic messages ----------

const (
	panicThresholdInvalid     = "strassen: WithThreshold: threshold must be >= 1"
	panicBlockSizeInvalid     = "strassen: WithBlockSize: block size must be >= 1"
	panicWorkersInvalid       = "strassen: WithWorkers: workers must be >= 0"
	panicParallelDepthInvalid = "strassen: WithParallelDepth: depth must be >= 0"
	panicKernelInvalid        = "strassen: WithKernel: unknown kernel"
)

// Option mutates engine options.
type Option func(*Options)

// Options stores the effective engine configuration.
type Options struct {
	threshold     int
	kernel        Kernel
	blockSize     int
	workers       int
	parallelDepth int
	trim          bool
	stats         *Stats
}

// WithThreshold sets the base-case dimension.
//
// Errors:
//   - Panics when n < 1.
func WithThreshold(n int) Option {
	if n < 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = n }
}

// WithKernel selects the direct multiplication kernel used at the base case.
func WithKernel(k Kernel) Option {
	if !k.valid() {
		panic(panicKernelInvalid)
	}

	return func(o *Options) { o.kernel = k }
}

// WithBlockSize sets the tile edge of KernelBlocked.
func WithBlockSize(n int) Option {
	if n < 1 {
		panic(panicBlockSizeInvalid)
	}

	return func(o *Options) { o.blockSize = n }
}

// WithWorkers bounds how many sub-products run concurrently.
// 1 is sequential; 0 means runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	if n < 0 {
		panic(panicWorkersInvalid)
	}
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}

	return func(o *Options) { o.workers = n }
}

// WithParallelDepth limits fan-out to the top d recursion levels.
// Deeper levels run sequentially inside their parent's goroutine.
func WithParallelDepth(d int) Option {
	if d < 0 {
		panic(panicParallelDepthInvalid)
	}

	return func(o *Options) { o.parallelDepth = d }
}

// WithTrim controls whether Multiply crops the padded product to the true
// result shape. MultiplyPadded ignores it.
func WithTrim(trim bool) Option {
	return func(o *Options) { o.trim = trim }
}

// WithStats attaches counters updated on every recursive call. The same
// Stats may be shared across engines; counters accumulate.
func WithStats(s *Stats) Option {
	return func(o *Options) { o.stats = s }
}

func defaultOptions() Options {
	return Options{
		threshold:     DefaultThreshold,
		kernel:        DefaultKernel,
		blockSize:     DefaultBlockSize,
		workers:       DefaultWorkers,
		parallelDepth: DefaultParallelDepth,
		trim:          DefaultTrim,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Threshold reports the effective base-case dimension.
func (o Options) Threshold() int { return o.threshold }

// Kernel reports the effective base-case kernel.
func (o Options) Kernel() Kernel { return o.kernel }

// Workers reports the effective concurrency bound.
func (o Options) Workers() int { return o.workers }
