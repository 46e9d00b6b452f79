// SPDX-License-Identifier: MIT

package strassen

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/strassen/matrix"
)

// Engine multiplies matrices with Strassen's recursion. An Engine is
// immutable after New and safe for concurrent use.
type Engine struct {
	opts Options
}

// New builds an Engine from the defaults overlaid with opts.
func New(opts ...Option) *Engine {
	return &Engine{opts: gatherOptions(opts...)}
}

// Options returns a copy of the effective configuration.
func (e *Engine) Options() Options { return e.opts }

// Strassen multiplies two square matrices of the same power-of-two
// dimension n.
//
// Implementation:
//   - Stage 1: boundary validation (nil, empty, square, power of two, equal size).
//   - Stage 2: recurse; at n ≤ threshold use the direct kernel, otherwise
//     split both operands, compute the seven products
//
//     M1 = (A11)(B12 − B22)          M5 = (A11 + A22)(B11 + B22)
//     M2 = (A11 + A12)(B22)          M6 = (A12 − A22)(B21 + B22)
//     M3 = (A21 + A22)(B11)          M7 = (A11 − A21)(B11 + B12)
//     M4 = (A22)(B21 − B11)
//
//     and combine
//
//     C11 = M5 + M4 − M2 + M6        C12 = M1 + M2
//     C21 = M3 + M4                  C22 = M5 + M1 − M3 − M7
//
//   - Stage 3: Join the quadrants (horizontal, then vertical concatenation).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrInvalidShape, *DimensionError.
//   - ctx.Err() when ctx is cancelled between recursion levels.
//
// Panics:
//   - only on an internal shape invariant violation, which boundary
//     validation rules out.
//
// Complexity:
//   - Time O(n^log2(7)) above the threshold; Space O(n²) per level.
func (e *Engine) Strassen(ctx context.Context, a, b matrix.Matrix) (*matrix.Dense, error) {
	da, db, err := resolveOperands(a, b, opStrassen)
	if err != nil {
		return nil, err
	}
	for _, m := range []*matrix.Dense{da, db} {
		if err = matrix.ValidatePowerOfTwoSquare(m); err != nil {
			return nil, fmt.Errorf("%s: %w", opStrassen, err)
		}
	}

	return e.recurse(ctx, da, db, 0)
}

// recurse is the per-call state machine: base state or recursive state.
func (e *Engine) recurse(ctx context.Context, a, b *matrix.Dense, depth int) (*matrix.Dense, error) {
	e.opts.stats.enter(depth)

	if a.Rows() <= e.opts.threshold {
		e.opts.stats.baseCase()
		return e.opts.direct(a, b), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e.opts.stats.split()

	qa := mustSplit(a)
	qb := mustSplit(b)
	a11, a12, a21, a22 := qa.TopLeft, qa.TopRight, qa.BottomLeft, qa.BottomRight
	b11, b12, b21, b22 := qb.TopLeft, qb.TopRight, qb.BottomLeft, qb.BottomRight

	factors := [7][2]*matrix.Dense{
		{a11, sub(b12, b22)},
		{add(a11, a12), b22},
		{add(a21, a22), b11},
		{a22, sub(b21, b11)},
		{add(a11, a22), add(b11, b22)},
		{sub(a12, a22), add(b21, b22)},
		{sub(a11, a21), add(b11, b12)},
	}

	var (
		p   [7]*matrix.Dense
		err error
	)
	if e.opts.workers > 1 && depth < e.opts.parallelDepth {
		err = e.productsParallel(ctx, &factors, &p, depth)
	} else {
		err = e.productsSequential(ctx, &factors, &p, depth)
	}
	if err != nil {
		return nil, err
	}
	m1, m2, m3, m4, m5, m6, m7 := p[0], p[1], p[2], p[3], p[4], p[5], p[6]

	c := matrix.Quadrants{
		TopLeft:     add(sub(add(m5, m4), m2), m6),
		TopRight:    add(m1, m2),
		BottomLeft:  add(m3, m4),
		BottomRight: sub(sub(add(m5, m1), m3), m7),
	}

	return must("Join")(matrix.Join(c)), nil
}

func (e *Engine) productsSequential(ctx context.Context, f *[7][2]*matrix.Dense, p *[7]*matrix.Dense, depth int) error {
	var err error
	for i := range f {
		if p[i], err = e.recurse(ctx, f[i][0], f[i][1], depth+1); err != nil {
			return err
		}
	}

	return nil
}

// productsParallel runs the seven independent products as an errgroup,
// joined before the caller combines them. Each slot of p is written by
// exactly one goroutine.
func (e *Engine) productsParallel(ctx context.Context, f *[7][2]*matrix.Dense, p *[7]*matrix.Dense, depth int) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.workers)
	for i := range f {
		g.Go(func() error {
			r, err := e.recurse(gctx, f[i][0], f[i][1], depth+1)
			p[i] = r
			return err
		})
	}

	return g.Wait()
}

func mustSplit(m *matrix.Dense) matrix.Quadrants {
	q, err := matrix.Split(m)
	if err != nil {
		panicInvariant("Split", err)
	}

	return q
}

func add(a, b *matrix.Dense) *matrix.Dense { return must("Add")(matrix.Add(a, b)) }

func sub(a, b *matrix.Dense) *matrix.Dense { return must("Sub")(matrix.Sub(a, b)) }

func isIncompatible(err error) bool { return errors.Is(err, matrix.ErrIncompatibleDimensions) }
