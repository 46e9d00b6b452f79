// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/gosuri/uilive"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/strassen/config"
	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/strassen"
)

const (
	flagSizes  = "sizes"
	flagRounds = "rounds"
	flagSeed   = "seed"
	flagRTol   = "rtol"
)

var errMismatch = errors.New("strassen product differs from direct product")

func (a *app) verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the engine against the direct product on random matrices",
		Args:  cobra.NoArgs,
		RunE:  a.runVerify,
	}
	fs := cmd.Flags()
	fs.IntSlice(flagSizes, []int{1, 2, 3, 7, 16, 33, 64}, "square sizes to test; each also runs as n x (n+1) times (n+1) x n")
	fs.Int(flagRounds, 3, "random pairs per size")
	fs.Int64(flagSeed, 1, "random seed")
	fs.Float64(flagRTol, 1e-9, "relative tolerance")

	return cmd
}

func (a *app) runVerify(cmd *cobra.Command, _ []string) error {
	cfg, err := config.FromFlags(cmd.Flags())
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	fs := cmd.Flags()
	sizes, _ := fs.GetIntSlice(flagSizes)
	rounds, _ := fs.GetInt(flagRounds)
	seed, _ := fs.GetInt64(flagSeed)
	rtol, _ := fs.GetFloat64(flagRTol)
	for _, n := range sizes {
		if n < 1 {
			return fmt.Errorf("%w: size %d", matrix.ErrInvalidShape, n)
		}
	}

	progress, done := a.progress()
	defer done()

	engine := strassen.New(opts...)
	rng := rand.New(rand.NewSource(seed))
	total := len(sizes) * rounds * 2
	checked := 0
	for _, n := range sizes {
		for r := 0; r < rounds; r++ {
			for _, shape := range [][3]int{{n, n, n}, {n, n + 1, n}} {
				if err = cmd.Context().Err(); err != nil {
					return err
				}
				ma := randomDense(rng, shape[0], shape[1])
				mb := randomDense(rng, shape[1], shape[2])

				ok, err := a.check(cmd, engine, ma, mb, rtol)
				if err != nil {
					return err
				}
				checked++
				fmt.Fprintf(progress, "verify: %d/%d (%dx%d · %dx%d)\n", checked, total, shape[0], shape[1], shape[1], shape[2])
				if !ok {
					return fmt.Errorf("%w: %dx%d · %dx%d, seed %d", errMismatch, shape[0], shape[1], shape[1], shape[2], seed)
				}
			}
		}
	}
	done()
	fmt.Fprintf(a.stdout, "ok: %d products verified\n", checked)

	return nil
}

func (a *app) check(cmd *cobra.Command, e *strassen.Engine, ma, mb *matrix.Dense, rtol float64) (bool, error) {
	got, err := e.Multiply(cmd.Context(), ma, mb)
	if err != nil {
		return false, err
	}
	want, err := strassen.MultiplyDirect(ma, mb, strassen.WithKernel(strassen.KernelNaive))
	if err != nil {
		return false, err
	}
	if got.Rows() != want.Rows() || got.Cols() != want.Cols() {
		// Untrimmed output: compare the top-left block only.
		if got, err = matrix.Crop(got, want.Rows(), want.Cols()); err != nil {
			return false, err
		}
	}
	a.debug.Printf("checked %dx%d · %dx%d", ma.Rows(), ma.Cols(), mb.Rows(), mb.Cols())

	return matrix.AllClose(got, want, rtol, rtol)
}

// progress returns a live-updating writer on terminals and the debug log
// otherwise. done is idempotent.
func (a *app) progress() (io.Writer, func()) {
	if !isTerminal(a.stderr) {
		return a.debug.Writer(), func() {}
	}

	w := uilive.New()
	w.Out = a.stderr
	w.Start()
	stopped := false

	return w, func() {
		if !stopped {
			stopped = true
			w.Stop()
		}
	}
}

func randomDense(rng *rand.Rand, r, c int) *matrix.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.Float64()*2 - 1
	}
	m, err := matrix.NewDenseFromData(r, c, data)
	if err != nil {
		panic(err)
	}

	return m
}
