// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/strassen/matrix"
	"github.com/katalvlaran/strassen/matrixio"
)

// maxGenerateAbs bounds --max so that 2*max+1 fits in an int on every platform.
const maxGenerateAbs = 1 << 30

const (
	flagRows = "rows"
	flagCols = "cols"
	flagMax  = "max"
)

func (a *app) generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [out]",
		Short: "Write a random integer matrix in the input format",
		Long:  "Writes a rows x cols matrix of integers in [-max, max] (max <= 2^30) to out, or to stdout when out is omitted.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runGenerate,
	}
	fs := cmd.Flags()
	fs.Int(flagRows, 10, "number of rows")
	fs.Int(flagCols, 10, "number of columns")
	fs.Int(flagMax, 9, "largest absolute value")
	fs.Int64(flagSeed, 1, "random seed")

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, args []string) error {
	fs := cmd.Flags()
	rows, _ := fs.GetInt(flagRows)
	cols, _ := fs.GetInt(flagCols)
	maxAbs, _ := fs.GetInt(flagMax)
	seed, _ := fs.GetInt64(flagSeed)
	if maxAbs < 0 || maxAbs > maxGenerateAbs {
		return fmt.Errorf("--%s %d: want 0..%d", flagMax, maxAbs, maxGenerateAbs)
	}

	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(seed))
	data := m.RawData()
	for i := range data {
		data[i] = float64(rng.Intn(2*maxAbs+1) - maxAbs)
	}

	if len(args) == 0 {
		return matrixio.WriteMatrix(a.stdout, m)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err = matrixio.WriteMatrix(w, m); err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		a.debug.Printf("wrote %dx%d matrix to %s", rows, cols, args[0])
	}

	return err
}
