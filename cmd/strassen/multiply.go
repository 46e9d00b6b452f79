// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/strassen/config"
	"github.com/katalvlaran/strassen/matrixio"
	"github.com/katalvlaran/strassen/strassen"
)

const (
	defaultFileA = "10a.txt"
	defaultFileB = "10b.txt"

	flagNoSummary = "no-summary"
)

func (a *app) multiplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multiply [A B]",
		Short: "Multiply the matrices stored in files A and B",
		Long: "Reads A and B (default " + defaultFileA + " and " + defaultFileB + "), " +
			"pads both to a common power-of-two size, multiplies them and prints " +
			"the rows of the product followed by the total sum of its entries.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 files, received %d", len(args))
			}

			return nil
		},
		RunE: a.runMultiply,
	}
	cmd.Flags().Bool(flagNoSummary, false, "omit the total sum line")

	return cmd
}

func (a *app) runMultiply(cmd *cobra.Command, args []string) error {
	pathA, pathB := defaultFileA, defaultFileB
	if len(args) == 2 {
		pathA, pathB = args[0], args[1]
	}

	cfg, err := config.FromFlags(cmd.Flags())
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	start := time.Now()
	ma, err := matrixio.ReadFile(pathA)
	if err != nil {
		return err
	}
	mb, err := matrixio.ReadFile(pathB)
	if err != nil {
		return err
	}
	a.debug.Printf("read %s (%dx%d) and %s (%dx%d) in %v",
		pathA, ma.Rows(), ma.Cols(), pathB, mb.Rows(), mb.Cols(), time.Since(start))

	var stats strassen.Stats
	opts = append(opts, strassen.WithStats(&stats))
	engine := strassen.New(opts...)

	start = time.Now()
	c, err := engine.Multiply(cmd.Context(), ma, mb)
	if err != nil {
		return err
	}
	a.debug.Printf("multiplied to %dx%d in %v (threshold=%d kernel=%s workers=%d) %+v",
		c.Rows(), c.Cols(), time.Since(start), cfg.Threshold, cfg.Kernel, cfg.Workers, stats.Snapshot())

	if err = matrixio.WriteRows(a.stdout, c); err != nil {
		return err
	}
	if skip, _ := cmd.Flags().GetBool(flagNoSummary); skip {
		return nil
	}

	return matrixio.WriteSummary(a.stdout, c)
}
