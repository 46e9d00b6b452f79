// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/strassen/config"
)

const flagVerbose = "verbose"

// app carries the writers and loggers shared by all subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer
	debug  *log.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		stdout: stdout,
		stderr: stderr,
		debug:  log.New(io.Discard, "strassen: ", log.Lmicroseconds),
	}

	root := &cobra.Command{
		Use:           "strassen",
		Short:         "Strassen matrix multiplication",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if v, _ := cmd.Flags().GetBool(flagVerbose); v {
				a.debug.SetOutput(stderr)
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	config.RegisterFlags(pf)
	pf.BoolP(flagVerbose, "v", false, "log timings and recursion statistics to stderr")

	root.AddCommand(a.multiplyCmd(), a.verifyCmd(), a.generateCmd())

	return root
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
