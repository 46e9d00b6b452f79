// SPDX-License-Identifier: MIT

// Command strassen multiplies matrices stored in text files with Strassen's
// algorithm and prints the product followed by the total of its entries.
//
// Usage:
//
//	strassen multiply [A.txt B.txt]   # defaults: 10a.txt 10b.txt
//	strassen verify --sizes 3,8,33    # compare against the direct product
//	strassen generate --rows 4 --cols 4 out.txt
//
// Engine flags (--threshold, --kernel, --workers, --parallel-depth,
// --no-trim) override STRASSEN_* variables, a .env file and --config YAML.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.SetPrefix("strassen: ")
	log.SetFlags(0)

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		log.Print(err)
		stop()
		os.Exit(1)
	}
}
