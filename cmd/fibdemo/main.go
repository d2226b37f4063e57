// fibdemo prints the demo's iterative Fibonacci value and optionally
// times a jit-compiled run of the same loop.
//
// Usage:
//
//	fibdemo [-n index] [-timed] [-v]
//
// With no flags it prints fib.Loop(30) as a single line, the behavior
// of the original script. -timed additionally compiles the loop to
// native code and reports how long one invocation took, excluding
// compilation.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/tsnl/snail-scheme/bench"
	"github.com/tsnl/snail-scheme/fib"
	"github.com/tsnl/snail-scheme/jit"
)

func main() {
	n := flag.Int64("n", 30, "sequence index to compute")
	timed := flag.Bool("timed", false, "also time a jit-compiled invocation")
	verbose := flag.Bool("v", false, "log compile diagnostics to stderr")
	flag.Parse()

	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if *n < 0 {
		fmt.Fprintf(os.Stderr, "fibdemo: index must be non-negative, got %d\n", *n)
		os.Exit(1)
	}

	fmt.Println(fib.Loop(*n))

	if *timed {
		bench.Warmup()
		if err := bench.Timed(context.Background(), os.Stdout, jit.Loop{}, *n); err != nil {
			fmt.Fprintf(os.Stderr, "fibdemo: %v\n", err)
			os.Exit(1)
		}
	}
}
