// Package bench is a small timing harness for Fibonacci-shaped
// computations. It separates the computation (a Func), the optional
// just-in-time acceleration step (an Accelerator), and the measurement,
// so each can be tested and substituted independently.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Func is any computation mapping a sequence index to a value.
type Func func(n int64) int64

// Accelerator prepares a Func for invocation, typically by compiling it
// to native code. Compile may be arbitrarily expensive; its cost is
// never included in reported timings. The returned closer releases any
// resources the compiled function holds.
type Accelerator interface {
	Compile(ctx context.Context) (Func, func() error, error)
}

// Passthrough is the no-op Accelerator: Compile returns Fn as-is. It
// stands in for a real compiler in tests and on hosts where none is
// wanted.
type Passthrough struct {
	Fn Func
}

func (p Passthrough) Compile(context.Context) (Func, func() error, error) {
	if p.Fn == nil {
		return nil, nil, errors.New("passthrough: nil Func")
	}
	return p.Fn, func() error { return nil }, nil
}

// timedPrefix matches the demo script's report line verbatim.
const timedPrefix = "Excluding compilation and this message, took: "

// Warmup runs a short busy loop before measurement so the first timed
// invocation is not charged scheduler and frequency-scaling startup
// costs.
func Warmup() {
	sum := int64(0)
	for i := int64(0); i < 10000; i++ {
		sum += i
	}
}

// Measure invokes f once with n and returns its value and the
// wall-clock time the invocation took.
func Measure(f Func, n int64) (int64, time.Duration) {
	start := time.Now()
	v := f(n)
	return v, time.Since(start)
}

// Timed compiles a function via accel, invokes it once with n, and
// writes one line to w reporting the elapsed seconds of the invocation
// alone. The computed value is discarded. Compilation failures are
// returned wrapped; nothing is written in that case.
func Timed(ctx context.Context, w io.Writer, accel Accelerator, n int64) error {
	compileStart := time.Now()
	f, closer, err := accel.Compile(ctx)
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}
	defer closer()
	logrus.WithField("elapsed", time.Since(compileStart)).Debug("accelerator compile")

	_, elapsed := Measure(f, n)
	fmt.Fprintf(w, "%s%v\n", timedPrefix, elapsed.Seconds())
	return nil
}
