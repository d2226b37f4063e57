// Package jit provides a bench.Accelerator that compiles the iterative
// Fibonacci loop to native code through wazero, the compiling
// WebAssembly runtime. On platforms without a wazero compiler backend
// the runtime falls back to its interpreter; either way Compile bears
// the full translation cost so timed invocations never do.
package jit

import (
	"context"
	"errors"
	"fmt"

	"github.com/tetratelabs/wazero"

	"github.com/tsnl/snail-scheme/bench"
)

// Loop accelerates the demo's iterative Fibonacci function. The
// compiled function agrees with fib.Loop for every index, n+1
// iteration bound included.
type Loop struct{}

// Compile instantiates the embedded wasm module and returns its
// exported fib function. The closer tears down the wazero runtime and
// must be called once the function is no longer needed.
func (Loop) Compile(ctx context.Context) (bench.Func, func() error, error) {
	r := wazero.NewRuntime(ctx)

	mod, err := r.Instantiate(ctx, fibWasm)
	if err != nil {
		r.Close(ctx)
		return nil, nil, fmt.Errorf("instantiate fib module: %w", err)
	}
	fn := mod.ExportedFunction("fib")
	if fn == nil {
		r.Close(ctx)
		return nil, nil, errors.New("fib module: export not found")
	}

	f := func(n int64) int64 {
		res, err := fn.Call(context.Background(), uint64(n))
		if err != nil {
			// The module is validated and takes no imports, so a
			// failed call means the runtime itself is gone.
			panic(fmt.Errorf("jit: fib(%d): %w", n, err))
		}
		return int64(res[0])
	}
	return f, func() error { return r.Close(context.Background()) }, nil
}
