package jit

// fibWasm is a minimal WebAssembly module exporting one function:
//
//	fib(n i64) -> i64
//
// It is the demo's iterative loop, including its n+1 iteration bound:
// for n > 1 it steps the pair (p0, p1) from (0, 1) n+1 times and
// returns p1. Hand-assembled so the package carries no build-time
// toolchain dependency; section offsets below follow the wasm binary
// format (magic, version, then type/function/export/code sections).
var fibWasm = []byte{
	// Magic and version
	0x00, 0x61, 0x73, 0x6D, // "\0asm"
	0x01, 0x00, 0x00, 0x00, // version 1

	// Type section: one functype (i64) -> (i64)
	0x01, 0x06,
	0x01,       // 1 type
	0x60,       // functype
	0x01, 0x7E, // params: i64
	0x01, 0x7E, // results: i64

	// Function section: func 0 has type 0
	0x03, 0x02,
	0x01, 0x00,

	// Export section: "fib" = func 0
	0x07, 0x07,
	0x01,                   // 1 export
	0x03, 0x66, 0x69, 0x62, // "fib"
	0x00, 0x00, // func index 0

	// Code section: one body, locals p0, p1, i (all i64);
	// param n is local 0, so p0=1, p1=2, i=3
	0x0A, 0x3C,
	0x01,       // 1 body
	0x3A,       // body size
	0x01, 0x03, 0x7E, // 3 i64 locals

	0x20, 0x00, // local.get n
	0x42, 0x01, // i64.const 1
	0x57,       // i64.le_s
	0x04, 0x7E, // if (result i64)
	0x20, 0x00, //   local.get n
	0x05,       // else
	0x42, 0x00, 0x21, 0x01, //   p0 = 0
	0x42, 0x01, 0x21, 0x02, //   p1 = 1
	0x42, 0x00, 0x21, 0x03, //   i = 0
	0x03, 0x40, //   loop
	0x20, 0x01, 0x20, 0x02, 0x7C, //     p0 + p1
	0x20, 0x02, 0x21, 0x01, //     p0 = p1
	0x21, 0x02, //     p1 = p0 + p1
	0x20, 0x03, 0x42, 0x01, 0x7C, 0x22, 0x03, //     i++
	0x20, 0x00, 0x42, 0x01, 0x7C, //     n + 1
	0x53,       //     i64.lt_s
	0x0D, 0x00, //     br_if loop
	0x0B,       //   end loop
	0x20, 0x02, //   local.get p1
	0x0B,       // end if
	0x0B,       // end func
}
