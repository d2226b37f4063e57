// Package fib implements the three Fibonacci computations from the
// snail-scheme sandbox demo: naive recursion, the demo's iterative loop
// (literal behavior preserved, see Loop), and the textbook iteration.
//
// Convention throughout: F(0)=0, F(1)=1, F(n)=F(n-1)+F(n-2).
package fib

// Recursive returns F(n) by the naive exponential-time recursion.
// Call count grows ~1.618^n and stack depth grows with n; callers must
// supply a non-negative n.
func Recursive(n int64) int64 {
	if n <= 1 {
		return n
	}
	return Recursive(n-1) + Recursive(n-2)
}

// Loop is the demo's iterative variant, reproduced exactly: for n > 1 it
// runs n+1 pair-accumulator steps from (0, 1) and returns the second
// accumulator. After k steps that accumulator holds F(k+1), so Loop(n)
// is F(n+2) for n > 1, not F(n). The loop bound is kept as shipped
// rather than corrected; use Reference for F(n).
func Loop(n int64) int64 {
	if n <= 1 {
		return n
	}
	p0, p1 := int64(0), int64(1)
	for i := int64(0); i < n+1; i++ {
		p0, p1 = p1, p0+p1
	}
	return p1
}

// Reference returns F(n) by the standard linear iteration. It is the
// oracle the tests compare the other variants against.
func Reference(n int64) int64 {
	if n <= 1 {
		return n
	}
	p0, p1 := int64(0), int64(1)
	for i := int64(2); i <= n; i++ {
		p0, p1 = p1, p0+p1
	}
	return p1
}
