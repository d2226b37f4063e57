package fib

import "testing"

func TestBaseCases(t *testing.T) {
	for _, n := range []int64{0, 1} {
		if got := Recursive(n); got != n {
			t.Errorf("Recursive(%d) = %d, want %d", n, got, n)
		}
		if got := Loop(n); got != n {
			t.Errorf("Loop(%d) = %d, want %d", n, got, n)
		}
		if got := Reference(n); got != n {
			t.Errorf("Reference(%d) = %d, want %d", n, got, n)
		}
	}
}

func TestRecursiveMatchesReference(t *testing.T) {
	for n := int64(2); n <= 15; n++ {
		if got, want := Recursive(n), Reference(n); got != want {
			t.Errorf("Recursive(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestRecursiveKnownValues(t *testing.T) {
	tests := []struct {
		n    int64
		want int64
	}{
		{2, 1},
		{3, 2},
		{7, 13},
		{10, 55},
		{20, 6765},
	}
	for _, tt := range tests {
		if got := Recursive(tt.n); got != tt.want {
			t.Errorf("Recursive(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

// Loop keeps the demo's n+1 iteration count, so for n > 1 it lands two
// positions past F(n). These tests pin the shipped behavior.
func TestLoopObservedBehavior(t *testing.T) {
	for n := int64(2); n <= 15; n++ {
		if got, want := Loop(n), Reference(n+2); got != want {
			t.Errorf("Loop(%d) = %d, want F(%d) = %d", n, got, n+2, want)
		}
	}
}

func TestLoopKnownValues(t *testing.T) {
	tests := []struct {
		n    int64
		want int64
	}{
		{2, 3},        // F(4)
		{3, 5},        // F(5)
		{10, 144},     // F(12)
		{30, 2178309}, // F(32), the value the demo prints
	}
	for _, tt := range tests {
		if got := Loop(tt.n); got != tt.want {
			t.Errorf("Loop(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestReferenceKnownValues(t *testing.T) {
	want := []int64{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144}
	for n, w := range want {
		if got := Reference(int64(n)); got != w {
			t.Errorf("Reference(%d) = %d, want %d", n, got, w)
		}
	}
	// Largest index before int64 overflow.
	if got, want := Reference(92), int64(7540113804746346429); got != want {
		t.Errorf("Reference(92) = %d, want %d", got, want)
	}
}

func BenchmarkRecursive(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Recursive(25)
	}
}

func BenchmarkLoop(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Loop(90)
	}
}
