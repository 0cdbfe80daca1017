package math

import (
	"context"
	stdmath "math"
	"testing"

	"github.com/go-highway/hwymath/hwy"
	"golang.org/x/sync/errgroup"
)

func TestNames(t *testing.T) {
	want := []string{"acos", "asin", "atan", "atan2", "cos", "exp", "exp10", "exp2", "log", "log10", "log2", "sin", "tan"}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLookup(t *testing.T) {
	f, ok := Lookup("atan2")
	if !ok || f.Arity != 2 {
		t.Fatalf("Lookup(atan2) = %+v, %v", f, ok)
	}
	if _, ok := Lookup("sinh"); ok {
		t.Error("Lookup(sinh) succeeded, want miss")
	}
}

func TestApply(t *testing.T) {
	sin, _ := Lookup("sin")
	if got := Apply(sin, 3.0); got != Sin64Scalar(3) {
		t.Errorf("Apply(sin, 3.0) = %v, want %v", got, Sin64Scalar(3))
	}
	if got := Apply(sin, float32(3)); got != 0.14112000167369843 {
		t.Errorf("Apply(sin, float32(3)) = %v", got)
	}
	atan2, _ := Lookup("atan2")
	if got := Apply(atan2, 0.0, -1.0); got != stdmath.Pi {
		t.Errorf("Apply(atan2, 0, -1) = %v, want π", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Apply with wrong arity did not panic")
		}
	}()
	Apply(atan2, 1.0)
}

func TestApplyVec(t *testing.T) {
	exp, _ := Lookup("exp")
	v := hwy.LoadN([]float32{0, 1, 2, -1}, hwy.W4)
	got := ApplyVec(exp, v)
	for i := range 4 {
		if want := Exp32Scalar(v.Lane(i)); got.Lane(i) != want {
			t.Errorf("ApplyVec(exp) lane %d = %v, want %v", i, got.Lane(i), want)
		}
	}

	atan2, _ := Lookup("atan2")
	y := hwy.SetN(hwy.W2, 1.0)
	x := hwy.SetN(hwy.W2, -1.0)
	r := ApplyVec(atan2, y, x)
	if r.Lane(0) != Atan2_64Scalar(1, -1) || r.Lane(1) != Atan2_64Scalar(1, -1) {
		t.Errorf("ApplyVec(atan2) = %v", r.Data())
	}
}

// TestConcurrentEvaluation runs every function from many goroutines. The
// package holds no mutable state, so all results must match a serial run.
func TestConcurrentEvaluation(t *testing.T) {
	inputs := sweep(-3, 3, 0.01)
	names := Names()
	serial := make(map[string][]float64, len(names))
	for _, name := range names {
		f, _ := Lookup(name)
		out := make([]float64, len(inputs))
		for i, x := range inputs {
			out[i] = apply64(f, x)
		}
		serial[name] = out
	}

	g, ctx := errgroup.WithContext(context.Background())
	for range 8 {
		for _, name := range names {
			g.Go(func() error {
				f, _ := Lookup(name)
				for i, x := range inputs {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					got := apply64(f, x)
					if want := serial[name][i]; got != want && !(stdmath.IsNaN(got) && stdmath.IsNaN(want)) {
						t.Errorf("%s(%v) = %v concurrently, %v serially", name, x, got, want)
					}
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

func apply64(f Func, x float64) float64 {
	if f.Arity == 2 {
		return Apply(f, x, 0.5)
	}
	return Apply(f, x)
}
