package math

import (
	"fmt"
	"slices"

	"github.com/go-highway/hwymath/hwy"
)

// Func is a named entry in the function table, giving uniform access to the
// scalar and vector forms of one function at both precisions. It is what
// the accuracy harness and the ulpcheck command drive.
type Func struct {
	Name  string
	Arity int

	s32 func(args []float32) float32
	s64 func(args []float64) float64
	v32 func(args []hwy.Vec[float32]) hwy.Vec[float32]
	v64 func(args []hwy.Vec[float64]) hwy.Vec[float64]
}

func unaryFunc(name string,
	s32 func(float32) float32, s64 func(float64) float64,
	v32 func(hwy.Vec[float32]) hwy.Vec[float32], v64 func(hwy.Vec[float64]) hwy.Vec[float64],
) Func {
	return Func{
		Name:  name,
		Arity: 1,
		s32:   func(a []float32) float32 { return s32(a[0]) },
		s64:   func(a []float64) float64 { return s64(a[0]) },
		v32:   func(a []hwy.Vec[float32]) hwy.Vec[float32] { return v32(a[0]) },
		v64:   func(a []hwy.Vec[float64]) hwy.Vec[float64] { return v64(a[0]) },
	}
}

func binaryFunc(name string,
	s32 func(a, b float32) float32, s64 func(a, b float64) float64,
	v32 func(a, b hwy.Vec[float32]) hwy.Vec[float32], v64 func(a, b hwy.Vec[float64]) hwy.Vec[float64],
) Func {
	return Func{
		Name:  name,
		Arity: 2,
		s32:   func(a []float32) float32 { return s32(a[0], a[1]) },
		s64:   func(a []float64) float64 { return s64(a[0], a[1]) },
		v32:   func(a []hwy.Vec[float32]) hwy.Vec[float32] { return v32(a[0], a[1]) },
		v64:   func(a []hwy.Vec[float64]) hwy.Vec[float64] { return v64(a[0], a[1]) },
	}
}

var registry = map[string]Func{}

func register(f Func) {
	if _, dup := registry[f.Name]; dup {
		panic("math: duplicate function " + f.Name)
	}
	registry[f.Name] = f
}

func init() {
	register(unaryFunc("sin", Sin32Scalar, Sin64Scalar, Sin[float32], Sin[float64]))
	register(unaryFunc("cos", Cos32Scalar, Cos64Scalar, Cos[float32], Cos[float64]))
	register(unaryFunc("tan", Tan32Scalar, Tan64Scalar, Tan[float32], Tan[float64]))
	register(unaryFunc("asin", Asin32Scalar, Asin64Scalar, Asin[float32], Asin[float64]))
	register(unaryFunc("acos", Acos32Scalar, Acos64Scalar, Acos[float32], Acos[float64]))
	register(unaryFunc("atan", Atan32Scalar, Atan64Scalar, Atan[float32], Atan[float64]))
	register(binaryFunc("atan2", Atan2_32Scalar, Atan2_64Scalar, Atan2[float32], Atan2[float64]))
	register(unaryFunc("exp", Exp32Scalar, Exp64Scalar, Exp[float32], Exp[float64]))
	register(unaryFunc("exp2", Exp2_32Scalar, Exp2_64Scalar, Exp2[float32], Exp2[float64]))
	register(unaryFunc("exp10", Exp10_32Scalar, Exp10_64Scalar, Exp10[float32], Exp10[float64]))
	register(unaryFunc("log", Log32Scalar, Log64Scalar, Log[float32], Log[float64]))
	register(unaryFunc("log2", Log2_32Scalar, Log2_64Scalar, Log2[float32], Log2[float64]))
	register(unaryFunc("log10", Log10_32Scalar, Log10_64Scalar, Log10[float32], Log10[float64]))
}

// Lookup returns the function registered under name.
func Lookup(name string) (Func, bool) {
	f, ok := registry[name]
	return f, ok
}

// Names returns the registered function names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func checkArity(f Func, n int) {
	if n != f.Arity {
		panic(fmt.Sprintf("math: %s takes %d argument(s), got %d", f.Name, f.Arity, n))
	}
}

// Apply evaluates f at the precision of T. It panics if len(args) differs
// from f.Arity.
func Apply[T hwy.Floats](f Func, args ...T) T {
	checkArity(f, len(args))
	if is32[T]() {
		a := make([]float32, len(args))
		for i, v := range args {
			a[i] = float32(v)
		}
		return T(f.s32(a))
	}
	a := make([]float64, len(args))
	for i, v := range args {
		a[i] = float64(v)
	}
	return T(f.s64(a))
}

// ApplyVec evaluates the vector form of f. T must be float32 or float64.
// It panics if len(args) differs from f.Arity.
func ApplyVec[T hwy.Floats](f Func, args ...hwy.Vec[T]) hwy.Vec[T] {
	checkArity(f, len(args))
	switch a := any(args).(type) {
	case []hwy.Vec[float32]:
		return any(f.v32(a)).(hwy.Vec[T])
	case []hwy.Vec[float64]:
		return any(f.v64(a)).(hwy.Vec[T])
	}
	panic(fmt.Sprintf("math: ApplyVec on unsupported lane type %T", args))
}
