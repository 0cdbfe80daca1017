// Package oracle supplies arbitrary-precision reference values for the
// elementary functions in package math.
//
// An Oracle is driven through a Scope: Acquire fixes the working precision
// in bits for the duration of a session, Eval computes reference values at
// that precision, and Release restores whatever precision was in effect
// before. A Scope must be released on every path, including failure:
//
//	scope := o.Acquire(128)
//	defer scope.Release()
//	v, err := scope.Eval("sin", 0.5)
//
// Special arguments (NaN, infinities, domain edges and the signed-zero cases
// of atan2) are resolved exactly before any engine runs, so reference values
// for them do not depend on the engine.
package oracle

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"
)

// DefaultPrecision is the working precision, in bits, used when Acquire is
// called with zero.
const DefaultPrecision = 128

var (
	// ErrUnknownFunction is returned by Eval for a name the oracle does not
	// implement.
	ErrUnknownFunction = errors.New("unknown function")

	// ErrNonConvergence is returned by Eval when the engine fails to produce
	// a value for a finite, in-domain argument.
	ErrNonConvergence = errors.New("evaluation did not converge")

	// ErrArity is returned by Eval when the argument count does not match
	// the function.
	ErrArity = errors.New("wrong number of arguments")
)

// EvalError records the call that failed. The cause is one of the sentinel
// errors above and can be tested with errors.Is.
type EvalError struct {
	Func string
	Args []float64
	Err  error
}

func (e *EvalError) Error() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = fmt.Sprintf("%v", a)
	}
	return fmt.Sprintf("oracle: %s(%s): %v", e.Func, strings.Join(args, ", "), e.Err)
}

func (e *EvalError) Unwrap() error { return e.Err }

// Value is a reference result. F carries finite values and signed
// infinities; NaN is flagged separately since big.Float has no NaN.
type Value struct {
	F   *big.Float
	NaN bool
}

// NaNValue returns the NaN reference value.
func NaNValue() Value { return Value{NaN: true} }

// IsInf reports whether v is an infinity of the given sign (any sign when
// sign is 0).
func (v Value) IsInf(sign int) bool {
	if v.NaN || v.F == nil || !v.F.IsInf() {
		return false
	}
	return sign == 0 || (sign > 0) == (v.F.Sign() > 0)
}

// Float64 returns v rounded to float64.
func (v Value) Float64() float64 {
	if v.NaN || v.F == nil {
		return nan()
	}
	f, _ := v.F.Float64()
	return f
}

func (v Value) String() string {
	if v.NaN || v.F == nil {
		return "NaN"
	}
	return v.F.Text('g', 40)
}

// Oracle produces reference values.
type Oracle interface {
	// Acquire starts a session at the given working precision in bits.
	// Concurrent sessions on the same Oracle are serialised.
	Acquire(bits uint) Scope
}

// Scope is one precision session on an Oracle.
type Scope interface {
	// Eval computes fn at args. Arguments are taken as exact binary values.
	// Eval may be called from several goroutines within one session.
	Eval(fn string, args ...float64) (Value, error)
	// Precision returns the working precision in bits.
	Precision() uint
	// Release ends the session and restores the previous precision. It is
	// safe to call more than once.
	Release()
}

var arities = map[string]int{
	"sin": 1, "cos": 1, "tan": 1,
	"asin": 1, "acos": 1, "atan": 1, "atan2": 2,
	"exp": 1, "exp2": 1, "exp10": 1,
	"log": 1, "log2": 1, "log10": 1,
}

// Funcs returns the supported function names in sorted order.
func Funcs() []string {
	names := make([]string, 0, len(arities))
	for name := range arities {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Supports reports whether fn is a supported function name.
func Supports(fn string) bool {
	_, ok := arities[fn]
	return ok
}

func checkCall(fn string, args []float64) error {
	n, ok := arities[fn]
	if !ok {
		return &EvalError{Func: fn, Args: args, Err: ErrUnknownFunction}
	}
	if len(args) != n {
		return &EvalError{Func: fn, Args: args, Err: fmt.Errorf("%w: want %d, got %d", ErrArity, n, len(args))}
	}
	return nil
}
