package oracle

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"sync"
	"sync/atomic"

	"github.com/ericlagergren/decimal"
	dmath "github.com/ericlagergren/decimal/math"
)

// guardDigits are carried beyond the requested precision in every
// intermediate step.
const guardDigits = 8

// ErrReleased is returned by Eval on a Scope that has been released.
var ErrReleased = errors.New("oracle: scope released")

// Decimal is an Oracle backed by arbitrary-precision decimal arithmetic.
//
// The working precision belongs to the engine as a whole. Acquire holds the
// engine's session lock until Release, so overlapping sessions run one after
// another and each sees only its own precision.
type Decimal struct {
	session sync.Mutex

	mu   sync.Mutex
	bits uint
}

// NewDecimal returns a decimal engine at DefaultPrecision.
func NewDecimal() *Decimal {
	return &Decimal{bits: DefaultPrecision}
}

// Precision returns the engine's current working precision in bits.
func (d *Decimal) Precision() uint {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bits
}

func (d *Decimal) setPrecision(bits uint) (prev uint) {
	d.mu.Lock()
	defer d.mu.Unlock()
	prev, d.bits = d.bits, bits
	return prev
}

// Acquire implements Oracle. A bits value of zero selects DefaultPrecision.
func (d *Decimal) Acquire(bits uint) Scope {
	if bits == 0 {
		bits = DefaultPrecision
	}
	d.session.Lock()
	prev := d.setPrecision(bits)
	Logger().Debug("oracle session started", "bits", bits, "digits", digitsFor(bits))
	return &decimalScope{d: d, bits: bits, prev: prev}
}

type decimalScope struct {
	d          *Decimal
	bits, prev uint
	once       sync.Once
	released   atomic.Bool
}

func (s *decimalScope) Precision() uint { return s.bits }

func (s *decimalScope) Release() {
	s.once.Do(func() {
		s.released.Store(true)
		s.d.setPrecision(s.prev)
		s.d.session.Unlock()
		Logger().Debug("oracle session released", "restored_bits", s.prev)
	})
}

func (s *decimalScope) Eval(fn string, args ...float64) (Value, error) {
	if s.released.Load() {
		return Value{}, &EvalError{Func: fn, Args: args, Err: ErrReleased}
	}
	return evalDecimal(s.bits, fn, args)
}

// digitsFor returns the decimal digits that cover bits binary digits plus
// the guard.
func digitsFor(bits uint) int {
	return int(math.Ceil(float64(bits)*math.Log10(2))) + guardDigits
}

func evalDecimal(bits uint, fn string, args []float64) (v Value, err error) {
	if err := checkCall(fn, args); err != nil {
		return Value{}, err
	}
	if o, ok := resolve(fn, args); ok {
		if !o.isPi() {
			return o.v, nil
		}
		p := piMultiple(digitsFor(bits), o.num, o.den)
		return toValue(p, bits, fn, args)
	}

	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("oracle engine panicked", "func", fn, "args", args, "panic", r)
			err = &EvalError{Func: fn, Args: args, Err: fmt.Errorf("%w: %v", ErrNonConvergence, r)}
		}
	}()
	z := compute(fn, args, digitsFor(bits))
	return toValue(z, bits, fn, args)
}

func compute(fn string, args []float64, digits int) *decimal.Big {
	z := decimal.WithPrecision(digits)
	x := exactDecimal(args[0], digits)
	wide := digits + guardDigits
	switch fn {
	case "sin":
		dmath.Sin(z, x)
	case "cos":
		dmath.Cos(z, x)
	case "tan":
		dmath.Tan(z, x)
	case "asin":
		dmath.Asin(z, x)
	case "acos":
		dmath.Acos(z, x)
	case "atan":
		dmath.Atan(z, x)
	case "atan2":
		atan2(z, args[0], args[1], digits)
	case "exp":
		dmath.Exp(z, x)
	case "exp2":
		dmath.Exp(z, scaleByLog(x, 2, wide))
	case "exp10":
		dmath.Exp(z, scaleByLog(x, 10, wide))
	case "log":
		dmath.Log(z, x)
	case "log2":
		num := dmath.Log(decimal.WithPrecision(wide), x)
		den := dmath.Log(decimal.WithPrecision(wide), decimal.New(2, 0))
		z.Quo(num, den)
	case "log10":
		dmath.Log10(z, x)
	}
	return z
}

// atan2 sets z to atan2(y, x) for finite nonzero y and x. The angle is
// taken in the first quadrant and then placed by the signs of y and x.
func atan2(z *decimal.Big, y, x float64, digits int) {
	wide := digits + guardDigits
	theta := dmath.Atan2(decimal.WithPrecision(wide),
		exactDecimal(math.Abs(y), digits), exactDecimal(math.Abs(x), digits))
	if x < 0 {
		z.Sub(piMultiple(wide, 1, 1), theta)
	} else {
		z.Set(theta)
	}
	if y < 0 {
		z.Neg(z)
	}
}

// scaleByLog returns x·ln(base) at the given precision.
func scaleByLog(x *decimal.Big, base int64, digits int) *decimal.Big {
	ln := dmath.Log(decimal.WithPrecision(digits), decimal.New(base, 0))
	return decimal.WithPrecision(digits).Mul(x, ln)
}

func piMultiple(digits int, num, den int64) *decimal.Big {
	p := dmath.Pi(decimal.WithPrecision(digits + guardDigits))
	p.Mul(p, decimal.New(num, 0))
	return decimal.WithPrecision(digits).Quo(p, decimal.New(den, 0))
}

// exactDecimal converts a finite x to a decimal without rounding:
// m·2^-k = m·5^k·10^-k.
func exactDecimal(x float64, digits int) *decimal.Big {
	frac, e := math.Frexp(x)
	m := big.NewInt(int64(frac * (1 << 53)))
	e -= 53
	scale := 0
	if e >= 0 {
		m.Lsh(m, uint(e))
	} else {
		scale = -e
		m.Mul(m, new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(scale)), nil))
	}
	prec := max(digits, len(new(big.Int).Abs(m).Text(10)))
	return decimal.WithPrecision(prec).SetBigMantScale(m, scale)
}

// toValue converts z to a big.Float carrying 64 bits beyond the working
// precision.
func toValue(z *decimal.Big, bits uint, fn string, args []float64) (Value, error) {
	switch {
	case z.IsNaN(0):
		Logger().Warn("oracle produced NaN for in-domain argument", "func", fn, "args", args)
		return Value{}, &EvalError{Func: fn, Args: args, Err: ErrNonConvergence}
	case z.IsInf(0):
		return Value{F: new(big.Float).SetInf(z.Sign() < 0)}, nil
	}
	f, ok := new(big.Float).SetPrec(bits+64).SetString(z.String())
	if !ok {
		return Value{}, &EvalError{Func: fn, Args: args, Err: fmt.Errorf("%w: unparsable result %q", ErrNonConvergence, z.String())}
	}
	return Value{F: f}, nil
}
