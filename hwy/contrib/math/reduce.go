package math

import (
	stdmath "math"
	"math/big"

	"github.com/go-highway/hwymath/hwy"
)

// Payne–Hanek reduction needs 2/π to roughly 1100 + 53 + 120 bits for the
// largest binary64 exponent. twoOverPiBits holds floor(2/π · 2^twoOverPiScale)
// and piOver2 holds π/2 to piOver2Prec bits.
const (
	twoOverPiScale = 1400
	piGuardBits    = 64
	piOver2Prec    = 256
)

var (
	twoOverPiBits *big.Int
	piOver2       *big.Float
)

func init() {
	w := uint(twoOverPiScale + piGuardBits)
	pi := machinPi(w)

	num := new(big.Int).Lsh(big.NewInt(1), twoOverPiScale+1+w)
	twoOverPiBits = num.Quo(num, pi)

	piOver2 = new(big.Float).SetPrec(piOver2Prec).SetInt(pi)
	piOver2.SetMantExp(piOver2, -int(w)-1)
}

// machinPi returns floor(π·2^prec) up to a few units in the last place,
// using π = 16·atan(1/5) − 4·atan(1/239).
func machinPi(prec uint) *big.Int {
	pi := arctanInv(5, prec)
	pi.Lsh(pi, 4)
	t := arctanInv(239, prec)
	t.Lsh(t, 2)
	return pi.Sub(pi, t)
}

// arctanInv returns atan(1/n)·2^prec by its alternating Taylor series.
func arctanInv(n int64, prec uint) *big.Int {
	bn := big.NewInt(n)
	n2 := new(big.Int).Mul(bn, bn)
	term := new(big.Int).Lsh(big.NewInt(1), prec)
	term.Quo(term, bn)
	sum := new(big.Int).Set(term)
	t := new(big.Int)
	for k := int64(1); term.Sign() != 0; k++ {
		term.Quo(term, n2)
		t.Quo(term, big.NewInt(2*k+1))
		if k%2 == 1 {
			sum.Sub(sum, t)
		} else {
			sum.Add(sum, t)
		}
	}
	return sum
}

// reducePio2 returns n and r = hi + lo with x = n·π/2 + r and |r| ≤ π/4
// (up to rounding). Only n mod 4 is meaningful for |x| ≥ 2^20·π/2. x must
// be finite.
func reducePio2(x float64) (n int, hi, lo float64) {
	if stdmath.Abs(x) < trigMediumLimit {
		return reduceCodyWaite(x)
	}
	ax := stdmath.Abs(x)
	n, hi, lo = reducePayneHanek(ax)
	if x < 0 {
		return -n, -hi, -lo
	}
	return n, hi, lo
}

// reduceCodyWaite subtracts k·π/2 in up to three 33-bit pieces, stopping
// once the remainder no longer cancels.
func reduceCodyWaite(x float64) (n int, y0, y1 float64) {
	fn := stdmath.RoundToEven(x * trigInvPiOver2)
	n = int(fn)
	r := x - fn*trigPio2_1
	w := fn * trigPio2_1t
	y0 = r - w

	_, ex, _ := hwy.Decompose(x)
	if cancelled(ex, y0) > 16 {
		t := r
		w = fn * trigPio2_2
		r = t - w
		w = fn*trigPio2_2t - ((t - r) - w)
		y0 = r - w
		if cancelled(ex, y0) > 49 {
			t = r
			w = fn * trigPio2_3
			r = t - w
			w = fn*trigPio2_3t - ((t - r) - w)
			y0 = r - w
		}
	}
	y1 = (r - y0) - w
	return n, y0, y1
}

// cancelled returns how many binary orders of magnitude y lost against an
// argument with exponent field ex.
func cancelled(ex uint, y float64) int {
	_, ey, _ := hwy.Decompose(y)
	return int(ex) - int(ey)
}

// reducePayneHanek reduces a huge positive x. x = m·2^e exactly, so
// x·2/π = m·C·2^(e-scale) where C is twoOverPiBits. The integer part mod 4
// gives the quadrant and the fraction, times π/2, the remainder.
func reducePayneHanek(x float64) (n int, hi, lo float64) {
	frac, e := hwy.Frexp(x)
	_, _, mant := hwy.Decompose(frac)
	m := new(big.Int).SetUint64(mant | 1<<52)
	e -= 52

	p := m.Mul(m, twoOverPiBits)
	shift := uint(twoOverPiScale - e)

	ip := new(big.Int).Rsh(p, shift)
	n = int(new(big.Int).And(ip, big.NewInt(3)).Int64())

	one := new(big.Int).Lsh(big.NewInt(1), shift)
	f := p.Sub(p, ip.Lsh(ip, shift)) // fraction · 2^shift
	half := new(big.Int).Rsh(one, 1)
	if f.Cmp(half) >= 0 {
		n = (n + 1) & 3
		f.Sub(f, one)
	}

	r := new(big.Float).SetPrec(piOver2Prec).SetInt(f)
	r.SetMantExp(r, -int(shift))
	r.Mul(r, piOver2)

	hi, _ = r.Float64()
	rest := new(big.Float).SetPrec(piOver2Prec).Sub(r, big.NewFloat(hi))
	lo, _ = rest.Float64()
	return n, hi, lo
}
