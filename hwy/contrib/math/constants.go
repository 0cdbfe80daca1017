package math

// =============================================================================
// Constants for mathematical functions
// =============================================================================
//
// Binary32 functions are evaluated in binary64 working precision, so the
// _f32 tables are stored as float64. They are shorter fits whose residual
// sits well below half a binary32 ULP.

// Range reduction by π/2
var (
	trigPiOver4     = 7.85398163397448278999e-01
	trigPiOver4Lo   = 3.06161699786838301793e-17
	trigInvPiOver2  = 6.36619772367581382433e-01
	trigTinyArg     = 0x1p-27
	trigMediumLimit = 0x1p20 * 1.5707963267948966

	// π/2 split into 33-bit pieces; k·pio2_n is exact for |k| < 2^20.
	trigPio2_1  = 1.57079632673412561417e+00
	trigPio2_1t = 6.07710050650619224932e-11
	trigPio2_2  = 6.07710050630396597660e-11
	trigPio2_2t = 2.02226624879595063154e-21
	trigPio2_3  = 2.02226624871116645580e-21
	trigPio2_3t = 8.47842766036889956997e-32
)

// Sine kernel on [-π/4, π/4]: sin(r) ≈ r + r³·S(r²)
var (
	sinCoeffs_f32 = []float64{
		-0.166666666416265235595,
		0.0083333293858894631756,
		-0.000198393348360966317347,
		0.0000027183114939898219064,
	}
	sinCoeffs_f64 = []float64{
		-1.66666666666666324348e-01,
		8.33333333332248946124e-03,
		-1.98412698298579493134e-04,
		2.75573137070700676789e-06,
		-2.50507602534068634195e-08,
		1.58969099521155010221e-10,
	}
)

// Cosine kernel on [-π/4, π/4].
// f32: cos(r) ≈ 1 + r²·C(r²). f64: cos(r) ≈ 1 - r²/2 + r⁴·C(r²).
var (
	cosCoeffs_f32 = []float64{
		-0.499999997251031003120,
		0.0416666233237390631894,
		-0.00138867637746099294692,
		0.0000243904487962774090654,
	}
	cosCoeffs_f64 = []float64{
		4.16666666666666019037e-02,
		-1.38888888888741095749e-03,
		2.48015872894767294178e-05,
		-2.75573143513906633035e-07,
		2.08757232129817482790e-09,
		-1.13596475577881948265e-11,
	}
)

// Tangent kernel on [-0.6744, 0.6744] (binary64 only; binary32 uses the
// sine and cosine kernels). Interleaved odd/even terms.
var tanCoeffs_f64 = []float64{
	3.33333333333334091986e-01,
	1.33333333333201242699e-01,
	5.39682539762260521377e-02,
	2.18694882948595424599e-02,
	8.86323982359930005737e-03,
	3.59207910759131235356e-03,
	1.45620945432529025516e-03,
	5.88041240820264096874e-04,
	2.46463134818469906812e-04,
	7.81794442939557092300e-05,
	7.14072491382608190305e-05,
	-1.85586374855275456654e-05,
	2.59073051863633712884e-05,
}

var tanThreshold = 0.6744

// Exponential: x = k·ln2 + r, e^r = 1 + r + r·c/(2-c), c = r - r²·P(r²)
var (
	expLn2Hi   = 6.93147180369123816490e-01
	expLn2Lo   = 1.90821492927058770002e-10
	expInvLn2  = 1.44269504088896338700e+00
	expLn2     = 6.93147180559945286227e-01
	expLn2Tail = 2.319046813846299558e-17
	expLn10    = 2.302585092994046
	expLn10Lo  = -2.1707562233822494e-16

	expOverflow  = 7.09782712893383973096e+02
	expUnderflow = -7.45133219101941108420e+02
	exp2Overflow = 1024.0
	// 2^-1075 rounds to zero.
	exp2Underflow  = -1075.0
	exp10Overflow  = 309.0
	exp10Underflow = -324.0
	expTinyArg     = 0x1p-28

	expCoeffs_f32 = []float64{
		1.6666625440e-1,
		-2.7667332906e-3,
	}
	expCoeffs_f64 = []float64{
		1.66666666666666019037e-01,
		-2.77777777770155933842e-03,
		6.61375632143793436117e-05,
		-1.65339022054652515390e-06,
		4.13813679705723846039e-08,
	}
)

// Logarithm: log(1+f) = f - f²/2 + s·(f²/2 + R(s²)), s = f/(2+f)
var (
	logSqrt2     = 1.4142135623730951
	logInvLn2Hi  = 1.44269504072144627571e+00
	logInvLn2Lo  = 1.67517131648865118353e-10
	logInvLn10Hi = 4.34294481878168880939e-01
	logInvLn10Lo = 2.50829467116452752298e-11
	logLog10_2Hi = 3.01029995663611771306e-01
	logLog10_2Lo = 3.69423907715893078616e-13

	// Fraction bits kept in the high half of a hi/lo split.
	highWordBits uint = 20

	logCoeffs_f32 = []float64{
		0.66666662693,
		0.40000972152,
		0.28498786688,
		0.24279078841,
	}
	logCoeffs_f64 = []float64{
		6.666666666666735130e-01,
		3.999999999940941908e-01,
		2.857142874366239149e-01,
		2.222219843214978396e-01,
		1.818357216161805012e-01,
		1.531383769920937332e-01,
		1.479819860511658591e-01,
	}
)

// Arcsine/arccosine: asin(x) ≈ x + x·t·P(t)/Q(t), t = x²
var (
	asinPio2Hi   = 1.57079632679489655800e+00
	asinPio2Lo   = 6.12323399573676603587e-17
	asinPio4Hi   = 7.85398163397448278999e-01
	asinPi       = 3.14159265358979311600e+00
	asinPiLo     = 1.2246467991473531772e-16
	asinTinyArg  = 0x1p-26
	acosTinyArg  = 0x1p-57
	asinNearOne  = 0.975
	asinHalfMark = 0.5

	asinP_f32 = []float64{
		1.6666586697e-01,
		-4.2743422091e-02,
		-8.6563630030e-03,
	}
	asinQ_f32 = []float64{
		1.0,
		-7.0662963390e-01,
	}
	asinP_f64 = []float64{
		1.66666666666666657415e-01,
		-3.25565818622400915405e-01,
		2.01212532134862925881e-01,
		-4.00555345006794114027e-02,
		7.91534994289814532176e-04,
		3.47933107596021167570e-05,
	}
	asinQ_f64 = []float64{
		1.0,
		-2.40339491173441421878e+00,
		2.02094576023350569471e+00,
		-6.88283971605453293030e-01,
		7.70381505559019352791e-02,
	}
)

// Arctangent: breakpoints 7/16, 11/16, 19/16, 39/16
var (
	atanHi = [4]float64{
		4.63647609000806093515e-01, // atan(0.5)
		7.85398163397448278999e-01, // atan(1)
		9.82793723247329054082e-01, // atan(1.5)
		1.57079632679489655800e+00, // atan(inf)
	}
	atanLo = [4]float64{
		2.26987774529616870924e-17,
		3.06161699786838301793e-17,
		1.39033110312309984516e-17,
		6.12323399573676603587e-17,
	}
	atanBreak  = [4]float64{0.4375, 0.6875, 1.1875, 2.4375}
	atanHuge   = 0x1p66
	atanTiny   = 0x1p-27
	atan2Ratio = 60 // exponent gap beyond which y/x is treated as 0 or ∞

	atanCoeffs_f32 = []float64{
		3.3333328366e-01,
		-1.9999158382e-01,
		1.4253635705e-01,
		-1.0648017377e-01,
		6.1687607318e-02,
	}
	atanCoeffs_f64 = []float64{
		3.33333333333329318027e-01,
		-1.99999999998764832476e-01,
		1.42857142725034663711e-01,
		-1.11111104054623557880e-01,
		9.09088713343650656196e-02,
		-7.69187620504482999495e-02,
		6.66107313738753120669e-02,
		-5.83357013379057348645e-02,
		4.97687799461593236017e-02,
		-3.65315727442169155270e-02,
		1.62858201153657823623e-02,
	}
)

// precision bundles the coefficient tables for one element precision.
// The two descriptors are built at package init and never mutated.
type precision struct {
	sin   []float64
	cos   []float64
	exp   []float64
	log   []float64
	asinP []float64
	asinQ []float64
	// atanEven and atanOdd hold the interleaved atan terms split for
	// evaluation in w = x⁴.
	atanEven []float64
	atanOdd  []float64
}

var (
	prec32 = newPrecision(sinCoeffs_f32, cosCoeffs_f32, expCoeffs_f32, logCoeffs_f32,
		asinP_f32, asinQ_f32, atanCoeffs_f32)
	prec64 = newPrecision(sinCoeffs_f64, cosCoeffs_f64, expCoeffs_f64, logCoeffs_f64,
		asinP_f64, asinQ_f64, atanCoeffs_f64)
)

func newPrecision(sin, cos, exp, log, asinP, asinQ, atan []float64) *precision {
	p := &precision{
		sin: sin, cos: cos, exp: exp, log: log, asinP: asinP, asinQ: asinQ,
	}
	for i, c := range atan {
		if i%2 == 0 {
			p.atanEven = append(p.atanEven, c)
		} else {
			p.atanOdd = append(p.atanOdd, c)
		}
	}
	return p
}
