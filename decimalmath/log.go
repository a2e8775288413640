package decimalmath

import (
	"github.com/shopspring/decimal"

	"github.com/evallang/numexpr/config"
	"github.com/evallang/numexpr/numerr"
)

// Ln computes the natural logarithm of x. Ported from the teacher's
// value/log.go:floatLog, which reduces x to a mantissa in [0.5,1) and
// sums the Maclaurin series for log(1-y) where y = 1-mantissa. The
// teacher gets the mantissa/exponent split for free from *big.Float's
// binary representation (MantExp); decimal.Decimal has no such split, so
// we reduce by repeated halving/doubling instead, and recover the
// exponent's contribution as a multiple of a once-computed ln(2).
func Ln(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	if x.Sign() <= 0 {
		numerr.Raise(numerr.Domain, -1, "ln of non-positive value %s", x)
	}
	places := working(mc)
	mantissa, exp := reduceToMantissa(x, places)
	y := decOne.Sub(mantissa)
	result := lnSeries(y, places)
	if exp != 0 {
		result = result.Add(ln2(places).Mul(decimal.NewFromInt(int64(exp))))
	}
	return RoundToPrecision(result, mc)
}

// Log2 and Log10 are ln(x)/ln(b) for their respective bases, the
// composition spec §4.1 calls log2/log10.
func Log2(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	places := working(mc)
	return RoundToPrecision(div(Ln(x, looser(mc)), ln2(places), places), mc)
}

func Log10(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	places := working(mc)
	return RoundToPrecision(div(Ln(x, looser(mc)), ln10(places), places), mc)
}

// LogBase implements the registry's logBase(n;b) function: log base b of n.
func LogBase(n, b decimal.Decimal, mc config.MathContext) decimal.Decimal {
	if b.Equal(decOne) {
		numerr.Raise(numerr.Domain, -1, "logBase: base must not be 1")
	}
	places := working(mc)
	lb := looser(mc)
	return RoundToPrecision(div(Ln(n, lb), Ln(b, lb), places), mc)
}

// looser returns a MathContext with a few extra guard digits, used when
// an intermediate Ln result feeds another division so that the final
// rounding doesn't compound two separate truncations.
func looser(mc config.MathContext) config.MathContext {
	p := mc.Precision
	if p <= 0 {
		p = config.DefaultMathContext.Precision
	}
	return config.MathContext{Precision: p + guardDigits, Rounding: mc.Rounding}
}

// reduceToMantissa divides or multiplies x by two until it lies in
// [0.5, 1), returning the mantissa and the net number of halvings
// (negative if x had to be scaled up instead).
func reduceToMantissa(x decimal.Decimal, places int32) (decimal.Decimal, int) {
	m := x
	exp := 0
	for m.Cmp(decOne) >= 0 {
		m = div(m, decTwo, places+4)
		exp++
	}
	for m.Cmp(decHalf) < 0 {
		m = m.Mul(decTwo)
		exp--
	}
	return m, exp
}

// lnSeries computes ln(1-y) via the Maclaurin series -y - y²/2 - y³/3 - ...
// It converges well for |y| <= 0.5, which reduceToMantissa guarantees.
func lnSeries(y decimal.Decimal, places int32) decimal.Decimal {
	yN := y
	sum := decimal.Zero
	l := newLoop("ln", 10000)
	for n := int64(1); ; n++ {
		term := div(yN, decimal.NewFromInt(n), places+4)
		sum = sum.Sub(term)
		if l.terminate(sum) {
			break
		}
		yN = yN.Mul(y)
	}
	return sum
}

// ln2 and ln10 are computed directly from lnSeries on their own
// mantissas (0.5 and 0.1) rather than by calling Ln recursively, which
// avoids the circular dependency Ln(2) -> reduceToMantissa(2) -> ln2
// would create. ln2 sums the series at y = 0.5; ln10 sums it at y = 0.9,
// outside the |y| <= 0.5 range above, so it needs far more terms (about
// 1,400 at the default precision), still within the loop's budget.
func ln2(places int32) decimal.Decimal {
	return lnSeries(decOne.Sub(decHalf), places).Neg()
}

func ln10(places int32) decimal.Decimal {
	tenth := div(decOne, decimal.NewFromInt(10), places+4)
	return lnSeries(decOne.Sub(tenth), places).Neg()
}
