package decimalmath

import (
	"github.com/shopspring/decimal"

	"github.com/evallang/numexpr/config"
	"github.com/evallang/numexpr/numerr"
)

// All functions in this file work in radians; angle-mode conversion
// (degrees <-> radians) is the registry layer's job, not decimalmath's,
// so that the elementary functions stay pure trigonometry.

// Pi returns π computed via Machin's formula, π = 16*atan(1/5) -
// 4*atan(1/239), both terms evaluated with atanSeries. Machin's formula
// is chosen, rather than porting a literal constant as the teacher does
// (floatPi is a precomputed literal not present in the retrieved
// sources), because it converges quickly from two small, well-behaved
// arguments to the same Maclaurin series atan already needs.
func Pi(mc config.MathContext) decimal.Decimal {
	places := working(mc)
	a := atanSeries(div(decOne, decimal.NewFromInt(5), places+4), places)
	b := atanSeries(div(decOne, decimal.NewFromInt(239), places+4), places)
	pi := a.Mul(decimal.NewFromInt(16)).Sub(b.Mul(decimal.NewFromInt(4)))
	return RoundToPrecision(pi, mc)
}

// twoPiReduce reduces x modulo 2π, the way the teacher's
// value/sin.go:twoPiReduce does, but decimal subtraction has no bignum
// shortcut for "subtract a huge multiple at once": we divide, truncate,
// and subtract the resulting multiple in one step instead of repeated
// subtraction, which is equivalent but avoids looping once per 2π for
// large x.
func twoPiReduce(x decimal.Decimal, places int32, pi decimal.Decimal) decimal.Decimal {
	twoPi := pi.Mul(decTwo)
	if x.Abs().Cmp(twoPi) < 0 {
		return x
	}
	quotient, _ := x.QuoRem(twoPi, 0)
	return x.Sub(quotient.Mul(twoPi))
}

func Sin(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	places := working(mc)
	pi := Pi(looser(mc))
	r := twoPiReduce(x, places, pi)
	return RoundToPrecision(sinSeries(r, places), mc)
}

func Cos(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	places := working(mc)
	pi := Pi(looser(mc))
	r := twoPiReduce(x, places, pi)
	return RoundToPrecision(cosSeries(r, places), mc)
}

func Tan(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	lb := looser(mc)
	s := Sin(x, lb)
	c := Cos(x, lb)
	if c.IsZero() {
		numerr.Raise(numerr.Domain, -1, "tangent is infinite")
	}
	return RoundToPrecision(div(s, c, working(mc)), mc)
}

func Cot(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	lb := looser(mc)
	s := Sin(x, lb)
	c := Cos(x, lb)
	if s.IsZero() {
		numerr.Raise(numerr.Domain, -1, "cotangent is infinite")
	}
	return RoundToPrecision(div(c, s, working(mc)), mc)
}

// sinSeries sums x - x³/3! + x⁵/5! - ...
func sinSeries(x decimal.Decimal, places int32) decimal.Decimal {
	xSquared := x.Mul(x)
	term := x
	sum := x
	l := newLoop("sin", 10000)
	for n := int64(1); ; n++ {
		factor := decimal.NewFromInt(2 * n * (2*n + 1))
		term = div(term.Mul(xSquared), factor, places+4).Neg()
		sum = sum.Add(term)
		if l.terminate(sum) {
			break
		}
	}
	return sum
}

// cosSeries sums 1 - x²/2! + x⁴/4! - ...
func cosSeries(x decimal.Decimal, places int32) decimal.Decimal {
	xSquared := x.Mul(x)
	term := decOne
	sum := decOne
	l := newLoop("cos", 10000)
	for n := int64(1); ; n++ {
		factor := decimal.NewFromInt((2*n - 1) * (2 * n))
		term = div(term.Mul(xSquared), factor, places+4).Neg()
		sum = sum.Add(term)
		if l.terminate(sum) {
			break
		}
	}
	return sum
}

// Asin computes arcsine via the teacher's value/asin.go Taylor series:
// asin(x) = x + (1/2)x³/3 + (1·3/2·4)x⁵/5 + ...
func Asin(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	if x.Cmp(decOne) > 0 || x.Cmp(decOne.Neg()) < 0 {
		numerr.Raise(numerr.Domain, -1, "asin argument out of range: %s", x)
	}
	places := working(mc)
	if x.Equal(decOne) {
		return RoundToPrecision(div(Pi(looser(mc)), decTwo, places), mc)
	}
	if x.Equal(decOne.Neg()) {
		return RoundToPrecision(div(Pi(looser(mc)), decTwo, places).Neg(), mc)
	}
	return RoundToPrecision(asinSeries(x, places), mc)
}

func asinSeries(x decimal.Decimal, places int32) decimal.Decimal {
	xSquared := x.Mul(x)
	coef := decOne
	xN := x
	n := decOne
	sum := decimal.Zero
	l := newLoop("asin", 10000)
	two := decTwo
	for k := int64(0); ; k++ {
		term := div(coef.Mul(xN), n, places+4)
		sum = sum.Add(term)
		if l.terminate(sum) {
			break
		}
		xN = xN.Mul(xSquared)
		num := decimal.NewFromInt(2*k + 1)
		den := decimal.NewFromInt(2*k + 2)
		coef = div(coef.Mul(num), den, places+4)
		n = n.Add(two)
	}
	return sum
}

func Acos(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	lb := looser(mc)
	return RoundToPrecision(div(Pi(lb), decTwo, working(mc)).Sub(Asin(x, lb)), mc)
}

// Atan computes arctangent. For |x|<=1 it uses the Maclaurin series
// after one half-angle step, atan(a) = 2*atan(a/(1+sqrt(1+a²))), which
// keeps the series argument at or below tan(pi/8) ~ 0.414; for |x|>1 it
// uses atan(x) = sign(x)*pi/2 - atan(1/x), the same reflection the
// teacher's gamma/asin helpers use elsewhere for out-of-range arguments.
func Atan(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	places := working(mc)
	lb := looser(mc)
	arg := x
	if x.Abs().Cmp(decOne) > 0 {
		arg = div(decOne, x, places+4)
	}
	halved := div(arg, decOne.Add(Sqrt(decOne.Add(arg.Mul(arg)), lb)), places+4)
	inv := atanSeries(halved, places).Mul(decTwo)
	if x.Abs().Cmp(decOne) <= 0 {
		return RoundToPrecision(inv, mc)
	}
	halfPi := div(Pi(lb), decTwo, places)
	if x.IsNegative() {
		halfPi = halfPi.Neg()
	}
	return RoundToPrecision(halfPi.Sub(inv), mc)
}

// atanSeries sums x - x³/3 + x⁵/5 - ... valid for |x|<=1.
func atanSeries(x decimal.Decimal, places int32) decimal.Decimal {
	xSquared := x.Mul(x)
	xN := x
	sum := decimal.Zero
	l := newLoop("atan", 10000)
	for n := int64(1); ; n += 2 {
		term := div(xN, decimal.NewFromInt(n), places+4)
		if n%4 == 3 {
			term = term.Neg()
		}
		sum = sum.Add(term)
		if l.terminate(sum) {
			break
		}
		xN = xN.Mul(xSquared)
	}
	return sum
}

func Acot(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	if x.IsZero() {
		lb := looser(mc)
		return RoundToPrecision(div(Pi(lb), decTwo, working(mc)), mc)
	}
	return Atan(div(decOne, x, working(looser(mc))), mc)
}

// Atan2 returns the angle (in radians) of the point (x,y) from the
// positive x-axis, handling all four quadrants and the axes.
func Atan2(y, x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	lb := looser(mc)
	places := working(mc)
	if x.IsPositive() {
		return RoundToPrecision(Atan(div(y, x, places+4), lb), mc)
	}
	if x.IsNegative() {
		pi := Pi(lb)
		base := Atan(div(y, x, places+4), lb)
		if !y.IsNegative() {
			return RoundToPrecision(base.Add(pi), mc)
		}
		return RoundToPrecision(base.Sub(pi), mc)
	}
	// x == 0
	if y.IsZero() {
		numerr.Raise(numerr.Domain, -1, "atan2 undefined at the origin")
	}
	halfPi := div(Pi(lb), decTwo, places)
	if y.IsPositive() {
		return RoundToPrecision(halfPi, mc)
	}
	return RoundToPrecision(halfPi.Neg(), mc)
}
