package decimalmath

import (
	"github.com/shopspring/decimal"

	"github.com/evallang/numexpr/config"
	"github.com/evallang/numexpr/numerr"
)

// Sqrt computes the square root of x via Newton's method, ported from
// the teacher's value/sqrt.go:floatSqrt. The teacher seeds the iteration
// by halving x's binary exponent; decimal.Decimal has no binary exponent
// to halve, so instead we seed with seedGuess's power-of-100 scaling of x
// and let a few extra Newton steps absorb the rougher starting guess.
func Sqrt(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	if x.IsNegative() {
		numerr.Raise(numerr.Domain, -1, "square root of negative number %s", x)
	}
	if x.IsZero() {
		return decimal.Zero
	}
	places := working(mc)
	z := seedGuess(x)
	l := newLoop("sqrt", 1000)
	for {
		// z = z - (z²-x)/(2z)
		zSquared := z.Mul(z)
		num := div(zSquared.Sub(x), z.Mul(decTwo), places+4)
		z = z.Sub(num)
		if l.terminate(z) {
			break
		}
	}
	return RoundToPrecision(z, mc)
}

// seedGuess picks a reasonable starting point for Newton's method without
// needing a binary mantissa/exponent split: divide x by 100 repeatedly
// (or multiply it by 100, if small) until it lies in [0.01, 100], then
// scale the result back by one factor of 10 per factor of 100 removed,
// which lands within about a factor of 10 of sqrt(x).
func seedGuess(x decimal.Decimal) decimal.Decimal {
	m := x
	scale := 0
	for m.Cmp(decimal.NewFromInt(100)) > 0 {
		m = div(m, decimal.NewFromInt(100), 20)
		scale++
	}
	for m.Cmp(decimal.NewFromFloat(0.01)) < 0 {
		m = m.Mul(decimal.NewFromInt(100))
		scale--
	}
	guess := m
	for i := 0; i < scale; i++ {
		guess = guess.Mul(decimal.NewFromInt(10))
	}
	for i := 0; i > scale; i-- {
		guess = div(guess, decimal.NewFromInt(10), 20)
	}
	if guess.IsZero() {
		guess = decOne
	}
	return guess
}

// Cbrt computes the cube root of x via Newton's method: z = z -
// (z³-x)/(3z²). Works for negative x (cube root is odd), unlike Sqrt.
func Cbrt(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	if x.IsZero() {
		return decimal.Zero
	}
	places := working(mc)
	neg := x.IsNegative()
	ax := x.Abs()
	z := seedGuess(ax)
	three := decimal.NewFromInt(3)
	l := newLoop("cbrt", 1000)
	for {
		zSquared := z.Mul(z)
		zCubed := zSquared.Mul(z)
		num := div(zCubed.Sub(ax), zSquared.Mul(three), places+4)
		z = z.Sub(num)
		if l.terminate(z) {
			break
		}
	}
	if neg {
		z = z.Neg()
	}
	return RoundToPrecision(z, mc)
}

// NthRoot implements the registry's nthRoot(r;n) function: the n-th root
// of r, via r**(1/n).
func NthRoot(r, n decimal.Decimal, mc config.MathContext) decimal.Decimal {
	if n.IsZero() {
		numerr.Raise(numerr.Domain, -1, "nthRoot: degree must not be zero")
	}
	places := working(mc)
	inv := div(decOne, n, places)
	return Pow(r, inv, mc)
}

// Pow computes base**exp. Integer exponents use repeated squaring (no
// transcendental functions involved; each intermediate product is
// rounded to the working precision); real exponents of a
// positive base use exp(exp*ln(base)); spec §4.6 rejects every other
// combination (negative base with a non-integer exponent), matching the
// teacher's value/power.go:floatPower design note in spec §9.
func Pow(base, exp decimal.Decimal, mc config.MathContext) decimal.Decimal {
	if exp.IsZero() {
		return decOne
	}
	if isInteger(exp) {
		n := exp.IntPart()
		if n < 0 {
			if base.IsZero() {
				numerr.Raise(numerr.DivisionByZero, -1, "zero raised to a negative power")
			}
			positive := integerPower(base, -n, mc)
			return RoundToPrecision(div(decOne, positive, working(mc)), mc)
		}
		return RoundToPrecision(integerPower(base, n, mc), mc)
	}
	if base.IsNegative() {
		numerr.Raise(numerr.Domain, -1, "negative base %s with non-integer exponent %s", base, exp)
	}
	if base.IsZero() {
		if exp.IsNegative() {
			numerr.Raise(numerr.DivisionByZero, -1, "zero raised to a negative power")
		}
		return decimal.Zero
	}
	lb := looser(mc)
	y := Ln(base, lb).Mul(exp)
	return Exp(y, mc)
}

// isInteger reports whether d has no fractional part.
func isInteger(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(0))
}

// integerPower computes base**n for a non-negative integer n via
// exponentiation by squaring, ported from the teacher's
// value/power.go:integerPower.
func integerPower(base decimal.Decimal, n int64, mc config.MathContext) decimal.Decimal {
	result := decOne
	y := base
	for n > 0 {
		if n&1 == 1 {
			result = RoundToPrecision(result.Mul(y), looser(mc))
		}
		y = RoundToPrecision(y.Mul(y), looser(mc))
		n >>= 1
	}
	return result
}
