// Package decimalmath implements the elementary functions spec §6.2
// expects from the external decimal library, over shopspring/decimal.
//
// Every function here takes a config.MathContext and rounds its answer to
// that context's precision before returning. Internally, functions work
// at a higher "working precision" (target precision plus a handful of
// guard digits) to absorb the rounding error that argument reduction and
// series summation accumulate, then round down at the end — the same
// discipline the teacher's value/sin.go and value/power.go follow with
// *big.Float, ported here to decimal.Decimal.
package decimalmath

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/evallang/numexpr/config"
	"github.com/evallang/numexpr/numerr"
)

// guardDigits is added to the caller's requested precision while a
// function is computing its internal series or iteration, so that
// rounding in the last few digits doesn't corrupt the final, user-visible
// precision.
const guardDigits = 12

func working(mc config.MathContext) int32 {
	p := mc.Precision
	if p <= 0 {
		p = config.DefaultMathContext.Precision
	}
	return int32(p + guardDigits)
}

// RoundToPrecision rounds d to mc.Precision significant digits using
// mc.Rounding, operating directly on d's coefficient and exponent (the
// way the teacher manipulates *big.Float mantissas directly rather than
// going through a higher-level helper).
func RoundToPrecision(d decimal.Decimal, mc config.MathContext) decimal.Decimal {
	prec := mc.Precision
	if prec <= 0 {
		prec = config.DefaultMathContext.Precision
	}
	if d.IsZero() {
		return d
	}
	digits := d.NumDigits()
	if digits <= prec {
		return d
	}
	drop := digits - prec
	coeff := new(big.Int).Set(d.Coefficient())
	neg := coeff.Sign() < 0
	if neg {
		coeff.Neg(coeff)
	}
	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(drop)), nil)
	quotient, remainder := new(big.Int).QuoRem(coeff, divisor, new(big.Int))
	quotient = applyRounding(quotient, remainder, divisor, mc.Rounding, neg)
	if neg {
		quotient.Neg(quotient)
	}
	return decimal.NewFromBigInt(quotient, d.Exponent()+int32(drop))
}

// RoundToPlaces rounds d to the given number of digits after the decimal
// point (rather than RoundToPrecision's significant digits), for the
// supplemental round(x;places;mode) three-argument function.
func RoundToPlaces(d decimal.Decimal, places int, mode config.RoundingMode) decimal.Decimal {
	targetExp := int32(-places)
	if d.Exponent() >= targetExp {
		return d
	}
	drop := targetExp - d.Exponent()
	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(drop)), nil)
	coeff := new(big.Int).Set(d.Coefficient())
	neg := coeff.Sign() < 0
	if neg {
		coeff.Neg(coeff)
	}
	quotient, remainder := new(big.Int).QuoRem(coeff, divisor, new(big.Int))
	quotient = applyRounding(quotient, remainder, divisor, mode, neg)
	if neg {
		quotient.Neg(quotient)
	}
	return decimal.NewFromBigInt(quotient, targetExp)
}

// applyRounding decides whether to bump the truncated quotient up by one,
// given the dropped remainder and the requested mode.
func applyRounding(q, r, divisor *big.Int, mode config.RoundingMode, neg bool) *big.Int {
	if r.Sign() == 0 {
		return q
	}
	twiceRemainder := new(big.Int).Lsh(r, 1)
	cmp := twiceRemainder.Cmp(divisor)
	roundUp := false
	switch mode {
	case config.Down:
		roundUp = false
	case config.Up:
		roundUp = true
	case config.Floor:
		roundUp = neg
	case config.Ceiling:
		roundUp = !neg
	case config.HalfEven:
		switch {
		case cmp > 0:
			roundUp = true
		case cmp < 0:
			roundUp = false
		default:
			roundUp = q.Bit(0) == 1
		}
	case config.HalfUp:
		fallthrough
	default:
		roundUp = cmp >= 0
	}
	if roundUp {
		q.Add(q, big.NewInt(1))
	}
	return q
}

// loop tracks Taylor-series / Newton-iteration convergence the same way
// the teacher's value/loop.go does: it stops as soon as the running
// result stops changing (or stops changing further, within noise), and
// raises a PrecisionOverflow error if it never settles within a generous
// iteration budget.
type loop struct {
	name          string
	i             int
	maxIterations int
	havePrev      bool
	prevZ         decimal.Decimal
	prevDelta     decimal.Decimal
}

func newLoop(name string, maxIterations int) *loop {
	return &loop{name: name, maxIterations: maxIterations}
}

func (l *loop) terminate(z decimal.Decimal) bool {
	if !l.havePrev {
		l.havePrev = true
		l.prevZ = z
		l.prevDelta = decimal.Zero
		return false
	}
	delta := l.prevZ.Sub(z).Abs()
	if delta.IsZero() {
		return true
	}
	if l.i > 0 && delta.Equal(l.prevDelta) {
		// Convergence has stalled; further iterations won't help.
		return true
	}
	l.i++
	if l.i >= l.maxIterations {
		numerr.Raise(numerr.PrecisionOverflow, -1, "%s did not converge after %d iterations", l.name, l.maxIterations)
	}
	l.prevDelta = delta
	l.prevZ = z
	return false
}

func div(a, b decimal.Decimal, places int32) decimal.Decimal {
	return a.DivRound(b, places)
}
