package decimalmath

import (
	"github.com/shopspring/decimal"

	"github.com/evallang/numexpr/config"
	"github.com/evallang/numexpr/numerr"
)

func Sinh(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	lb := looser(mc)
	ePos := Exp(x, lb)
	eNeg := Exp(x.Neg(), lb)
	return RoundToPrecision(div(ePos.Sub(eNeg), decTwo, working(mc)), mc)
}

func Cosh(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	lb := looser(mc)
	ePos := Exp(x, lb)
	eNeg := Exp(x.Neg(), lb)
	return RoundToPrecision(div(ePos.Add(eNeg), decTwo, working(mc)), mc)
}

func Tanh(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	lb := looser(mc)
	s := Sinh(x, lb)
	c := Cosh(x, lb)
	return RoundToPrecision(div(s, c, working(mc)), mc)
}

func Coth(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	lb := looser(mc)
	s := Sinh(x, lb)
	c := Cosh(x, lb)
	if s.IsZero() {
		numerr.Raise(numerr.Domain, -1, "hyperbolic cotangent is infinite at 0")
	}
	return RoundToPrecision(div(c, s, working(mc)), mc)
}

// Asinh(x) = ln(x + sqrt(x²+1)), defined for all real x.
func Asinh(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	lb := looser(mc)
	radicand := x.Mul(x).Add(decOne)
	return RoundToPrecision(Ln(x.Add(Sqrt(radicand, lb)), lb), mc)
}

// Acosh(x) = ln(x + sqrt(x²-1)), defined for x>=1.
func Acosh(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	if x.Cmp(decOne) < 0 {
		numerr.Raise(numerr.Domain, -1, "acosh argument must be >= 1: %s", x)
	}
	lb := looser(mc)
	radicand := x.Mul(x).Sub(decOne)
	return RoundToPrecision(Ln(x.Add(Sqrt(radicand, lb)), lb), mc)
}

// Atanh(x) = 0.5*ln((1+x)/(1-x)), defined for |x|<1.
func Atanh(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	if x.Abs().Cmp(decOne) >= 0 {
		numerr.Raise(numerr.Domain, -1, "atanh argument out of range: %s", x)
	}
	lb := looser(mc)
	ratio := div(decOne.Add(x), decOne.Sub(x), working(lb))
	return RoundToPrecision(div(Ln(ratio, lb), decTwo, working(mc)), mc)
}

// Acoth(x) = 0.5*ln((x+1)/(x-1)), defined for |x|>1.
func Acoth(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	if x.Abs().Cmp(decOne) <= 0 {
		numerr.Raise(numerr.Domain, -1, "acoth argument out of range: %s", x)
	}
	lb := looser(mc)
	ratio := div(x.Add(decOne), x.Sub(decOne), working(lb))
	return RoundToPrecision(div(Ln(ratio, lb), decTwo, working(mc)), mc)
}
