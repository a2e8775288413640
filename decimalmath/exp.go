package decimalmath

import (
	"github.com/shopspring/decimal"

	"github.com/evallang/numexpr/config"
)

var (
	decOne  = decimal.NewFromInt(1)
	decTwo  = decimal.NewFromInt(2)
	decHalf = decimal.NewFromFloat(0.5)
)

// Exp computes e**x using range reduction (repeated halving until |x|<=1)
// followed by a Taylor series, then squares the result back up. Grounded
// on the teacher's value/power.go:exponential, generalized with range
// reduction since a decimal Taylor series for large x converges far too
// slowly otherwise.
func Exp(x decimal.Decimal, mc config.MathContext) decimal.Decimal {
	places := working(mc)
	m := x
	halvings := 0
	for m.Abs().Cmp(decOne) > 0 {
		m = div(m, decTwo, places+int32(halvings)+4)
		halvings++
	}
	z := expSeries(m, places)
	for i := 0; i < halvings; i++ {
		z = z.Mul(z)
	}
	return RoundToPrecision(z, mc)
}

// expSeries computes e**x for |x|<=1 via the Taylor series
// 1 + x + x²/2! + x³/3! + ...
func expSeries(x decimal.Decimal, places int32) decimal.Decimal {
	term := decOne
	sum := decOne
	l := newLoop("exp", 10000)
	for n := int64(1); ; n++ {
		term = div(term.Mul(x), decimal.NewFromInt(n), places+4)
		sum = sum.Add(term)
		if l.terminate(sum) {
			break
		}
	}
	return sum
}
