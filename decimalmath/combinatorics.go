package decimalmath

import (
	"github.com/shopspring/decimal"

	"github.com/evallang/numexpr/config"
)

// Combination returns C(n,k) = n! / (k! * (n-k)!).
func Combination(n, k decimal.Decimal, mc config.MathContext) decimal.Decimal {
	lb := looser(mc)
	nFac := Factorial(n, lb)
	kFac := Factorial(k, lb)
	nMinusKFac := Factorial(n.Sub(k), lb)
	return RoundToPrecision(div(nFac, kFac.Mul(nMinusKFac), working(mc)), mc)
}

// Permutation returns P(n,k) = n! / (n-k)!.
func Permutation(n, k decimal.Decimal, mc config.MathContext) decimal.Decimal {
	lb := looser(mc)
	nFac := Factorial(n, lb)
	nMinusKFac := Factorial(n.Sub(k), lb)
	return RoundToPrecision(div(nFac, nMinusKFac, working(mc)), mc)
}
