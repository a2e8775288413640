package decimalmath

import (
	"github.com/shopspring/decimal"

	"github.com/evallang/numexpr/config"
	"github.com/evallang/numexpr/numerr"
)

// Modulo implements spec §4.6's integer-only modulo: both operands must
// be non-negative integers, and the result is defined by repeated
// subtraction, mirroring the teacher's source rather than a single
// division-remainder instruction.
func Modulo(a, b decimal.Decimal, mc config.MathContext) decimal.Decimal {
	if !isInteger(a) || !isInteger(b) || a.IsNegative() || b.IsNegative() {
		numerr.Raise(numerr.Domain, -1, "modulo requires non-negative integer operands")
	}
	if b.IsZero() {
		numerr.Raise(numerr.DivisionByZero, -1, "modulo by zero")
	}
	r := a
	for r.GreaterThanOrEqual(b) {
		r = r.Sub(b)
	}
	return RoundToPrecision(r, mc)
}
