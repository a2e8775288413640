package registry

import (
	"github.com/shopspring/decimal"

	"github.com/evallang/numexpr/decimalmath"
	"github.com/evallang/numexpr/numerr"
)

func operators() []Element {
	return []Element{
		BinaryOperator{Sym: "+", Precedence: 2, Assoc: LeftAssoc, Fn: addFn},
		BinaryOperator{Sym: "-", Precedence: 2, Assoc: LeftAssoc, Fn: subFn},
		BinaryOperator{Sym: "*", Precedence: 3, Assoc: LeftAssoc, Fn: mulFn},
		BinaryOperator{Sym: "/", Precedence: 3, Assoc: LeftAssoc, Fn: divFn},
		BinaryOperator{Sym: "%", Precedence: 3, Assoc: LeftAssoc, Fn: modFn},
		BinaryOperator{Sym: "^", Precedence: 4, Assoc: RightAssoc, Fn: powFn},
		PrefixUnaryOperator{Sym: "√", Precedence: 4, Fn: sqrtFn},
		PostfixUnaryOperator{Sym: "!", Precedence: 5, Fn: factorialFn},
	}
}

func addFn(a, b decimal.Decimal, ctx Context) decimal.Decimal {
	return decimalmath.RoundToPrecision(a.Add(b), ctx.Math)
}

func subFn(a, b decimal.Decimal, ctx Context) decimal.Decimal {
	return decimalmath.RoundToPrecision(a.Sub(b), ctx.Math)
}

func mulFn(a, b decimal.Decimal, ctx Context) decimal.Decimal {
	return decimalmath.RoundToPrecision(a.Mul(b), ctx.Math)
}

func divFn(a, b decimal.Decimal, ctx Context) decimal.Decimal {
	if b.IsZero() {
		numerr.Raise(numerr.DivisionByZero, -1, "division by zero")
	}
	return decimalmath.RoundToPrecision(a.DivRound(b, int32(ctx.Math.Precision)+12), ctx.Math)
}

func modFn(a, b decimal.Decimal, ctx Context) decimal.Decimal {
	return decimalmath.Modulo(a, b, ctx.Math)
}

func powFn(a, b decimal.Decimal, ctx Context) decimal.Decimal {
	return decimalmath.Pow(a, b, ctx.Math)
}

func sqrtFn(a decimal.Decimal, ctx Context) decimal.Decimal {
	return decimalmath.Sqrt(a, ctx.Math)
}

func factorialFn(a decimal.Decimal, ctx Context) decimal.Decimal {
	return decimalmath.Factorial(a, ctx.Math)
}
