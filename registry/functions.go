package registry

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/evallang/numexpr/config"
	"github.com/evallang/numexpr/decimalmath"
	"github.com/evallang/numexpr/numerr"
)

// toRadians and fromRadians implement spec §4.6's "Trig: inputs are
// converted to radians iff angle mode is DEG; inverse trig outputs are
// converted back." decimalmath's trig functions always work in radians;
// this is the one place angle mode is consulted.
func toRadians(x decimal.Decimal, ctx Context) decimal.Decimal {
	if ctx.Angle == config.Rad {
		return x
	}
	pi := decimalmath.Pi(ctx.Math)
	places := int32(ctx.Math.Precision) + 12
	return x.Mul(pi).DivRound(decimal.NewFromInt(180), places)
}

func fromRadians(x decimal.Decimal, ctx Context) decimal.Decimal {
	if ctx.Angle == config.Rad {
		return x
	}
	pi := decimalmath.Pi(ctx.Math)
	places := int32(ctx.Math.Precision) + 12
	return x.Mul(decimal.NewFromInt(180)).DivRound(pi, places)
}

func functions() []Element {
	fs := []Element{
		unary("sin", func(a decimal.Decimal, ctx Context) decimal.Decimal {
			return decimalmath.Sin(toRadians(a, ctx), ctx.Math)
		}),
		unary("cos", func(a decimal.Decimal, ctx Context) decimal.Decimal {
			return decimalmath.Cos(toRadians(a, ctx), ctx.Math)
		}),
		unary("tan", func(a decimal.Decimal, ctx Context) decimal.Decimal {
			return decimalmath.Tan(toRadians(a, ctx), ctx.Math)
		}),
		unary("cot", func(a decimal.Decimal, ctx Context) decimal.Decimal {
			return decimalmath.Cot(toRadians(a, ctx), ctx.Math)
		}),
		unary("asin", func(a decimal.Decimal, ctx Context) decimal.Decimal {
			return fromRadians(decimalmath.Asin(a, ctx.Math), ctx)
		}),
		unary("acos", func(a decimal.Decimal, ctx Context) decimal.Decimal {
			return fromRadians(decimalmath.Acos(a, ctx.Math), ctx)
		}),
		unary("atan", func(a decimal.Decimal, ctx Context) decimal.Decimal {
			return fromRadians(decimalmath.Atan(a, ctx.Math), ctx)
		}),
		unary("acot", func(a decimal.Decimal, ctx Context) decimal.Decimal {
			return fromRadians(decimalmath.Acot(a, ctx.Math), ctx)
		}),
		unary("sinh", simpleUnary(decimalmath.Sinh)),
		unary("cosh", simpleUnary(decimalmath.Cosh)),
		unary("tanh", simpleUnary(decimalmath.Tanh)),
		unary("coth", simpleUnary(decimalmath.Coth)),
		unary("asinh", simpleUnary(decimalmath.Asinh)),
		unary("acosh", simpleUnary(decimalmath.Acosh)),
		unary("atanh", simpleUnary(decimalmath.Atanh)),
		unary("acoth", simpleUnary(decimalmath.Acoth)),
		unary("exp", simpleUnary(decimalmath.Exp)),
		unary("ln", simpleUnary(decimalmath.Ln)),
		unary("log2", simpleUnary(decimalmath.Log2)),
		unary("log10", simpleUnary(decimalmath.Log10)),
		unary("sqrt", simpleUnary(decimalmath.Sqrt)),
		unary("cbrt", simpleUnary(decimalmath.Cbrt)),
		unary("abs", func(a decimal.Decimal, _ Context) decimal.Decimal {
			return a.Abs()
		}),

		binary("logBase", decimalmath.LogBase),
		binary("nthRoot", decimalmath.NthRoot),
		binary("atan2", func(a, b decimal.Decimal, ctx Context) decimal.Decimal {
			return fromRadians(decimalmath.Atan2(a, b, ctx.Math), ctx)
		}),
		binary("combination", decimalmath.Combination),
		binary("permutation", decimalmath.Permutation),
		binary("polarToCartesian", func(r, theta decimal.Decimal, ctx Context) decimal.Decimal {
			return decimalmath.PolarToCartesianX(r, toRadians(theta, ctx), ctx.Math)
		}),
		binary("cartesianToPolar", func(x, y decimal.Decimal, ctx Context) decimal.Decimal {
			return decimalmath.CartesianToPolarR(x, y, ctx.Math)
		}),

		// Convenience extras, not part of spec §4.1's named baseline but
		// needed to expose the second component of a coordinate
		// conversion (see decimalmath/coords.go's doc comment).
		binary("polarToCartesianY", func(r, theta decimal.Decimal, ctx Context) decimal.Decimal {
			return decimalmath.PolarToCartesianY(r, toRadians(theta, ctx), ctx.Math)
		}),
		binary("cartesianToPolarTheta", func(x, y decimal.Decimal, ctx Context) decimal.Decimal {
			return fromRadians(decimalmath.CartesianToPolarTheta(x, y, ctx.Math), ctx)
		}),
	}
	fs = append(fs, ThreeArgumentFunction{Sym: "round", Fn: roundThreeArg})
	return fs
}

// simpleUnary adapts a decimalmath function that doesn't care about
// angle mode into a Function.Fn1 closure.
func simpleUnary(f func(decimal.Decimal, config.MathContext) decimal.Decimal) func(decimal.Decimal, Context) decimal.Decimal {
	return func(a decimal.Decimal, ctx Context) decimal.Decimal {
		return f(a, ctx.Math)
	}
}

func unary(sym string, fn func(decimal.Decimal, Context) decimal.Decimal) Element {
	return Function{Sym: sym, Arity: 1, Fn1: fn}
}

func binary(sym string, fn func(a, b decimal.Decimal, ctx Context) decimal.Decimal) Element {
	return Function{Sym: sym, Arity: 2, Fn2: fn}
}

// roundThreeArg implements the supplemental round(x;places;mode)
// three-argument function (see DESIGN.md), exercising spec §4.3's
// three-argument parsing path, which the baseline binary/unary function
// list never otherwise instantiates.
func roundThreeArg(x, placesDec decimal.Decimal, modeName string, ctx Context) decimal.Decimal {
	mode, ok := config.ParseRoundingMode(strings.TrimSpace(modeName))
	if !ok {
		numerr.Raise(numerr.Domain, -1, "round: unknown rounding mode %q", modeName)
	}
	places := int(placesDec.IntPart())
	return decimalmath.RoundToPlaces(x, places, mode)
}
