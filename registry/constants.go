package registry

import (
	"github.com/shopspring/decimal"

	"github.com/evallang/numexpr/config"
	"github.com/evallang/numexpr/decimalmath"
)

func constants() []Element {
	return []Element{
		Constant{Sym: "pi", Value: func(precision int) decimal.Decimal {
			return decimalmath.Pi(config.MathContext{Precision: precision, Rounding: config.HalfUp})
		}},
		Constant{Sym: "e", Value: func(precision int) decimal.Decimal {
			mc := config.MathContext{Precision: precision, Rounding: config.HalfUp}
			return decimalmath.Exp(decimal.NewFromInt(1), mc)
		}},
	}
}

func punctuation() []Element {
	return []Element{
		Parenthesis{Sym: "(", Side: Open},
		Parenthesis{Sym: ")", Side: Close},
		Separator{Sym: ";"},
	}
}

func baselineElements() []Element {
	var all []Element
	all = append(all, operators()...)
	all = append(all, functions()...)
	all = append(all, constants()...)
	all = append(all, punctuation()...)
	return all
}
