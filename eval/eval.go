// Package eval implements spec §4.6's postfix reduction and §4.4's
// variable binder, the two stages that sit above the registry and turn a
// token stream into a single decimal.
package eval

import (
	"github.com/shopspring/decimal"

	"github.com/evallang/numexpr/config"
	"github.com/evallang/numexpr/decimalmath"
	"github.com/evallang/numexpr/numerr"
	"github.com/evallang/numexpr/registry"
	"github.com/evallang/numexpr/token"
)

// Context carries everything the postfix reducer needs: the registry
// holding every operator/function closure, and the evaluation-time
// settings threaded to them.
type Context struct {
	Registry *registry.Registry
	Math     config.MathContext
	Angle    config.AngleMode
}

func (c Context) registryContext() registry.Context {
	return registry.Context{Math: c.Math, Angle: c.Angle}
}

// stackValue is either a decimal (the common case) or a string (the
// third argument of a three-argument function), per spec §4.6.
type stackValue struct {
	dec   decimal.Decimal
	str   string
	isStr bool
}

// Reduce consumes a postfix token stream and returns the resulting
// decimal, rounded to ctx.Math.Precision. It panics with a *numerr.Error
// on any evaluation failure; the top-level Evaluate recovers it.
func Reduce(postfix []token.Token, ctx Context) decimal.Decimal {
	var stack []stackValue
	push := func(v stackValue) { stack = append(stack, v) }
	pop := func() stackValue {
		if len(stack) == 0 {
			numerr.Raise(numerr.Malformed, -1, "postfix stack underflow")
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}
	popDecimal := func(pos int) decimal.Decimal {
		v := pop()
		if v.isStr {
			numerr.Raise(numerr.Malformed, pos, "expected a numeric operand, found a string")
		}
		return v.dec
	}

	rctx := ctx.registryContext()
	for _, t := range postfix {
		switch t.Kind {
		case token.Number:
			d, err := decimal.NewFromString(t.Lexeme)
			if err != nil {
				numerr.Raise(numerr.Malformed, t.Pos, "invalid number literal %q", t.Lexeme)
			}
			push(stackValue{dec: d})

		case token.Constant:
			e, ok := ctx.Registry.Find(t.Lexeme)
			if !ok {
				numerr.Raise(numerr.Syntax, t.Pos, "unknown constant %q", t.Lexeme)
			}
			c, ok := e.(registry.Constant)
			if !ok {
				numerr.Raise(numerr.Syntax, t.Pos, "%q is not a constant", t.Lexeme)
			}
			push(stackValue{dec: c.Value(ctx.Math.Precision + 12)})

		case token.String:
			push(stackValue{str: t.Lexeme, isStr: true})

		case token.Operator:
			e, ok := ctx.Registry.Find(t.Lexeme)
			if !ok {
				numerr.Raise(numerr.Syntax, t.Pos, "unknown operator %q", t.Lexeme)
			}
			switch op := e.(type) {
			case registry.BinaryOperator:
				b := popDecimal(t.Pos)
				a := popDecimal(t.Pos)
				push(stackValue{dec: op.Fn(a, b, rctx)})
			case registry.PrefixUnaryOperator:
				a := popDecimal(t.Pos)
				push(stackValue{dec: op.Fn(a, rctx)})
			case registry.PostfixUnaryOperator:
				a := popDecimal(t.Pos)
				push(stackValue{dec: op.Fn(a, rctx)})
			default:
				numerr.Raise(numerr.Syntax, t.Pos, "%q is not an operator", t.Lexeme)
			}

		case token.Function:
			e, ok := ctx.Registry.Find(t.Lexeme)
			if !ok {
				numerr.Raise(numerr.Syntax, t.Pos, "unknown function %q", t.Lexeme)
			}
			switch fn := e.(type) {
			case registry.Function:
				switch fn.Arity {
				case 1:
					a := popDecimal(t.Pos)
					push(stackValue{dec: fn.Fn1(a, rctx)})
				case 2:
					b := popDecimal(t.Pos)
					a := popDecimal(t.Pos)
					push(stackValue{dec: fn.Fn2(a, b, rctx)})
				default:
					numerr.Raise(numerr.Syntax, t.Pos, "function %q has unsupported arity %d", t.Lexeme, fn.Arity)
				}
			case registry.ThreeArgumentFunction:
				third := pop()
				if !third.isStr {
					numerr.Raise(numerr.Malformed, t.Pos, "function %q expects a string third argument", t.Lexeme)
				}
				arg2 := popDecimal(t.Pos)
				arg1 := popDecimal(t.Pos)
				push(stackValue{dec: fn.Fn(arg1, arg2, third.str, rctx)})
			default:
				numerr.Raise(numerr.Syntax, t.Pos, "%q is not a function", t.Lexeme)
			}

		default:
			numerr.Raise(numerr.Syntax, t.Pos, "unexpected token %s in postfix evaluation", t.Kind)
		}
	}

	if len(stack) != 1 || stack[0].isStr {
		numerr.Raise(numerr.Malformed, -1, "postfix evaluation left %d values on the stack", len(stack))
	}
	return decimalmath.RoundToPrecision(stack[0].dec, ctx.Math)
}
