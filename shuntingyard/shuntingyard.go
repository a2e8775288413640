// Package shuntingyard converts an infix token stream into postfix
// (Reverse Polish Notation), spec §4.5.
package shuntingyard

import (
	"github.com/evallang/numexpr/numerr"
	"github.com/evallang/numexpr/registry"
	"github.com/evallang/numexpr/token"
)

// ToPostfix runs Dijkstra's shunting-yard algorithm over toks, resolving
// operator precedence and associativity via reg. It panics with a
// *numerr.Error on mismatched parentheses; the top-level Evaluate
// recovers it.
func ToPostfix(toks []token.Token, reg *registry.Registry) []token.Token {
	var output []token.Token
	var stack []token.Token

	peek := func() (token.Token, bool) {
		if len(stack) == 0 {
			return token.Token{}, false
		}
		return stack[len(stack)-1], true
	}
	pop := func() token.Token {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return t
	}

	for _, t := range toks {
		switch t.Kind {
		case token.Number, token.Constant:
			output = append(output, t)

		case token.Function:
			stack = append(stack, t)

		case token.Semicolon:
			for {
				top, ok := peek()
				if !ok {
					numerr.Raise(numerr.MismatchedParens, t.Pos, "argument separator outside parentheses")
				}
				if top.Kind == token.LeftParen {
					break
				}
				output = append(output, pop())
			}

		case token.Operator:
			for {
				top, ok := peek()
				if !ok {
					break
				}
				if top.Kind == token.Function {
					output = append(output, pop())
					continue
				}
				if top.Kind != token.Operator {
					break
				}
				if outranks(top, t, reg) {
					output = append(output, pop())
					continue
				}
				break
			}
			stack = append(stack, t)

		case token.LeftParen:
			stack = append(stack, t)

		case token.RightParen:
			found := false
			for {
				top, ok := peek()
				if !ok {
					break
				}
				if top.Kind == token.LeftParen {
					pop()
					found = true
					break
				}
				output = append(output, pop())
			}
			if !found {
				numerr.Raise(numerr.MismatchedParens, t.Pos, "unmatched ')'")
			}
			if top, ok := peek(); ok && top.Kind == token.Function {
				output = append(output, pop())
			}

		default:
			numerr.Raise(numerr.Syntax, t.Pos, "unexpected token %s in postfix conversion", t.Kind)
		}
	}

	for len(stack) > 0 {
		top := pop()
		if top.Kind == token.LeftParen || top.Kind == token.RightParen {
			numerr.Raise(numerr.MismatchedParens, top.Pos, "unmatched '('")
		}
		output = append(output, top)
	}
	return output
}

// outranks reports whether the operator on top of the stack must be
// popped before op is pushed: top has strictly higher precedence, or
// equal precedence and op is left-associative.
func outranks(top, op token.Token, reg *registry.Registry) bool {
	topPrec, _ := precedence(top, reg)
	opPrec, opAssoc := precedence(op, reg)
	if topPrec > opPrec {
		return true
	}
	return topPrec == opPrec && opAssoc == registry.LeftAssoc
}

func precedence(t token.Token, reg *registry.Registry) (int, registry.Assoc) {
	e, ok := reg.Find(t.Lexeme)
	if !ok {
		numerr.Raise(numerr.Syntax, t.Pos, "unknown operator %q", t.Lexeme)
	}
	switch op := e.(type) {
	case registry.BinaryOperator:
		return op.Precedence, op.Assoc
	case registry.PrefixUnaryOperator:
		return op.Precedence, registry.RightAssoc
	case registry.PostfixUnaryOperator:
		return op.Precedence, registry.LeftAssoc
	default:
		numerr.Raise(numerr.Syntax, t.Pos, "token %q is not an operator", t.Lexeme)
		return 0, registry.LeftAssoc
	}
}
