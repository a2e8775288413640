package eval

import (
	"github.com/shopspring/decimal"

	"github.com/evallang/numexpr/depgraph"
	"github.com/evallang/numexpr/numerr"
	"github.com/evallang/numexpr/token"
)

// Pipeline is the reentrant hook the binder calls to fully evaluate a
// variable's defining expression (tokenize, bind its own variables,
// build postfix, reduce) — supplied by the root package to avoid an
// import cycle between eval and the package that wires the whole
// pipeline together.
type Pipeline func(expression string) decimal.Decimal

// Bind replaces every VARIABLE token in toks with a NUMBER token holding
// the plain-string form of that variable's evaluated value, per spec
// §4.4. vars is the ambient "current variables" snapshot for this call;
// it is not mutated. Cycle detection runs once, up front, over the whole
// binding map before any substitution happens.
func Bind(toks []token.Token, vars map[string]string, ctx Context, eval Pipeline) []token.Token {
	if len(vars) > 0 {
		depgraph.CheckAcyclic(vars, ctx.Registry)
	}
	out := make([]token.Token, len(toks))
	for i, t := range toks {
		if t.Kind != token.Variable {
			out[i] = t
			continue
		}
		expr, ok := vars[t.Lexeme]
		if !ok {
			numerr.Raise(numerr.UndefinedVariable, t.Pos, "undefined variable %q", t.Lexeme)
		}
		value := eval(expr)
		out[i] = token.New(token.Number, value.String(), t.Pos)
	}
	return out
}
