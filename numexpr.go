// Package numexpr evaluates arbitrary-precision mathematical expressions:
// tokenize, build a postfix form via shunting-yard, bind variables (with
// cycle detection), and reduce the postfix stream to a decimal.
//
// Construct an Evaluator with New, then call Evaluate:
//
//	e := numexpr.New(config.New(50, config.HalfUp, config.Deg, language.AmericanEnglish))
//	result, err := e.Evaluate("3.5 + sqrt(2)")
package numexpr

import (
	"github.com/shopspring/decimal"

	"github.com/evallang/numexpr/config"
	"github.com/evallang/numexpr/eval"
	"github.com/evallang/numexpr/lexer"
	"github.com/evallang/numexpr/numerr"
	"github.com/evallang/numexpr/preprocess"
	"github.com/evallang/numexpr/registry"
	"github.com/evallang/numexpr/shuntingyard"
)

// Evaluator is the public entry point, immutable after construction. A
// single instance is safe for concurrent calls that each supply their own
// variable map; see the package-level concurrency note in DESIGN.md.
type Evaluator struct {
	cfg *config.Config
	reg *registry.Registry
}

// New builds an Evaluator from cfg. A nil cfg falls back to
// config.DefaultMathContext, degree-mode trigonometry, and American
// English locale.
func New(cfg *config.Config) *Evaluator {
	return &Evaluator{cfg: cfg, reg: registry.New(cfg)}
}

// Registry exposes the evaluator's element registry, for hosts that want
// to introspect available operators/functions (e.g. a REPL's tab
// completion).
func (e *Evaluator) Registry() *registry.Registry {
	return e.reg
}

// Evaluate runs expression through the full pipeline with no variable
// bindings.
func (e *Evaluator) Evaluate(expression string) (result decimal.Decimal, err error) {
	return e.EvaluateWithVariables(expression, nil)
}

// EvaluateWithVariables runs expression through the full pipeline,
// resolving any VARIABLE token against variables — a snapshot of
// name-to-expression bindings evaluated lazily and reentrantly as they
// are referenced.
func (e *Evaluator) EvaluateWithVariables(expression string, variables map[string]string) (result decimal.Decimal, err error) {
	defer numerr.Recover(&err)
	result = e.evaluate(expression, variables)
	return result, nil
}

// evaluate is the reentrant core: the binder calls back into it for each
// variable reference it resolves. Panics propagate to the nearest
// recover, whichever call in the recursion installed one — for the
// public entry points that is always EvaluateWithVariables.
func (e *Evaluator) evaluate(expression string, variables map[string]string) decimal.Decimal {
	expanded := preprocess.Expand(expression)
	toks := lexer.Tokenize(expanded, e.reg)

	ectx := eval.Context{Registry: e.reg, Math: e.cfg.MathContext(), Angle: e.cfg.AngleMode()}
	toks = eval.Bind(toks, variables, ectx, func(varExpr string) decimal.Decimal {
		return e.evaluate(varExpr, variables)
	})

	postfix := shuntingyard.ToPostfix(toks, e.reg)
	// Intermediate operator/function closures already round to the
	// context's precision; StripTrailingZeros is purely the canonical
	// plain-string cosmetic normalization spec §6.1 asks for.
	return eval.Reduce(postfix, ectx).StripTrailingZeros()
}
