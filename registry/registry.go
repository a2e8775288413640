// Package registry is the single source of truth for operator
// precedence, arity, associativity, and the semantic closures that back
// every operator, function, constant, and piece of punctuation the
// pipeline knows about, spec §4.1's Element Registry.
package registry

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/evallang/numexpr/config"
)

// Context is threaded to every Element's closure: the evaluation-time
// settings it needs (precision/rounding, angle mode). It deliberately
// does not carry the variable-binding snapshot or any ambient mutable
// state — that lives one layer up, in eval.Context — so that the
// registry's closures stay pure functions of their arguments plus this
// context, matching the teacher's value/*.go functions, which all take
// a Context first argument and nothing else resembling global state.
type Context struct {
	Math  config.MathContext
	Angle config.AngleMode
}

// Assoc is an operator's associativity.
type Assoc int

const (
	LeftAssoc Assoc = iota
	RightAssoc
)

// Side distinguishes the two parenthesis symbols.
type Side int

const (
	Open Side = iota
	Close
)

// Element is the tagged-variant interface spec §9 calls for: each
// concrete type below is one variant, carrying its own closure, and
// every pipeline stage that needs to dispatch on the variant does so
// with a type switch on the concrete Element value (see lexer and
// shuntingyard).
type Element interface {
	Symbol() string
}

type BinaryOperator struct {
	Sym        string
	Precedence int
	Assoc      Assoc
	Fn         func(a, b decimal.Decimal, ctx Context) decimal.Decimal
}

func (e BinaryOperator) Symbol() string { return e.Sym }

type PrefixUnaryOperator struct {
	Sym        string
	Precedence int
	Fn         func(a decimal.Decimal, ctx Context) decimal.Decimal
}

func (e PrefixUnaryOperator) Symbol() string { return e.Sym }

type PostfixUnaryOperator struct {
	Sym        string
	Precedence int
	Fn         func(a decimal.Decimal, ctx Context) decimal.Decimal
}

func (e PostfixUnaryOperator) Symbol() string { return e.Sym }

// Function is unary or binary (Arity 1 or 2); exactly one of Fn1/Fn2 is
// set, matching Arity.
type Function struct {
	Sym   string
	Arity int
	Fn1   func(a decimal.Decimal, ctx Context) decimal.Decimal
	Fn2   func(a, b decimal.Decimal, ctx Context) decimal.Decimal
}

func (e Function) Symbol() string { return e.Sym }

// ThreeArgumentFunction is parsed with a literal `;`-separated triple
// inside its own parentheses: two numeric arguments and one string
// literal, per spec §4.3's three-argument function match rule.
type ThreeArgumentFunction struct {
	Sym string
	Fn  func(arg1, arg2 decimal.Decimal, arg3 string, ctx Context) decimal.Decimal
}

func (e ThreeArgumentFunction) Symbol() string { return e.Sym }

type Constant struct {
	Sym   string
	Value func(precision int) decimal.Decimal
}

func (e Constant) Symbol() string { return e.Sym }

type Parenthesis struct {
	Sym  string
	Side Side
}

func (e Parenthesis) Symbol() string { return e.Sym }

type Separator struct {
	Sym string
}

func (e Separator) Symbol() string { return e.Sym }

// Registry is the immutable-after-construction catalogue consulted by
// every pipeline stage.
type Registry struct {
	bySymbol        map[string]Element
	maxTokenLength  int
	threeArgSymbols []string // sorted longest-first, for maximal munch.
}

// New builds the baseline registry (operators, functions, constants,
// punctuation) and layers in any host-registered extensions recorded on
// cfg (see config.Config.RegisterFunction).
func New(cfg *config.Config) *Registry {
	r := &Registry{bySymbol: make(map[string]Element)}
	for _, e := range baselineElements() {
		r.add(e)
	}
	if cfg != nil {
		for name, raw := range cfg.Extensions() {
			if e, ok := raw.(Element); ok {
				r.addNamed(name, e)
			}
		}
	}
	r.finalize()
	return r
}

func (r *Registry) add(e Element) {
	r.addNamed(e.Symbol(), e)
}

func (r *Registry) addNamed(symbol string, e Element) {
	r.bySymbol[symbol] = e
}

func (r *Registry) finalize() {
	r.maxTokenLength = 0
	r.threeArgSymbols = r.threeArgSymbols[:0]
	for sym, e := range r.bySymbol {
		if len(sym) > r.maxTokenLength {
			r.maxTokenLength = len(sym)
		}
		if _, ok := e.(ThreeArgumentFunction); ok {
			r.threeArgSymbols = append(r.threeArgSymbols, sym)
		}
	}
	sort.Slice(r.threeArgSymbols, func(i, j int) bool {
		return len(r.threeArgSymbols[i]) > len(r.threeArgSymbols[j])
	})
}

// Find looks up symbol, the registry's one O(1) contract.
func (r *Registry) Find(symbol string) (Element, bool) {
	e, ok := r.bySymbol[symbol]
	return e, ok
}

// MaxTokenLength is the longest registered symbol, precomputed for the
// lexer's maximal-munch scan.
func (r *Registry) MaxTokenLength() int {
	return r.maxTokenLength
}

// ThreeArgumentCandidates returns the registered three-argument function
// symbols, longest first, for the lexer's maximal-munch three-argument
// match (spec §4.3 step 2a).
func (r *Registry) ThreeArgumentCandidates() []string {
	return r.threeArgSymbols
}
