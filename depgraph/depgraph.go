// Package depgraph detects cycles in a variable-binding map before the
// binder ever substitutes a VARIABLE token, spec §4.4.
package depgraph

import (
	"github.com/evallang/numexpr/lexer"
	"github.com/evallang/numexpr/numerr"
	"github.com/evallang/numexpr/registry"
	"github.com/evallang/numexpr/token"
)

type color int

const (
	white color = iota
	gray
	black
)

// CheckAcyclic builds the dependency graph of vars (name -> defining
// expression) by tokenizing each binding and collecting the VARIABLE
// tokens it references, then walks it with the standard three-color DFS.
// It panics with a *numerr.Error (Kind CyclicVariable) on the first
// back-edge found; references to names absent from vars are left for the
// binder to report as UndefinedVariable.
func CheckAcyclic(vars map[string]string, reg *registry.Registry) {
	deps := make(map[string][]string, len(vars))
	for name, expr := range vars {
		deps[name] = references(expr, reg)
	}
	colors := make(map[string]color, len(vars))
	for name := range vars {
		if colors[name] == white {
			visit(name, deps, colors)
		}
	}
}

func references(expr string, reg *registry.Registry) []string {
	toks := lexer.Tokenize(expr, reg)
	var refs []string
	for _, t := range toks {
		if t.Kind == token.Variable {
			refs = append(refs, t.Lexeme)
		}
	}
	return refs
}

func visit(name string, deps map[string][]string, colors map[string]color) {
	colors[name] = gray
	for _, dep := range deps[name] {
		switch colors[dep] {
		case gray:
			numerr.Raise(numerr.CyclicVariable, -1, "cyclic variable reference involving %q", dep)
		case white:
			if _, defined := deps[dep]; defined {
				visit(dep, deps, colors)
			}
		}
	}
	colors[name] = black
}
