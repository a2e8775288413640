package depgraph_test

import (
	"testing"

	"github.com/evallang/numexpr/depgraph"
	"github.com/evallang/numexpr/registry"
)

func TestCheckAcyclicAcceptsDag(t *testing.T) {
	reg := registry.New(nil)
	vars := map[string]string{
		"a": "b + 1",
		"b": "c * 2",
		"c": "5",
	}
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("CheckAcyclic panicked on an acyclic graph: %v", r)
		}
	}()
	depgraph.CheckAcyclic(vars, reg)
}

func TestCheckAcyclicDetectsDirectCycle(t *testing.T) {
	reg := registry.New(nil)
	vars := map[string]string{
		"a": "b + 1",
		"b": "a * 2",
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected CheckAcyclic to panic on a + b -> a cycle")
		}
	}()
	depgraph.CheckAcyclic(vars, reg)
}

func TestCheckAcyclicDetectsSelfReference(t *testing.T) {
	reg := registry.New(nil)
	vars := map[string]string{"a": "a + 1"}
	defer func() {
		if recover() == nil {
			t.Fatal("expected CheckAcyclic to panic on a self-referencing binding")
		}
	}()
	depgraph.CheckAcyclic(vars, reg)
}

func TestCheckAcyclicIgnoresUndefinedReferences(t *testing.T) {
	reg := registry.New(nil)
	vars := map[string]string{"a": "undefinedVar + 1"}
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("CheckAcyclic panicked on a reference to an undefined variable: %v", r)
		}
	}()
	depgraph.CheckAcyclic(vars, reg)
}
