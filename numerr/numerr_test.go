package numerr_test

import (
	"errors"
	"testing"

	"github.com/evallang/numexpr/numerr"
)

func TestErrorMessageWithPosition(t *testing.T) {
	err := &numerr.Error{Kind: numerr.Parse, Pos: 4, Detail: "unexpected character"}
	want := "ParseError at position 4: unexpected character"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorMessageWithoutPosition(t *testing.T) {
	err := &numerr.Error{Kind: numerr.DivisionByZero, Pos: -1, Detail: "divide by zero"}
	want := "DivisionByZero: divide by zero"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorUnwrapMatchesSentinel(t *testing.T) {
	err := &numerr.Error{Kind: numerr.CyclicVariable, Pos: -1, Detail: "x -> x"}
	if !errors.Is(err, numerr.ErrCyclicVariable) {
		t.Error("expected errors.Is to match ErrCyclicVariable")
	}
	if errors.Is(err, numerr.ErrDomain) {
		t.Error("did not expect errors.Is to match ErrDomain")
	}
}

func TestRecoverCapturesRaise(t *testing.T) {
	var err error
	func() {
		defer numerr.Recover(&err)
		numerr.Raise(numerr.Malformed, 2, "stray %s", "token")
	}()
	if err == nil {
		t.Fatal("expected non-nil error")
	}
	if !errors.Is(err, numerr.ErrMalformed) {
		t.Errorf("expected ErrMalformed, got %v", err)
	}
}

func TestRecoverRepanicsOnUnknownValue(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Recover to re-panic a non-*Error value")
		}
	}()
	var err error
	defer numerr.Recover(&err)
	panic("not a numerr.Error")
}

func TestRecoverNoPanicLeavesErrorNil(t *testing.T) {
	var err error
	func() {
		defer numerr.Recover(&err)
	}()
	if err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}
