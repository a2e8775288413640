package preprocess_test

import (
	"errors"
	"testing"

	"github.com/evallang/numexpr/numerr"
	"github.com/evallang/numexpr/preprocess"
)

func TestExpandSimplePair(t *testing.T) {
	got := preprocess.Expand("|(-7) + 2|")
	want := "abs((-7) + 2)"
	if got != want {
		t.Errorf("Expand() = %q, want %q", got, want)
	}
}

func TestExpandMultiplePairs(t *testing.T) {
	got := preprocess.Expand("|x| + |y|")
	want := "abs(x) + abs(y)"
	if got != want {
		t.Errorf("Expand() = %q, want %q", got, want)
	}
}

func TestExpandNoBars(t *testing.T) {
	got := preprocess.Expand("3 + 4")
	if got != "3 + 4" {
		t.Errorf("Expand() = %q, want unchanged input", got)
	}
}

func TestExpandOddBarCountPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Expand to panic on an odd bar count")
		}
		err, ok := r.(*numerr.Error)
		if !ok {
			t.Fatalf("expected *numerr.Error, got %T", r)
		}
		if !errors.Is(err, numerr.ErrParse) {
			t.Errorf("expected ErrParse, got %v", err)
		}
	}()
	preprocess.Expand("|3 + 4")
}
