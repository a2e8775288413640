package numexpr_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"

	"github.com/evallang/numexpr"
	"github.com/evallang/numexpr/config"
)

func newEvaluator(precision int) *numexpr.Evaluator {
	return numexpr.New(config.New(precision, config.HalfUp, config.Deg, language.AmericanEnglish))
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal.NewFromString(%q): %v", s, err)
	}
	return d
}

func TestEvaluateWorkedExamples(t *testing.T) {
	cases := []struct {
		name string
		expr string
		vars map[string]string
		want string
	}{
		{"sqrt-add", "3.5 + sqrt(2)", nil, "4.9142135623730950488016887242096980785696718753769"},
		{"precedence", "(2+3)*4 - 2^3", nil, "12"},
		{"factorial", "5!", nil, "120"},
		{"abs", "|(-7) + 2|", nil, "5"},
		{"variable-poly", "2x^2 + 3x - 1", map[string]string{"x": "4"}, "43"},
		{"combination", "combination(5; 2)", nil, "10"},
	}
	e := newEvaluator(50)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := e.EvaluateWithVariables(tc.expr, tc.vars)
			if err != nil {
				t.Fatalf("Evaluate(%q) returned error: %v", tc.expr, err)
			}
			if got.String() != tc.want {
				t.Fatalf("Evaluate(%q) = %s, want %s", tc.expr, got.String(), tc.want)
			}
		})
	}
}

// Trig and logBase are exercised with a tolerance rather than an exact
// string match: their Taylor-series/Newton implementations converge to
// the requested precision but may leave a residue in the last digit or
// two, so the "nice" textbook value isn't guaranteed to be bit-exact.
func TestEvaluateTrigWithinPrecision(t *testing.T) {
	e := newEvaluator(50)
	got, err := e.Evaluate("2*sin(30) + cos(60)")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	diff := got.Sub(mustDecimal(t, "1.5")).Abs()
	if diff.GreaterThan(mustDecimal(t, "1E-45")) {
		t.Fatalf("2*sin(30)+cos(60) = %s, want within 1E-45 of 1.5", got)
	}
}

func TestEvaluateLogBaseWithinPrecision(t *testing.T) {
	e := newEvaluator(50)
	got, err := e.Evaluate("logBase(8; 2)")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	diff := got.Sub(mustDecimal(t, "3")).Abs()
	if diff.GreaterThan(mustDecimal(t, "1E-45")) {
		t.Fatalf("logBase(8;2) = %s, want within 1E-45 of 3", got)
	}
}

// ln(e^3) == 3 "within precision" per spec §8; Taylor-series exp/ln each
// round to the context's precision internally, so the round trip may
// leave a residue in the last couple of digits rather than landing on an
// exact "3".
func TestEvaluateLnExpRoundTripWithinPrecision(t *testing.T) {
	e := newEvaluator(50)
	got, err := e.Evaluate("ln(e^3)")
	if err != nil {
		t.Fatalf("Evaluate(\"ln(e^3)\"): %v", err)
	}
	three := mustDecimal(t, "3")
	diff := got.Sub(three).Abs()
	tolerance := mustDecimal(t, "1E-45")
	if diff.GreaterThan(tolerance) {
		t.Fatalf("ln(e^3) = %s, want within %s of 3", got, tolerance)
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	e := newEvaluator(50)
	_, err := e.Evaluate("1/0")
	if !errors.Is(err, numexpr.ErrDivisionByZero) {
		t.Fatalf("Evaluate(\"1/0\") error = %v, want ErrDivisionByZero", err)
	}
}

func TestEvaluateOddBarCount(t *testing.T) {
	e := newEvaluator(50)
	_, err := e.Evaluate("|x+1")
	if !errors.Is(err, numexpr.ErrParse) {
		t.Fatalf("Evaluate(\"|x+1\") error = %v, want ErrParse", err)
	}
}

func TestEvaluateFactorialPosition(t *testing.T) {
	e := newEvaluator(50)
	_, err := e.Evaluate("!5")
	if !errors.Is(err, numexpr.ErrSyntax) {
		t.Fatalf("Evaluate(\"!5\") error = %v, want ErrSyntax", err)
	}
}

func TestEvaluateCyclicVariable(t *testing.T) {
	e := newEvaluator(50)
	_, err := e.EvaluateWithVariables("x", map[string]string{"x": "y+1", "y": "x+1"})
	if !errors.Is(err, numexpr.ErrCyclicVariable) {
		t.Fatalf("Evaluate with cyclic vars error = %v, want ErrCyclicVariable", err)
	}
}

func TestEvaluateUndefinedVariable(t *testing.T) {
	e := newEvaluator(50)
	_, err := e.EvaluateWithVariables("x+1", map[string]string{})
	if !errors.Is(err, numexpr.ErrUndefinedVariable) {
		t.Fatalf("Evaluate with undefined var error = %v, want ErrUndefinedVariable", err)
	}
}

// Invariant 1: parenthesization is semantically transparent.
func TestParenthesizationTransparent(t *testing.T) {
	e := newEvaluator(30)
	for _, expr := range []string{"3+4*2", "sqrt(2)+1", "sin(30)*2"} {
		plain, err := e.Evaluate(expr)
		if err != nil {
			t.Fatalf("Evaluate(%q): %v", expr, err)
		}
		wrapped, err := e.Evaluate("(" + expr + ")")
		if err != nil {
			t.Fatalf("Evaluate(%q): %v", "("+expr+")", err)
		}
		if !plain.Equal(wrapped) {
			t.Fatalf("evaluate(%q)=%s != evaluate((%q))=%s", expr, plain, expr, wrapped)
		}
	}
}

// Invariant 3: sign merging — "--e" == "e".
func TestSignMerging(t *testing.T) {
	e := newEvaluator(30)
	a, err := e.Evaluate("--5")
	if err != nil {
		t.Fatalf("Evaluate(\"--5\"): %v", err)
	}
	b, err := e.Evaluate("5")
	if err != nil {
		t.Fatalf("Evaluate(\"5\"): %v", err)
	}
	if !a.Equal(b) {
		t.Fatalf("evaluate(\"--5\")=%s != evaluate(\"5\")=%s", a, b)
	}
}

// Invariant 4: implicit multiplication matches explicit multiplication.
func TestImplicitMultiplication(t *testing.T) {
	e := newEvaluator(30)
	vars := map[string]string{"x": "3"}
	implicit, err := e.EvaluateWithVariables("2x", vars)
	if err != nil {
		t.Fatalf("Evaluate(\"2x\"): %v", err)
	}
	explicit, err := e.EvaluateWithVariables("2*x", vars)
	if err != nil {
		t.Fatalf("Evaluate(\"2*x\"): %v", err)
	}
	if implicit.String() != "6" || explicit.String() != "6" {
		t.Fatalf("2x=%s, 2*x=%s, want both 6", implicit, explicit)
	}
}

// Invariant 6: right-associative power and left-associative subtraction.
func TestAssociativity(t *testing.T) {
	e := newEvaluator(30)
	rightAssoc, err := e.Evaluate("2^3^2")
	if err != nil {
		t.Fatalf("Evaluate(\"2^3^2\"): %v", err)
	}
	explicitRight, err := e.Evaluate("2^(3^2)")
	if err != nil {
		t.Fatalf("Evaluate(\"2^(3^2)\"): %v", err)
	}
	if !rightAssoc.Equal(explicitRight) {
		t.Fatalf("2^3^2=%s != 2^(3^2)=%s", rightAssoc, explicitRight)
	}

	leftAssoc, err := e.Evaluate("10-3-2")
	if err != nil {
		t.Fatalf("Evaluate(\"10-3-2\"): %v", err)
	}
	explicitLeft, err := e.Evaluate("(10-3)-2")
	if err != nil {
		t.Fatalf("Evaluate(\"(10-3)-2\"): %v", err)
	}
	if !leftAssoc.Equal(explicitLeft) {
		t.Fatalf("10-3-2=%s != (10-3)-2=%s", leftAssoc, explicitLeft)
	}
}
