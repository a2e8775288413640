package decimalmath_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/evallang/numexpr/config"
	"github.com/evallang/numexpr/decimalmath"
)

func mc(precision int, rounding config.RoundingMode) config.MathContext {
	return config.MathContext{Precision: precision, Rounding: rounding}
}

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func closeEnough(t *testing.T, got, want decimal.Decimal, tolerance string) {
	t.Helper()
	diff := got.Sub(want).Abs()
	if diff.GreaterThan(d(tolerance)) {
		t.Errorf("got %s, want %s (within %s), diff %s", got, want, tolerance, diff)
	}
}

func TestRoundToPrecisionHalfUp(t *testing.T) {
	got := decimalmath.RoundToPrecision(d("1.2345"), mc(3, config.HalfUp))
	if got.String() != "1.23" {
		t.Errorf("RoundToPrecision = %s, want 1.23", got)
	}
}

func TestRoundToPrecisionHalfEvenBankersRounding(t *testing.T) {
	got := decimalmath.RoundToPrecision(d("1.25"), mc(2, config.HalfEven))
	if got.String() != "1.2" {
		t.Errorf("RoundToPrecision HALF_EVEN = %s, want 1.2", got)
	}
}

func TestRoundToPrecisionNoOpBelowTarget(t *testing.T) {
	got := decimalmath.RoundToPrecision(d("1.2"), mc(10, config.HalfUp))
	if got.String() != "1.2" {
		t.Errorf("RoundToPrecision = %s, want unchanged 1.2", got)
	}
}

func TestRoundToPlacesDown(t *testing.T) {
	got := decimalmath.RoundToPlaces(d("3.14159"), 2, config.Down)
	if got.String() != "3.14" {
		t.Errorf("RoundToPlaces DOWN = %s, want 3.14", got)
	}
}

func TestRoundToPlacesHalfUp(t *testing.T) {
	got := decimalmath.RoundToPlaces(d("3.14159"), 2, config.HalfUp)
	if got.String() != "3.14" {
		t.Errorf("RoundToPlaces HALF_UP(3.14159, 2) = %s, want 3.14", got)
	}
	got = decimalmath.RoundToPlaces(d("2.005"), 2, config.HalfUp)
	if got.String() != "2.01" {
		t.Errorf("RoundToPlaces HALF_UP(2.005, 2) = %s, want 2.01", got)
	}
}

func TestSqrtKnownValue(t *testing.T) {
	got := decimalmath.Sqrt(d("2"), mc(20, config.HalfUp))
	want := d("1.4142135623730950488")
	closeEnough(t, got, want, "1E-18")
}

func TestCbrtKnownValue(t *testing.T) {
	got := decimalmath.Cbrt(d("27"), mc(20, config.HalfUp))
	closeEnough(t, got, d("3"), "1E-15")
}

func TestPowIntegerExponent(t *testing.T) {
	got := decimalmath.Pow(d("2"), d("10"), mc(20, config.HalfUp))
	if got.String() != "1024" {
		t.Errorf("Pow(2,10) = %s, want 1024", got)
	}
}

func TestFactorialSmallIntegers(t *testing.T) {
	got := decimalmath.Factorial(d("5"), mc(20, config.HalfUp))
	if got.String() != "120" {
		t.Errorf("Factorial(5) = %s, want 120", got)
	}
	got = decimalmath.Factorial(d("0"), mc(20, config.HalfUp))
	if got.String() != "1" {
		t.Errorf("Factorial(0) = %s, want 1", got)
	}
}

func TestCombinationAndPermutation(t *testing.T) {
	c := decimalmath.Combination(d("5"), d("2"), mc(20, config.HalfUp))
	if c.String() != "10" {
		t.Errorf("Combination(5,2) = %s, want 10", c)
	}
	p := decimalmath.Permutation(d("5"), d("2"), mc(20, config.HalfUp))
	if p.String() != "20" {
		t.Errorf("Permutation(5,2) = %s, want 20", p)
	}
}

func TestModuloNonNegativeIntegers(t *testing.T) {
	got := decimalmath.Modulo(d("17"), d("5"), mc(20, config.HalfUp))
	if got.String() != "2" {
		t.Errorf("Modulo(17,5) = %s, want 2", got)
	}
}

func TestModuloByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Modulo by zero to panic")
		}
	}()
	decimalmath.Modulo(d("5"), d("0"), mc(20, config.HalfUp))
}

func TestModuloRejectsNegativeOperands(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Modulo with a negative operand to panic")
		}
	}()
	decimalmath.Modulo(d("-5"), d("3"), mc(20, config.HalfUp))
}

func TestSinCosPythagoreanIdentity(t *testing.T) {
	ctx := mc(30, config.HalfUp)
	pi := decimalmath.Pi(ctx)
	x := pi.Div(d("6")) // pi/6 radians == 30 degrees
	s := decimalmath.Sin(x, ctx)
	c := decimalmath.Cos(x, ctx)
	sum := s.Mul(s).Add(c.Mul(c))
	closeEnough(t, sum, d("1"), "1E-20")
}

func TestLnExpRoundTrip(t *testing.T) {
	ctx := mc(30, config.HalfUp)
	x := d("3")
	got := decimalmath.Ln(decimalmath.Exp(x, ctx), ctx)
	closeEnough(t, got, x, "1E-20")
}

func TestLogBaseKnownValue(t *testing.T) {
	got := decimalmath.LogBase(d("8"), d("2"), mc(30, config.HalfUp))
	closeEnough(t, got, d("3"), "1E-20")
}

func TestAtan2FirstQuadrant(t *testing.T) {
	ctx := mc(30, config.HalfUp)
	pi := decimalmath.Pi(ctx)
	got := decimalmath.Atan2(d("1"), d("1"), ctx)
	want := pi.Div(d("4"))
	closeEnough(t, got, want, "1E-18")
}

func TestPolarCartesianRoundTrip(t *testing.T) {
	ctx := mc(30, config.HalfUp)
	r := d("5")
	theta := decimalmath.Pi(ctx).Div(d("3")) // 60 degrees in radians
	x := decimalmath.PolarToCartesianX(r, theta, ctx)
	y := decimalmath.PolarToCartesianY(r, theta, ctx)
	gotR := decimalmath.CartesianToPolarR(x, y, ctx)
	closeEnough(t, gotR, r, "1E-15")
}
