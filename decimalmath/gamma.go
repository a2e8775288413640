package decimalmath

import (
	"github.com/shopspring/decimal"

	"github.com/evallang/numexpr/config"
)

// lanczosCoefficients are Paul Godfrey's coefficients for the Lanczos
// approximation, the same table the teacher's value/fac.go:gamma uses,
// converted to decimal.Decimal lazily on first use.
var lanczosCoefficients = []string{
	"1.000000000000000174663",
	"5716.400188274341379136",
	"-14815.30426768413909044",
	"14291.49277657478554025",
	"-6348.160217641458813289",
	"1301.608286058321874105",
	"-108.1767053514369634679",
	"2.605696505611755827729",
	"-0.7423452510201416151527e-2",
	"0.5384136432509564062961e-7",
	"-0.4023533141268236372067e-8",
}

// Gamma approximates the gamma function via the Lanczos approximation,
// ported from the teacher's value/fac.go:gamma. Unlike the baseline
// Factorial (integer-only, per spec §4.6/§9), Gamma extends factorial to
// real arguments. It is not part of the default registry and nothing in
// this module registers it; a host can add it as a `gamma` extension
// function through config.Config.RegisterFunction.
//
// Accuracy is limited to roughly 10-12 significant digits by the
// approximation itself, regardless of the requested MathContext
// precision; this mirrors the teacher's own doc comment on value/fac.go.
func Gamma(z decimal.Decimal, mc config.MathContext) decimal.Decimal {
	places := working(mc)
	g := decimal.NewFromInt(int64(len(lanczosCoefficients) - 2))
	half := decHalf

	if z.Cmp(half) < 0 {
		// Reflection formula: gamma(z) = pi/(sin(z*pi)*gamma(1-z)).
		lb := looser(mc)
		pi := Pi(lb)
		s := Sin(z.Mul(pi), lb)
		g1mz := Gamma(decOne.Sub(z), lb)
		denom := s.Mul(g1mz)
		return RoundToPrecision(div(pi, denom, places), mc)
	}

	zz := z.Sub(decOne)
	x := parseCoef(lanczosCoefficients[0])
	for i := 1; i < len(lanczosCoefficients); i++ {
		x = x.Add(div(parseCoef(lanczosCoefficients[i]), zz.Add(decimal.NewFromInt(int64(i))), places+4))
	}
	t := zz.Add(g).Add(half)
	sqrt2pi := Sqrt(Pi(mc).Mul(decTwo), mc)
	y := sqrt2pi.Mul(Pow(t, zz.Add(half), mc)).Mul(Exp(t.Neg(), mc)).Mul(x)
	return RoundToPrecision(y, mc)
}

func parseCoef(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err) // programmer error: the literal table above is malformed.
	}
	return d
}
