package decimalmath

import (
	"github.com/shopspring/decimal"

	"github.com/evallang/numexpr/config"
)

// PolarToCartesianX and PolarToCartesianY convert (r,theta) to the x and
// y components, theta given in radians; the registry layer converts from
// the configured angle mode before calling in. The conversion is split
// into two single-result helpers because the registry's binary Function
// variant returns exactly one Decimal: the registry exposes the x axis as
// the baseline symbol polarToCartesian and the y axis as the extra symbol
// polarToCartesianY.
func PolarToCartesianX(r, theta decimal.Decimal, mc config.MathContext) decimal.Decimal {
	return RoundToPrecision(r.Mul(Cos(theta, looser(mc))), mc)
}

func PolarToCartesianY(r, theta decimal.Decimal, mc config.MathContext) decimal.Decimal {
	return RoundToPrecision(r.Mul(Sin(theta, looser(mc))), mc)
}

// CartesianToPolarR returns the radius of (x,y).
func CartesianToPolarR(x, y decimal.Decimal, mc config.MathContext) decimal.Decimal {
	lb := looser(mc)
	return RoundToPrecision(Sqrt(x.Mul(x).Add(y.Mul(y)), lb), mc)
}

// CartesianToPolarTheta returns the angle (radians) of (x,y); the
// registry layer converts to the configured angle mode afterwards.
func CartesianToPolarTheta(x, y decimal.Decimal, mc config.MathContext) decimal.Decimal {
	return Atan2(y, x, mc)
}
