// Package curve models term structures as single-method interfaces: a
// DiscountCurve maps a year fraction to a discount factor, a SpotCurve maps
// it to a continuously-compounded zero rate. Concrete curves are plain value
// types, so composed curves (flat, interpolated, converted) stay pure and
// safe to share.
package curve

import (
	"math"
)

// DiscountCurve maps a time t >= 0 (in years) to a discount factor.
type DiscountCurve interface {
	Factor(t float64) float64
}

// SpotCurve maps a time t >= 0 (in years) to a continuously-compounded
// spot rate.
type SpotCurve interface {
	Rate(t float64) float64
}

// Flat is a flat continuously-compounded discount curve.
type Flat struct {
	r float64
}

// FlatDiscount returns the discount curve exp(-r*t).
func FlatDiscount(r float64) Flat {
	return Flat{r: r}
}

func (f Flat) Factor(t float64) float64 {
	return math.Exp(-f.r * t)
}

// spotEpsilon floors the time argument when recovering zero rates near the
// origin, where -ln(df)/t degenerates to 0/0.
const spotEpsilon = 1e-8

type spotToDiscount struct {
	s SpotCurve
}

func (c spotToDiscount) Factor(t float64) float64 {
	return math.Exp(-c.s.Rate(t) * t)
}

// SpotToDiscount converts a spot curve into the equivalent discount curve
// exp(-rate(t)*t).
func SpotToDiscount(s SpotCurve) DiscountCurve {
	return spotToDiscount{s: s}
}

type discountToSpot struct {
	d DiscountCurve
}

func (c discountToSpot) Rate(t float64) float64 {
	if t >= 0 && t <= spotEpsilon {
		t = spotEpsilon
	}
	return -math.Log(c.d.Factor(t)) / t
}

// DiscountToSpot converts a discount curve into the equivalent spot curve
// -ln(df(t))/t. Together with SpotToDiscount it round-trips to floating
// point precision.
func DiscountToSpot(d DiscountCurve) SpotCurve {
	return discountToSpot{d: d}
}
