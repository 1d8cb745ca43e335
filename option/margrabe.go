// Package option implements closed-form option valuation under lognormal
// dynamics: Margrabe's exchange option formula and the Black-Scholes,
// FX and Black-76 pricers derived from it, with deltas and gammas.
package option

import (
	"math"

	"github.com/meenmo/qfin/errs"
	"github.com/meenmo/qfin/normal"
)

// Result is a priced option leg with its first two spot sensitivities.
type Result struct {
	Price float64
	Delta float64
	Gamma float64
}

// Quote is a call/put pair priced off a common d1/d2, together with the
// intermediate terms. Call minus put satisfies parity exactly:
// Call.Price - Put.Price = scale*(df1*s1 - df2*s2).
type Quote struct {
	Call Result
	Put  Result

	Nd1   float64
	Nd2   float64
	D1    float64
	D2    float64
	Sigma float64
}

// Margrabes prices an option to exchange asset 2 for asset 1, with spot
// prices s1 and s2, at expiry t. sigma1, sigma2 and rho describe the joint
// lognormal dynamics; q1 and q2 are the assets' continuous dividend yields.
// scale multiplies every price and sensitivity.
func Margrabes(s1, s2, t, sigma1, sigma2, rho, q1, q2, scale float64) (Quote, error) {
	const op = "Margrabes"

	if err := errs.NonNegative(op, "sigma1", sigma1); err != nil {
		return Quote{}, err
	}
	if err := errs.NonNegative(op, "sigma2", sigma2); err != nil {
		return Quote{}, err
	}
	if err := errs.InRange(op, "rho", rho, -1, 1); err != nil {
		return Quote{}, err
	}
	sigma := math.Sqrt(sigma1*sigma1 + sigma2*sigma2 - 2*sigma1*sigma2*rho)
	return MargrabesShort(s1, s2, t, sigma, q1, q2, scale)
}

// MargrabesShort is Margrabe's formula in its reduced single-volatility
// form, sigma being the volatility of the ratio s1/s2.
func MargrabesShort(s1, s2, t, sigma, q1, q2, scale float64) (Quote, error) {
	const op = "MargrabesShort"

	if err := errs.Positive(op, "s1", s1); err != nil {
		return Quote{}, err
	}
	if err := errs.Positive(op, "s2", s2); err != nil {
		return Quote{}, err
	}
	if err := errs.Positive(op, "t", t); err != nil {
		return Quote{}, err
	}
	if err := errs.Positive(op, "sigma", sigma); err != nil {
		return Quote{}, err
	}
	if err := errs.Finite(op, "q1", q1); err != nil {
		return Quote{}, err
	}
	if err := errs.Finite(op, "q2", q2); err != nil {
		return Quote{}, err
	}
	if err := errs.Finite(op, "scale", scale); err != nil {
		return Quote{}, err
	}

	sigmaSqrtT := sigma * math.Sqrt(t)
	logMoneyness := math.Log(s1/s2) + (q2-q1+sigma*sigma/2)*t

	// Exactly at the money with zero variance the natural 0/0 is taken as
	// +Inf, collapsing both legs to their forward intrinsic values.
	var d1 float64
	if logMoneyness == 0 && sigmaSqrtT == 0 {
		d1 = math.Inf(1)
	} else {
		d1 = logMoneyness / sigmaSqrtT
	}
	d2 := d1 - sigmaSqrtT

	nd1 := normal.CDF(d1)
	nd2 := normal.CDF(d2)
	df1 := math.Exp(-q1 * t)
	df2 := math.Exp(-q2 * t)

	call := Result{
		Price: scale * (df1*s1*nd1 - df2*s2*nd2),
		Delta: scale * df1 * nd1,
		Gamma: scale * df1 * normal.PDF(d1) / (sigmaSqrtT * s1),
	}
	put := Result{
		Price: scale * (df2*s2*(1-nd2) - df1*s1*(1-nd1)),
		Delta: scale * df1 * (nd1 - 1),
		Gamma: call.Gamma,
	}
	return Quote{Call: call, Put: put, Nd1: nd1, Nd2: nd2, D1: d1, D2: d2, Sigma: sigma}, nil
}
