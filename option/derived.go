package option

import (
	"math"

	"github.com/meenmo/qfin/bond"
	"github.com/meenmo/qfin/cashflow"
	"github.com/meenmo/qfin/curve"
	"github.com/meenmo/qfin/normal"
)

// EquityQuote extends a Quote with cash-or-nothing digital legs. Their
// prices are complementary: DigitalCall.Price + DigitalPut.Price equals the
// discounted strike leg scale*exp(-r*t).
type EquityQuote struct {
	Quote

	DigitalCall Result
	DigitalPut  Result
}

// BlackScholes prices a European equity option on spot s, strike k, expiry
// t, volatility sigma, dividend yield q and rate r.
func BlackScholes(s, k, t, sigma, q, r, scale float64) (EquityQuote, error) {
	quote, err := MargrabesShort(s, k, t, sigma, q, r, scale)
	if err != nil {
		return EquityQuote{}, err
	}

	df := math.Exp(-r * t)
	sigmaSqrtT := sigma * math.Sqrt(t)
	digitalCall := Result{
		Price: scale * df * quote.Nd2,
		Delta: scale * df * normal.PDF(quote.D2) / (sigmaSqrtT * s),
		Gamma: -scale * df * quote.D1 * normal.PDF(quote.D1) / (s * k * sigmaSqrtT * sigmaSqrtT),
	}
	digitalPut := Result{
		Price: scale * df * (1 - quote.Nd2),
		Delta: -digitalCall.Delta,
		Gamma: -digitalCall.Gamma,
	}
	return EquityQuote{Quote: quote, DigitalCall: digitalCall, DigitalPut: digitalPut}, nil
}

// FXBlackScholes prices a European currency option; s and k are exchange
// rates in domestic units per foreign unit, rFor and rDom the foreign and
// domestic rates. Inverting s,k and swapping the rates swaps call and put.
func FXBlackScholes(s, k, t, sigma, rFor, rDom, scale float64) (Quote, error) {
	return MargrabesShort(s, k, t, sigma, rFor, rDom, scale)
}

// Black76 prices a European option on a driftless forward f with strike k,
// discounted at rate r; discounting enters once through the forward leg.
func Black76(f, k, t, sigma, r, scale float64) (Quote, error) {
	return MargrabesShort(math.Exp(-r*t)*f, k, t, sigma, 0, r, scale)
}

// Black76BondOption prices a European option on b's forward dirty price at
// expiry t.
func Black76BondOption(b bond.Bond, k, t, sigma float64, spot curve.SpotCurve) (Quote, error) {
	forward := b.ForwardDirtyPrice(curve.SpotToDiscount(spot), t)
	return Black76(forward, k, t, sigma, spot.Rate(t), 1)
}

// Black76CapletFloorlet prices a caplet (call) and floorlet (put) on the
// floating rate fl with strike k. A rate that has already fixed
// (fl.Fixing <= 0) returns a zero quote.
func Black76CapletFloorlet(fl cashflow.Floating, k, sigma float64, spot curve.SpotCurve) (Quote, error) {
	if fl.Fixing <= 0 {
		return Quote{}, nil
	}
	dc := curve.SpotToDiscount(spot)
	forward := cashflow.ForwardLinearRate(fl, dc)
	yearFraction := fl.Payment - fl.Fixing
	scale := fl.Notional * yearFraction * dc.Factor(fl.Payment) / dc.Factor(fl.Fixing)
	return Black76(forward, k, fl.Fixing, sigma, spot.Rate(fl.Fixing), scale)
}
