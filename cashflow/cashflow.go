// Package cashflow defines dated cash amounts and values them against a
// discount curve: forward pricing of mixed fixed/floating cashflow lists and
// a secant-method internal rate of return solver.
package cashflow

import (
	"github.com/meenmo/qfin/curve"
)

// Cashflow is a single dated payment, either Fixed or Floating. The variant
// set is closed; ForwardPrice switches over it exhaustively.
type Cashflow interface {
	// When is the payment time in years from valuation.
	When() float64

	isCashflow()
}

// Fixed is a known signed cash amount paid at time T.
type Fixed struct {
	T     float64
	Value float64
}

func (f Fixed) When() float64 { return f.T }
func (Fixed) isCashflow()     {}

// Floating is an interest payment on Notional whose rate fixes at Fixing and
// pays at Payment. It carries no explicit rate; its value is implied by the
// discount curve at valuation time.
type Floating struct {
	Fixing   float64
	Payment  float64
	Notional float64
}

func (f Floating) When() float64 { return f.Payment }
func (Floating) isCashflow()     {}

// ForwardLinearRate is the simple (linearly compounded) forward rate implied
// by dc over the floating cashflow's accrual period:
//
//	(df(fixing)/df(payment) - 1) / (payment - fixing)
func ForwardLinearRate(f Floating, dc curve.DiscountCurve) float64 {
	return (dc.Factor(f.Fixing)/dc.Factor(f.Payment) - 1) / (f.Payment - f.Fixing)
}
