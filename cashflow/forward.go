package cashflow

import (
	"github.com/meenmo/qfin/curve"
)

// ForwardPrice values cfs at forward time t against dc. Fixed cashflows at
// or after t contribute value*df(T)/df(t); floating cashflows paying at or
// after t contribute their forward-rate value discounted to t. Cashflows
// strictly before t are already paid and contribute nothing.
func ForwardPrice(cfs []Cashflow, dc curve.DiscountCurve, t float64) float64 {
	dft := dc.Factor(t)

	var sum float64
	for _, cf := range cfs {
		if cf.When() < t {
			continue
		}
		switch v := cf.(type) {
		case Fixed:
			sum += v.Value * dc.Factor(v.T) / dft
		case Floating:
			rate := ForwardLinearRate(v, dc)
			accrual := v.Payment - v.Fixing
			sum += v.Notional * rate * accrual * dc.Factor(v.Payment) / dft
		}
	}
	return sum
}
