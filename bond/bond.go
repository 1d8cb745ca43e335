// Package bond prices fixed-coupon bonds on a continuously-compounded
// year-fraction time axis: schedule generation, cashflow expansion, dirty
// and forward pricing, yield to maturity and duration.
package bond

import (
	"fmt"
	"math"

	"github.com/meenmo/qfin/cashflow"
	"github.com/meenmo/qfin/curve"
	"github.com/meenmo/qfin/errs"
)

// Bond is an immutable fixed-coupon bond. Times are year fractions from
// valuation; Coupon is the annual rate (0 for a zero-coupon bond). Its
// cashflows are derived on demand and never cached.
type Bond struct {
	notional  float64
	coupon    float64
	start     float64
	end       float64
	frequency Frequency
}

// New validates the bond terms and returns the bond. The schedule must span
// more than MinimumPeriod and the frequency must lie in (0, 1/MinimumPeriod].
func New(notional, coupon, start, end float64, frequency Frequency) (Bond, error) {
	const op = "bond.New"

	if err := errs.Positive(op, "notional", notional); err != nil {
		return Bond{}, err
	}
	if err := errs.NonNegative(op, "coupon", coupon); err != nil {
		return Bond{}, err
	}
	if err := errs.Finite(op, "start", start); err != nil {
		return Bond{}, err
	}
	if err := errs.Finite(op, "end", end); err != nil {
		return Bond{}, err
	}
	if start+MinimumPeriod >= end {
		return Bond{}, errs.Domain(op, fmt.Sprintf("end (%v) must exceed start (%v) by more than %v", end, start, MinimumPeriod))
	}
	if err := validFrequency(op, frequency); err != nil {
		return Bond{}, err
	}
	return Bond{notional: notional, coupon: coupon, start: start, end: end, frequency: frequency}, nil
}

func (b Bond) Notional() float64 { return b.notional }

func (b Bond) Coupon() float64 { return b.coupon }

func (b Bond) Start() float64 { return b.start }

func (b Bond) End() float64 { return b.end }

func (b Bond) Frequency() Frequency { return b.frequency }

// Cashflows expands the bond into dated payments: one coupon per schedule
// period (the first period may be shorter), plus the notional redemption as
// a separate entry at maturity. A zero-coupon bond is the redemption alone.
func (b Bond) Cashflows() []cashflow.Cashflow {
	redemption := cashflow.Fixed{T: b.end, Value: b.notional}
	if b.coupon == 0 {
		return []cashflow.Cashflow{redemption}
	}

	schedule := rollFromEnd(b.start, b.end, b.frequency)
	cfs := make([]cashflow.Cashflow, 0, len(schedule)+1)
	prev := b.start
	for _, t := range schedule {
		yearFraction := t - prev
		cfs = append(cfs, cashflow.Fixed{T: t, Value: b.notional * b.coupon * yearFraction})
		prev = t
	}
	return append(cfs, redemption)
}

// ForwardDirtyPrice is the bond's cashflow value at forward time t,
// including accrued interest.
func (b Bond) ForwardDirtyPrice(dc curve.DiscountCurve, t float64) float64 {
	return cashflow.ForwardPrice(b.Cashflows(), dc, t)
}

// DirtyPrice is the present value of all cashflows, including accrued
// interest.
func (b Bond) DirtyPrice(dc curve.DiscountCurve) float64 {
	return b.ForwardDirtyPrice(dc, 0)
}

// YieldToMaturity solves for the flat continuously-compounded rate at which
// buying the bond for npv today has zero net present value. Pass the
// notional for a par yield.
func (b Bond) YieldToMaturity(npv float64) (float64, error) {
	cfs := b.Cashflows()
	all := make([]cashflow.Cashflow, 0, len(cfs)+1)
	all = append(all, cashflow.Fixed{T: 0, Value: -npv})
	all = append(all, cfs...)
	return cashflow.InternalRateOfReturn(all)
}

// Duration is the yield-sensitivity-weighted average time of the bond's
// cashflows at the yield implied by npv. Yields are continuously
// compounded, so there is no Macaulay/modified distinction.
func (b Bond) Duration(npv float64) (float64, error) {
	y, err := b.YieldToMaturity(npv)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, cf := range b.Cashflows() {
		f := cf.(cashflow.Fixed)
		sum += f.T * f.Value * math.Exp(-y*f.T)
	}
	return sum / npv, nil
}
