package cashflow_test

import (
	"errors"
	"math"
	"testing"

	"github.com/meenmo/qfin/cashflow"
	"github.com/meenmo/qfin/curve"
	"github.com/meenmo/qfin/errs"
)

func TestForwardLinearRate(t *testing.T) {
	t.Parallel()

	dc := curve.FlatDiscount(0.04)
	fl := cashflow.Floating{Fixing: 1, Payment: 1.5, Notional: 1000}

	want := (dc.Factor(1)/dc.Factor(1.5) - 1) / 0.5
	if got := cashflow.ForwardLinearRate(fl, dc); math.Abs(got-want) > 1e-15 {
		t.Fatalf("ForwardLinearRate = %v, want %v", got, want)
	}
	// Against a flat curve the simple forward is (exp(r*tau)-1)/tau.
	approx := (math.Exp(0.04*0.5) - 1) / 0.5
	if math.Abs(want-approx) > 1e-12 {
		t.Fatalf("flat-curve forward = %v, want %v", want, approx)
	}
}

func TestForwardPriceFixed(t *testing.T) {
	t.Parallel()

	dc := curve.FlatDiscount(0.03)
	cfs := []cashflow.Cashflow{
		cashflow.Fixed{T: 1, Value: 100},
		cashflow.Fixed{T: 2, Value: 100},
	}

	want := 100*dc.Factor(1) + 100*dc.Factor(2)
	if got := cashflow.ForwardPrice(cfs, dc, 0); math.Abs(got-want) > 1e-12 {
		t.Fatalf("ForwardPrice = %v, want %v", got, want)
	}

	// Forward at t=1.5: only the t=2 flow remains, discounted forward.
	want = 100 * dc.Factor(2) / dc.Factor(1.5)
	if got := cashflow.ForwardPrice(cfs, dc, 1.5); math.Abs(got-want) > 1e-12 {
		t.Fatalf("ForwardPrice(t=1.5) = %v, want %v", got, want)
	}
}

func TestForwardPriceExcludesPaidCashflows(t *testing.T) {
	t.Parallel()

	dc := curve.FlatDiscount(0.02)
	cfs := []cashflow.Cashflow{
		cashflow.Fixed{T: 0.5, Value: -40},
		cashflow.Fixed{T: 2, Value: 104},
	}
	got := cashflow.ForwardPrice(cfs, dc, 1)
	want := 104 * dc.Factor(2) / dc.Factor(1)
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("ForwardPrice = %v, want %v (paid flow must not contribute)", got, want)
	}
}

// A floating cashflow's forward value telescopes to
// notional*(df(fixing)-df(payment))/df(t).
func TestForwardPriceFloating(t *testing.T) {
	t.Parallel()

	dc := curve.FlatDiscount(0.05)
	fl := cashflow.Floating{Fixing: 1, Payment: 2, Notional: 1e6}

	got := cashflow.ForwardPrice([]cashflow.Cashflow{fl}, dc, 0)
	want := 1e6 * (dc.Factor(1) - dc.Factor(2))
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("ForwardPrice = %v, want %v", got, want)
	}
}

func TestInternalRateOfReturn(t *testing.T) {
	t.Parallel()

	cfs := []cashflow.Cashflow{
		cashflow.Fixed{T: 0, Value: -123400},
		cashflow.Fixed{T: 1, Value: 36200},
		cashflow.Fixed{T: 2, Value: 54800},
		cashflow.Fixed{T: 3, Value: 48100},
	}
	got, err := cashflow.InternalRateOfReturn(cfs)
	if err != nil {
		t.Fatalf("InternalRateOfReturn error: %v", err)
	}
	want := math.Log(1.0596)
	if math.Abs(got-want) > 5e-5 {
		t.Fatalf("rate = %.6f, want %.6f", got, want)
	}

	// The solved rate zeroes the NPV within tolerance.
	npv := cashflow.ForwardPrice(cfs, curve.FlatDiscount(got), 0)
	if math.Abs(npv) > 1e-8 {
		t.Fatalf("npv at solved rate = %v, want ~0", npv)
	}
}

// Setting only the tolerance must not disturb the default secant window.
func TestInternalRateOfReturnWithPartialConfig(t *testing.T) {
	t.Parallel()

	cfs := []cashflow.Cashflow{
		cashflow.Fixed{T: 0, Value: -123400},
		cashflow.Fixed{T: 1, Value: 36200},
		cashflow.Fixed{T: 2, Value: 54800},
		cashflow.Fixed{T: 3, Value: 48100},
	}
	got, err := cashflow.InternalRateOfReturnWith(cfs, cashflow.IRRConfig{AbsTol: 1e-10})
	if err != nil {
		t.Fatalf("InternalRateOfReturnWith error: %v", err)
	}
	want, err := cashflow.InternalRateOfReturn(cfs)
	if err != nil {
		t.Fatalf("InternalRateOfReturn error: %v", err)
	}
	if math.Abs(got-want) > 1e-8 {
		t.Fatalf("rate = %v, default-window rate = %v", got, want)
	}
}

func TestInternalRateOfReturnEqualGuesses(t *testing.T) {
	t.Parallel()

	cfs := []cashflow.Cashflow{
		cashflow.Fixed{T: 0, Value: -100},
		cashflow.Fixed{T: 1, Value: 105},
	}
	_, err := cashflow.InternalRateOfReturnWith(cfs, cashflow.IRRConfig{Guess0: 0.05, Guess1: 0.05})
	if err == nil {
		t.Fatal("equal initial guesses accepted")
	}
	var e *errs.Error
	if !errors.As(err, &e) || e.Kind != errs.DomainError {
		t.Fatalf("want DomainError, got %v", err)
	}
}

func TestInternalRateOfReturnEmptyInput(t *testing.T) {
	t.Parallel()

	if _, err := cashflow.InternalRateOfReturn(nil); err == nil {
		t.Fatal("empty cashflow list accepted")
	}
}

func TestInternalRateOfReturnNoRoot(t *testing.T) {
	t.Parallel()

	// All-positive cashflows have no zero NPV; the solver must fail rather
	// than return a best-effort rate.
	cfs := []cashflow.Cashflow{
		cashflow.Fixed{T: 0, Value: 100},
		cashflow.Fixed{T: 1, Value: 100},
	}
	_, err := cashflow.InternalRateOfReturn(cfs)
	if err == nil {
		t.Fatal("all-positive cashflows converged")
	}
	var e *errs.Error
	if !errors.As(err, &e) || e.Kind != errs.ConvergenceError {
		t.Fatalf("want ConvergenceError, got %v", err)
	}
}
