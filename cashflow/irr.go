package cashflow

import (
	"fmt"
	"math"

	"github.com/meenmo/qfin/curve"
	"github.com/meenmo/qfin/errs"
)

// Defaults for the internal rate of return solver.
const (
	irrGuess0  = 0.0
	irrGuess1  = 0.05
	irrAbsTol  = 1e-8
	irrMaxIter = 100
)

// IRRConfig tunes the secant iteration. The zero value of every field falls
// back to the package default, so callers may set only the fields they care
// about.
type IRRConfig struct {
	// Guess0 and Guess1 are the two starting iterates. When both are zero
	// the default window (0, 0.05) is used; otherwise they must differ.
	Guess0, Guess1 float64
	// AbsTol is the net present value tolerance for convergence.
	AbsTol float64
	// MaxIter caps the secant steps after the initial evaluation.
	MaxIter int
}

// InternalRateOfReturn solves for the flat continuously-compounded rate at
// which the cashflows' net present value is zero, using the default secant
// window (0, 0.05) and tolerance 1e-8.
func InternalRateOfReturn(cfs []Cashflow) (float64, error) {
	return InternalRateOfReturnWith(cfs, IRRConfig{})
}

// InternalRateOfReturnWith is InternalRateOfReturn with an explicit secant
// window. It fails with a convergence error after MaxIter+1 evaluations
// without meeting the tolerance; no partial result is returned.
func InternalRateOfReturnWith(cfs []Cashflow, cfg IRRConfig) (float64, error) {
	const op = "InternalRateOfReturn"

	if err := errs.NonEmpty(op, "cashflows", len(cfs)); err != nil {
		return 0, err
	}
	if cfg.Guess0 == 0 && cfg.Guess1 == 0 {
		cfg.Guess0, cfg.Guess1 = irrGuess0, irrGuess1
	}
	if cfg.Guess0 == cfg.Guess1 {
		return 0, errs.Domain(op, "initial guesses must differ")
	}
	if cfg.AbsTol == 0 {
		cfg.AbsTol = irrAbsTol
	}
	if cfg.MaxIter == 0 {
		cfg.MaxIter = irrMaxIter
	}

	npv := func(r float64) float64 {
		return ForwardPrice(cfs, curve.FlatDiscount(r), 0)
	}

	last, cur := cfg.Guess0, cfg.Guess1
	fLast := npv(last)
	for i := 0; i <= cfg.MaxIter; i++ {
		fCur := npv(cur)
		if math.Abs(fCur) <= cfg.AbsTol {
			return cur, nil
		}
		next := cur - fCur*(cur-last)/(fCur-fLast)
		last, fLast = cur, fCur
		cur = next
	}
	return 0, errs.Convergence(op, fmt.Sprintf("maximum iterations (%d) reached", cfg.MaxIter))
}
