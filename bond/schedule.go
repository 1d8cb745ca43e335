package bond

import (
	"fmt"

	"github.com/meenmo/qfin/errs"
)

// Frequency is a number of coupon payments per year.
type Frequency float64

// Named payment frequencies.
const (
	Annually     Frequency = 1
	SemiAnnually Frequency = 2
	Quarterly    Frequency = 4
	Monthly      Frequency = 12
	Weekly       Frequency = 52
	Daily        Frequency = 365
)

// MinimumPeriod is the shortest representable gap between two schedule
// dates, in years. It bounds valid frequencies to (0, 1/MinimumPeriod].
const MinimumPeriod = 1.0 / 1000

// RollFromEnd generates a coupon payment schedule by stepping backward from
// end in periods of 1/frequency. Dates closer than MinimumPeriod to start
// are discarded, so the first period may be shorter than the rest. The
// result is ascending and always ends at end.
func RollFromEnd(start, end float64, frequency Frequency) ([]float64, error) {
	const op = "RollFromEnd"

	if err := errs.Finite(op, "start", start); err != nil {
		return nil, err
	}
	if err := errs.Finite(op, "end", end); err != nil {
		return nil, err
	}
	if start+MinimumPeriod >= end {
		return nil, errs.Domain(op, fmt.Sprintf("end (%v) must exceed start (%v) by more than %v", end, start, MinimumPeriod))
	}
	if err := validFrequency(op, frequency); err != nil {
		return nil, err
	}
	return rollFromEnd(start, end, frequency), nil
}

// validFrequency checks frequency is in (0, 1/MinimumPeriod].
func validFrequency(op string, frequency Frequency) error {
	if err := errs.Positive(op, "frequency", float64(frequency)); err != nil {
		return err
	}
	if float64(frequency) > 1/MinimumPeriod {
		return &errs.Error{
			Kind: errs.RangeError, Op: op, Param: "frequency", Value: float64(frequency),
			Constraint: fmt.Sprintf("must be in (0, %v]", 1/MinimumPeriod),
		}
	}
	return nil
}

// rollFromEnd assumes validated arguments.
func rollFromEnd(start, end float64, frequency Frequency) []float64 {
	period := 1 / float64(frequency)

	var n int
	for ; end-float64(n)*period-start >= MinimumPeriod; n++ {
	}

	dates := make([]float64, n)
	for i := 0; i < n; i++ {
		dates[i] = end - float64(n-1-i)*period
	}
	return dates
}
