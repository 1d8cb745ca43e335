// Package errs defines the error taxonomy shared by every pricing package:
// value errors (non-finite inputs), range errors (parameter outside its
// allowed interval), domain errors (inconsistent parameter combinations),
// and convergence errors (iterative solver exhausted its budget).
//
// All failures are synchronous and non-recoverable at the call site; the
// engine never retries and never returns partial results.
package errs

import (
	"fmt"
	"math"
)

// Kind classifies an engine error.
type Kind int

const (
	// ValueError means an argument was NaN or infinite where a finite
	// number is required.
	ValueError Kind = iota
	// RangeError means a numeric argument lies outside its allowed
	// interval, or a collection argument is empty where a non-empty one is
	// required.
	RangeError
	// DomainError means the arguments are individually valid but mutually
	// inconsistent (e.g. a schedule whose start is not before its end).
	DomainError
	// ConvergenceError means an iterative solver hit its iteration ceiling
	// without reaching the requested tolerance.
	ConvergenceError
)

func (k Kind) String() string {
	switch k {
	case ValueError:
		return "value"
	case RangeError:
		return "range"
	case DomainError:
		return "domain"
	case ConvergenceError:
		return "convergence"
	default:
		return "unknown"
	}
}

// Error is a structured engine error. Op is the exported function that
// rejected the call, Param the offending parameter (empty for domain and
// convergence errors), Value its value and Constraint the violated rule.
type Error struct {
	Kind       Kind
	Op         string
	Param      string
	Value      float64
	Constraint string
}

func (e *Error) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s: %s %s (got %v)", e.Op, e.Param, e.Constraint, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Constraint)
}

// Finite returns a ValueError unless v is a finite number.
func Finite(op, param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &Error{Kind: ValueError, Op: op, Param: param, Value: v, Constraint: "must be a finite number"}
	}
	return nil
}

// NonNegative returns an error unless v is finite and >= 0.
func NonNegative(op, param string, v float64) error {
	if err := Finite(op, param, v); err != nil {
		return err
	}
	if v < 0 {
		return &Error{Kind: RangeError, Op: op, Param: param, Value: v, Constraint: "must be >= 0"}
	}
	return nil
}

// Positive returns an error unless v is finite and > 0.
func Positive(op, param string, v float64) error {
	if err := Finite(op, param, v); err != nil {
		return err
	}
	if v <= 0 {
		return &Error{Kind: RangeError, Op: op, Param: param, Value: v, Constraint: "must be > 0"}
	}
	return nil
}

// InRange returns an error unless v is finite and lo <= v <= hi.
func InRange(op, param string, v, lo, hi float64) error {
	if err := Finite(op, param, v); err != nil {
		return err
	}
	if v < lo || v > hi {
		return &Error{
			Kind: RangeError, Op: op, Param: param, Value: v,
			Constraint: fmt.Sprintf("must be in [%v, %v]", lo, hi),
		}
	}
	return nil
}

// NonEmpty returns a RangeError if a collection parameter has zero length.
func NonEmpty(op, param string, n int) error {
	if n == 0 {
		return &Error{Kind: RangeError, Op: op, Constraint: param + " must be non-empty"}
	}
	return nil
}

// Domain builds a DomainError with a free-form constraint description.
func Domain(op, constraint string) error {
	return &Error{Kind: DomainError, Op: op, Constraint: constraint}
}

// Convergence builds a ConvergenceError with a free-form description.
func Convergence(op, constraint string) error {
	return &Error{Kind: ConvergenceError, Op: op, Constraint: constraint}
}
