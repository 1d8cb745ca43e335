package normal_test

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/meenmo/qfin/normal"
)

func TestPDFKnownValues(t *testing.T) {
	t.Parallel()

	if got := normal.PDF(0); math.Abs(got-0.398942) > 5e-7 {
		t.Fatalf("PDF(0) = %.6f, want 0.398942", got)
	}
}

func TestCDFKnownValues(t *testing.T) {
	t.Parallel()

	if got := normal.CDF(0); got != 0.5 {
		t.Fatalf("CDF(0) = %v, want exactly 0.5", got)
	}
	if got := normal.CDF(1); math.Abs(got-0.841345) > 5e-7 {
		t.Fatalf("CDF(1) = %.6f, want 0.841345", got)
	}
}

func TestPDFSymmetry(t *testing.T) {
	t.Parallel()

	for x := -4.0; x <= 4.0; x += 0.25 {
		if got, want := normal.PDF(x), normal.PDF(-x); got != want {
			t.Fatalf("PDF(%v) = %v, PDF(%v) = %v", x, got, -x, want)
		}
	}
}

func TestCDFReflection(t *testing.T) {
	t.Parallel()

	for x := -4.0; x <= 4.0; x += 0.25 {
		lhs := normal.CDF(x)
		rhs := 1 - normal.CDF(-x)
		if math.Abs(lhs-rhs) > 1e-15 {
			t.Fatalf("CDF(%v) = %v, 1-CDF(%v) = %v", x, lhs, -x, rhs)
		}
	}
}

// The derivative of the cumulative distribution is the density; check the
// central difference against PDF to five decimal digits.
func TestCDFDerivativeMatchesPDF(t *testing.T) {
	t.Parallel()

	const h = 1e-6
	for i := -30; i <= 30; i++ {
		if i == 0 {
			continue // x=0 needs a wider step, checked below
		}
		x := float64(i) / 10
		num := (normal.CDF(x+h) - normal.CDF(x-h)) / (2 * h)
		if math.Abs(num-normal.PDF(x)) > 1e-5 {
			t.Fatalf("dCDF/dx at %v = %.8f, PDF = %.8f", x, num, normal.PDF(x))
		}
	}

	// At x=0 the difference straddles the exact CDF(0)=0.5 while both
	// shoulders carry the rational approximation's offset, with opposite
	// signs under reflection. The step must be wide enough to keep that
	// offset divided by h below the tolerance.
	const h0 = 1e-4
	num := (normal.CDF(h0) - normal.CDF(-h0)) / (2 * h0)
	if math.Abs(num-normal.PDF(0)) > 1e-5 {
		t.Fatalf("dCDF/dx at 0 = %.8f, PDF = %.8f", num, normal.PDF(0))
	}
}

// gonum's exact cumulative normal is the oracle for the approximation's
// documented error bound of 7.5e-8.
func TestCDFApproximationErrorBound(t *testing.T) {
	t.Parallel()

	dist := distuv.Normal{Mu: 0, Sigma: 1}
	for x := -6.0; x <= 6.0; x += 0.01 {
		diff := math.Abs(normal.CDF(x) - dist.CDF(x))
		if diff > 7.5e-8 {
			t.Fatalf("CDF(%v) off by %.3g, bound 7.5e-8", x, diff)
		}
	}
}

func TestCDFPropagatesNaN(t *testing.T) {
	t.Parallel()

	if got := normal.CDF(math.NaN()); !math.IsNaN(got) {
		t.Fatalf("CDF(NaN) = %v, want NaN", got)
	}
	if got := normal.PDF(math.NaN()); !math.IsNaN(got) {
		t.Fatalf("PDF(NaN) = %v, want NaN", got)
	}
}
