// Package normal provides the standard normal density and cumulative
// distribution used throughout the option pricers.
//
// CDF is the Zelen–Severo (1964) rational approximation, accurate to about
// 7.5e-8. That approximation is the canonical cumulative normal for the
// whole engine; no higher-precision path exists, so cross-formula identities
// (put-call parity, digital complementarity) hold exactly in terms of it.
package normal

import "math"

const invSqrt2Pi = 0.3989422804014327 // 1/sqrt(2*pi)

// Zelen & Severo coefficients.
const (
	cdfP  = 0.2316419
	cdfB1 = 0.319381530
	cdfB2 = -0.356563782
	cdfB3 = 1.781477937
	cdfB4 = -1.821255978
	cdfB5 = 1.330274429
)

// PDF returns the standard normal density at x.
func PDF(x float64) float64 {
	return invSqrt2Pi * math.Exp(-x*x/2)
}

// CDF returns the standard normal cumulative distribution at x.
//
// CDF(0) is exactly 0.5; negative arguments reflect through
// CDF(x) = 1 - CDF(-x). NaN propagates.
func CDF(x float64) float64 {
	if x == 0 {
		return 0.5
	}
	if x < 0 {
		return 1 - CDF(-x)
	}
	t := 1 / (1 + cdfP*x)
	poly := t * (cdfB1 + t*(cdfB2+t*(cdfB3+t*(cdfB4+t*cdfB5))))
	return 1 - PDF(x)*poly
}
