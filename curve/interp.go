package curve

import (
	"sort"

	"github.com/meenmo/qfin/errs"
)

// SpotRate is an observed continuously-compounded zero rate at time T.
type SpotRate struct {
	T    float64
	Rate float64
}

// LinearSpot is a spot curve linearly interpolated between observed knots,
// flat-extrapolated beyond the first and last knot.
type LinearSpot struct {
	knots []SpotRate // sorted by T, private copy
}

// NewLinearSpot builds a linearly interpolated spot curve from at least one
// observed rate. The input slice is copied before sorting and never mutated.
func NewLinearSpot(rates []SpotRate) (*LinearSpot, error) {
	if err := errs.NonEmpty("NewLinearSpot", "rates", len(rates)); err != nil {
		return nil, err
	}
	knots := make([]SpotRate, len(rates))
	copy(knots, rates)
	sort.Slice(knots, func(i, j int) bool { return knots[i].T < knots[j].T })
	return &LinearSpot{knots: knots}, nil
}

func (c *LinearSpot) Rate(t float64) float64 {
	first, last := c.knots[0], c.knots[len(c.knots)-1]
	if t <= first.T {
		return first.Rate
	}
	if t >= last.T {
		return last.Rate
	}
	// Binary search for the first knot at or beyond t.
	hi := sort.Search(len(c.knots), func(i int) bool { return c.knots[i].T >= t })
	lo := hi - 1
	left, right := c.knots[lo], c.knots[hi]
	w := (t - left.T) / (right.T - left.T)
	return left.Rate + w*(right.Rate-left.Rate)
}
