package sampler

import (
	"github.com/pkg/errors"

	"github.com/mcample/mcample/rand"
)

// Rejection draws from a proposal and accepts against a scaled target
// density. The envelope condition c*q(x) >= p(x) for all x is the caller's
// responsibility: it is never verified at runtime, and a violated envelope
// produces silently biased samples rather than an error.
type Rejection struct {
	gen      *rand.Generator
	target   DensityFunc
	proposal ProbDist
	c        float64

	// Tries counts proposal draws, Accepted counts returned samples. Both
	// are plain fields: a Rejection is single-owner with no atomicity
	// guarantee.
	Tries    int64
	Accepted int64
}

// NewRejection creates a new rejection sampler for the unnormalized target
// density p with proposal q and envelope constant c.
func NewRejection(gen *rand.Generator, p DensityFunc, q ProbDist, c float64) (*Rejection, error) {
	if gen == nil {
		return nil, errors.New("No generator supplied")
	}
	if p == nil {
		return nil, errors.New("No target density supplied")
	}
	if q == nil {
		return nil, errors.New("No proposal distribution supplied")
	}
	if c <= 0.0 {
		return nil, errors.Errorf("Invalid envelope constant %f", c)
	}

	s := &Rejection{
		gen:      gen,
		target:   p,
		proposal: q,
		c:        c,
	}
	return s, nil
}

// Sample returns a single accepted point. The loop is unbounded: with a
// valid envelope the expected number of tries per sample is c over the
// target's normalizing constant. Callers needing a responsiveness bound
// must impose their own cap.
func (r *Rejection) Sample() ([]float64, error) {
	for {
		r.Tries++

		x := r.proposal.Sample()
		u := r.gen.Float64() * r.c * r.proposal.Prob(x)

		// A non-finite target value fails this comparison and counts as an
		// ordinary rejection.
		if u < r.target(x) {
			r.Accepted++
			return x, nil
		}
	}
}

// AcceptanceRate returns Accepted/Tries, or 0 before the first try.
func (r *Rejection) AcceptanceRate() float64 {
	if r.Tries < 1 {
		return 0.0
	}
	return float64(r.Accepted) / float64(r.Tries)
}

// Reset zeroes the Tries and Accepted counters.
func (r *Rejection) Reset() {
	r.Tries = 0
	r.Accepted = 0
}
