package sampler

import (
	"math"

	"github.com/pkg/errors"
)

// WeightedSample is a point paired with its importance weight. Weights are
// only meaningful relative to the other weights in the same batch; they are
// not individually normalized.
type WeightedSample struct {
	X []float64
	W float64
}

// Importance draws from a proposal and weights each draw by the ratio of
// target to proposal density. Every draw is accepted: the cost per sample
// is exactly one proposal draw and two density evaluations.
type Importance struct {
	logTarget LogDensityFunc
	proposal  Dist

	// Count is the number of samples produced so far
	Count int64
}

// NewImportance creates a new importance sampler for the (possibly
// unnormalized) log target density logP with proposal q.
func NewImportance(logP LogDensityFunc, q Dist) (*Importance, error) {
	if logP == nil {
		return nil, errors.New("No log target density supplied")
	}
	if q == nil {
		return nil, errors.New("No proposal distribution supplied")
	}

	s := &Importance{
		logTarget: logP,
		proposal:  q,
	}
	return s, nil
}

// Sample returns a single weighted sample. A proposal much lighter-tailed
// than the target can overflow the weight to +Inf, and underflow to 0 is
// possible in the other direction; downstream aggregation must guard
// against both.
func (s *Importance) Sample() (WeightedSample, error) {
	x := s.proposal.Sample()
	w := math.Exp(s.logTarget(x) - s.proposal.LogProb(x))

	s.Count++
	return WeightedSample{X: x, W: w}, nil
}

// Reset zeroes the Count counter.
func (s *Importance) Reset() {
	s.Count = 0
}

// EffectiveSampleSize returns (sum w)^2 / sum(w^2) for a batch of weighted
// samples: an estimate of how many unweighted samples the batch is worth.
// The value lies in (0, N] and degenerates toward 1 when a single weight
// dominates, which indicates a proposal mismatch.
func EffectiveSampleSize(ws []WeightedSample) (float64, error) {
	if len(ws) < 1 {
		return 0.0, errors.Errorf("Effective sample size requires at least 1 sample")
	}

	var sum, sumSq float64
	for _, s := range ws {
		sum += s.W
		sumSq += s.W * s.W
	}

	if sumSq == 0.0 {
		return 0.0, errors.Errorf("All %d weights are zero", len(ws))
	}

	return sum * sum / sumSq, nil
}

// Mean returns the self-normalized importance estimate of E_p[f] from a
// batch of weighted samples.
func Mean(ws []WeightedSample, f func(x []float64) float64) (float64, error) {
	if len(ws) < 1 {
		return 0.0, errors.Errorf("Weighted mean requires at least 1 sample")
	}

	var num, den float64
	for _, s := range ws {
		num += s.W * f(s.X)
		den += s.W
	}

	if den == 0.0 {
		return 0.0, errors.Errorf("All %d weights are zero", len(ws))
	}

	return num / den, nil
}
