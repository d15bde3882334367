package sampler

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"

	"github.com/mcample/mcample/buffer"
)

// Chain provides bookkeeping around any Sampler: running moments per
// dimension, a sliding window of recent samples, and a split-window
// convergence check. Like the samplers themselves it is single-owner; no
// field access is synchronized.
type Chain struct {
	Sampler           Sampler
	ConvergenceWindow int
	History           []*buffer.CircularFloat
	TotalSampleCount  int64
	Last              []float64

	sum   []float64
	sumSq []float64
}

// NewChain returns a chain ready to go. It even performs burnin.
func NewChain(samp Sampler, dim int, cw int, burnIn int64) (*Chain, error) {
	if samp == nil {
		return nil, errors.New("No sampler supplied")
	}
	if dim < 1 {
		return nil, errors.Errorf("Invalid dimension %d", dim)
	}
	if cw < 2 {
		return nil, errors.Errorf("Invalid convergence window %d", cw)
	}

	ch := &Chain{
		Sampler:           samp,
		ConvergenceWindow: cw,
		History:           make([]*buffer.CircularFloat, dim),
		Last:              make([]float64, dim),
		sum:               make([]float64, dim),
		sumSq:             make([]float64, dim),
	}

	for i := range ch.History {
		ch.History[i] = buffer.NewCircularFloat(cw)
	}

	for i := int64(0); i < burnIn; i++ {
		if _, err := samp.Sample(); err != nil {
			return nil, errors.Wrap(err, "Failure during chain burn in")
		}
	}

	return ch, nil
}

// Step takes a single sample and updates the chain state.
func (c *Chain) Step() error {
	x, err := c.Sampler.Sample()
	if err != nil {
		return errors.Wrap(err, "Error taking sample")
	}
	if len(x) != len(c.History) {
		return errors.Errorf("Sample dimension %d does not match chain dimension %d", len(x), len(c.History))
	}

	for i, v := range x {
		c.History[i].Add(v)
		c.sum[i] += v
		c.sumSq[i] += v * v
	}
	copy(c.Last, x)
	c.TotalSampleCount++

	return nil
}

// Run takes n samples.
func (c *Chain) Run(n int64) error {
	for i := int64(0); i < n; i++ {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Mean returns the per-dimension running mean over every recorded sample.
func (c *Chain) Mean() ([]float64, error) {
	if c.TotalSampleCount < 1 {
		return nil, errors.Errorf("Chain has no samples")
	}

	m := make([]float64, len(c.sum))
	for i, s := range c.sum {
		m[i] = s / float64(c.TotalSampleCount)
	}
	return m, nil
}

// Variance returns the per-dimension running (population) variance over
// every recorded sample.
func (c *Chain) Variance() ([]float64, error) {
	if c.TotalSampleCount < 2 {
		return nil, errors.Errorf("Chain needs at least 2 samples for a variance")
	}

	n := float64(c.TotalSampleCount)
	v := make([]float64, len(c.sum))
	for i := range c.sum {
		mean := c.sum[i] / n
		v[i] = c.sumSq[i]/n - mean*mean
	}
	return v, nil
}

// SplitDiff returns, per dimension, the absolute difference between the
// mean of the older and newer halves of the convergence window. A chain
// still drifting toward its stationary distribution shows a large
// difference. Errors until the window has filled.
func (c *Chain) SplitDiff() ([]float64, error) {
	diffs := make([]float64, len(c.History))

	for i, hist := range c.History {
		first := hist.FirstHalf()
		second := hist.SecondHalf()
		if first == nil || second == nil {
			return nil, errors.Errorf("Chain history not yet full: %d of %d", hist.Count, hist.BufSize)
		}

		older := make([]float64, 0, c.ConvergenceWindow/2)
		for first.Next() {
			older = append(older, first.Value())
		}
		newer := make([]float64, 0, c.ConvergenceWindow/2)
		for second.Next() {
			newer = append(newer, second.Value())
		}

		d := stat.Mean(older, nil) - stat.Mean(newer, nil)
		if d < 0 {
			d = -d
		}
		diffs[i] = d
	}

	return diffs, nil
}

// MergeChains returns the pooled per-dimension mean across multiple chains,
// weighted by each chain's sample count.
func MergeChains(chains []*Chain) ([]float64, error) {
	if len(chains) < 1 {
		return nil, errors.Errorf("Can not merge 0 chains")
	}

	dim := len(chains[0].History)
	pooled := make([]float64, dim)
	var total int64

	for _, ch := range chains {
		if len(ch.History) != dim {
			return nil, errors.Errorf("Cannot merge chain with %d dims into %d dims", len(ch.History), dim)
		}
		if ch.TotalSampleCount < 1 {
			return nil, errors.Errorf("Cannot merge a chain with no samples")
		}
		for i, s := range ch.sum {
			pooled[i] += s
		}
		total += ch.TotalSampleCount
	}

	for i := range pooled {
		pooled[i] /= float64(total)
	}
	return pooled, nil
}
