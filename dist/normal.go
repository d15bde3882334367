package dist

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mcample/mcample/rand"
)

// Normal is a univariate Gaussian distribution
type Normal struct {
	dist distuv.Normal
}

// NewNormal creates a univariate Gaussian with the given mean and standard
// deviation, drawing from the given generator.
func NewNormal(gen *rand.Generator, mu float64, sigma float64) (*Normal, error) {
	if gen == nil {
		return nil, errors.New("No generator supplied")
	}
	if sigma <= 0.0 {
		return nil, errors.Errorf("Invalid standard deviation %f", sigma)
	}

	n := &Normal{
		dist: distuv.Normal{Mu: mu, Sigma: sigma, Src: gen},
	}
	return n, nil
}

// Sample returns a single draw
func (n *Normal) Sample() []float64 {
	return []float64{n.dist.Rand()}
}

// LogProb returns the log density at x
func (n *Normal) LogProb(x []float64) float64 {
	if len(x) != 1 {
		panic("Normal is univariate")
	}
	return n.dist.LogProb(x[0])
}

// Prob returns the density at x
func (n *Normal) Prob(x []float64) float64 {
	if len(x) != 1 {
		panic("Normal is univariate")
	}
	return n.dist.Prob(x[0])
}

// MultiNormal is a multivariate Gaussian distribution
type MultiNormal struct {
	dist *distmv.Normal
}

// NewMultiNormal creates a multivariate Gaussian with the given mean vector
// and covariance matrix. The covariance must be positive definite.
func NewMultiNormal(gen *rand.Generator, mu []float64, sigma *mat.SymDense) (*MultiNormal, error) {
	if gen == nil {
		return nil, errors.New("No generator supplied")
	}
	if len(mu) < 1 {
		return nil, errors.Errorf("Invalid mean vector of length %d", len(mu))
	}

	d, ok := distmv.NewNormal(mu, sigma, gen)
	if !ok {
		return nil, errors.Errorf("Covariance matrix is not positive definite")
	}

	return &MultiNormal{dist: d}, nil
}

// Dim returns the dimension of the distribution
func (m *MultiNormal) Dim() int {
	return m.dist.Dim()
}

// Sample returns a single draw
func (m *MultiNormal) Sample() []float64 {
	return m.dist.Rand(nil)
}

// LogProb returns the log density at x
func (m *MultiNormal) LogProb(x []float64) float64 {
	return m.dist.LogProb(x)
}

// Prob returns the density at x
func (m *MultiNormal) Prob(x []float64) float64 {
	return math.Exp(m.dist.LogProb(x))
}
