package dist

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mcample/mcample/rand"
)

// Uniform is a univariate uniform distribution over [Min, Max)
type Uniform struct {
	dist distuv.Uniform
}

// NewUniform creates a uniform distribution over [min, max)
func NewUniform(gen *rand.Generator, min float64, max float64) (*Uniform, error) {
	if gen == nil {
		return nil, errors.New("No generator supplied")
	}
	if min >= max {
		return nil, errors.Errorf("Invalid interval [%f, %f)", min, max)
	}

	u := &Uniform{
		dist: distuv.Uniform{Min: min, Max: max, Src: gen},
	}
	return u, nil
}

// Sample returns a single draw
func (u *Uniform) Sample() []float64 {
	return []float64{u.dist.Rand()}
}

// LogProb returns the log density at x
func (u *Uniform) LogProb(x []float64) float64 {
	if len(x) != 1 {
		panic("Uniform is univariate")
	}
	return u.dist.LogProb(x[0])
}

// Prob returns the density at x
func (u *Uniform) Prob(x []float64) float64 {
	if len(x) != 1 {
		panic("Uniform is univariate")
	}
	return u.dist.Prob(x[0])
}
