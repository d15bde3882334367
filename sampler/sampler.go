package sampler

// A Sampler produces one point in R^n per call. Returned slices are fresh
// copies owned by the caller.
type Sampler interface {
	Sample() ([]float64, error)
}

// A Dist can be sampled and can evaluate its own log density. This is the
// capability proposals must offer to the importance sampler.
type Dist interface {
	Sample() []float64
	LogProb(x []float64) float64
}

// A ProbDist can be sampled and can evaluate its own plain (not log)
// density. This is the capability proposals must offer to the rejection
// sampler, whose accept test works on raw densities.
type ProbDist interface {
	Sample() []float64
	Prob(x []float64) float64
}

// DensityFunc is an unnormalized target density p(x) >= 0.
type DensityFunc func(x []float64) float64

// LogDensityFunc is a (possibly unnormalized) log target density.
type LogDensityFunc func(x []float64) float64

// EnergyFunc is a target energy E(x) = -log p(x) up to an additive constant.
type EnergyFunc func(x []float64) float64

// GradFunc is the gradient of an energy function.
type GradFunc func(x []float64) []float64
