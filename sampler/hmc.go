package sampler

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/mcample/mcample/rand"
)

// Defaults for HMCConfig fields left at their zero value.
const (
	DefaultTau      = 42
	DefaultDTau     = 0.04
	DefaultGradStep = 1e-4
)

// HMCConfig holds the tunable parameters of an HMC sampler. Zero-valued
// fields fall back to the defaults above.
type HMCConfig struct {
	// Tau is the number of leap-frog steps per trajectory
	Tau int
	// DTau is the leap-frog step size
	DTau float64
	// Grad is an analytic gradient of the energy. When nil, a
	// central-difference gradient with step GradStep is used instead, at a
	// cost of two energy evaluations per coordinate per gradient call.
	Grad GradFunc
	// GradStep is the central-difference step size used when Grad is nil
	GradStep float64
}

// HMC samples from the density exp(-E(x)) by simulating Hamiltonian
// dynamics with a fresh Gaussian momentum per step and a Metropolis
// correction for integration error. The chain position is the only
// persistent state: momentum is discarded after every step.
type HMC struct {
	gen      *rand.Generator
	momentum distuv.Normal
	energy   EnergyFunc
	grad     GradFunc
	tau      int
	dtau     float64

	// x is the current chain position, updated in place on accept
	x []float64

	// Steps counts calls to Sample, Accepted counts Metropolis accepts
	Steps    int64
	Accepted int64
}

// NewHMC creates a new HMC sampler for the energy function E starting from
// position x0. A nil cfg selects all defaults.
func NewHMC(gen *rand.Generator, E EnergyFunc, x0 []float64, cfg *HMCConfig) (*HMC, error) {
	if gen == nil {
		return nil, errors.New("No generator supplied")
	}
	if E == nil {
		return nil, errors.New("No energy function supplied")
	}
	if len(x0) < 1 {
		return nil, errors.Errorf("Invalid initial position of dimension %d", len(x0))
	}

	if cfg == nil {
		cfg = &HMCConfig{}
	}

	tau := cfg.Tau
	if tau == 0 {
		tau = DefaultTau
	}
	if tau < 0 {
		return nil, errors.Errorf("Invalid trajectory length %d", tau)
	}

	dtau := cfg.DTau
	if dtau == 0.0 {
		dtau = DefaultDTau
	}
	if dtau < 0.0 {
		return nil, errors.Errorf("Invalid step size %f", dtau)
	}

	grad := cfg.Grad
	if grad == nil {
		step := cfg.GradStep
		if step == 0.0 {
			step = DefaultGradStep
		}
		if step < 0.0 {
			return nil, errors.Errorf("Invalid gradient step %f", step)
		}
		grad = NumericGrad(E, step)
	}

	x := make([]float64, len(x0))
	copy(x, x0)

	h := &HMC{
		gen:      gen,
		momentum: distuv.Normal{Mu: 0.0, Sigma: 1.0, Src: gen},
		energy:   E,
		grad:     grad,
		tau:      tau,
		dtau:     dtau,
		x:        x,
	}
	return h, nil
}

// NumericGrad returns a central-difference gradient of E with the given
// per-coordinate step. Each call costs two energy evaluations per
// coordinate.
func NumericGrad(E EnergyFunc, step float64) GradFunc {
	return func(x []float64) []float64 {
		g := make([]float64, len(x))
		xe := make([]float64, len(x))
		copy(xe, x)

		for i := range x {
			xe[i] = x[i] + step
			hi := E(xe)
			xe[i] = x[i] - step
			lo := E(xe)
			xe[i] = x[i]
			g[i] = (hi - lo) / (2.0 * step)
		}
		return g
	}
}

// LeapFrog advances position x and momentum p in place through tau steps of
// size dtau under the energy gradient grad. The scheme (half-step momentum,
// full-step position, half-step momentum) is time-reversible and
// volume-preserving, which is what keeps the Metropolis correction exact.
// Explicit Euler integration is not a valid substitute here.
func LeapFrog(x []float64, p []float64, grad GradFunc, dtau float64, tau int) {
	for t := 0; t < tau; t++ {
		floats.AddScaled(p, -dtau/2.0, grad(x))
		floats.AddScaled(x, dtau, p)
		floats.AddScaled(p, -dtau/2.0, grad(x))
	}
}

// Sample advances the chain one step and returns a copy of the (possibly
// unchanged) position. A rejected trajectory leaves the chain in place, so
// repeated samples are an expected outcome, not an error.
func (h *HMC) Sample() ([]float64, error) {
	dim := len(h.x)

	p := make([]float64, dim)
	for i := range p {
		p[i] = h.momentum.Rand()
	}
	hamNow := h.energy(h.x) + 0.5*floats.Dot(p, p)

	xNew := make([]float64, dim)
	copy(xNew, h.x)
	LeapFrog(xNew, p, h.grad, h.dtau, h.tau)
	hamNew := h.energy(xNew) + 0.5*floats.Dot(p, p)

	h.Steps++
	if math.Log(h.gen.Float64()) < hamNow-hamNew {
		copy(h.x, xNew)
		h.Accepted++
	}

	out := make([]float64, dim)
	copy(out, h.x)
	return out, nil
}

// AcceptanceRate returns Accepted/Steps, or 0 before the first step.
func (h *HMC) AcceptanceRate() float64 {
	if h.Steps < 1 {
		return 0.0
	}
	return float64(h.Accepted) / float64(h.Steps)
}

// Position returns a copy of the current chain position.
func (h *HMC) Position() []float64 {
	out := make([]float64, len(h.x))
	copy(out, h.x)
	return out
}

// Reset zeroes the Steps and Accepted counters. The chain position is left
// alone.
func (h *HMC) Reset() {
	h.Steps = 0
	h.Accepted = 0
}
