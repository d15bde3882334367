package dist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/mcample/mcample/rand"
)

func TestNormalBadArgs(t *testing.T) {
	assert := assert.New(t)

	gen, err := rand.NewGenerator(42)
	assert.NoError(err)

	n, err := NewNormal(nil, 0.0, 1.0)
	assert.Nil(n)
	assert.Error(err)

	n, err = NewNormal(gen, 0.0, 0.0)
	assert.Nil(n)
	assert.Error(err)

	n, err = NewNormal(gen, 0.0, -1.0)
	assert.Nil(n)
	assert.Error(err)
}

func TestNormalLogProb(t *testing.T) {
	assert := assert.New(t)

	gen, err := rand.NewGenerator(42)
	assert.NoError(err)

	n, err := NewNormal(gen, 0.0, 1.0)
	assert.NoError(err)

	// Standard normal at the mode
	exp := -0.5 * math.Log(2.0*math.Pi)
	assert.InDelta(exp, n.LogProb([]float64{0.0}), 1e-12)
	assert.InDelta(math.Exp(exp), n.Prob([]float64{0.0}), 1e-12)

	// Density integrates consistency: logProb = log(prob)
	x := []float64{1.7}
	assert.InDelta(math.Log(n.Prob(x)), n.LogProb(x), 1e-12)
}

func TestNormalSampleMoments(t *testing.T) {
	assert := assert.New(t)

	gen, err := rand.NewGenerator(42)
	assert.NoError(err)

	n, err := NewNormal(gen, 2.0, 3.0)
	assert.NoError(err)

	const count = 50000
	xs := make([]float64, count)
	for i := range xs {
		xs[i] = n.Sample()[0]
	}

	assert.InDelta(2.0, stat.Mean(xs, nil), 0.1)
	assert.InDelta(9.0, stat.Variance(xs, nil), 0.4)
}

func TestUniform(t *testing.T) {
	assert := assert.New(t)

	gen, err := rand.NewGenerator(42)
	assert.NoError(err)

	u, err := NewUniform(gen, 1.0, 1.0)
	assert.Nil(u)
	assert.Error(err)

	u, err = NewUniform(gen, -1.0, 3.0)
	assert.NoError(err)

	for i := 0; i < 1000; i++ {
		x := u.Sample()
		assert.True(x[0] >= -1.0 && x[0] < 3.0)
		assert.InDelta(0.25, u.Prob(x), 1e-12)
	}

	assert.Equal(0.0, u.Prob([]float64{4.0}))
}

func TestMultiNormal(t *testing.T) {
	assert := assert.New(t)

	gen, err := rand.NewGenerator(42)
	assert.NoError(err)

	mu := []float64{1.0, -1.0}
	sigma := mat.NewSymDense(2, []float64{1.0, 0.5, 0.5, 2.0})

	m, err := NewMultiNormal(gen, mu, sigma)
	assert.NoError(err)
	assert.Equal(2, m.Dim())

	const count = 50000
	xs := make([]float64, count)
	ys := make([]float64, count)
	for i := 0; i < count; i++ {
		p := m.Sample()
		assert.Len(p, 2)
		xs[i] = p[0]
		ys[i] = p[1]
	}

	assert.InDelta(1.0, stat.Mean(xs, nil), 0.05)
	assert.InDelta(-1.0, stat.Mean(ys, nil), 0.05)
	assert.InDelta(0.5, stat.Covariance(xs, ys, nil), 0.1)
}

func TestMultiNormalProb(t *testing.T) {
	assert := assert.New(t)

	gen, err := rand.NewGenerator(42)
	assert.NoError(err)

	sigma := mat.NewSymDense(2, []float64{1.0, 0.0, 0.0, 1.0})
	m, err := NewMultiNormal(gen, []float64{0.0, 0.0}, sigma)
	assert.NoError(err)

	// Standard 2D normal at the mode: 1/(2*pi)
	mode := []float64{0.0, 0.0}
	assert.InDelta(1.0/(2.0*math.Pi), m.Prob(mode), 1e-12)

	x := []float64{0.7, -1.3}
	assert.InDelta(math.Log(m.Prob(x)), m.LogProb(x), 1e-12)
}

func TestMultiNormalBadCovariance(t *testing.T) {
	assert := assert.New(t)

	gen, err := rand.NewGenerator(42)
	assert.NoError(err)

	// Not positive definite
	sigma := mat.NewSymDense(2, []float64{1.0, 2.0, 2.0, 1.0})
	m, err := NewMultiNormal(gen, []float64{0.0, 0.0}, sigma)
	assert.Nil(m)
	assert.Error(err)
}
