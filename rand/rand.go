package rand

import (
	"github.com/pkg/errors"
	"github.com/seehuhn/mt19937"
	exprand "golang.org/x/exp/rand"
)

var _ exprand.Source = (*Generator)(nil)

// A Generator uses a goroutine to populate batches of random numbers from a
// Mersenne twister. It also implements golang.org/x/exp/rand.Source so that
// gonum distributions can draw from the same seeded stream.
type Generator struct {
	ch chan uint64
}

// NewGenerator starts a new background PRNG based on the given seed
func NewGenerator(seed int64) (*Generator, error) {
	numChan := make(chan uint64, 1024)

	go func() {
		r := mt19937.New()
		r.Seed(seed)
		for {
			numChan <- r.Uint64()
		}
	}()

	g := &Generator{
		ch: numChan,
	}

	return g, nil
}

// NewGeneratorSlice starts a new background PRNG seeded from a key slice
// using the canonical mt19937 array-seeding routine.
func NewGeneratorSlice(key []uint64) (*Generator, error) {
	if len(key) < 1 {
		return nil, errors.Errorf("Can not seed a generator from an empty key")
	}

	numChan := make(chan uint64, 1024)

	go func() {
		r := mt19937.New()
		r.SeedFromSlice(key)
		for {
			numChan <- r.Uint64()
		}
	}()

	g := &Generator{
		ch: numChan,
	}

	return g, nil
}

// Uint64 returns the next raw value from the twister. Together with Seed it
// satisfies x/exp/rand.Source.
func (g *Generator) Uint64() uint64 {
	return <-g.ch
}

// Seed is required by x/exp/rand.Source, but a Generator may only be seeded
// at construction time.
func (g *Generator) Seed(seed uint64) {
	panic("a Generator may only be seeded via NewGenerator or NewGeneratorSlice")
}

// Int63 provides the same interface as Go's math/rand, but with pre-generation.
func (g *Generator) Int63() int64 {
	return int64(g.Uint64() & 0x7fffffffffffffff)
}

// Int63n is a copy of the current Go code
func (g *Generator) Int63n(n int64) int64 {
	if n <= 0 {
		panic("invalid argument to Int63n")
	}

	if n&(n-1) == 0 { // n is power of two, can mask
		return g.Int63() & (n - 1)
	}

	max := int64((1 << 63) - 1 - (1<<63)%uint64(n))
	v := g.Int63()
	for v > max {
		v = g.Int63()
	}

	return v % n
}

// Float64 uses the commented, simpler implmentation since we don't have the
// same support requirements for users
func (g *Generator) Float64() float64 {
	// See the Go lang comments for Rand Float64 implementation for details
	return float64(g.Int63n(1<<53)) / (1 << 53)
}
