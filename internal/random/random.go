package random

import (
	"math"
	"math/rand/v2"
)

// Source returns a uniformly distributed value in [0,1).
type Source func() float64

// Picker chooses indexes into ordered sequences.
type Picker struct {
	src Source
}

// New creates a Picker backed by src.
func New(src Source) *Picker {
	return &Picker{src: src}
}

// Default returns a Picker backed by the global math/rand/v2 generator.
func Default() *Picker {
	return New(rand.Float64)
}

// Seeded returns a Picker whose sequence is fully determined by seed.
func Seeded(seed uint64) *Picker {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return New(r.Float64)
}

// Pick returns floor(src() * n), an index in [0,n).
// For n <= 0 it returns 0, which is not a valid index: callers must not
// apply it to an empty sequence.
func (p *Picker) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(math.Floor(p.src() * float64(n)))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}
