package layout

import (
	"math/rand"
	"time"
)

// Source is the random source consumed by the generators.
type Source interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
	Bool() bool
}

type randSource struct {
	rng *rand.Rand
}

func (r *randSource) Intn(n int) int { return r.rng.Intn(n) }
func (r *randSource) Float64() float64 { return r.rng.Float64() }
func (r *randSource) Bool() bool { return r.rng.Intn(2) == 0 }

// NewSource returns a Source seeded with seed.
func NewSource(seed int64) Source {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

// ResolveSeed returns seed, or a clock-derived seed when seed is zero.
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}
