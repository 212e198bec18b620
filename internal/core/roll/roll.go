// Package roll provides the random draws used by world generation.
// Every draw goes through a caller-supplied source so a seed fully
// determines a generated world.
package roll

import (
	"math/rand"
	"time"
)

// Roller handles random draws with a configurable random source
type Roller struct {
	rng *rand.Rand
}

// NewRoller creates a new Roller with the given random source
func NewRoller(rng *rand.Rand) *Roller {
	return &Roller{rng: rng}
}

// NewSeeded creates a Roller from a seed (0 = use current time)
func NewSeeded(seed int64) *Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewRoller(rand.New(rand.NewSource(seed)))
}

// Float64 returns a uniform draw in [0, 1)
func (r *Roller) Float64() float64 {
	return r.rng.Float64()
}

// Range returns a uniform draw in [min, min+span)
func (r *Roller) Range(min, span float64) float64 {
	return min + r.rng.Float64()*span
}

// Chance draws once and reports whether the draw fell below p
func (r *Roller) Chance(p float64) bool {
	return r.rng.Float64() < p
}

// Pick returns a uniform index in [0, n). n must be positive.
func (r *Roller) Pick(n int) int {
	return int(r.rng.Float64() * float64(n))
}

// Sign returns +1 or -1 with equal probability
func (r *Roller) Sign() int {
	if r.rng.Float64() > 0.5 {
		return 1
	}
	return -1
}
