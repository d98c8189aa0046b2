package life

import (
	"math/rand/v2"
	"time"
)

// RNG is a seedable boolean source for randomising grids.
type RNG struct {
	r    *rand.Rand
	seed int64
}

// NewRNG creates a deterministic RNG. A zero seed is replaced by the current
// time so that unconfigured runs differ from one another.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0)), seed: seed}
}

// Bool returns a uniformly distributed boolean.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Seed reports the effective seed, useful for reproducing a run.
func (r *RNG) Seed() int64 { return r.seed }
