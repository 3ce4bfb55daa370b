package sim

import (
	"math/rand"
	"time"
)

// RandomPolicy implements random replacement
// The victim is a uniformly random occupied slot. The generator is injected
// so that runs can be reproduced from a seed.
type RandomPolicy struct {
	rng *rand.Rand
}

// NewRandomPolicy creates a new random policy
// A nil rng falls back to a time-seeded generator.
func NewRandomPolicy(rng *rand.Rand) *RandomPolicy {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomPolicy{
		rng: rng,
	}
}

// Touch is a no-op
func (p *RandomPolicy) Touch(page int) {
}

// Insert is a no-op
func (p *RandomPolicy) Insert(page int) {
}

// Victim picks a uniformly random slot
// Eviction only happens with every frame occupied, so any slot is valid.
func (p *RandomPolicy) Victim(frames FrameSet, future []int) int {
	return p.rng.Intn(len(frames))
}
