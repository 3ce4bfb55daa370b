package sim

import (
	"math/rand"
	"strings"
)

// PolicyType identifies a page replacement policy
type PolicyType string

const (
	PolicyFIFO    PolicyType = "fifo"
	PolicyLRU     PolicyType = "lru"
	PolicyLFU     PolicyType = "lfu"
	PolicyOptimal PolicyType = "optimal"
	PolicyClock   PolicyType = "clock"
	PolicyRandom  PolicyType = "random"
)

// AllPolicies returns every supported policy in a fixed order
func AllPolicies() []PolicyType {
	return []PolicyType{
		PolicyFIFO,
		PolicyLRU,
		PolicyLFU,
		PolicyOptimal,
		PolicyClock,
		PolicyRandom,
	}
}

// ParsePolicy converts a user-supplied policy name into a PolicyType
func ParsePolicy(name string) (PolicyType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fifo":
		return PolicyFIFO, nil
	case "lru":
		return PolicyLRU, nil
	case "lfu":
		return PolicyLFU, nil
	case "optimal", "opt":
		return PolicyOptimal, nil
	case "clock", "second-chance":
		return PolicyClock, nil
	case "random", "rand":
		return PolicyRandom, nil
	default:
		return "", ErrPolicyUnknown("ParsePolicy", name)
	}
}

// Policy interface for page replacement policies
// Allows different algorithms (FIFO, LRU, LFU, OPTIMAL, CLOCK, RANDOM)
// Each instance owns its bookkeeping and is scoped to a single simulation run.
type Policy interface {
	// Touch records a hit on a resident page
	Touch(page int)

	// Insert records a page that was just placed into a frame,
	// either into a free slot or over an evicted victim
	Insert(page int)

	// Victim selects the frame slot to evict
	// Called only when every frame is occupied. future is the unprocessed
	// suffix of the reference sequence (used by the optimal policy only).
	// The policy drops the victim from its own bookkeeping before returning.
	Victim(frames FrameSet, future []int) int
}

// NewPolicy creates a policy instance for the given type
// rng is consumed by the random policy only; deterministic policies ignore it.
func NewPolicy(policyType PolicyType, rng *rand.Rand) (Policy, error) {
	switch policyType {
	case PolicyFIFO:
		return NewFIFOPolicy(), nil
	case PolicyLRU:
		return NewLRUPolicy(), nil
	case PolicyLFU:
		return NewLFUPolicy(), nil
	case PolicyOptimal:
		return NewOptimalPolicy(), nil
	case PolicyClock:
		return NewClockPolicy(), nil
	case PolicyRandom:
		return NewRandomPolicy(rng), nil
	default:
		return nil, ErrPolicyUnknown("NewPolicy", string(policyType))
	}
}
