package sim

import (
	"errors"
	"log/slog"
	"sync"
)

// Comparison holds side-by-side simulation results for every policy over
// the same frame count and reference sequence
type Comparison struct {
	FrameCount int
	References []int
	Results    []*SimulationResult // one per policy, in AllPolicies order
}

// ComparePolicies runs every policy over the same inputs, one goroutine
// per policy. Each run gets its own engine and auxiliary state, so the
// fan-out needs no shared locking. The random policy uses the given seed.
func ComparePolicies(frameCount int, references []int, seed int64) (*Comparison, error) {
	const op = "ComparePolicies"

	if frameCount < 1 {
		return nil, ErrInvalidFrameCount(op, frameCount)
	}

	policies := AllPolicies()
	results := make([]*SimulationResult, len(policies))
	runErrors := make([]error, len(policies))

	var wg sync.WaitGroup
	for i, policy := range policies {
		wg.Add(1)
		go func(i int, policy PolicyType) {
			defer wg.Done()

			config := DefaultConfig()
			config.Seed = seed
			config.EnableMetrics = false

			engine, err := NewEngine(config)
			if err != nil {
				runErrors[i] = err
				return
			}

			results[i], runErrors[i] = engine.Simulate(policy, frameCount, references)
		}(i, policy)
	}
	wg.Wait()

	if err := errors.Join(runErrors...); err != nil {
		return nil, err
	}

	return &Comparison{
		FrameCount: frameCount,
		References: references,
		Results:    results,
	}, nil
}

// Result returns the run for one policy, or nil if absent
func (c *Comparison) Result(policy PolicyType) *SimulationResult {
	for _, result := range c.Results {
		if result.Policy == policy {
			return result
		}
	}
	return nil
}

// Best returns the run with the fewest faults
// The earliest policy in AllPolicies order wins ties.
func (c *Comparison) Best() *SimulationResult {
	var best *SimulationResult
	for _, result := range c.Results {
		if best == nil || result.Faults < best.Faults {
			best = result
		}
	}
	return best
}

// LogSummary logs per-policy fault counts using structured logging
func (c *Comparison) LogSummary(logger *slog.Logger) {
	policyAttrs := make([]any, 0, len(c.Results))
	for _, result := range c.Results {
		policyAttrs = append(policyAttrs, slog.Group(string(result.Policy),
			slog.Int("faults", result.Faults),
			slog.Int("hits", result.Hits),
			slog.Float64("fault_rate", result.FaultRate()),
		))
	}

	best := c.Best()

	logger.Info("Policy Comparison",
		slog.Int("frames", c.FrameCount),
		slog.Int("references", len(c.References)),
		slog.Group("policies", policyAttrs...),
		slog.String("best", string(best.Policy)),
	)
}
