package sim

import (
	"log/slog"
	"math"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Histogram tracks a value distribution with percentile support
type Histogram struct {
	samples []float64
	mu      sync.Mutex
	maxSize int // Maximum samples to retain
	sorted  bool
}

// NewHistogram creates a new histogram with a max sample size
func NewHistogram(maxSize int) *Histogram {
	if maxSize <= 0 {
		maxSize = 10000 // Default: keep last 10k samples
	}
	return &Histogram{
		samples: make([]float64, 0, maxSize),
		maxSize: maxSize,
		sorted:  true,
	}
}

// Record adds a sample
func (h *Histogram) Record(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// If at capacity, drop the oldest sample
	if len(h.samples) >= h.maxSize {
		copy(h.samples, h.samples[1:])
		h.samples = h.samples[:len(h.samples)-1]
	}

	h.samples = append(h.samples, value)
	h.sorted = false
}

// Percentile calculates the given percentile (0-100)
func (h *Histogram) Percentile(p float64) float64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.samples) == 0 {
		return 0
	}

	if !h.sorted {
		sort.Float64s(h.samples)
		h.sorted = true
	}

	rank := (p / 100.0) * float64(len(h.samples)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))

	if lower == upper {
		return h.samples[lower]
	}

	// Linear interpolation between lower and upper
	weight := rank - float64(lower)
	return h.samples[lower]*(1-weight) + h.samples[upper]*weight
}

// Mean calculates the average sample
func (h *Histogram) Mean() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.samples) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range h.samples {
		sum += v
	}
	return sum / float64(len(h.samples))
}

// Count returns the number of samples
func (h *Histogram) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.samples)
}

// Reset clears all samples
func (h *Histogram) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.samples = h.samples[:0]
	h.sorted = true
}

// HistogramSnapshot holds current percentile statistics
type HistogramSnapshot struct {
	Count int
	Mean  float64
	P50   float64 // Median
	P95   float64
	P99   float64
}

// Snapshot captures current histogram statistics
func (h *Histogram) Snapshot() HistogramSnapshot {
	return HistogramSnapshot{
		Count: h.Count(),
		Mean:  h.Mean(),
		P50:   h.Percentile(50),
		P95:   h.Percentile(95),
		P99:   h.Percentile(99),
	}
}

// Metrics tracks cumulative simulation engine metrics
type Metrics struct {
	// Run Metrics
	simulations atomic.Uint64
	references  atomic.Uint64
	hits        atomic.Uint64
	faults      atomic.Uint64
	evictions   atomic.Uint64

	// Per-policy fault counters
	policyRuns   map[PolicyType]uint64
	policyFaults map[PolicyType]uint64
	policyMu     sync.Mutex

	// Simulate call latency (microseconds)
	simulateLatency *Histogram

	startTime time.Time
	mu        sync.RWMutex
}

// NewMetrics creates a new metrics tracker
func NewMetrics() *Metrics {
	return &Metrics{
		policyRuns:      make(map[PolicyType]uint64),
		policyFaults:    make(map[PolicyType]uint64),
		simulateLatency: NewHistogram(10000),
		startTime:       time.Now(),
	}
}

// RecordSimulation records a completed simulation run
func (m *Metrics) RecordSimulation(result *SimulationResult, duration time.Duration) {
	m.simulations.Add(1)
	m.references.Add(uint64(len(result.References)))
	m.hits.Add(uint64(result.Hits))
	m.faults.Add(uint64(result.Faults))

	evictions := 0
	for _, step := range result.Steps {
		if step.DidEvict {
			evictions++
		}
	}
	m.evictions.Add(uint64(evictions))

	m.policyMu.Lock()
	m.policyRuns[result.Policy]++
	m.policyFaults[result.Policy] += uint64(result.Faults)
	m.policyMu.Unlock()

	m.simulateLatency.Record(float64(duration.Microseconds()))
}

// Getters

func (m *Metrics) GetSimulations() uint64 {
	return m.simulations.Load()
}

func (m *Metrics) GetReferences() uint64 {
	return m.references.Load()
}

func (m *Metrics) GetHits() uint64 {
	return m.hits.Load()
}

func (m *Metrics) GetFaults() uint64 {
	return m.faults.Load()
}

func (m *Metrics) GetEvictions() uint64 {
	return m.evictions.Load()
}

// GetHitRate returns hits as a fraction of all processed references
func (m *Metrics) GetHitRate() float64 {
	hits := m.hits.Load()
	total := m.references.Load()
	if total == 0 {
		return 0.0
	}
	return float64(hits) / float64(total)
}

// GetPolicyFaults returns the cumulative fault count for one policy
func (m *Metrics) GetPolicyFaults(policy PolicyType) uint64 {
	m.policyMu.Lock()
	defer m.policyMu.Unlock()
	return m.policyFaults[policy]
}

// GetPolicyRuns returns the number of completed runs for one policy
func (m *Metrics) GetPolicyRuns(policy PolicyType) uint64 {
	m.policyMu.Lock()
	defer m.policyMu.Unlock()
	return m.policyRuns[policy]
}

// GetSimulateLatency returns a snapshot of the Simulate latency distribution
func (m *Metrics) GetSimulateLatency() HistogramSnapshot {
	return m.simulateLatency.Snapshot()
}

func (m *Metrics) GetUptime() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return time.Since(m.startTime)
}

// LogMetrics logs all metrics using structured logging
func (m *Metrics) LogMetrics(logger *slog.Logger) {
	latency := m.GetSimulateLatency()

	policyAttrs := make([]any, 0, len(AllPolicies()))
	m.policyMu.Lock()
	for _, policy := range AllPolicies() {
		if m.policyRuns[policy] == 0 {
			continue
		}
		policyAttrs = append(policyAttrs, slog.Group(string(policy),
			slog.Uint64("runs", m.policyRuns[policy]),
			slog.Uint64("faults", m.policyFaults[policy]),
		))
	}
	m.policyMu.Unlock()

	logger.Info("Simulation Engine Metrics",
		slog.Group("engine",
			slog.Uint64("simulations", m.GetSimulations()),
			slog.Uint64("references", m.GetReferences()),
			slog.Uint64("hits", m.GetHits()),
			slog.Uint64("faults", m.GetFaults()),
			slog.Uint64("evictions", m.GetEvictions()),
			slog.Float64("hit_rate", m.GetHitRate()),
		),
		slog.Group("policies", policyAttrs...),
		slog.Group("latency_us",
			slog.Int("count", latency.Count),
			slog.Float64("mean", latency.Mean),
			slog.Float64("p50", latency.P50),
			slog.Float64("p95", latency.P95),
			slog.Float64("p99", latency.P99),
		),
		slog.Duration("uptime", m.GetUptime()),
	)
}

// Reset resets all metrics (useful for testing)
func (m *Metrics) Reset() {
	m.simulations.Store(0)
	m.references.Store(0)
	m.hits.Store(0)
	m.faults.Store(0)
	m.evictions.Store(0)

	m.policyMu.Lock()
	m.policyRuns = make(map[PolicyType]uint64)
	m.policyFaults = make(map[PolicyType]uint64)
	m.policyMu.Unlock()

	m.simulateLatency.Reset()

	m.mu.Lock()
	m.startTime = time.Now()
	m.mu.Unlock()
}
