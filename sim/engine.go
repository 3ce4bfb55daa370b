package sim

import (
	"log/slog"
	"math/rand"
	"os"
	"time"
)

// Frame is a single memory slot holding at most one resident page
type Frame struct {
	Page     int  // resident page identifier, meaningful only when Occupied
	Occupied bool // whether the slot holds a page
}

// FrameSet is the fixed-size set of frames for one simulation run
// Its length never changes after initialization.
type FrameSet []Frame

// newFrameSet creates frameCount empty frames
func newFrameSet(frameCount int) FrameSet {
	return make(FrameSet, frameCount)
}

// indexOf returns the slot holding page, or -1 if page is not resident
func (f FrameSet) indexOf(page int) int {
	for slot, frame := range f {
		if frame.Occupied && frame.Page == page {
			return slot
		}
	}
	return -1
}

// firstFree returns the lowest-index empty slot, or -1 if all are occupied
func (f FrameSet) firstFree() int {
	for slot, frame := range f {
		if !frame.Occupied {
			return slot
		}
	}
	return -1
}

// snapshot returns an independent copy of the frame contents
func (f FrameSet) snapshot() []Frame {
	out := make([]Frame, len(f))
	copy(out, f)
	return out
}

// Step records the outcome of a single page reference
type Step struct {
	Index    int     // position in the reference sequence
	Page     int     // the referenced page
	Frames   []Frame // frame contents after the reference was resolved
	Fault    bool    // whether the reference missed
	Evicted  int     // the page evicted on this step, valid only if DidEvict
	DidEvict bool    // whether an eviction happened
}

// SimulationResult holds the complete trace of one simulation run
// It is immutable once Simulate returns.
type SimulationResult struct {
	Policy     PolicyType
	FrameCount int
	References []int
	Steps      []Step
	Faults     int
	Hits       int
}

// FaultRate returns faults as a fraction of total references (0 for an
// empty sequence)
func (r *SimulationResult) FaultRate() float64 {
	if len(r.References) == 0 {
		return 0.0
	}
	return float64(r.Faults) / float64(len(r.References))
}

// Engine runs page replacement simulations
// Each Simulate call is an independent fold over the reference sequence;
// the engine itself only carries the random source, logger and metrics.
type Engine struct {
	rng     *rand.Rand
	logger  *slog.Logger
	metrics *Metrics
}

// NewEngine creates an engine from the given configuration
// A nil config uses DefaultConfig.
func NewEngine(config *Config) (*Engine, error) {
	if config == nil {
		config = DefaultConfig()
	}

	if err := config.Validate(); err != nil {
		return nil, NewSimError(ErrCodeInvalidConfig, "NewEngine", "invalid configuration", err)
	}

	engine := &Engine{
		rng:    rand.New(rand.NewSource(config.Seed)),
		logger: newLogger(config.LogLevel),
	}

	if config.EnableMetrics {
		engine.metrics = NewMetrics()
	}

	return engine, nil
}

// Metrics returns the cumulative engine metrics, or nil if disabled
func (e *Engine) Metrics() *Metrics {
	return e.metrics
}

// Simulate replays the reference sequence against frameCount frames under
// the given policy and returns the full step-by-step history
//
// Inputs are validated up front; once the run starts no error can occur.
func (e *Engine) Simulate(policyType PolicyType, frameCount int, references []int) (*SimulationResult, error) {
	const op = "Simulate"

	if frameCount < 1 {
		return nil, ErrInvalidFrameCount(op, frameCount)
	}

	policy, err := NewPolicy(policyType, e.rng)
	if err != nil {
		return nil, err
	}

	start := time.Now()

	frames := newFrameSet(frameCount)
	result := &SimulationResult{
		Policy:     policyType,
		FrameCount: frameCount,
		References: references,
		Steps:      make([]Step, 0, len(references)),
	}

	for i, page := range references {
		step := Step{Index: i, Page: page}

		if slot := frames.indexOf(page); slot >= 0 {
			// Hit: the page stays where it is
			policy.Touch(page)
		} else {
			step.Fault = true
			result.Faults++

			slot := frames.firstFree()
			if slot < 0 {
				// All frames occupied: the policy picks a victim
				slot = policy.Victim(frames, references[i+1:])
				step.Evicted = frames[slot].Page
				step.DidEvict = true
			}

			frames[slot] = Frame{Page: page, Occupied: true}
			policy.Insert(page)
		}

		step.Frames = frames.snapshot()
		result.Steps = append(result.Steps, step)
	}

	result.Hits = len(references) - result.Faults

	if e.metrics != nil {
		e.metrics.RecordSimulation(result, time.Since(start))
	}

	e.logger.Debug("simulation complete",
		slog.String("policy", string(policyType)),
		slog.Int("frames", frameCount),
		slog.Int("references", len(references)),
		slog.Int("faults", result.Faults),
		slog.Int("hits", result.Hits),
	)

	return result, nil
}

// newLogger builds a stderr text logger at the given level
func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
}
