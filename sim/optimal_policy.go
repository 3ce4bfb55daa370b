package sim

// OptimalPolicy implements Belady's clairvoyant replacement
// It keeps no state of its own: at eviction time it scans the unprocessed
// suffix of the reference sequence and evicts the resident page whose next
// use is farthest away. A page that is never used again is evicted on the
// spot, scanning slots in ascending order.
type OptimalPolicy struct {
}

// NewOptimalPolicy creates a new optimal policy
func NewOptimalPolicy() *OptimalPolicy {
	return &OptimalPolicy{}
}

// Touch is a no-op: the policy consults the future, not the past
func (p *OptimalPolicy) Touch(page int) {
}

// Insert is a no-op
func (p *OptimalPolicy) Insert(page int) {
}

// Victim evicts the resident page with the farthest next occurrence in
// future; the first maximum encountered in slot order wins ties
func (p *OptimalPolicy) Victim(frames FrameSet, future []int) int {
	victimSlot := -1
	victimDistance := -1

	for slot, frame := range frames {
		if !frame.Occupied {
			continue
		}

		distance := nextOccurrence(future, frame.Page)
		if distance < 0 {
			// Never referenced again: no better victim exists
			return slot
		}

		if distance > victimDistance {
			victimSlot = slot
			victimDistance = distance
		}
	}

	return victimSlot
}

// nextOccurrence returns the index of the first occurrence of page in
// refs, or -1 if page never occurs
func nextOccurrence(refs []int, page int) int {
	for i, ref := range refs {
		if ref == page {
			return i
		}
	}
	return -1
}
