package sim

// FIFOPolicy implements FIFO (First In First Out) replacement
// Pages are evicted in arrival order regardless of how often they are hit.
type FIFOPolicy struct {
	queue []int // resident pages, oldest first
}

// NewFIFOPolicy creates a new FIFO policy
func NewFIFOPolicy() *FIFOPolicy {
	return &FIFOPolicy{
		queue: make([]int, 0),
	}
}

// Touch is a no-op: hits do not change arrival order
func (p *FIFOPolicy) Touch(page int) {
}

// Insert pushes the page to the back of the arrival queue
func (p *FIFOPolicy) Insert(page int) {
	p.queue = append(p.queue, page)
}

// Victim evicts the page at the front of the arrival queue
func (p *FIFOPolicy) Victim(frames FrameSet, future []int) int {
	victim := p.queue[0]
	p.queue = p.queue[1:]
	return frames.indexOf(victim)
}
