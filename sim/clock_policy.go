package sim

// ClockPolicy implements second-chance (CLOCK) replacement
// The arrival queue doubles as a circular candidate list. A page whose
// reference bit is set gets a second chance: the bit is cleared and the
// page moves to the back of the queue. The scan always terminates because
// a bit cleared on one pass stays clear until the page is hit again, so at
// most every resident page is rotated once before a victim is found.
type ClockPolicy struct {
	queue  []int        // resident pages, oldest first
	refBit map[int]bool // resident page -> reference bit
}

// NewClockPolicy creates a new second-chance policy
func NewClockPolicy() *ClockPolicy {
	return &ClockPolicy{
		queue:  make([]int, 0),
		refBit: make(map[int]bool),
	}
}

// Touch sets the page's reference bit
func (p *ClockPolicy) Touch(page int) {
	p.refBit[page] = true
}

// Insert pushes the page to the back of the queue with its bit clear
func (p *ClockPolicy) Insert(page int) {
	p.queue = append(p.queue, page)
	p.refBit[page] = false
}

// Victim scans from the front of the queue until a page with a clear
// reference bit is found, granting second chances along the way
func (p *ClockPolicy) Victim(frames FrameSet, future []int) int {
	for {
		candidate := p.queue[0]

		if p.refBit[candidate] {
			// Second chance: clear the bit, rotate to the back
			p.refBit[candidate] = false
			p.queue = append(p.queue[1:], candidate)
			continue
		}

		p.queue = p.queue[1:]
		delete(p.refBit, candidate)
		return frames.indexOf(candidate)
	}
}
