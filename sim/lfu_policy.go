package sim

// LFUPolicy implements LFU (Least Frequently Used) replacement
// Every resident page carries an access count; the page with the lowest
// count is evicted. Ties are broken by the lowest frame slot index, which
// keeps traces reproducible.
type LFUPolicy struct {
	freq map[int]int // resident page -> access count
}

// NewLFUPolicy creates a new LFU policy
func NewLFUPolicy() *LFUPolicy {
	return &LFUPolicy{
		freq: make(map[int]int),
	}
}

// Touch increments the page's access count
func (p *LFUPolicy) Touch(page int) {
	p.freq[page]++
}

// Insert starts the page's access count at 1
func (p *LFUPolicy) Insert(page int) {
	p.freq[page] = 1
}

// Victim evicts the resident page with the minimum access count,
// scanning frame slots in ascending order so the first minimum wins
func (p *LFUPolicy) Victim(frames FrameSet, future []int) int {
	victimSlot := -1
	victimFreq := 0

	for slot, frame := range frames {
		if !frame.Occupied {
			continue
		}

		// Untracked pages default to a count of 0
		count := p.freq[frame.Page]

		if victimSlot == -1 || count < victimFreq {
			victimSlot = slot
			victimFreq = count
		}
	}

	delete(p.freq, frames[victimSlot].Page)
	return victimSlot
}
