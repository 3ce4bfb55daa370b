package sim

import (
	"testing"
)

// TestLFUVictimMinFrequency tests that the least frequently used page loses
func TestLFUVictimMinFrequency(t *testing.T) {
	policy := NewLFUPolicy()
	frames := occupiedFrames(1, 2, 3)

	policy.Insert(1)
	policy.Insert(2)
	policy.Insert(3)

	// Counts: 1 -> 3, 2 -> 1, 3 -> 2
	policy.Touch(1)
	policy.Touch(1)
	policy.Touch(3)

	slot := policy.Victim(frames, nil)
	if frames[slot].Page != 2 {
		t.Errorf("Expected victim 2 (lowest count), got %d", frames[slot].Page)
	}
}

// TestLFUTieBreakLowestSlot tests that frequency ties break toward the
// lowest frame slot index
func TestLFUTieBreakLowestSlot(t *testing.T) {
	policy := NewLFUPolicy()
	frames := occupiedFrames(5, 6, 7)

	policy.Insert(5)
	policy.Insert(6)
	policy.Insert(7)

	// Pages 5 and 6 tie at count 2; page 7 is safe at 3
	policy.Touch(5)
	policy.Touch(6)
	policy.Touch(7)
	policy.Touch(7)

	slot := policy.Victim(frames, nil)
	if slot != 0 {
		t.Errorf("Expected slot 0 to win the tie, got %d", slot)
	}
	if frames[slot].Page != 5 {
		t.Errorf("Expected victim 5, got %d", frames[slot].Page)
	}
}

// TestLFUAllTied tests a full tie: the first slot is evicted
func TestLFUAllTied(t *testing.T) {
	policy := NewLFUPolicy()
	frames := occupiedFrames(9, 8, 7, 6)

	for _, page := range []int{9, 8, 7, 6} {
		policy.Insert(page)
	}

	slot := policy.Victim(frames, nil)
	if slot != 0 {
		t.Errorf("Expected slot 0 on a full tie, got %d", slot)
	}
}

// TestLFUVictimDropsCount tests that eviction forgets the victim's count
func TestLFUVictimDropsCount(t *testing.T) {
	policy := NewLFUPolicy()
	frames := occupiedFrames(1, 2)

	policy.Insert(1)
	policy.Insert(2)
	policy.Touch(1)
	policy.Touch(1)

	// Evict 2, re-insert it: its count restarts at 1
	slot := policy.Victim(frames, nil)
	if frames[slot].Page != 2 {
		t.Fatalf("Expected victim 2, got %d", frames[slot].Page)
	}
	frames[slot] = Frame{Page: 2, Occupied: true}
	policy.Insert(2)

	slot = policy.Victim(frames, nil)
	if frames[slot].Page != 2 {
		t.Errorf("Expected re-inserted 2 to lose with count 1, got %d", frames[slot].Page)
	}
}

// TestLFUUntrackedDefaultsToZero tests that a resident page without a
// tracked count is treated as count 0
func TestLFUUntrackedDefaultsToZero(t *testing.T) {
	policy := NewLFUPolicy()
	frames := occupiedFrames(1, 2)

	// Only page 1 is tracked
	policy.Insert(1)

	slot := policy.Victim(frames, nil)
	if frames[slot].Page != 2 {
		t.Errorf("Expected untracked page 2 to lose, got %d", frames[slot].Page)
	}
}
