package sim

import (
	"container/list"
)

// LRUNode represents a node in the LRU recency list
type LRUNode struct {
	page int
}

// LRUPolicy implements LRU (Least Recently Used) replacement
// The recency list holds resident pages with the least recently used page
// at the front and the most recently used page at the back.
type LRUPolicy struct {
	lruList *list.List
	lruMap  map[int]*list.Element
}

// NewLRUPolicy creates a new LRU policy
func NewLRUPolicy() *LRUPolicy {
	return &LRUPolicy{
		lruList: list.New(),
		lruMap:  make(map[int]*list.Element),
	}
}

// Touch moves the page to the most-recently-used end of the list
func (p *LRUPolicy) Touch(page int) {
	if elem, exists := p.lruMap[page]; exists {
		p.lruList.MoveToBack(elem)
	}
}

// Insert adds the page at the most-recently-used end of the list
func (p *LRUPolicy) Insert(page int) {
	node := &LRUNode{page: page}
	elem := p.lruList.PushBack(node)
	p.lruMap[page] = elem
}

// Victim evicts the page at the least-recently-used end of the list
func (p *LRUPolicy) Victim(frames FrameSet, future []int) int {
	oldest := p.lruList.Front()
	node := oldest.Value.(*LRUNode)

	// Remove from both list and map
	p.lruList.Remove(oldest)
	delete(p.lruMap, node.page)

	return frames.indexOf(node.page)
}
