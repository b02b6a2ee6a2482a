package services

import (
	"container/heap"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// BoundedHeapSelector keeps the k best candidates seen so far in a max-heap
// whose root is the worst kept entry. A candidate either replaces the root
// (when it beats it) or is discarded, so the heap never exceeds k entries.
//
// O(n log k) time, O(k) auxiliary memory. This is the production default
// strategy: it degrades gracefully for both small k and large n.
type BoundedHeapSelector struct{}

// NewBoundedHeapSelector creates a BoundedHeapSelector.
func NewBoundedHeapSelector() BoundedHeapSelector {
	return BoundedHeapSelector{}
}

// SelectNearest implements the Selector contract with a size-bounded max-heap.
func (BoundedHeapSelector) SelectNearest(
	snapshot []driver.Driver,
	pickup kernel.Location,
	k int,
) ([]driver.Driver, error) {
	if err := validateQuery(pickup, k); err != nil {
		return nil, err
	}

	candidates, err := collectCandidates(snapshot, pickup)
	if err != nil {
		return nil, err
	}

	worst := &worstFirstHeap{}
	for _, candidate := range candidates {
		if worst.Len() < k {
			heap.Push(worst, candidate)
			continue
		}
		if rankedLess(candidate, (*worst)[0]) {
			(*worst)[0] = candidate
			heap.Fix(worst, 0)
		}
	}

	// Popping the max-heap yields worst-first; fill the result back to front.
	result := make([]rankedDriver, worst.Len())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = heap.Pop(worst).(rankedDriver)
	}
	return unwrapRanked(result), nil
}

// worstFirstHeap is a max-heap over the (distance, identity) ranking key:
// the root is the entry that would be evicted first.
type worstFirstHeap []rankedDriver

func (h worstFirstHeap) Len() int { return len(h) }

func (h worstFirstHeap) Less(i, j int) bool { return rankedLess(h[j], h[i]) }

func (h worstFirstHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *worstFirstHeap) Push(x any) {
	*h = append(*h, x.(rankedDriver))
}

func (h *worstFirstHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
