package services

import (
	"slices"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// TopKArraySelector maintains a sorted array of at most k entries. Each
// candidate is inserted at its sorted position while the array has room;
// afterwards a candidate only displaces the current worst kept entry.
//
// O(n*k) time in the naive form, O(k) auxiliary memory. Acceptable for the
// small k this core is queried with, and branch-predictable in practice.
type TopKArraySelector struct{}

// NewTopKArraySelector creates a TopKArraySelector.
func NewTopKArraySelector() TopKArraySelector {
	return TopKArraySelector{}
}

// SelectNearest implements the Selector contract with incremental sorted
// insertion into a bounded array.
func (TopKArraySelector) SelectNearest(
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

	kept := make([]rankedDriver, 0, min(k, len(candidates)))
	for _, candidate := range candidates {
		if len(kept) == k && !rankedLess(candidate, kept[len(kept)-1]) {
			continue
		}

		at, _ := slices.BinarySearchFunc(kept, candidate, compareRanked)
		kept = slices.Insert(kept, at, candidate)
		if len(kept) > k {
			kept = kept[:k]
		}
	}

	return unwrapRanked(kept), nil
}
