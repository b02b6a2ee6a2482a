package services

import (
	"slices"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// FullSortSelector ranks every available candidate and sorts the whole list
// before taking the first k.
//
// O(n log n) time, O(n) auxiliary memory. The simplest strategy; it pays for
// ordering candidates that can never make the result, which the bounded
// strategies avoid.
type FullSortSelector struct{}

// NewFullSortSelector creates a FullSortSelector.
func NewFullSortSelector() FullSortSelector {
	return FullSortSelector{}
}

// SelectNearest implements the Selector contract by sorting all candidates
// ascending by (distance, identity) and truncating to k.
func (FullSortSelector) SelectNearest(
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

	slices.SortFunc(candidates, compareRanked)

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return unwrapRanked(candidates), nil
}
