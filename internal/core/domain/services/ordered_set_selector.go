package services

import (
	"github.com/google/btree"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// btreeDegree keeps nodes small; the tree never holds more than k+1 entries.
const btreeDegree = 4

// OrderedSetSelector inserts every candidate into an ordered set keyed by
// (distance, identity) and evicts the current maximum whenever the set grows
// past k, so an in-order walk of the survivors is the ranked result.
//
// O(n log k) time, O(k) auxiliary memory. Equivalent in complexity to the
// bounded heap with higher constants; kept because the ordered container reads
// its result off without a final sort.
type OrderedSetSelector struct{}

// NewOrderedSetSelector creates an OrderedSetSelector.
func NewOrderedSetSelector() OrderedSetSelector {
	return OrderedSetSelector{}
}

// SelectNearest implements the Selector contract with a bounded B-tree.
func (OrderedSetSelector) SelectNearest(
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

	// Identities are unique within a snapshot, so (distance, identity) is a
	// strict total order and ReplaceOrInsert never actually replaces.
	tree := btree.NewG(btreeDegree, rankedLess)
	for _, candidate := range candidates {
		tree.ReplaceOrInsert(candidate)
		if tree.Len() > k {
			tree.DeleteMax()
		}
	}

	result := make([]rankedDriver, 0, tree.Len())
	tree.Ascend(func(item rankedDriver) bool {
		result = append(result, item)
		return true
	})
	return unwrapRanked(result), nil
}
