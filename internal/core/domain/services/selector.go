package services

import (
	"fmt"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// Strategy selects among the functionally equivalent k-nearest implementations.
// All strategies honor the same contract, so outputs are identical for the
// same input; they differ only in work and auxiliary memory.
type Strategy int

const (
	// StrategyUnknown represents an invalid or undefined strategy.
	// This value (0) helps catch uninitialized Strategy values.
	StrategyUnknown Strategy = iota

	// StrategyFullSort ranks every candidate and sorts; O(n log n).
	StrategyFullSort

	// StrategyBoundedHeap keeps the k best in a max-heap; O(n log k).
	// Production default: best general-purpose complexity.
	StrategyBoundedHeap

	// StrategyTopKArray keeps a sorted array of at most k entries; O(n*k).
	StrategyTopKArray

	// StrategyOrderedSet keeps candidates in an ordered container, evicting
	// the maximum past k; O(n log k).
	StrategyOrderedSet
)

// getStrategyStrings returns a map of Strategy values to their string
// representations, including the invalid zero value.
func getStrategyStrings() map[Strategy]string {
	return map[Strategy]string{
		StrategyUnknown:     "unknown",
		StrategyFullSort:    "full-sort",
		StrategyBoundedHeap: "bounded-heap",
		StrategyTopKArray:   "topk-array",
		StrategyOrderedSet:  "ordered-set",
	}
}

// getValidStrategyStrings returns only the valid strategies, keyed by their
// string representation to support parsing.
func getValidStrategyStrings() map[string]Strategy {
	//nolint:exhaustive // StrategyUnknown is intentionally excluded as it's invalid
	return map[string]Strategy{
		"full-sort":    StrategyFullSort,
		"bounded-heap": StrategyBoundedHeap,
		"topk-array":   StrategyTopKArray,
		"ordered-set":  StrategyOrderedSet,
	}
}

// ParseStrategy resolves a strategy from its string name.
func ParseStrategy(name string) (Strategy, error) {
	if strategy, ok := getValidStrategyStrings()[name]; ok {
		return strategy, nil
	}
	return StrategyUnknown, errs.NewValueIsInvalidErrorWithCause(
		"strategy",
		fmt.Errorf("%q is not a valid strategy name", name),
	)
}

// Validate checks if the Strategy value is valid.
func (s Strategy) Validate() error {
	for _, valid := range getValidStrategyStrings() {
		if s == valid {
			return nil
		}
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"strategy",
		fmt.Errorf("%d is not a valid strategy", s),
	)
}

// String returns the strategy name. It implements fmt.Stringer and is safe to
// call on invalid values.
func (s Strategy) String() string {
	if str, ok := getStrategyStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Selector returns up to k available drivers closest to the pickup location.
//
// Shared contract honored by every implementation:
//   - only drivers with availability = true are candidates
//   - output is ordered ascending by (Manhattan distance, identity); the
//     lexicographic identity tie-break makes outputs byte-identical across
//     strategies for the same input
//   - an empty snapshot or no available drivers yields an empty slice, not an
//     error; k larger than the candidate count yields all candidates
//   - the pickup location is not bounds-checked here — that is the dispatch
//     facade's responsibility
type Selector interface {
	SelectNearest(snapshot []driver.Driver, pickup kernel.Location, k int) ([]driver.Driver, error)
}

// NewSelector creates the Selector implementing the given strategy.
func NewSelector(strategy Strategy) (Selector, error) {
	switch strategy {
	case StrategyFullSort:
		return FullSortSelector{}, nil
	case StrategyBoundedHeap:
		return BoundedHeapSelector{}, nil
	case StrategyTopKArray:
		return TopKArraySelector{}, nil
	case StrategyOrderedSet:
		return OrderedSetSelector{}, nil
	case StrategyUnknown:
		fallthrough
	default:
		return nil, strategy.Validate()
	}
}

// rankedDriver pairs a candidate with its distance to the pickup location so
// strategies rank on a precomputed key.
type rankedDriver struct {
	driver   driver.Driver
	distance int
}

// compareRanked orders by ascending (distance, identity). This is the single
// tie-break rule shared by all strategies.
func compareRanked(a, b rankedDriver) int {
	if a.distance != b.distance {
		return a.distance - b.distance
	}
	switch {
	case a.driver.ID() < b.driver.ID():
		return -1
	case a.driver.ID() > b.driver.ID():
		return 1
	default:
		return 0
	}
}

// rankedLess reports whether a sorts strictly before b.
func rankedLess(a, b rankedDriver) bool {
	return compareRanked(a, b) < 0
}

// validateQuery checks the parameters common to all strategies.
func validateQuery(pickup kernel.Location, k int) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	if k <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("k", fmt.Errorf("%d is not greater than 0", k))
	}
	return nil
}

// collectCandidates applies the availability filter and computes distances.
func collectCandidates(snapshot []driver.Driver, pickup kernel.Location) ([]rankedDriver, error) {
	candidates := make([]rankedDriver, 0, len(snapshot))
	for i := range snapshot {
		if !snapshot[i].IsAvailable() {
			continue
		}

		distance, err := snapshot[i].DistanceTo(pickup)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, rankedDriver{driver: snapshot[i], distance: distance})
	}
	return candidates, nil
}

// unwrapRanked strips the ranking key, preserving order.
func unwrapRanked(ranked []rankedDriver) []driver.Driver {
	drivers := make([]driver.Driver, 0, len(ranked))
	for _, r := range ranked {
		drivers = append(drivers, r.driver)
	}
	return drivers
}
