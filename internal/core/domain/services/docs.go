// Package services contains the domain services of the dispatch core: the
// k-nearest selector strategy family and the Dispatcher facade composing a
// driver source with a selection strategy.
//
// The four selector strategies (full sort, bounded heap, incremental top-k
// array, bounded ordered set) are functionally equivalent: they share one
// contract and one (distance, identity) tie-break rule, so a conformance test
// can assert exact list equality between any two of them. They differ only in
// asymptotic work and auxiliary memory.
package services
