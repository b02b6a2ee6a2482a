// Package kernel provides core domain primitives for the dispatch system.
// It implements the fundamental building blocks shared by the domain model.
//
// The package includes:
//   - Location: a value object for a point on the dispatch grid, with Manhattan distance
//   - Grid: a value object fixing the bounded rectangle a registry operates on
//   - UUID: a value object for unique identifiers with validation and comparison
//
// These primitives enforce domain invariants through validating constructors
// and the constructor-guard pattern, ensuring domain objects are always in a
// valid state. They are immutable and safe for concurrent use.
package kernel
