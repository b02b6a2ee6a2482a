// Package guard implements the constructor-guard pattern used by value objects
// and aggregates across the dispatch domain. Embedding a ConstructorGuard in a
// struct makes zero-value instances detectable, so objects that bypassed their
// constructor fail validation instead of carrying unchecked state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks whether an object was created through its designated
// constructor. The zero value reports the object as not constructed.
//
// Example:
//
//	type Grid struct {
//	    width  int
//	    height int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewGrid(width, height int) (Grid, error) {
//	    // validate inputs ...
//	    return Grid{width: width, height: height, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (g Grid) Validate() error {
//	    return g.guard.Validate(ErrGridIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as properly
// constructed. Call it in every constructor of a guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was built through its constructor.
// For zero-value objects it returns validationError, falling back to
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
