package kernel

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Coordinate represents a single axis position on the dispatch grid.
// Valid coordinates are non-negative; the upper bound is owned by Grid.
type Coordinate int

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created via NewLocation or NewRandomLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or NewRandomLocation constructors")

// Location represents a point on the dispatch grid.
// Location is an immutable value object; the zero value is invalid and fails
// validation, so instances must be created through the constructors.
//
// Location itself only guarantees non-negative coordinates. Whether a location
// fits a particular grid is decided by Grid.CheckBounds, because grid
// dimensions are fixed per registry instance, not globally.
type Location struct { //nolint:recvcheck //using for validation
	x     Coordinate
	y     Coordinate
	guard guard.ConstructorGuard
}

// NewLocation creates a Location with the specified coordinates.
// Both coordinates must be non-negative.
//
// Example:
//
//	loc, err := kernel.NewLocation(2, 3)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(loc) // Output: Location(2,3)
func NewLocation(x Coordinate, y Coordinate) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setX(x), loc.setY(y)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// NewRandomLocation creates a Location uniformly distributed over the cells of
// the given grid. Useful for simulation jobs and tests.
func NewRandomLocation(grid Grid) (Location, error) {
	if err := grid.Validate(); err != nil {
		return Location{}, err
	}

	x := Coordinate(rand.IntN(int(grid.Width())))  //nolint:gosec // simulation randomness
	y := Coordinate(rand.IntN(int(grid.Height()))) //nolint:gosec // simulation randomness
	return NewLocation(x, y)
}

// Validate checks if the Location was properly constructed via a constructor.
// Returns ErrLocationIsNotConstructed for zero-value instances.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// X returns the X coordinate of the location.
func (l Location) X() Coordinate {
	return l.x
}

// Y returns the Y coordinate of the location.
func (l Location) Y() Coordinate {
	return l.y
}

// String returns the representation "Location(x,y)".
// It implements the fmt.Stringer interface.
func (l Location) String() string {
	return fmt.Sprintf("Location(%d,%d)", l.x, l.y)
}

// IsEqual compares two locations component-wise.
// Both locations must be properly constructed for the comparison to succeed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// Distance calculates the Manhattan distance between two locations:
// |x1-x2| + |y1-y2|. This is the shortest path length when movement is
// restricted to horizontal and vertical steps.
// Both locations must be properly constructed for the calculation to succeed.
//
// Example:
//
//	a, _ := kernel.NewLocation(2, 3)
//	b, _ := kernel.NewLocation(4, 5)
//	d, _ := a.Distance(b) // d = 4
func (l Location) Distance(other Location) (int, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dx := abs(l.x - other.x)
	dy := abs(l.y - other.y)
	return int(dx + dy), nil
}

// setX sets the x coordinate with validation.
// Pointer receiver on a value-semantics type: private setters self-encapsulate
// validation during construction, mirroring the constructor-guard pattern.
func (l *Location) setX(x Coordinate) error {
	if x < 0 {
		return errs.NewValueIsInvalidErrorWithCause("x", fmt.Errorf("%d is negative", x))
	}

	l.x = x
	return nil
}

// setY sets the y coordinate with validation.
func (l *Location) setY(y Coordinate) error {
	if y < 0 {
		return errs.NewValueIsInvalidErrorWithCause("y", fmt.Errorf("%d is negative", y))
	}

	l.y = y
	return nil
}

func abs(x Coordinate) Coordinate {
	if x < 0 {
		return -x
	}
	return x
}
