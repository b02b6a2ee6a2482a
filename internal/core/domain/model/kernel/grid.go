package kernel

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrGridIsNotConstructed is returned when attempting to use an improperly
// initialized Grid. Grids must be created via the NewGrid constructor.
var ErrGridIsNotConstructed = errs.NewValueIsRequiredError(
	"grid must be created via NewGrid constructor")

// Grid represents the bounded rectangle of cells a driver registry operates on.
// Dimensions are fixed at construction; valid cell coordinates are the
// half-open ranges [0, width) and [0, height).
//
// Grid is an immutable value object. The zero value is invalid and fails
// validation.
type Grid struct { //nolint:recvcheck //using for validation
	width  Coordinate
	height Coordinate
	guard  guard.ConstructorGuard
}

// NewGrid creates a Grid with the specified dimensions.
// Both width and height must be positive.
//
// Example:
//
//	grid, err := kernel.NewGrid(10, 10)
//	if err != nil {
//	    // handle validation error
//	}
func NewGrid(width Coordinate, height Coordinate) (Grid, error) {
	grid := Grid{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(grid.setWidth(width), grid.setHeight(height)); err != nil {
		return Grid{}, err
	}

	return grid, nil
}

// Validate checks if the Grid was properly constructed via NewGrid.
func (g Grid) Validate() error {
	return g.guard.Validate(ErrGridIsNotConstructed)
}

// Width returns the number of cells along the X axis.
func (g Grid) Width() Coordinate {
	return g.width
}

// Height returns the number of cells along the Y axis.
func (g Grid) Height() Coordinate {
	return g.height
}

// String returns the representation "Grid(WxH)".
func (g Grid) String() string {
	return fmt.Sprintf("Grid(%dx%d)", g.width, g.height)
}

// CheckBounds reports whether the location lies inside the grid.
// Returns nil when 0 <= x < width and 0 <= y < height, and a
// ValueIsOutOfRangeError naming the offending axis otherwise.
func (g Grid) CheckBounds(location Location) error {
	if err := errors.Join(g.Validate(), location.Validate()); err != nil {
		return err
	}

	if location.X() >= g.width {
		return errs.NewValueIsOutOfRangeError("x", location.X(), 0, g.width-1)
	}
	if location.Y() >= g.height {
		return errs.NewValueIsOutOfRangeError("y", location.Y(), 0, g.height-1)
	}

	return nil
}

// Contains is a boolean convenience over CheckBounds.
// An error is returned only when the grid or location is not constructed.
func (g Grid) Contains(location Location) (bool, error) {
	err := g.CheckBounds(location)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, errs.ErrValueIsOutOfRange) {
		return false, nil
	}
	return false, err
}

// setWidth sets the grid width with validation.
func (g *Grid) setWidth(width Coordinate) error {
	if width <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("width", fmt.Errorf("%d is not greater than 0", width))
	}

	g.width = width
	return nil
}

// setHeight sets the grid height with validation.
func (g *Grid) setHeight(height Coordinate) error {
	if height <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("height", fmt.Errorf("%d is not greater than 0", height))
	}

	g.height = height
	return nil
}
