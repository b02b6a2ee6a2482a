package driver

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrIDIsRequired is returned when a driver identity token is empty.
	ErrIDIsRequired = errs.NewValueIsRequiredError("driver id")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrCellOccupied is returned when a mutation targets a cell already held by
	// a different driver.
	ErrCellOccupied = errors.New("cell is occupied by another driver")
)

// ID is the unique identity token of a driver within a registry instance.
// Identity is assigned at registration and never changes; distance ties in
// nearest-driver queries are broken by ascending lexicographic ID.
type ID string

// NewID creates a driver identity from a token. The token must be non-empty.
func NewID(value string) (ID, error) {
	id := ID(value)
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// Validate checks that the identity token is non-empty.
func (id ID) Validate() error {
	if id == "" {
		return ErrIDIsRequired
	}
	return nil
}

// String returns the raw identity token.
func (id ID) String() string {
	return string(id)
}

// Driver represents a mobile agent positioned on the dispatch grid.
//
// A Driver carries its identity, current location, and an availability flag.
// Drivers are created available. The registry owns all live Driver instances:
// it is the only component that mutates position and availability, and it
// hands out value copies in snapshots so no caller can observe or cause a
// mid-query mutation.
//
// Business rules:
//   - Identity must be a non-empty token and never changes
//   - Location must be a properly constructed kernel.Location; grid bounds are
//     enforced by the owning registry, not by the Driver itself
//   - Availability gates participation in nearest-driver selection only; it
//     never affects cell occupancy
type Driver struct {
	// id uniquely identifies the driver
	id ID
	// location is the current cell of the driver on the dispatch grid
	location kernel.Location
	// available reports whether the driver can be matched to orders
	available bool
	// guard ensures the driver was properly constructed
	guard guard.ConstructorGuard
}

// NewDriver creates a Driver at the given location, available for dispatch.
// This is the only way to create a valid Driver instance.
//
// Example:
//
//	loc, _ := kernel.NewLocation(2, 3)
//	id, _ := driver.NewID("D001")
//	d, err := driver.NewDriver(id, loc)
//	if err != nil {
//	    // handle validation error
//	}
func NewDriver(id ID, location kernel.Location) (*Driver, error) {
	d := &Driver{
		available: true,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(d.setID(id), d.setLocation(location)); err != nil {
		return nil, err
	}

	return d, nil
}

// Validate ensures the Driver was properly constructed via NewDriver.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// ID returns the driver's identity token.
func (d *Driver) ID() ID {
	return d.id
}

// Location returns the driver's current cell.
func (d *Driver) Location() kernel.Location {
	return d.location
}

// IsAvailable reports whether the driver participates in dispatch queries.
func (d *Driver) IsAvailable() bool {
	return d.available
}

// IsEqual compares two drivers by identity.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id == other.id
}

// DistanceTo calculates the Manhattan distance from the driver's current cell
// to the target location.
func (d *Driver) DistanceTo(target kernel.Location) (int, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	return d.location.Distance(target)
}

// Relocate moves the driver to the target cell. The target must be a properly
// constructed location; grid bounds and cell occupancy are checked by the
// owning registry before it commits the move.
func (d *Driver) Relocate(target kernel.Location) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return d.setLocation(target)
}

// SetAvailability updates the availability flag. It never touches occupancy.
func (d *Driver) SetAvailability(available bool) error {
	if err := d.Validate(); err != nil {
		return err
	}

	d.available = available
	return nil
}

// setID validates and sets the driver's identity.
// Private setter used only during construction.
func (d *Driver) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

// setLocation validates and sets the driver's location.
func (d *Driver) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = location
	return nil
}
