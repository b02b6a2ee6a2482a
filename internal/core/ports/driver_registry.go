// Package ports defines the contracts between the dispatch core and its
// adapters, enabling dependency inversion and testability.
package ports

import (
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
)

// DriverRegistry is the authoritative store of drivers positioned on a bounded
// grid. Implementations maintain two coordinated indices — identity to driver,
// and cell to occupant — and guarantee the following invariants after every
// successful mutation:
//
//   - every registered driver occupies exactly one cell, and that cell points
//     back to the driver's identity
//   - no two drivers occupy the same cell
//   - every occupied cell corresponds to exactly one live driver
//   - all stored locations lie within the registry's grid
//
// Mutations are serialized with respect to each other and to Snapshot, and are
// validate-then-commit: a failed operation leaves both indices untouched.
//
// Failures are reported as discriminated errors checked with errors.Is:
// errs.ErrObjectAlreadyExists, errs.ErrObjectNotFound, errs.ErrValueIsOutOfRange,
// and driver.ErrCellOccupied.
type DriverRegistry interface {
	// Add registers a new driver at the given cell, available for dispatch.
	// Fails with ErrObjectAlreadyExists for a duplicate identity,
	// ErrValueIsOutOfRange for a location outside the grid, and
	// ErrCellOccupied when the target cell is held by a different driver.
	Add(id driver.ID, location kernel.Location) error

	// Relocate atomically moves a driver to the target cell.
	// Fails with ErrObjectNotFound for an unknown identity,
	// ErrValueIsOutOfRange for a target outside the grid, and
	// ErrCellOccupied when the target cell is held by a different driver;
	// on failure the driver's position and the occupancy index are unchanged.
	// Relocating a driver to its current cell is a no-op success.
	Relocate(id driver.ID, target kernel.Location) error

	// SetAvailability updates a driver's availability flag only; occupancy is
	// never touched. Fails with ErrObjectNotFound for an unknown identity.
	SetAvailability(id driver.ID, available bool) error

	// Remove frees the driver's cell and deletes the identity entry.
	// Fails with ErrObjectNotFound for an unknown identity.
	Remove(id driver.ID) error

	// Snapshot returns value copies of all registered drivers in stable
	// registration order. Callers own the returned slice; subsequent registry
	// mutations are never observable through it.
	Snapshot() []driver.Driver

	// Contains reports whether a driver with the given identity is registered.
	Contains(id driver.ID) bool

	// Count returns the number of registered drivers.
	Count() int

	// OccupantAt returns the identity of the driver holding the given cell.
	OccupantAt(location kernel.Location) (driver.ID, bool)

	// Grid returns the bounded grid the registry operates on.
	Grid() kernel.Grid
}
