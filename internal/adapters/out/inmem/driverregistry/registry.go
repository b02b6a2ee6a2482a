// Package driverregistry provides the in-memory implementation of
// ports.DriverRegistry.
//
// The registry keeps two coordinated indices: an identity index mapping each
// driver ID to its aggregate, and an occupancy index mapping each grid cell to
// the identity of the driver holding it. Every mutation is validate-then-commit
// under an exclusive lock, so a failed operation never leaves the indices out
// of sync, and readers always observe a state where the two indices form an
// exact one-to-one correspondence.
//
// State lives only in process memory; restarting the process starts from an
// empty fleet.
package driverregistry

import (
	"fmt"
	"slices"
	"sync"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

// cell is the occupancy index key for a single grid position.
type cell struct {
	x kernel.Coordinate
	y kernel.Coordinate
}

func cellOf(location kernel.Location) cell {
	return cell{x: location.X(), y: location.Y()}
}

// Registry is the in-memory driver registry. It implements
// ports.DriverRegistry and services.DriverSource.
//
// Concurrency model: a single RWMutex serializes mutations against each other
// and against snapshot acquisition. Reads take the shared lock; all critical
// sections are bounded by the number of registered drivers.
type Registry struct {
	mu sync.RWMutex

	grid kernel.Grid
	// byID is the identity index owning all live Driver instances.
	byID map[driver.ID]*driver.Driver
	// occupancy maps each occupied cell to the identity of its holder.
	occupancy map[cell]driver.ID
	// ordered keeps registration order so snapshots are stable across calls.
	ordered []driver.ID
}

// New creates an empty registry operating on the given grid.
func New(grid kernel.Grid) (*Registry, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	return &Registry{
		grid:      grid,
		byID:      make(map[driver.ID]*driver.Driver),
		occupancy: make(map[cell]driver.ID),
	}, nil
}

// Add registers a new driver at the given cell, available for dispatch.
// Validate phase: identity must be new, the location inside the grid, and the
// target cell free. Only then is the driver created and both indices updated.
func (r *Registry) Add(id driver.ID, location kernel.Location) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; exists {
		return errs.NewObjectAlreadyExistsError("driverID", id.String())
	}

	if err := r.grid.CheckBounds(location); err != nil {
		return err
	}

	key := cellOf(location)
	if occupant, taken := r.occupancy[key]; taken {
		return fmt.Errorf("%s is held by %q: %w", location, occupant, driver.ErrCellOccupied)
	}

	d, err := driver.NewDriver(id, location)
	if err != nil {
		return err
	}

	r.byID[id] = d
	r.occupancy[key] = id
	r.ordered = append(r.ordered, id)
	return nil
}

// Relocate atomically moves a driver to the target cell.
// All checks run before any state changes, so a CellOccupied or bounds failure
// leaves the driver's position and the occupancy index exactly as they were.
// Relocating to the driver's current cell is a no-op success.
func (r *Registry) Relocate(id driver.ID, target kernel.Location) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, exists := r.byID[id]
	if !exists {
		return errs.NewObjectNotFoundError("driverID", id.String())
	}

	if err := r.grid.CheckBounds(target); err != nil {
		return err
	}

	from := cellOf(d.Location())
	to := cellOf(target)
	if from == to {
		return nil
	}

	if occupant, taken := r.occupancy[to]; taken && occupant != id {
		return fmt.Errorf("%s is held by %q: %w", target, occupant, driver.ErrCellOccupied)
	}

	// Commit phase. The aggregate is updated first: its own validation can no
	// longer fail here because bounds were checked above, but keeping the
	// ordering means an unexpected error still leaves occupancy untouched.
	if err := d.Relocate(target); err != nil {
		return err
	}

	delete(r.occupancy, from)
	r.occupancy[to] = id
	return nil
}

// SetAvailability updates a driver's availability flag. Occupancy is never touched.
func (r *Registry) SetAvailability(id driver.ID, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, exists := r.byID[id]
	if !exists {
		return errs.NewObjectNotFoundError("driverID", id.String())
	}

	return d.SetAvailability(available)
}

// Remove frees the driver's cell and deletes the identity entry.
func (r *Registry) Remove(id driver.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, exists := r.byID[id]
	if !exists {
		return errs.NewObjectNotFoundError("driverID", id.String())
	}

	delete(r.occupancy, cellOf(d.Location()))
	delete(r.byID, id)
	r.ordered = slices.DeleteFunc(r.ordered, func(other driver.ID) bool {
		return other == id
	})
	return nil
}

// Snapshot returns value copies of all drivers in registration order.
// The copies are detached from registry state: selectors rank them without
// holding the lock, and later mutations are never observable through them.
func (r *Registry) Snapshot() []driver.Driver {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]driver.Driver, 0, len(r.ordered))
	for _, id := range r.ordered {
		snapshot = append(snapshot, *r.byID[id])
	}
	return snapshot
}

// Contains reports whether a driver with the given identity is registered.
func (r *Registry) Contains(id driver.ID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.byID[id]
	return exists
}

// Count returns the number of registered drivers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID)
}

// OccupantAt returns the identity of the driver holding the given cell.
func (r *Registry) OccupantAt(location kernel.Location) (driver.ID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, occupied := r.occupancy[cellOf(location)]
	return id, occupied
}

// Grid returns the bounded grid the registry operates on.
func (r *Registry) Grid() kernel.Grid {
	return r.grid
}
