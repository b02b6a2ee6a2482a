package services

import (
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// DefaultK is the result size for multi-driver queries when the caller does
// not specify one.
const DefaultK = 5

// DriverSource supplies the dispatcher with point-in-time fleet state.
// The registry implements it; tests may substitute fixed snapshots.
type DriverSource interface {
	// Snapshot returns value copies of all drivers, detached from live state.
	Snapshot() []driver.Driver
	// Grid returns the bounded grid driver locations live on.
	Grid() kernel.Grid
}

// Dispatcher is the domain service answering nearest-driver queries for
// incoming orders. It composes the driver source with the selector strategy
// family.
//
// Responsibilities:
//   - rejecting pickup locations outside the grid before any selection runs
//   - re-reading a fresh snapshot for every query, so results always reflect
//     the registry state at query time and never a cached view
//   - delegating ranking to the requested strategy
//
// The dispatcher never mutates driver state.
type Dispatcher struct {
	source          DriverSource
	defaultStrategy Strategy
}

// NewDispatcher creates a Dispatcher reading from the given source.
// defaultStrategy is used by FindNearest and whenever a query passes
// StrategyUnknown.
func NewDispatcher(source DriverSource, defaultStrategy Strategy) (*Dispatcher, error) {
	if source == nil {
		return nil, errs.NewValueIsRequiredError("source")
	}
	if err := defaultStrategy.Validate(); err != nil {
		return nil, err
	}

	return &Dispatcher{
		source:          source,
		defaultStrategy: defaultStrategy,
	}, nil
}

// FindNearest returns the single closest available driver to the order's
// pickup location. The boolean reports whether a match exists; no available
// drivers is a valid outcome, not an error.
func (d *Dispatcher) FindNearest(o *order.Order) (driver.Driver, bool, error) {
	drivers, err := d.FindKNearest(o, 1, d.defaultStrategy)
	if err != nil {
		return driver.Driver{}, false, err
	}
	if len(drivers) == 0 {
		return driver.Driver{}, false, nil
	}
	return drivers[0], true, nil
}

// FindKNearest returns up to k available drivers closest to the order's pickup
// location, ascending by (distance, identity). Passing StrategyUnknown selects
// the dispatcher's default strategy.
//
// A pickup location outside the grid fails with ErrValueIsOutOfRange before
// the selector runs; an empty result is a valid success distinguishing
// "no match" from "invalid input".
func (d *Dispatcher) FindKNearest(o *order.Order, k int, strategy Strategy) ([]driver.Driver, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	pickup := o.Pickup()
	if err := d.source.Grid().CheckBounds(pickup); err != nil {
		return nil, err
	}

	if strategy == StrategyUnknown {
		strategy = d.defaultStrategy
	}
	selector, err := NewSelector(strategy)
	if err != nil {
		return nil, err
	}

	return selector.SelectNearest(d.source.Snapshot(), pickup, k)
}
