package queries

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrFindNearestDriversQueryIsNotConstructed = errors.New(
	"FindNearestDriversQuery must be created via NewFindNearestDriversQuery constructor",
)

// FindNearestDriversQuery retrieves up to k available drivers closest to a
// pickup location, ordered ascending by Manhattan distance with ties broken by
// driver identity. Strategy selects the ranking implementation; pass
// services.StrategyUnknown to use the dispatcher's default.
//
// Example:
//
//	pickup, _ := kernel.NewLocation(4, 5)
//	query, err := NewFindNearestDriversQuery(pickup, 3, services.StrategyUnknown)
//	if err != nil {
//	    return fmt.Errorf("invalid dispatch query: %w", err)
//	}
//
//	handler := NewFindNearestDriversQueryHandler(dispatcher)
//	nearest, err := handler.Handle(ctx, query)
type FindNearestDriversQuery struct { //nolint:recvcheck //using for validation
	pickup   kernel.Location
	k        int
	strategy services.Strategy

	guard guard.ConstructorGuard
}

// NewFindNearestDriversQuery creates a query for the k closest available
// drivers. Validates that the pickup is constructed and k is positive;
// grid bounds are enforced by the dispatcher at handling time.
func NewFindNearestDriversQuery(
	pickup kernel.Location,
	k int,
	strategy services.Strategy,
) (FindNearestDriversQuery, error) {
	query := FindNearestDriversQuery{
		strategy: strategy,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setPickup(pickup),
		query.setK(k),
	); err != nil {
		return FindNearestDriversQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q FindNearestDriversQuery) Validate() error {
	return q.guard.Validate(ErrFindNearestDriversQueryIsNotConstructed)
}

// Pickup returns the pickup location drivers are ranked against.
func (q FindNearestDriversQuery) Pickup() kernel.Location {
	return q.pickup
}

// K returns the maximum number of drivers to return.
func (q FindNearestDriversQuery) K() int {
	return q.k
}

// Strategy returns the requested ranking strategy.
func (q FindNearestDriversQuery) Strategy() services.Strategy {
	return q.strategy
}

func (q *FindNearestDriversQuery) setPickup(pickup kernel.Location) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	q.pickup = pickup
	return nil
}

func (q *FindNearestDriversQuery) setK(k int) error {
	if k <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("k", fmt.Errorf("%d is not greater than 0", k))
	}

	q.k = k
	return nil
}

// FindNearestDriversQueryResponse represents a ranked driver in the read model.
// Distance is the Manhattan distance from the driver to the pickup location.
type FindNearestDriversQueryResponse struct {
	ID       driver.ID
	Location kernel.Location
	Distance int
}
