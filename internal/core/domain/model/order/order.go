package order

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a pickup request flowing into the dispatch facade.
//
// An Order is a read-only query parameter: it carries an identity and the
// pickup location to rank drivers against. The core never stores orders and
// never locks a driver to one; matching a returned driver to an order is a
// concern of whatever shell wraps this core.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// pickup is the location drivers are ranked against
	pickup kernel.Location

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order with validation. This is the only way to create
// a valid Order.
//
// Example:
//
//	pickup, _ := kernel.NewLocation(4, 5)
//	o, err := order.NewOrder(kernel.NewUUID(), pickup)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(id kernel.UUID, pickup kernel.Location) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(o.setID(id), o.setPickup(pickup)); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Pickup returns the pickup location for the order.
func (o *Order) Pickup() kernel.Location {
	return o.pickup
}

// setID validates and sets the order's unique identifier.
// Private setter used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setPickup validates and sets the order's pickup location.
func (o *Order) setPickup(pickup kernel.Location) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	o.pickup = pickup
	return nil
}
