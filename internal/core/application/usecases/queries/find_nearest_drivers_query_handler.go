package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
)

// FindNearestDriversQueryHandler answers dispatch queries through the domain
// dispatcher. Distances in the response are recomputed against the pickup so
// the read model is self-contained.
type FindNearestDriversQueryHandler struct {
	dispatcher *services.Dispatcher
}

// NewFindNearestDriversQueryHandler creates a handler for nearest-driver
// queries.
func NewFindNearestDriversQueryHandler(dispatcher *services.Dispatcher) FindNearestDriversQueryHandler {
	return FindNearestDriversQueryHandler{dispatcher: dispatcher}
}

// Handle executes the nearest-driver query.
// Returns up to K ranked read models; an empty slice means no available driver
// matched. A pickup outside the grid fails with errs.ErrValueIsOutOfRange.
func (h FindNearestDriversQueryHandler) Handle(
	_ context.Context,
	query FindNearestDriversQuery,
) ([]FindNearestDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	o, err := order.NewOrder(kernel.NewUUID(), query.Pickup())
	if err != nil {
		return nil, err
	}

	drivers, err := h.dispatcher.FindKNearest(o, query.K(), query.Strategy())
	if err != nil {
		return nil, err
	}

	response := make([]FindNearestDriversQueryResponse, 0, len(drivers))
	for i := range drivers {
		distance, err := drivers[i].DistanceTo(query.Pickup())
		if err != nil {
			return nil, err
		}

		response = append(response, FindNearestDriversQueryResponse{
			ID:       drivers[i].ID(),
			Location: drivers[i].Location(),
			Distance: distance,
		})
	}

	return response, nil
}
