package queries

import (
	"context"

	"dispatch/internal/core/ports"
)

// GetAllDriversQueryHandler retrieves all driver information from the registry.
// Reads a point-in-time snapshot, so the result is internally consistent even
// while mutations run concurrently.
type GetAllDriversQueryHandler struct {
	registry ports.DriverRegistry
}

// NewGetAllDriversQueryHandler creates a handler for driver retrieval queries.
func NewGetAllDriversQueryHandler(registry ports.DriverRegistry) GetAllDriversQueryHandler {
	return GetAllDriversQueryHandler{registry: registry}
}

// Handle executes the query to retrieve all drivers.
// Returns driver read models in stable registration order.
func (h GetAllDriversQueryHandler) Handle(
	_ context.Context,
	query GetAllDriversQuery,
) ([]GetAllDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshot := h.registry.Snapshot()
	drivers := make([]GetAllDriversQueryResponse, 0, len(snapshot))
	for i := range snapshot {
		drivers = append(drivers, GetAllDriversQueryResponse{
			ID:        snapshot[i].ID(),
			Location:  snapshot[i].Location(),
			Available: snapshot[i].IsAvailable(),
		})
	}

	return drivers, nil
}
