// Package http exposes the dispatch core over a REST API.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the JSON error body returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Location is the JSON representation of a grid cell.
type Location struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Driver is the JSON representation of a registered driver.
type Driver struct {
	ID        string   `json:"id"`
	Location  Location `json:"location"`
	Available bool     `json:"available"`
}

// NearestDriver is a ranked dispatch candidate.
type NearestDriver struct {
	ID       string   `json:"id"`
	Location Location `json:"location"`
	Distance int      `json:"distance"`
}

// RegisterDriverRequest is the body for POST /api/v1/drivers.
type RegisterDriverRequest struct {
	ID       string   `json:"id"`
	Location Location `json:"location"`
}

// RelocateDriverRequest is the body for PUT /api/v1/drivers/:id/location.
type RelocateDriverRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ChangeAvailabilityRequest is the body for PUT /api/v1/drivers/:id/availability.
type ChangeAvailabilityRequest struct {
	Available bool `json:"available"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerDriverHandler     commands.RegisterDriverCommandHandler
	relocateDriverHandler     commands.RelocateDriverCommandHandler
	changeAvailabilityHandler commands.ChangeDriverAvailabilityCommandHandler
	removeDriverHandler       commands.RemoveDriverCommandHandler

	// Query handlers
	getAllDriversHandler      queries.GetAllDriversQueryHandler
	findNearestDriversHandler queries.FindNearestDriversQueryHandler

	// defaultK is the result size for dispatch queries without an explicit k.
	defaultK int
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerDriverHandler commands.RegisterDriverCommandHandler,
	relocateDriverHandler commands.RelocateDriverCommandHandler,
	changeAvailabilityHandler commands.ChangeDriverAvailabilityCommandHandler,
	removeDriverHandler commands.RemoveDriverCommandHandler,
	getAllDriversHandler queries.GetAllDriversQueryHandler,
	findNearestDriversHandler queries.FindNearestDriversQueryHandler,
	defaultK int,
) *Server {
	if defaultK <= 0 {
		defaultK = services.DefaultK
	}

	return &Server{
		registerDriverHandler:     registerDriverHandler,
		relocateDriverHandler:     relocateDriverHandler,
		changeAvailabilityHandler: changeAvailabilityHandler,
		removeDriverHandler:       removeDriverHandler,
		getAllDriversHandler:      getAllDriversHandler,
		findNearestDriversHandler: findNearestDriversHandler,
		defaultK:                  defaultK,
	}
}

// RegisterRoutes mounts all API endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/drivers", s.RegisterDriver)
	api.GET("/drivers", s.GetDrivers)
	api.PUT("/drivers/:id/location", s.RelocateDriver)
	api.PUT("/drivers/:id/availability", s.ChangeDriverAvailability)
	api.DELETE("/drivers/:id", s.RemoveDriver)
	api.GET("/dispatch/nearest", s.FindNearestDrivers)
}

// RegisterDriver handles POST /api/v1/drivers - places a new driver on the grid.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var request RegisterDriverRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	location, err := kernel.NewLocation(kernel.Coordinate(request.Location.X), kernel.Coordinate(request.Location.Y))
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	cmd, err := commands.NewRegisterDriverCommand(driver.ID(request.ID), location)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if err := s.registerDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetDrivers handles GET /api/v1/drivers - retrieves all drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	query := queries.NewGetAllDriversQuery()

	drivers, err := s.getAllDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	response := make([]Driver, len(drivers))
	for i, d := range drivers {
		response[i] = Driver{
			ID: d.ID.String(),
			Location: Location{
				X: int(d.Location.X()),
				Y: int(d.Location.Y()),
			},
			Available: d.Available,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RelocateDriver handles PUT /api/v1/drivers/:id/location - moves a driver.
func (s *Server) RelocateDriver(ctx echo.Context) error {
	var request RelocateDriverRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	target, err := kernel.NewLocation(kernel.Coordinate(request.X), kernel.Coordinate(request.Y))
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	cmd, err := commands.NewRelocateDriverCommand(driver.ID(ctx.Param("id")), target)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if err := s.relocateDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeDriverAvailability handles PUT /api/v1/drivers/:id/availability.
func (s *Server) ChangeDriverAvailability(ctx echo.Context) error {
	var request ChangeAvailabilityRequest
	if err := ctx.Bind(&request); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewChangeDriverAvailabilityCommand(driver.ID(ctx.Param("id")), request.Available)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if err := s.changeAvailabilityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveDriver handles DELETE /api/v1/drivers/:id - takes a driver off the grid.
func (s *Server) RemoveDriver(ctx echo.Context) error {
	cmd, err := commands.NewRemoveDriverCommand(driver.ID(ctx.Param("id")))
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if err := s.removeDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FindNearestDrivers handles GET /api/v1/dispatch/nearest - ranks available
// drivers against a pickup location. Query parameters: x, y (required), k
// (optional, defaults to the server's configured k) and strategy (optional).
func (s *Server) FindNearestDrivers(ctx echo.Context) error {
	x, err := strconv.Atoi(ctx.QueryParam("x"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "query parameter x must be an integer")
	}
	y, err := strconv.Atoi(ctx.QueryParam("y"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "query parameter y must be an integer")
	}

	k := s.defaultK
	if raw := ctx.QueryParam("k"); raw != "" {
		k, err = strconv.Atoi(raw)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "query parameter k must be an integer")
		}
	}

	strategy := services.StrategyUnknown
	if raw := ctx.QueryParam("strategy"); raw != "" {
		strategy, err = services.ParseStrategy(raw)
		if err != nil {
			return domainErrorResponse(ctx, err)
		}
	}

	pickup, err := kernel.NewLocation(kernel.Coordinate(x), kernel.Coordinate(y))
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	query, err := queries.NewFindNearestDriversQuery(pickup, k, strategy)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	nearest, err := s.findNearestDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	response := make([]NearestDriver, len(nearest))
	for i, d := range nearest {
		response[i] = NearestDriver{
			ID: d.ID.String(),
			Location: Location{
				X: int(d.Location.X()),
				Y: int(d.Location.Y()),
			},
			Distance: d.Distance,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// domainErrorResponse maps domain failures onto HTTP statuses, preserving the
// specific failure message so clients can tell rejection kinds apart.
func domainErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrObjectAlreadyExists), errors.Is(err, driver.ErrCellOccupied):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, err.Error())
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{
		Code:    code,
		Message: message,
	})
}
