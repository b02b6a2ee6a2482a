package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dispatch/internal/adapters/out/inmem/driverregistry"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"

	dispatchhttp "dispatch/internal/adapters/in/http"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*echo.Echo, ports.DriverRegistry) {
	t.Helper()

	grid, err := kernel.NewGrid(10, 10)
	require.NoError(t, err)
	registry, err := driverregistry.New(grid)
	require.NoError(t, err)

	dispatcher, err := services.NewDispatcher(registry, services.StrategyBoundedHeap)
	require.NoError(t, err)

	server := dispatchhttp.NewServer(
		commands.NewRegisterDriverCommandHandler(registry),
		commands.NewRelocateDriverCommandHandler(registry),
		commands.NewChangeDriverAvailabilityCommandHandler(registry),
		commands.NewRemoveDriverCommandHandler(registry),
		queries.NewGetAllDriversQueryHandler(registry),
		queries.NewFindNearestDriversQueryHandler(dispatcher),
		services.DefaultK,
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e, registry
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestServer_RegisterDriver(t *testing.T) {
	t.Run("registers driver and returns 201", func(t *testing.T) {
		e, registry := newTestServer(t)

		rec := doJSON(e, http.MethodPost, "/api/v1/drivers",
			`{"id":"D001","location":{"x":2,"y":3}}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, registry.Contains("D001"))
	})

	t.Run("duplicate identity returns 409", func(t *testing.T) {
		e, _ := newTestServer(t)
		doJSON(e, http.MethodPost, "/api/v1/drivers", `{"id":"D001","location":{"x":2,"y":3}}`)

		rec := doJSON(e, http.MethodPost, "/api/v1/drivers",
			`{"id":"D001","location":{"x":4,"y":4}}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("occupied cell returns 409", func(t *testing.T) {
		e, _ := newTestServer(t)
		doJSON(e, http.MethodPost, "/api/v1/drivers", `{"id":"D001","location":{"x":2,"y":3}}`)

		rec := doJSON(e, http.MethodPost, "/api/v1/drivers",
			`{"id":"D002","location":{"x":2,"y":3}}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("location outside grid returns 400", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := doJSON(e, http.MethodPost, "/api/v1/drivers",
			`{"id":"D001","location":{"x":42,"y":3}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("empty identity returns 400", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := doJSON(e, http.MethodPost, "/api/v1/drivers",
			`{"id":"","location":{"x":2,"y":3}}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_RelocateDriver(t *testing.T) {
	t.Run("moves driver and returns 204", func(t *testing.T) {
		e, registry := newTestServer(t)
		doJSON(e, http.MethodPost, "/api/v1/drivers", `{"id":"D001","location":{"x":2,"y":3}}`)

		rec := doJSON(e, http.MethodPut, "/api/v1/drivers/D001/location", `{"x":7,"y":4}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		target, err := kernel.NewLocation(7, 4)
		require.NoError(t, err)
		occupant, occupied := registry.OccupantAt(target)
		require.True(t, occupied)
		assert.Equal(t, "D001", occupant.String())
	})

	t.Run("unknown driver returns 404", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := doJSON(e, http.MethodPut, "/api/v1/drivers/D404/location", `{"x":7,"y":4}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("occupied target returns 409 and keeps positions", func(t *testing.T) {
		e, registry := newTestServer(t)
		doJSON(e, http.MethodPost, "/api/v1/drivers", `{"id":"D001","location":{"x":2,"y":3}}`)
		doJSON(e, http.MethodPost, "/api/v1/drivers", `{"id":"D002","location":{"x":7,"y":4}}`)

		rec := doJSON(e, http.MethodPut, "/api/v1/drivers/D001/location", `{"x":7,"y":4}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		origin, err := kernel.NewLocation(2, 3)
		require.NoError(t, err)
		occupant, occupied := registry.OccupantAt(origin)
		require.True(t, occupied)
		assert.Equal(t, "D001", occupant.String())
	})
}

func TestServer_ChangeDriverAvailability(t *testing.T) {
	t.Run("updates availability and returns 204", func(t *testing.T) {
		e, registry := newTestServer(t)
		doJSON(e, http.MethodPost, "/api/v1/drivers", `{"id":"D001","location":{"x":2,"y":3}}`)

		rec := doJSON(e, http.MethodPut, "/api/v1/drivers/D001/availability", `{"available":false}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		snapshot := registry.Snapshot()
		require.Len(t, snapshot, 1)
		assert.False(t, snapshot[0].IsAvailable())
	})

	t.Run("unknown driver returns 404", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := doJSON(e, http.MethodPut, "/api/v1/drivers/D404/availability", `{"available":true}`)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_RemoveDriver(t *testing.T) {
	t.Run("removes driver and returns 204", func(t *testing.T) {
		e, registry := newTestServer(t)
		doJSON(e, http.MethodPost, "/api/v1/drivers", `{"id":"D001","location":{"x":2,"y":3}}`)

		rec := doJSON(e, http.MethodDelete, "/api/v1/drivers/D001", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.False(t, registry.Contains("D001"))
	})

	t.Run("unknown driver returns 404", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := doJSON(e, http.MethodDelete, "/api/v1/drivers/D404", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_GetDrivers(t *testing.T) {
	e, _ := newTestServer(t)
	doJSON(e, http.MethodPost, "/api/v1/drivers", `{"id":"D001","location":{"x":2,"y":3}}`)
	doJSON(e, http.MethodPost, "/api/v1/drivers", `{"id":"D002","location":{"x":5,"y":7}}`)

	rec := doJSON(e, http.MethodGet, "/api/v1/drivers", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var drivers []dispatchhttp.Driver
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &drivers))
	require.Len(t, drivers, 2)
	assert.Equal(t, "D001", drivers[0].ID)
	assert.Equal(t, dispatchhttp.Location{X: 2, Y: 3}, drivers[0].Location)
	assert.True(t, drivers[0].Available)
	assert.Equal(t, "D002", drivers[1].ID)
}

func TestServer_FindNearestDrivers(t *testing.T) {
	seed := func(t *testing.T) *echo.Echo {
		t.Helper()
		e, _ := newTestServer(t)
		doJSON(e, http.MethodPost, "/api/v1/drivers", `{"id":"D001","location":{"x":2,"y":3}}`)
		doJSON(e, http.MethodPost, "/api/v1/drivers", `{"id":"D002","location":{"x":5,"y":7}}`)
		doJSON(e, http.MethodPost, "/api/v1/drivers", `{"id":"D003","location":{"x":8,"y":1}}`)
		return e
	}

	t.Run("ranks drivers by distance then identity", func(t *testing.T) {
		e := seed(t)

		rec := doJSON(e, http.MethodGet, "/api/v1/dispatch/nearest?x=4&y=5&k=2", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var nearest []dispatchhttp.NearestDriver
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &nearest))
		require.Len(t, nearest, 2)
		assert.Equal(t, "D002", nearest[0].ID)
		assert.Equal(t, 3, nearest[0].Distance)
		assert.Equal(t, "D001", nearest[1].ID)
		assert.Equal(t, 4, nearest[1].Distance)
	})

	t.Run("explicit strategy is honored", func(t *testing.T) {
		e := seed(t)

		rec := doJSON(e, http.MethodGet, "/api/v1/dispatch/nearest?x=4&y=5&k=1&strategy=ordered-set", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var nearest []dispatchhttp.NearestDriver
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &nearest))
		require.Len(t, nearest, 1)
		assert.Equal(t, "D002", nearest[0].ID)
	})

	t.Run("empty fleet returns empty list", func(t *testing.T) {
		e, _ := newTestServer(t)

		rec := doJSON(e, http.MethodGet, "/api/v1/dispatch/nearest?x=4&y=5", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var nearest []dispatchhttp.NearestDriver
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &nearest))
		assert.Empty(t, nearest)
	})

	t.Run("pickup outside grid returns 400", func(t *testing.T) {
		e := seed(t)

		rec := doJSON(e, http.MethodGet, "/api/v1/dispatch/nearest?x=10&y=5", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown strategy returns 400", func(t *testing.T) {
		e := seed(t)

		rec := doJSON(e, http.MethodGet, "/api/v1/dispatch/nearest?x=4&y=5&strategy=quad-tree", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("non-integer coordinates return 400", func(t *testing.T) {
		e := seed(t)

		rec := doJSON(e, http.MethodGet, "/api/v1/dispatch/nearest?x=abc&y=5", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
