package driver_test

import (
	"testing"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		id, err := driver.NewID("D001")

		require.NoError(t, err)
		assert.Equal(t, "D001", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("empty token fails", func(t *testing.T) {
		_, err := driver.NewID("")

		require.Error(t, err)
		assert.Equal(t, driver.ErrIDIsRequired, err)
	})
}

func TestNewDriver(t *testing.T) {
	location, err := kernel.NewLocation(2, 3)
	require.NoError(t, err)

	t.Run("valid driver starts available", func(t *testing.T) {
		d, err := driver.NewDriver("D001", location)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, driver.ID("D001"), d.ID())
		assert.Equal(t, location, d.Location())
		assert.True(t, d.IsAvailable())
	})

	t.Run("empty id fails", func(t *testing.T) {
		_, err := driver.NewDriver("", location)

		require.Error(t, err)
	})

	t.Run("zero value location fails", func(t *testing.T) {
		var invalid kernel.Location

		_, err := driver.NewDriver("D001", invalid)

		require.Error(t, err)
	})
}

func TestDriver_Validate(t *testing.T) {
	t.Run("nil driver is invalid", func(t *testing.T) {
		var d *driver.Driver

		err := d.Validate()

		require.Error(t, err)
		assert.Equal(t, driver.ErrDriverIsNotConstructed, err)
	})

	t.Run("zero value driver is invalid", func(t *testing.T) {
		d := &driver.Driver{}

		err := d.Validate()

		require.Error(t, err)
		assert.Equal(t, driver.ErrDriverIsNotConstructed, err)
	})
}

func TestDriver_Relocate(t *testing.T) {
	start, _ := kernel.NewLocation(1, 1)
	target, _ := kernel.NewLocation(4, 5)

	t.Run("moves to valid target", func(t *testing.T) {
		d, err := driver.NewDriver("D001", start)
		require.NoError(t, err)

		require.NoError(t, d.Relocate(target))

		assert.Equal(t, target, d.Location())
	})

	t.Run("rejects zero value target", func(t *testing.T) {
		d, err := driver.NewDriver("D001", start)
		require.NoError(t, err)
		var invalid kernel.Location

		require.Error(t, d.Relocate(invalid))

		// Position unchanged on failure.
		assert.Equal(t, start, d.Location())
	})
}

func TestDriver_SetAvailability(t *testing.T) {
	location, _ := kernel.NewLocation(1, 1)
	d, err := driver.NewDriver("D001", location)
	require.NoError(t, err)

	require.NoError(t, d.SetAvailability(false))
	assert.False(t, d.IsAvailable())

	require.NoError(t, d.SetAvailability(true))
	assert.True(t, d.IsAvailable())

	// Availability never moves the driver.
	assert.Equal(t, location, d.Location())
}

func TestDriver_DistanceTo(t *testing.T) {
	location, _ := kernel.NewLocation(2, 3)
	pickup, _ := kernel.NewLocation(4, 5)

	d, err := driver.NewDriver("D001", location)
	require.NoError(t, err)

	distance, err := d.DistanceTo(pickup)

	require.NoError(t, err)
	assert.Equal(t, 4, distance)
}

func TestDriver_IsEqual(t *testing.T) {
	location, _ := kernel.NewLocation(1, 1)
	other, _ := kernel.NewLocation(2, 2)

	a, _ := driver.NewDriver("D001", location)
	b, _ := driver.NewDriver("D001", other)
	c, _ := driver.NewDriver("D002", location)

	assert.True(t, a.IsEqual(b), "same identity means equal")
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
