package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	pickup, err := kernel.NewLocation(4, 5)
	require.NoError(t, err)

	t.Run("valid order", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, pickup)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, pickup, o.Pickup())
	})

	t.Run("zero value id fails", func(t *testing.T) {
		var id kernel.UUID

		_, err := order.NewOrder(id, pickup)

		require.Error(t, err)
	})

	t.Run("zero value pickup fails", func(t *testing.T) {
		var invalid kernel.Location

		_, err := order.NewOrder(kernel.NewUUID(), invalid)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order is invalid", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("zero value order is invalid", func(t *testing.T) {
		o := &order.Order{}

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_IsEqual(t *testing.T) {
	pickup, _ := kernel.NewLocation(1, 1)
	id := kernel.NewUUID()

	a, _ := order.NewOrder(id, pickup)
	b, _ := order.NewOrder(id, pickup)
	c, _ := order.NewOrder(kernel.NewUUID(), pickup)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
