package order_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustItem(t *testing.T, qty int, price string) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), qty, nil, mustMoney(t, price))
	require.NoError(t, err)
	return item
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), "000001", kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{mustItem(t, 2, "10.00"), mustItem(t, 1, "15.50")},
	)
	require.NoError(t, err)
	return o
}

func restoreWithStatus(t *testing.T, status order.Status, staff *kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(
		kernel.NewUUID(), "000042", kernel.NewUUID(), kernel.NewUUID(),
		staff, nil, mustMoney(t, "35.00"), status, time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should place order in PENDING with computed total", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, "35.50", o.Total().String())
		assert.Nil(t, o.DeliveryStaffID())
		assert.Len(t, o.Items(), 2)
		assert.False(t, o.CreatedAt().IsZero())
	})

	t.Run("should reject empty cart", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "000001", kernel.NewUUID(), kernel.NewUUID(), nil)

		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrOrderHasNoItems)
	})

	t.Run("should join every validation error", func(t *testing.T) {
		var zero kernel.UUID

		o, err := order.NewOrder(zero, " ", zero, zero, []order.Item{{}})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "value is required: number")
		assert.Contains(t, err.Error(), "branchID")
		assert.Contains(t, err.Error(), "customerID")
		assert.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore dispatched order with staff", func(t *testing.T) {
		staff := kernel.NewUUID()

		o := restoreWithStatus(t, order.Delivering, &staff)

		assert.Equal(t, order.Delivering, o.Status())
		require.NotNil(t, o.DeliveryStaffID())
		assert.True(t, staff.IsEqual(*o.DeliveryStaffID()))
	})

	t.Run("should reject dispatched order without staff", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "000042", kernel.NewUUID(), kernel.NewUUID(),
			nil, nil, mustMoney(t, "1"), order.OutForDelivery, time.Now(),
		)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "000042", kernel.NewUUID(), kernel.NewUUID(),
			nil, nil, mustMoney(t, "1"), order.Unknown, time.Now(),
		)

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Advance(t *testing.T) {
	t.Run("should move PENDING through PREPARING to READY", func(t *testing.T) {
		o := newPendingOrder(t)

		for _, want := range []order.Status{order.Confirmed, order.Preparing, order.Ready} {
			got, err := o.Advance()
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, want, o.Status())
		}
	})

	t.Run("should refuse READY without assignment", func(t *testing.T) {
		o := restoreWithStatus(t, order.Ready, nil)

		_, err := o.Advance()

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Ready, o.Status())
		assert.Nil(t, o.DeliveryStaffID())
	})

	t.Run("should move DELIVERED to COMPLETED", func(t *testing.T) {
		staff := kernel.NewUUID()
		o := restoreWithStatus(t, order.Delivered, &staff)

		got, err := o.Advance()

		require.NoError(t, err)
		assert.Equal(t, order.Completed, got)
	})

	t.Run("should refuse terminal orders", func(t *testing.T) {
		o := restoreWithStatus(t, order.Cancelled, nil)

		_, err := o.Advance()

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_AssignDelivery(t *testing.T) {
	t.Run("should set staff and status together", func(t *testing.T) {
		o := restoreWithStatus(t, order.Ready, nil)
		staff := kernel.NewUUID()

		err := o.AssignDelivery(staff)

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, o.Status())
		require.NotNil(t, o.DeliveryStaffID())
		assert.True(t, staff.IsEqual(*o.DeliveryStaffID()))
	})

	t.Run("should change nothing when not READY", func(t *testing.T) {
		o := restoreWithStatus(t, order.Preparing, nil)

		err := o.AssignDelivery(kernel.NewUUID())

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Preparing, o.Status())
		assert.Nil(t, o.DeliveryStaffID())
	})

	t.Run("should reject nil staff id", func(t *testing.T) {
		o := restoreWithStatus(t, order.Ready, nil)

		err := o.AssignDelivery(kernel.UUID{})

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Ready, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	for _, s := range order.AllStatuses() {
		t.Run(s.String(), func(t *testing.T) {
			var staff *kernel.UUID
			if s.RequiresDeliveryStaff() {
				id := kernel.NewUUID()
				staff = &id
			}
			o := restoreWithStatus(t, s, staff)

			err := o.Cancel()

			if s.CanCancel() {
				require.NoError(t, err)
				assert.Equal(t, order.Cancelled, o.Status())
			} else {
				require.Error(t, err)
				assert.Equal(t, s, o.Status())
			}
		})
	}
}

func TestOrder_ItemsAreCopied(t *testing.T) {
	o := newPendingOrder(t)

	items := o.Items()
	items[0] = order.Item{}

	assert.NoError(t, o.Items()[0].Validate())
}
