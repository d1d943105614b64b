package order_test

import (
	"fmt"
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Next(t *testing.T) {
	t.Run("should walk the forward path from PENDING to COMPLETED", func(t *testing.T) {
		expected := []order.Status{
			order.Pending,
			order.Confirmed,
			order.Preparing,
			order.Ready,
			order.OutForDelivery,
			order.Delivering,
			order.Delivered,
			order.Completed,
		}

		current := order.Pending
		walked := []order.Status{current}
		for {
			next, ok := current.Next()
			if !ok {
				break
			}
			walked = append(walked, next)
			current = next
		}

		assert.Equal(t, expected, walked)
	})

	t.Run("should report no transition for terminal states", func(t *testing.T) {
		for _, s := range []order.Status{order.Completed, order.Cancelled} {
			next, ok := s.Next()

			assert.False(t, ok, s.String())
			assert.Equal(t, order.Unknown, next)
			assert.True(t, s.IsTerminal())
		}
	})

	t.Run("should report no transition for invalid status", func(t *testing.T) {
		_, ok := order.Status(42).Next()

		assert.False(t, ok)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	for _, s := range order.AllStatuses() {
		t.Run(s.String(), func(t *testing.T) {
			want := s == order.Completed || s == order.Cancelled
			assert.Equal(t, want, s.IsTerminal())

			_, hasNext := s.Next()
			assert.Equal(t, !want, hasNext)
		})
	}
}

func TestStatus_CanCancel(t *testing.T) {
	cancellable := map[order.Status]bool{
		order.Pending:   true,
		order.Confirmed: true,
		order.Preparing: true,
		order.Ready:     true,
	}

	for _, s := range order.AllStatuses() {
		t.Run(s.String(), func(t *testing.T) {
			assert.Equal(t, cancellable[s], s.CanCancel())
		})
	}

	assert.False(t, order.Unknown.CanCancel())
}

func TestStatus_IsActive(t *testing.T) {
	assert.True(t, order.Pending.IsActive())
	assert.True(t, order.Delivering.IsActive())
	assert.False(t, order.Delivered.IsActive())
	assert.False(t, order.Completed.IsActive())
	assert.False(t, order.Cancelled.IsActive())
	assert.False(t, order.Unknown.IsActive())
}

func TestStatus_Validate(t *testing.T) {
	for _, s := range order.AllStatuses() {
		t.Run(fmt.Sprintf("should validate %s", s), func(t *testing.T) {
			require.NoError(t, s.Validate())
		})
	}

	t.Run("should reject Unknown", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})
}

func TestParseStatus(t *testing.T) {
	t.Run("should round-trip every status", func(t *testing.T) {
		for _, s := range order.AllStatuses() {
			parsed, err := order.ParseStatus(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should be case-insensitive", func(t *testing.T) {
		parsed, err := order.ParseStatus(" out_for_delivery ")

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, parsed)
	})

	t.Run("should reject unknown name", func(t *testing.T) {
		parsed, err := order.ParseStatus("SHIPPED")

		require.Error(t, err)
		assert.Equal(t, order.Unknown, parsed)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "OUT_FOR_DELIVERY", order.OutForDelivery.String())
	assert.Equal(t, "UNKNOWN", order.Unknown.String())
	assert.Equal(t, "UNKNOWN", order.Status(99).String())
}

func TestStatus_Color(t *testing.T) {
	for _, s := range order.AllStatuses() {
		assert.Regexp(t, `^#[0-9a-f]{6}$`, s.Color(), s.String())
	}
	assert.Equal(t, "#812732", order.Pending.Color())
	assert.Equal(t, "#888888", order.Unknown.Color())
}

func TestStatus_ValidateCanHaveDeliveryStaff(t *testing.T) {
	tests := []struct {
		status   order.Status
		assigned bool
		wantErr  bool
	}{
		{order.Pending, false, false},
		{order.Pending, true, true},
		{order.Ready, true, true},
		{order.OutForDelivery, true, false},
		{order.OutForDelivery, false, true},
		{order.Delivering, true, false},
		{order.Completed, false, true},
		{order.Cancelled, false, false},
		{order.Cancelled, true, true},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/assigned=%t", tt.status, tt.assigned), func(t *testing.T) {
			err := tt.status.ValidateCanHaveDeliveryStaff(tt.assigned)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
