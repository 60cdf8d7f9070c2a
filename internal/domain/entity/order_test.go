package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/enum"
)

func TestIsLocked(t *testing.T) {
	tests := []struct {
		name  string
		order Order
		want  bool
	}{
		{
			name:  "fresh unprocessed pos order",
			order: Order{Status: enum.OrderStatusUnprocessed, Source: enum.SourcePOS},
			want:  false,
		},
		{
			name:  "cancelled",
			order: Order{Status: enum.OrderStatusCancelled, Source: enum.SourcePOS},
			want:  true,
		},
		{
			name:  "amount received",
			order: Order{Status: enum.OrderStatusPending, Source: enum.SourcePOS, AmountReceived: 50000},
			want:  true,
		},
		{
			name:  "foodpanda source regardless of payment",
			order: Order{Status: enum.OrderStatusUnprocessed, Source: enum.SourceFoodpanda},
			want:  true,
		},
		{
			name:  "captured card payment",
			order: Order{Status: enum.OrderStatusReady, Source: enum.SourceWebsite, PaymentMethod: enum.PaymentMethodCard},
			want:  true,
		},
		{
			name:  "pending payment does not lock",
			order: Order{Status: enum.OrderStatusReady, Source: enum.SourceWebsite, PaymentMethod: enum.PaymentMethodPending},
			want:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.order.IsLocked())
			assert.Equal(t, !tt.want, tt.order.CanEdit())
			assert.Equal(t, !tt.want, tt.order.CanDelete())
		})
	}
}

func TestFreshlyCancelledOrderLocksImmediately(t *testing.T) {
	o := Order{Status: enum.OrderStatusPending, Source: enum.SourcePOS}
	require.False(t, o.IsLocked())

	o.Status = enum.OrderStatusCancelled

	assert.True(t, o.IsLocked(), "lock must be derived, not cached at load time")
	assert.False(t, o.CanEdit())
	assert.False(t, o.CanDelete())
}

func TestCanRecordPayment(t *testing.T) {
	tests := []struct {
		name  string
		order Order
		want  bool
	}{
		{
			name:  "in progress",
			order: Order{Status: enum.OrderStatusReady},
			want:  true,
		},
		{
			name:  "cancelled never accepts payment",
			order: Order{Status: enum.OrderStatusCancelled},
			want:  false,
		},
		{
			name:  "completed cod awaiting collection",
			order: Order{Status: enum.OrderStatusCompleted, PaymentMethod: enum.PaymentMethodPending},
			want:  true,
		},
		{
			name:  "completed and already captured",
			order: Order{Status: enum.OrderStatusCompleted, PaymentMethod: enum.PaymentMethodCash},
			want:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.order.CanRecordPayment())
		})
	}
}

// A READY order placed at the counter and not yet paid keeps every action
// available except completion of payment side effects.
func TestReadyUnpaidCounterOrder(t *testing.T) {
	o := Order{
		Status:        enum.OrderStatusReady,
		Source:        enum.SourcePOS,
		PaymentMethod: enum.PaymentMethodUnset,
	}

	assert.True(t, o.CanEdit())
	assert.True(t, o.CanDelete())
	assert.True(t, o.CanCancel())
	assert.True(t, o.CanRecordPayment())
	next, ok := o.Status.Primary()
	require.True(t, ok)
	assert.Equal(t, enum.OrderStatusCompleted, next)
}

func TestCancelOrthogonalToLock(t *testing.T) {
	// A paid READY order is locked against edits but still cancellable.
	o := Order{Status: enum.OrderStatusReady, PaymentMethod: enum.PaymentMethodCash, AmountReceived: 100000}

	assert.True(t, o.IsLocked())
	assert.True(t, o.CanCancel())
}

func TestNewCashCapture(t *testing.T) {
	t.Run("short amount rejected", func(t *testing.T) {
		_, err := NewCashCapture(100000, 99900)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Amount received must be at least Rs 1000")
	})

	t.Run("exact amount gives zero change", func(t *testing.T) {
		c, err := NewCashCapture(100000, 100000)
		require.NoError(t, err)
		assert.Equal(t, enum.PaymentMethodCash, c.Method)
		assert.Equal(t, int64(100000), c.AmountReceived)
		assert.Equal(t, int64(0), c.AmountReturned)
	})

	t.Run("overpayment derives change", func(t *testing.T) {
		c, err := NewCashCapture(100000, 150000)
		require.NoError(t, err)
		assert.Equal(t, int64(50000), c.AmountReturned)
	})
}

func TestNewCaptureOmitsAmounts(t *testing.T) {
	c := NewCapture(enum.PaymentMethodCard)

	assert.False(t, c.Cash())
	assert.Zero(t, c.AmountReceived)
	assert.Zero(t, c.AmountReturned)
}

func TestActorPrivileged(t *testing.T) {
	assert.False(t, Actor{Role: enum.RoleStaff}.Privileged())
	assert.False(t, Actor{Role: enum.RoleAdmin}.Privileged())
	assert.True(t, Actor{Role: enum.RoleSuperAdmin}.Privileged())
}
