package repository

import (
	"context"

	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/entity"
	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/enum"
)

// OrderRepository is the contract with the tenant's authoritative order
// service. Implementations normalize identifiers and legacy status strings at
// this boundary, map the subscription-inactive signal to
// apperror.ErrSubscriptionInactive, and carry upstream failure messages
// verbatim. The server performs the authoritative transition validation;
// callers must not assume success.
type OrderRepository interface {
	// List fetches the tenant's current orders.
	List(ctx context.Context) ([]entity.Order, error)
	// UpdateStatus requests a status transition and returns the updated order.
	UpdateStatus(ctx context.Context, orderID string, status enum.OrderStatus) (*entity.Order, error)
	// RecordPayment submits a validated payment capture and returns the
	// updated order.
	RecordPayment(ctx context.Context, orderID string, capture entity.PaymentCapture) (*entity.Order, error)
	// Delete removes an order.
	Delete(ctx context.Context, orderID string) error
}
