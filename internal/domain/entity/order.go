package entity

import (
	"encoding/json"
	"time"

	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/enum"
)

// Order is the dashboard's view of an order row owned by the upstream order
// service. Monetary fields are stored in paisa; the upstream secondary "_id"
// alias is resolved to the single canonical ID at the repository boundary
// and never reaches this type.
type Order struct {
	ID              string             `json:"id"`
	Status          enum.OrderStatus   `json:"status"`
	Source          enum.OrderSource   `json:"source"`
	PaymentMethod   enum.PaymentMethod `json:"payment_method"`
	AmountReceived  int64              `json:"-"` // paisa, cash captures only
	AmountReturned  int64              `json:"-"` // paisa, cash captures only
	Items           []OrderItem        `json:"items"`
	Subtotal        int64              `json:"-"` // paisa
	DiscountAmount  int64              `json:"-"` // paisa
	Total           int64              `json:"-"` // paisa, total = subtotal - discount, fixed at creation
	CustomerName    string             `json:"customer_name,omitempty"`
	CustomerPhone   string             `json:"customer_phone,omitempty"`
	DeliveryAddress string             `json:"delivery_address,omitempty"`
	ExternalOrderID string             `json:"external_order_id,omitempty"`
	OrderType       string             `json:"order_type,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

// OrderItem is a single line of an order. Insertion order is presentation
// order.
type OrderItem struct {
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"-"` // paisa
}

// MarshalJSON converts paisa to decimal rupees for API responses.
func (o Order) MarshalJSON() ([]byte, error) {
	type Alias Order
	return json.Marshal(&struct {
		Alias
		AmountReceived float64 `json:"amount_received"`
		AmountReturned float64 `json:"amount_returned"`
		Subtotal       float64 `json:"subtotal"`
		DiscountAmount float64 `json:"discount_amount"`
		Total          float64 `json:"total"`
	}{
		Alias:          Alias(o),
		AmountReceived: float64(o.AmountReceived) / 100,
		AmountReturned: float64(o.AmountReturned) / 100,
		Subtotal:       float64(o.Subtotal) / 100,
		DiscountAmount: float64(o.DiscountAmount) / 100,
		Total:          float64(o.Total) / 100,
	})
}

// MarshalJSON converts the unit price to decimal rupees for API responses.
func (i OrderItem) MarshalJSON() ([]byte, error) {
	type Alias OrderItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
	}{
		Alias:     Alias(i),
		UnitPrice: float64(i.UnitPrice) / 100,
	})
}

// IsLocked reports whether the order may no longer be edited or deleted.
// The predicate is derived from current fields on every call, never stored:
// an order locks once it is cancelled, once any payment amount has been
// received, when it originated on Foodpanda, or once a payment method has
// been captured. Source and payment method are independent signals combined
// by OR.
func (o *Order) IsLocked() bool {
	if o.Status == enum.OrderStatusCancelled {
		return true
	}
	if o.AmountReceived > 0 {
		return true
	}
	if o.Source == enum.SourceFoodpanda {
		return true
	}
	return o.PaymentMethod.Captured()
}

// CanEdit reports whether the order may be re-opened in the POS editor.
func (o *Order) CanEdit() bool {
	return !o.IsLocked()
}

// CanDelete reports whether the order may still be deleted.
func (o *Order) CanDelete() bool {
	return !o.IsLocked()
}

// CanCancel reports whether the cancel action is available. Orthogonal to
// IsLocked: gated only by the terminal statuses.
func (o *Order) CanCancel() bool {
	return o.Status.CanCancel()
}

// CanRecordPayment reports whether the record-payment action is offered.
// Never on cancelled orders; on completed orders only while payment has not
// been captured (COD-style orders completed before collection).
func (o *Order) CanRecordPayment() bool {
	if o.Status == enum.OrderStatusCancelled {
		return false
	}
	if o.Status == enum.OrderStatusCompleted {
		return !o.PaymentMethod.Captured()
	}
	return true
}

// Paid reports whether a payment has been captured against the order.
func (o *Order) Paid() bool {
	return o.AmountReceived > 0 || o.PaymentMethod.Captured()
}
