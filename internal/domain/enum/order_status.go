package enum

import (
	"encoding/json"
	"strings"
)

// OrderStatus represents the lifecycle state of an order. Statuses move
// forward along UNPROCESSED -> PENDING -> READY -> COMPLETED; CANCELLED is an
// out-of-band escape reachable from any non-terminal state.
type OrderStatus string

const (
	OrderStatusUnprocessed OrderStatus = "UNPROCESSED"
	OrderStatusPending     OrderStatus = "PENDING"
	OrderStatusReady       OrderStatus = "READY"
	OrderStatusCompleted   OrderStatus = "COMPLETED"
	OrderStatusCancelled   OrderStatus = "CANCELLED"
)

// ParseOrderStatus normalizes a raw status string to its canonical value.
// Legacy aliases from older order rows map onto the same semantic states.
// Unmapped statuses are carried through as-is; they offer no transitions.
func ParseOrderStatus(raw string) OrderStatus {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "UNPROCESSED", "NEW_ORDER":
		return OrderStatusUnprocessed
	case "PENDING", "PROCESSING":
		return OrderStatusPending
	case "READY":
		return OrderStatusReady
	case "COMPLETED", "DELIVERED":
		return OrderStatusCompleted
	case "CANCELLED", "CANCELED":
		return OrderStatusCancelled
	}
	return OrderStatus(raw)
}

// Known reports whether s is one of the canonical statuses.
func (s OrderStatus) Known() bool {
	switch s {
	case OrderStatusUnprocessed, OrderStatusPending, OrderStatusReady,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// Next returns the legal forward transitions from s in presentation order.
// The chain is linear, so the result has at most one element; the first
// element is the primary one-click action. Unknown statuses offer nothing.
func (s OrderStatus) Next() []OrderStatus {
	switch s {
	case OrderStatusUnprocessed:
		return []OrderStatus{OrderStatusPending}
	case OrderStatusPending:
		return []OrderStatus{OrderStatusReady}
	case OrderStatusReady:
		return []OrderStatus{OrderStatusCompleted}
	}
	return nil
}

// Primary returns the suggested next status, if any.
func (s OrderStatus) Primary() (OrderStatus, bool) {
	next := s.Next()
	if len(next) == 0 {
		return "", false
	}
	return next[0], true
}

// CanCancel reports whether cancellation is still available. Cancellation is
// orthogonal to the forward chain and gated only by the terminal states.
func (s OrderStatus) CanCancel() bool {
	return s != OrderStatusCancelled && s != OrderStatusCompleted
}

// Terminal reports whether no further status transition is possible.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

// UnmarshalJSON normalizes legacy aliases at the data-model boundary so
// business logic never branches on raw strings.
func (s *OrderStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = ParseOrderStatus(str)
	return nil
}
