package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/zaiqahq/zaiqa-dashboard/internal/application/state"
	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/entity"
	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/enum"
	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/repository"
	"github.com/zaiqahq/zaiqa-dashboard/pkg/apperror"
	"github.com/zaiqahq/zaiqa-dashboard/pkg/money"
)

// OrderService drives the order lifecycle: it guards actions locally, lets
// the order service confirm every mutation, and patches the board only after
// confirmation. No optimistic updates.
type OrderService struct {
	repo  repository.OrderRepository
	board *state.Board
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, board *state.Board) *OrderService {
	return &OrderService{repo: repo, board: board}
}

// PaymentInput is the raw payment form submission. AmountReceived arrives as
// entered and must parse as a number for cash captures.
type PaymentInput struct {
	Method         string
	AmountReceived string
}

// OrderView decorates an order with its derived action availability so the
// UI never re-implements policy. The guards are recomputed on every call.
type OrderView struct {
	Order            entity.Order      `json:"order"`
	CanEdit          bool              `json:"can_edit"`
	CanDelete        bool              `json:"can_delete"`
	CanCancel        bool              `json:"can_cancel"`
	CanRecordPayment bool              `json:"can_record_payment"`
	NextStatus       *enum.OrderStatus `json:"next_status,omitempty"`
	InFlight         bool              `json:"in_flight"`
}

func (s *OrderService) viewOf(o entity.Order) OrderView {
	v := OrderView{
		Order:            o,
		CanEdit:          o.CanEdit(),
		CanDelete:        o.CanDelete(),
		CanCancel:        o.CanCancel(),
		CanRecordPayment: o.CanRecordPayment(),
		InFlight:         s.board.InFlight(o.ID),
	}
	if next, ok := o.Status.Primary(); ok {
		v.NextStatus = &next
	}
	return v
}

// Refresh fetches the order list from the order service and replaces the
// board. The subscription-inactive signal flips the board into suspended
// read-only mode and is propagated as the distinguished error; any
// successful refresh clears suspension.
func (s *OrderService) Refresh(ctx context.Context, actor entity.Actor) ([]OrderView, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		if apperror.IsSubscriptionInactive(err) {
			s.board.SetSuspended(true)
		}
		return nil, err
	}

	s.board.SetSuspended(false)
	s.board.Replace(orders)
	return s.views(orders), nil
}

// Orders returns the cached board snapshot and the suspended flag without
// touching the network.
func (s *OrderService) Orders(actor entity.Actor) ([]OrderView, bool) {
	return s.views(s.board.Snapshot()), s.board.Suspended()
}

// Get returns a single cached order.
func (s *OrderService) Get(orderID string) (entity.Order, bool) {
	return s.board.Get(orderID)
}

func (s *OrderService) views(orders []entity.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, s.viewOf(orders[i]))
	}
	return views
}

// Advance moves an order to the requested status, which must be the primary
// next status of the linear chain. Any other target is rejected locally
// before a request is made. An empty target selects the primary action.
func (s *OrderService) Advance(ctx context.Context, actor entity.Actor, orderID string, target enum.OrderStatus) (*OrderView, error) {
	order, err := s.begin(actor, orderID)
	if err != nil {
		return nil, err
	}
	defer s.board.End(orderID)

	primary, ok := order.Status.Primary()
	if !ok {
		return nil, apperror.NewBadRequestError(
			fmt.Sprintf("Order in status %s has no next status", order.Status))
	}
	if target == "" {
		target = primary
	}
	if target != primary {
		return nil, apperror.NewBadRequestError(
			fmt.Sprintf("Order cannot move from %s to %s", order.Status, target))
	}

	updated, err := s.repo.UpdateStatus(ctx, orderID, target)
	if err != nil {
		return nil, err
	}

	s.board.Patch(*updated)
	view := s.viewOf(*updated)
	return &view, nil
}

// Cancel cancels an order. Available from any non-terminal status,
// independent of the edit/delete lock.
func (s *OrderService) Cancel(ctx context.Context, actor entity.Actor, orderID string) (*OrderView, error) {
	order, err := s.begin(actor, orderID)
	if err != nil {
		return nil, err
	}
	defer s.board.End(orderID)

	if !order.CanCancel() {
		return nil, apperror.NewBadRequestError(
			fmt.Sprintf("Order in status %s cannot be cancelled", order.Status))
	}

	updated, err := s.repo.UpdateStatus(ctx, orderID, enum.OrderStatusCancelled)
	if err != nil {
		return nil, err
	}

	s.board.Patch(*updated)
	view := s.viewOf(*updated)
	return &view, nil
}

// RecordPayment validates and submits a payment capture. Cash captures must
// cover the order total; the change is derived here and sent with the
// request. Validation failures never reach the network.
func (s *OrderService) RecordPayment(ctx context.Context, actor entity.Actor, orderID string, input PaymentInput) (*OrderView, error) {
	order, err := s.begin(actor, orderID)
	if err != nil {
		return nil, err
	}
	defer s.board.End(orderID)

	if !order.CanRecordPayment() {
		if order.Status == enum.OrderStatusCancelled {
			return nil, apperror.NewBadRequestError("Cancelled orders cannot accept payment")
		}
		return nil, apperror.NewBadRequestError("Payment has already been captured for this order")
	}

	capture, err := buildCapture(order.Total, input)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.RecordPayment(ctx, orderID, capture)
	if err != nil {
		return nil, err
	}

	s.board.Patch(*updated)
	view := s.viewOf(*updated)
	return &view, nil
}

// Delete removes an order that is not yet locked. The row leaves the board
// only after the order service confirms.
func (s *OrderService) Delete(ctx context.Context, actor entity.Actor, orderID string) error {
	order, err := s.begin(actor, orderID)
	if err != nil {
		return err
	}
	defer s.board.End(orderID)

	if !order.CanDelete() {
		return apperror.NewBadRequestError("Order can no longer be deleted")
	}

	if err := s.repo.Delete(ctx, orderID); err != nil {
		return err
	}

	s.board.Remove(orderID)
	return nil
}

// begin runs the shared pre-mutation checks: suspension gate, existence, and
// the per-order in-flight marker. Callers must End the marker when done.
func (s *OrderService) begin(actor entity.Actor, orderID string) (entity.Order, error) {
	if s.board.Suspended() && !actor.Privileged() {
		return entity.Order{}, apperror.ErrSubscriptionInactive
	}

	order, ok := s.board.Get(orderID)
	if !ok {
		return entity.Order{}, apperror.NewNotFoundError("Order")
	}

	if !s.board.Begin(orderID) {
		return entity.Order{}, apperror.NewConflictError("Another update for this order is still in progress")
	}
	return order, nil
}

// buildCapture turns the raw form input into a validated capture. Cash
// requires a parseable amount covering the total; other methods submit the
// method alone.
func buildCapture(total int64, input PaymentInput) (entity.PaymentCapture, error) {
	method := enum.ParsePaymentMethod(input.Method)
	if method == enum.PaymentMethodUnset || method == enum.PaymentMethodPending {
		return entity.PaymentCapture{}, apperror.NewValidationError("payment_method", "Payment method is required")
	}

	if method != enum.PaymentMethodCash {
		return entity.NewCapture(method), nil
	}

	raw := strings.TrimSpace(input.AmountReceived)
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return entity.PaymentCapture{}, apperror.NewValidationError("amount_received",
			fmt.Sprintf("Amount received must be at least %s", money.Rs(total)))
	}
	return entity.NewCashCapture(total, money.ToPaisa(amount))
}
