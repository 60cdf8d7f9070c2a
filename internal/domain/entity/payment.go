package entity

import (
	"fmt"

	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/enum"
	"github.com/zaiqahq/zaiqa-dashboard/pkg/apperror"
	"github.com/zaiqahq/zaiqa-dashboard/pkg/money"
)

// PaymentCapture is a validated payment submission against an order.
// Amount fields are set only for cash captures; other methods submit the
// method alone.
type PaymentCapture struct {
	Method         enum.PaymentMethod
	AmountReceived int64 // paisa
	AmountReturned int64 // paisa, derived, never negative
}

// NewCashCapture validates a cash payment against the order total and
// derives the change. The amount must cover the total; anything short is a
// local validation error and no request may be made.
func NewCashCapture(total, amountReceived int64) (PaymentCapture, error) {
	if amountReceived < total {
		return PaymentCapture{}, apperror.NewValidationError("amount_received",
			fmt.Sprintf("Amount received must be at least %s", money.Rs(total)))
	}
	return PaymentCapture{
		Method:         enum.PaymentMethodCash,
		AmountReceived: amountReceived,
		AmountReturned: amountReceived - total,
	}, nil
}

// NewCapture builds a non-cash capture carrying only the method.
func NewCapture(method enum.PaymentMethod) PaymentCapture {
	return PaymentCapture{Method: method}
}

// Cash reports whether the capture carries amount fields.
func (p PaymentCapture) Cash() bool {
	return p.Method == enum.PaymentMethodCash
}
