package enum

import (
	"encoding/json"
	"strings"
)

// PaymentMethod records how an order was (or will be) paid. The zero value
// means payment has not been decided yet and displays as "To be paid".
type PaymentMethod string

const (
	PaymentMethodUnset     PaymentMethod = ""
	PaymentMethodCash      PaymentMethod = "CASH"
	PaymentMethodCard      PaymentMethod = "CARD"
	PaymentMethodOnline    PaymentMethod = "ONLINE"
	PaymentMethodFoodpanda PaymentMethod = "FOODPANDA"
	// PaymentMethodPending marks cash-on-delivery style orders whose payment
	// is still to be collected even after completion.
	PaymentMethodPending PaymentMethod = "PENDING"
)

// ToBePaidLabel is the display label for orders without a captured payment.
const ToBePaidLabel = "To be paid"

// ParsePaymentMethod normalizes a raw payment method string. The display
// label "To be paid" maps to the pending sentinel; unknown methods are
// carried through unchanged.
func ParsePaymentMethod(raw string) PaymentMethod {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "":
		return PaymentMethodUnset
	case "CASH":
		return PaymentMethodCash
	case "CARD":
		return PaymentMethodCard
	case "ONLINE":
		return PaymentMethodOnline
	case "FOODPANDA":
		return PaymentMethodFoodpanda
	case "PENDING", "TO BE PAID":
		return PaymentMethodPending
	}
	return PaymentMethod(strings.ToUpper(strings.TrimSpace(raw)))
}

// Captured reports whether m denotes an already-captured payment. Captured
// methods lock the order against editing and deletion.
func (m PaymentMethod) Captured() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodOnline, PaymentMethodFoodpanda:
		return true
	}
	return false
}

// Label returns the display label, defaulting to "To be paid" while no
// payment has been captured.
func (m PaymentMethod) Label() string {
	if m == PaymentMethodUnset || m == PaymentMethodPending {
		return ToBePaidLabel
	}
	return string(m)
}

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(m))
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*m = ParsePaymentMethod(str)
	return nil
}
