package request

// UpdateStatusRequest carries the requested status transition. An empty
// status selects the primary next action.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// RecordPaymentRequest is the raw payment form submission. AmountReceived is
// passed through as entered; for cash it must parse as a number covering the
// order total.
type RecordPaymentRequest struct {
	PaymentMethod  string `json:"payment_method" binding:"required"`
	AmountReceived string `json:"amount_received"`
}

// PrintRequest selects the document kind; empty means auto.
type PrintRequest struct {
	Mode string `json:"mode"`
}
