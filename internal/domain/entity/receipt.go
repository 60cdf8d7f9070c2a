package entity

// ReceiptHeader holds the business header printed at the top of a document.
type ReceiptHeader struct {
	BusinessName string `json:"business_name"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// ReceiptItem is a single printed line item.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable bill or receipt. It is
// composed deterministically from order data at print time; the only
// timestamp it carries is the order's own creation time.
type Receipt struct {
	Header       ReceiptHeader `json:"header"`
	Kind         string        `json:"kind"` // "BILL" or "RECEIPT"
	OrderNo      string        `json:"order_no"`
	Date         string        `json:"date"`
	Customer     string        `json:"customer"`
	OrderType    string        `json:"order_type,omitempty"`
	PaymentLabel string        `json:"payment_label"`
	Items        []ReceiptItem `json:"items"`
	Subtotal     float64       `json:"subtotal"`
	Discount     float64       `json:"discount"`
	Total        float64       `json:"total"`
	CashReceived float64       `json:"cash_received,omitempty"`
	Change       float64       `json:"change,omitempty"`
}
