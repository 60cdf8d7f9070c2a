package service

import (
	"fmt"
	"log"
	"strings"

	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/entity"
	"github.com/zaiqahq/zaiqa-dashboard/pkg/apperror"
	"github.com/zaiqahq/zaiqa-dashboard/pkg/money"
	"github.com/zaiqahq/zaiqa-dashboard/pkg/printer"
)

// PrintMode selects the document kind.
type PrintMode string

const (
	// ModeBill prints a pre-payment bill.
	ModeBill PrintMode = "bill"
	// ModeReceipt prints a post-payment receipt.
	ModeReceipt PrintMode = "receipt"
	// ModeAuto resolves to receipt once payment has been received, bill
	// otherwise.
	ModeAuto PrintMode = "auto"
)

// ParsePrintMode parses a raw mode string, defaulting to auto.
func ParsePrintMode(raw string) (PrintMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "auto":
		return ModeAuto, nil
	case "bill":
		return ModeBill, nil
	case "receipt":
		return ModeReceipt, nil
	}
	return "", apperror.NewBadRequestError(fmt.Sprintf("Unknown print mode %q", raw))
}

// PrinterService composes bills and receipts from cached orders and sends
// them to the thermal printer.
type PrinterService struct {
	printer     printer.Printer
	orders      *OrderService
	header      entity.ReceiptHeader
	printerType string
	width       int
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, orders *OrderService, header entity.ReceiptHeader, printerType string, width int) *PrinterService {
	if width <= 0 {
		width = 32
	}
	return &PrinterService{
		printer:     p,
		orders:      orders,
		header:      header,
		printerType: printerType,
		width:       width,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer. The composed document is
// returned so the handler can show it as JSON when no printer is attached.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header:       s.header,
		Kind:         "RECEIPT",
		OrderNo:      "TEST-001",
		Date:         "Test Date",
		Customer:     "Walk-in",
		PaymentLabel: "CASH",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Qty: 1, UnitPrice: 10, Total: 10},
			{Name: "Test Item 2", Qty: 2, UnitPrice: 5, Total: 10},
		},
		Subtotal:     20,
		Total:        20,
		CashReceived: 20,
	}

	data := FormatReceipt(receipt, s.width)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}
	return receipt, nil
}

// PrintOrder composes the bill or receipt for a cached order and prints it.
// The composed document is returned alongside any print error.
func (s *PrinterService) PrintOrder(actor entity.Actor, orderID string, mode PrintMode) (*entity.Receipt, error) {
	order, ok := s.orders.Get(orderID)
	if !ok {
		return nil, apperror.NewNotFoundError("Order")
	}

	receipt := ComposeReceipt(&order, s.header, mode)

	data := FormatReceipt(receipt, s.width)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (order %s): %v", orderID, err)
		return receipt, fmt.Errorf("failed to print %s: %w", strings.ToLower(receipt.Kind), err)
	}
	return receipt, nil
}

// ComposeReceipt builds the printable document from order data. Pure and
// deterministic: identical input yields an identical document, the only
// timestamp being the order's own creation time.
func ComposeReceipt(order *entity.Order, header entity.ReceiptHeader, mode PrintMode) *entity.Receipt {
	if mode == ModeAuto {
		if order.AmountReceived > 0 {
			mode = ModeReceipt
		} else {
			mode = ModeBill
		}
	}

	kind := "BILL"
	if mode == ModeReceipt {
		kind = "RECEIPT"
	}

	customer := order.CustomerName
	if customer == "" {
		customer = "Walk-in"
	}

	r := &entity.Receipt{
		Header:       header,
		Kind:         kind,
		OrderNo:      strings.TrimPrefix(order.ID, "ORD-"),
		Date:         order.CreatedAt.Format("2006-01-02 15:04"),
		Customer:     customer,
		OrderType:    order.OrderType,
		PaymentLabel: order.PaymentMethod.Label(),
		Subtotal:     money.ToRupees(order.Subtotal),
		Discount:     money.ToRupees(order.DiscountAmount),
		Total:        money.ToRupees(order.Total),
	}

	for _, item := range order.Items {
		r.Items = append(r.Items, entity.ReceiptItem{
			Name:      item.Name,
			Qty:       item.Qty,
			UnitPrice: money.ToRupees(item.UnitPrice),
			Total:     money.ToRupees(item.UnitPrice * int64(item.Qty)),
		})
	}

	if mode == ModeReceipt && order.AmountReceived > 0 {
		r.CashReceived = money.ToRupees(order.AmountReceived)
		r.Change = money.ToRupees(order.AmountReturned)
	}
	return r
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt, width int) []byte {
	doc := printer.NewDocument(width)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.BusinessName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}

	doc.Text(r.Kind).
		SetAlign(printer.AlignLeft).
		Separator('-')

	// Order info
	doc.KeyValue("Order:", r.OrderNo).
		KeyValue("Date:", r.Date).
		KeyValue("Customer:", r.Customer)

	if r.OrderType != "" {
		doc.KeyValue("Type:", r.OrderType)
	}
	doc.KeyValue("Payment:", r.PaymentLabel)

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.Text(item.Name)
		doc.KeyValue(fmt.Sprintf("  %d x %s", item.Qty, amount(item.UnitPrice)), amount(item.Total))
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", amount(r.Subtotal))
	if r.Discount > 0 {
		doc.KeyValue("Discount:", amount(r.Discount))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", "Rs "+amount(r.Total)).
		SetBold(false)

	if r.CashReceived > 0 {
		doc.KeyValue("Cash:", amount(r.CashReceived))
		doc.KeyValue("Change:", amount(r.Change))
	}

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for your order!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// amount renders a rupee figure with the shared monetary formatting.
func amount(rupees float64) string {
	return money.Format(money.ToPaisa(rupees))
}
