package service

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaiqahq/zaiqa-dashboard/internal/application/state"
	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/entity"
	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/enum"
)

var testHeader = entity.ReceiptHeader{
	BusinessName: "Zaiqa Restaurant",
	Address:      "Main Boulevard, Lahore",
	Phone:        "042-1234567",
}

func sampleOrder() entity.Order {
	return entity.Order{
		ID:            "ORD-000123",
		Status:        enum.OrderStatusReady,
		Source:        enum.SourcePOS,
		PaymentMethod: enum.PaymentMethodUnset,
		Items: []entity.OrderItem{
			{Name: "Chicken Karahi", Qty: 1, UnitPrice: 85000},
			{Name: "Naan", Qty: 4, UnitPrice: 3000},
		},
		Subtotal:       97000,
		DiscountAmount: 0,
		Total:          97000,
		OrderType:      "DINE_IN",
		CreatedAt:      time.Date(2026, 8, 28, 13, 45, 0, 0, time.UTC),
	}
}

func TestParsePrintMode(t *testing.T) {
	for raw, want := range map[string]PrintMode{
		"":        ModeAuto,
		"auto":    ModeAuto,
		"bill":    ModeBill,
		"RECEIPT": ModeReceipt,
	} {
		got, err := ParsePrintMode(raw)
		require.NoError(t, err, "raw %q", raw)
		assert.Equal(t, want, got, "raw %q", raw)
	}

	_, err := ParsePrintMode("invoice")
	assert.Error(t, err)
}

func TestComposeReceiptAutoResolution(t *testing.T) {
	unpaid := sampleOrder()
	paid := sampleOrder()
	paid.PaymentMethod = enum.PaymentMethodCash
	paid.AmountReceived = 100000
	paid.AmountReturned = 3000

	bill := ComposeReceipt(&unpaid, testHeader, ModeAuto)
	assert.Equal(t, "BILL", bill.Kind)
	assert.Zero(t, bill.CashReceived)
	assert.Equal(t, "To be paid", bill.PaymentLabel)

	receipt := ComposeReceipt(&paid, testHeader, ModeAuto)
	assert.Equal(t, "RECEIPT", receipt.Kind)
	assert.Equal(t, 1000.0, receipt.CashReceived)
	assert.Equal(t, 30.0, receipt.Change)
	assert.Equal(t, "CASH", receipt.PaymentLabel)
}

func TestComposeReceiptFields(t *testing.T) {
	order := sampleOrder()

	r := ComposeReceipt(&order, testHeader, ModeBill)

	assert.Equal(t, "000123", r.OrderNo, "display order number drops the ORD- prefix")
	assert.Equal(t, "2026-08-28 13:45", r.Date)
	assert.Equal(t, "Walk-in", r.Customer, "anonymous counter orders default the customer name")
	assert.Equal(t, "DINE_IN", r.OrderType)
	require.Len(t, r.Items, 2)
	assert.Equal(t, 30.0, r.Items[1].UnitPrice)
	assert.Equal(t, 120.0, r.Items[1].Total)
	assert.Equal(t, 970.0, r.Subtotal)
	assert.Equal(t, 970.0, r.Total)
}

func TestComposeReceiptNamedCustomer(t *testing.T) {
	order := sampleOrder()
	order.CustomerName = "Ahmed"

	r := ComposeReceipt(&order, testHeader, ModeBill)

	assert.Equal(t, "Ahmed", r.Customer)
}

func TestExplicitModeOverridesPaymentState(t *testing.T) {
	paid := sampleOrder()
	paid.AmountReceived = 97000

	bill := ComposeReceipt(&paid, testHeader, ModeBill)
	assert.Equal(t, "BILL", bill.Kind)
	assert.Zero(t, bill.CashReceived, "bill mode omits cash lines even when paid")

	receipt := ComposeReceipt(&paid, testHeader, ModeReceipt)
	assert.Equal(t, "RECEIPT", receipt.Kind)
	assert.Equal(t, 970.0, receipt.CashReceived)
}

func TestFormatReceiptDeterministic(t *testing.T) {
	order := sampleOrder()

	first := FormatReceipt(ComposeReceipt(&order, testHeader, ModeAuto), 32)
	second := FormatReceipt(ComposeReceipt(&order, testHeader, ModeAuto), 32)

	assert.True(t, bytes.Equal(first, second), "same order must render identical bytes")
}

func TestFormatReceiptContent(t *testing.T) {
	order := sampleOrder()
	order.DiscountAmount = 10000
	order.Total = 87000
	order.PaymentMethod = enum.PaymentMethodCash
	order.AmountReceived = 100000
	order.AmountReturned = 13000

	data := FormatReceipt(ComposeReceipt(&order, testHeader, ModeAuto), 32)

	assert.Contains(t, string(data), "Zaiqa Restaurant")
	assert.Contains(t, string(data), "RECEIPT")
	assert.Contains(t, string(data), "Discount:")
	assert.Contains(t, string(data), "Rs 870")
	assert.Contains(t, string(data), "Cash:")
	assert.Contains(t, string(data), "Change:")
	assert.Contains(t, string(data), "130", "change uses the shared monetary formatting")
	assert.Contains(t, string(data), "Thank you for your order!")
}

func TestFormatReceiptOmitsZeroDiscountAndCash(t *testing.T) {
	order := sampleOrder()

	data := FormatReceipt(ComposeReceipt(&order, testHeader, ModeAuto), 32)

	assert.NotContains(t, string(data), "Discount:")
	assert.NotContains(t, string(data), "Cash:")
	assert.NotContains(t, string(data), "Change:")
	assert.Contains(t, string(data), "BILL")
}

// fakePrinter records what was sent and can be made to fail.
type fakePrinter struct {
	printed [][]byte
	err     error
}

func (f *fakePrinter) Print(data []byte) error {
	if f.err != nil {
		return f.err
	}
	f.printed = append(f.printed, data)
	return nil
}

func (f *fakePrinter) Close() error      { return nil }
func (f *fakePrinter) IsConnected() bool { return f.err == nil }

func newPrinterService(p *fakePrinter, orders ...entity.Order) *PrinterService {
	board := state.NewBoard()
	board.Replace(orders)
	svc := NewOrderService(&fakeOrderRepo{}, board)
	return NewPrinterService(p, svc, testHeader, "network", 32)
}

func TestPrintOrder(t *testing.T) {
	p := &fakePrinter{}
	svc := newPrinterService(p, sampleOrder())

	receipt, err := svc.PrintOrder(staff, "ORD-000123", ModeAuto)

	require.NoError(t, err)
	assert.Equal(t, "BILL", receipt.Kind)
	require.Len(t, p.printed, 1)
	assert.Contains(t, string(p.printed[0]), "Zaiqa Restaurant")
}

func TestPrintOrderUnknown(t *testing.T) {
	svc := newPrinterService(&fakePrinter{})

	_, err := svc.PrintOrder(staff, "missing", ModeAuto)

	assert.Error(t, err)
}

func TestPrintOrderReturnsDocumentOnPrinterFailure(t *testing.T) {
	p := &fakePrinter{err: errors.New("device not connected")}
	svc := newPrinterService(p, sampleOrder())

	receipt, err := svc.PrintOrder(staff, "ORD-000123", ModeAuto)

	require.Error(t, err)
	require.NotNil(t, receipt, "composed document survives a printer failure")
	assert.Equal(t, "BILL", receipt.Kind)
}

func TestGetStatus(t *testing.T) {
	svc := newPrinterService(&fakePrinter{})

	status := svc.GetStatus()

	assert.True(t, status.Configured)
	assert.True(t, status.Connected)
	assert.Equal(t, "network", status.Type)
}
