// Package upstream implements the order repository against the tenant's
// REST order service.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/entity"
	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/enum"
	"github.com/zaiqahq/zaiqa-dashboard/pkg/apperror"
	"github.com/zaiqahq/zaiqa-dashboard/pkg/money"
)

// Config holds connection settings for the order service.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// OrderRepository talks to the order service over HTTP.
type OrderRepository struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewOrderRepository creates a repository client for the order service.
func NewOrderRepository(cfg Config) *OrderRepository {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &OrderRepository{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// --- wire payloads ---

// envelope is the order service's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

// orderPayload mirrors the order rows as the service sends them. The row may
// carry its key as "id", "_id", or both; both forms name the same logical
// order and are collapsed here.
type orderPayload struct {
	ID              string        `json:"id"`
	AltID           string        `json:"_id"`
	Status          string        `json:"status"`
	Source          string        `json:"source"`
	PaymentMethod   string        `json:"paymentMethod"`
	AmountReceived  *float64      `json:"paymentAmountReceived"`
	AmountReturned  *float64      `json:"paymentAmountReturned"`
	Items           []itemPayload `json:"items"`
	Subtotal        float64       `json:"subtotal"`
	DiscountAmount  float64       `json:"discountAmount"`
	Total           float64       `json:"total"`
	CustomerName    string        `json:"customerName"`
	CustomerPhone   string        `json:"customerPhone"`
	DeliveryAddress string        `json:"deliveryAddress"`
	ExternalOrderID string        `json:"externalOrderId"`
	OrderType       string        `json:"orderType"`
	CreatedAt       time.Time     `json:"createdAt"`
}

type itemPayload struct {
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
}

func (p *orderPayload) toEntity() entity.Order {
	id := p.ID
	if id == "" {
		id = p.AltID
	}
	o := entity.Order{
		ID:              id,
		Status:          enum.ParseOrderStatus(p.Status),
		Source:          enum.ParseOrderSource(p.Source),
		PaymentMethod:   enum.ParsePaymentMethod(p.PaymentMethod),
		Subtotal:        money.ToPaisa(p.Subtotal),
		DiscountAmount:  money.ToPaisa(p.DiscountAmount),
		Total:           money.ToPaisa(p.Total),
		CustomerName:    p.CustomerName,
		CustomerPhone:   p.CustomerPhone,
		DeliveryAddress: p.DeliveryAddress,
		ExternalOrderID: p.ExternalOrderID,
		OrderType:       p.OrderType,
		CreatedAt:       p.CreatedAt,
	}
	if p.AmountReceived != nil {
		o.AmountReceived = money.ToPaisa(*p.AmountReceived)
	}
	if p.AmountReturned != nil {
		o.AmountReturned = money.ToPaisa(*p.AmountReturned)
	}
	for _, it := range p.Items {
		o.Items = append(o.Items, entity.OrderItem{
			Name:      it.Name,
			Qty:       it.Qty,
			UnitPrice: money.ToPaisa(it.UnitPrice),
		})
	}
	return o
}

// paymentPayload is the capture request body. Amount fields are present for
// cash captures only.
type paymentPayload struct {
	PaymentMethod  string   `json:"paymentMethod"`
	AmountReceived *float64 `json:"amountReceived,omitempty"`
	AmountReturned *float64 `json:"amountReturned,omitempty"`
}

// --- repository operations ---

// List fetches the tenant's orders. A subscription-inactive response maps to
// the distinguished apperror.ErrSubscriptionInactive.
func (r *OrderRepository) List(ctx context.Context) ([]entity.Order, error) {
	env, err := r.do(ctx, http.MethodGet, "/orders", nil, false)
	if err != nil {
		return nil, err
	}

	var payloads []orderPayload
	if err := json.Unmarshal(env.Data, &payloads); err != nil {
		return nil, apperror.NewUpstreamError(http.StatusBadGateway, "Order service returned a malformed order list")
	}

	orders := make([]entity.Order, 0, len(payloads))
	for i := range payloads {
		orders = append(orders, payloads[i].toEntity())
	}
	return orders, nil
}

// UpdateStatus requests a status transition. The service validates the
// transition authoritatively.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID string, status enum.OrderStatus) (*entity.Order, error) {
	body := map[string]string{"status": status.String()}
	env, err := r.do(ctx, http.MethodPatch, "/orders/"+orderID+"/status", body, true)
	if err != nil {
		return nil, err
	}
	return decodeOrder(env.Data)
}

// RecordPayment submits a payment capture.
func (r *OrderRepository) RecordPayment(ctx context.Context, orderID string, capture entity.PaymentCapture) (*entity.Order, error) {
	body := paymentPayload{PaymentMethod: capture.Method.String()}
	if capture.Cash() {
		received := money.ToRupees(capture.AmountReceived)
		returned := money.ToRupees(capture.AmountReturned)
		body.AmountReceived = &received
		body.AmountReturned = &returned
	}
	env, err := r.do(ctx, http.MethodPatch, "/orders/"+orderID+"/payment", body, true)
	if err != nil {
		return nil, err
	}
	return decodeOrder(env.Data)
}

// Delete removes an order.
func (r *OrderRepository) Delete(ctx context.Context, orderID string) error {
	_, err := r.do(ctx, http.MethodDelete, "/orders/"+orderID, nil, true)
	return err
}

func decodeOrder(data []byte) (*entity.Order, error) {
	var payload orderPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, apperror.NewUpstreamError(http.StatusBadGateway, "Order service returned a malformed order")
	}
	order := payload.toEntity()
	return &order, nil
}

// do performs one request against the order service. Mutations carry an
// Idempotency-Key so a retried request cannot apply twice server-side.
func (r *OrderRepository) do(ctx context.Context, method, path string, body interface{}, mutation bool) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+r.apiKey)
	}
	if mutation {
		req.Header.Set("Idempotency-Key", uuid.New().String())
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, apperror.NewUpstreamError(http.StatusBadGateway,
			fmt.Sprintf("Order service unreachable: %v", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.NewUpstreamError(http.StatusBadGateway, "Failed to read order service response")
	}

	var env envelope
	if len(raw) > 0 {
		// A decode failure on an error response still surfaces the status.
		_ = json.Unmarshal(raw, &env)
	}

	if resp.StatusCode == http.StatusPaymentRequired || env.Code == "SUBSCRIPTION_INACTIVE" {
		return nil, apperror.ErrSubscriptionInactive
	}
	if resp.StatusCode >= 400 {
		return nil, apperror.NewUpstreamError(resp.StatusCode, env.Message)
	}
	return &env, nil
}
