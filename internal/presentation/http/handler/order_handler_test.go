package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaiqahq/zaiqa-dashboard/internal/application/service"
	"github.com/zaiqahq/zaiqa-dashboard/internal/application/state"
	"github.com/zaiqahq/zaiqa-dashboard/internal/config"
	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/entity"
	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/enum"
	"github.com/zaiqahq/zaiqa-dashboard/internal/presentation/http/handler"
	"github.com/zaiqahq/zaiqa-dashboard/internal/presentation/http/routes"
	"github.com/zaiqahq/zaiqa-dashboard/pkg/apperror"
	"github.com/zaiqahq/zaiqa-dashboard/pkg/printer"
	"github.com/zaiqahq/zaiqa-dashboard/pkg/utils"
)

type stubRepo struct {
	orders       []entity.Order
	listErr      error
	paymentCalls int
}

func (s *stubRepo) List(ctx context.Context) ([]entity.Order, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.orders, nil
}

func (s *stubRepo) UpdateStatus(ctx context.Context, orderID string, status enum.OrderStatus) (*entity.Order, error) {
	return &entity.Order{ID: orderID, Status: status}, nil
}

func (s *stubRepo) RecordPayment(ctx context.Context, orderID string, capture entity.PaymentCapture) (*entity.Order, error) {
	s.paymentCalls++
	return &entity.Order{
		ID:             orderID,
		Status:         enum.OrderStatusReady,
		PaymentMethod:  capture.Method,
		AmountReceived: capture.AmountReceived,
		AmountReturned: capture.AmountReturned,
	}, nil
}

func (s *stubRepo) Delete(ctx context.Context, orderID string) error { return nil }

type testEnv struct {
	router *gin.Engine
	repo   *stubRepo
	board  *state.Board
	token  string
}

func newTestEnv(t *testing.T, orders ...entity.Order) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &stubRepo{orders: orders}
	board := state.NewBoard()
	board.Replace(orders)

	orderSvc := service.NewOrderService(repo, board)
	printerSvc := service.NewPrinterService(printer.Null(), orderSvc,
		entity.ReceiptHeader{BusinessName: "Zaiqa Restaurant"}, "none", 32)

	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	token, err := jwtManager.GenerateAccessToken(uuid.New(), "staff@zaiqa.pk", "staff", uuid.New())
	require.NoError(t, err)

	cfg := &config.Config{
		App:       config.AppConfig{Name: "zaiqa-dashboard"},
		RateLimit: config.RateLimitConfig{Requests: 100, Duration: 1},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000"},
			AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
		},
	}

	router := routes.Setup(&routes.Handlers{
		Order:   handler.NewOrderHandler(orderSvc),
		Printer: handler.NewPrinterHandler(printerSvc),
	}, &routes.Deps{JWTManager: jwtManager, Cfg: cfg})

	return &testEnv{router: router, repo: repo, board: board, token: token}
}

func (e *testEnv) request(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+e.token)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	}
	return w, decoded
}

func TestListOrders(t *testing.T) {
	env := newTestEnv(t, entity.Order{ID: "o1", Status: enum.OrderStatusReady, Total: 100000})

	w, body := env.request(t, http.MethodGet, "/api/v1/orders", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, false, data["suspended"])
	assert.Len(t, data["orders"], 1)
}

func TestListRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListSuspendedComesBackAsOK(t *testing.T) {
	env := newTestEnv(t, entity.Order{ID: "o1", Status: enum.OrderStatusReady})
	env.repo.listErr = apperror.ErrSubscriptionInactive

	w, body := env.request(t, http.MethodGet, "/api/v1/orders", "")

	require.Equal(t, http.StatusOK, w.Code, "suspension is a mode for the UI, not a request failure")
	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["suspended"])
	assert.Len(t, data["orders"], 1, "cached rows remain readable")
}

func TestUpdateStatusPrimary(t *testing.T) {
	env := newTestEnv(t, entity.Order{ID: "o1", Status: enum.OrderStatusUnprocessed})

	w, body := env.request(t, http.MethodPatch, "/api/v1/orders/o1/status", `{}`)

	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	order := data["order"].(map[string]interface{})
	assert.Equal(t, "PENDING", order["status"])
}

func TestUpdateStatusSkipRejected(t *testing.T) {
	env := newTestEnv(t, entity.Order{ID: "o1", Status: enum.OrderStatusUnprocessed})

	w, body := env.request(t, http.MethodPatch, "/api/v1/orders/o1/status", `{"status": "COMPLETED"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestRecordPaymentValidation(t *testing.T) {
	env := newTestEnv(t, entity.Order{ID: "o1", Status: enum.OrderStatusReady, Total: 100000})

	w, body := env.request(t, http.MethodPost, "/api/v1/orders/o1/payment",
		`{"payment_method": "CASH", "amount_received": "999"}`)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "Amount received must be at least Rs 1000", body["message"])
	assert.Zero(t, env.repo.paymentCalls)
}

func TestRecordPaymentSuccess(t *testing.T) {
	env := newTestEnv(t, entity.Order{ID: "o1", Status: enum.OrderStatusReady, Total: 100000})

	w, body := env.request(t, http.MethodPost, "/api/v1/orders/o1/payment",
		`{"payment_method": "CASH", "amount_received": "1500"}`)

	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	order := data["order"].(map[string]interface{})
	assert.Equal(t, 1500.0, order["amount_received"])
	assert.Equal(t, 500.0, order["amount_returned"])
}

func TestDeleteOrder(t *testing.T) {
	env := newTestEnv(t, entity.Order{ID: "o1", Status: enum.OrderStatusUnprocessed})

	w, _ := env.request(t, http.MethodDelete, "/api/v1/orders/o1", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	_, ok := env.board.Get("o1")
	assert.False(t, ok)
}

func TestDeleteLockedOrder(t *testing.T) {
	env := newTestEnv(t, entity.Order{ID: "o1", Status: enum.OrderStatusReady, Source: enum.SourceFoodpanda})

	w, body := env.request(t, http.MethodDelete, "/api/v1/orders/o1", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Order can no longer be deleted", body["message"])
}

func TestPrintOrderWithoutPrinter(t *testing.T) {
	env := newTestEnv(t, entity.Order{
		ID: "o1", Status: enum.OrderStatusReady, Total: 100000,
		Items: []entity.OrderItem{{Name: "Naan", Qty: 2, UnitPrice: 3000}},
	})

	w, body := env.request(t, http.MethodPost, "/api/v1/orders/o1/print", `{"mode": "bill"}`)

	require.Equal(t, http.StatusOK, w.Code, "the composed document is returned even with no printer attached")
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "BILL", data["kind"])
}

func TestPrinterStatus(t *testing.T) {
	env := newTestEnv(t)

	w, body := env.request(t, http.MethodGet, "/api/v1/printer/status", "")

	require.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, false, data["configured"])
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
