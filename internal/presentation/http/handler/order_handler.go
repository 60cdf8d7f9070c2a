package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/zaiqahq/zaiqa-dashboard/internal/application/service"
	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/enum"
	"github.com/zaiqahq/zaiqa-dashboard/internal/presentation/http/dto/request"
	"github.com/zaiqahq/zaiqa-dashboard/internal/presentation/http/dto/response"
	"github.com/zaiqahq/zaiqa-dashboard/pkg/apperror"
)

// OrderHandler handles order lifecycle HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// orderListPayload is the list response body. Suspended tells the UI to
// switch into read-only mode.
type orderListPayload struct {
	Orders    []service.OrderView `json:"orders"`
	Suspended bool                `json:"suspended"`
}

// List refreshes the board from the order service and returns it. The
// subscription-inactive signal is not an error for the UI: it comes back as
// a successful response with the suspended flag set, so the dashboard can
// render its read-only state.
func (h *OrderHandler) List(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	views, err := h.orderService.Refresh(c.Request.Context(), actor)
	if err != nil {
		if apperror.IsSubscriptionInactive(err) {
			cached, _ := h.orderService.Orders(actor)
			response.OK(c, "Subscription inactive", orderListPayload{Orders: cached, Suspended: true})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Orders retrieved successfully", orderListPayload{Orders: views})
}

// UpdateStatus advances an order along the status chain.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var target enum.OrderStatus
	if req.Status != "" {
		target = enum.ParseOrderStatus(req.Status)
	}

	view, err := h.orderService.Advance(c.Request.Context(), actor, c.Param("id"), target)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", view)
}

// Cancel cancels an order.
func (h *OrderHandler) Cancel(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	view, err := h.orderService.Cancel(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order cancelled successfully", view)
}

// RecordPayment captures a payment against an order.
func (h *OrderHandler) RecordPayment(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.orderService.RecordPayment(c.Request.Context(), actor, c.Param("id"), service.PaymentInput{
		Method:         req.PaymentMethod,
		AmountReceived: req.AmountReceived,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment recorded successfully", view)
}

// Delete removes an order that is not yet locked.
func (h *OrderHandler) Delete(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
