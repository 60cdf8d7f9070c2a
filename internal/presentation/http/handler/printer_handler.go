package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/zaiqahq/zaiqa-dashboard/internal/application/service"
	"github.com/zaiqahq/zaiqa-dashboard/internal/presentation/http/dto/request"
	"github.com/zaiqahq/zaiqa-dashboard/internal/presentation/http/dto/response"
)

// PrinterHandler handles bill/receipt printing requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status returns printer connection status.
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status", h.printerService.GetStatus())
}

// Test sends a test page to the printer.
func (h *PrinterHandler) Test(c *gin.Context) {
	receipt, err := h.printerService.TestPrint()
	if err != nil {
		// Return the composed document anyway so it can be shown on screen.
		response.OK(c, "Printer unavailable, returning document only", receipt)
		return
	}
	response.OK(c, "Test page printed", receipt)
}

// PrintOrder prints the bill or receipt for an order.
func (h *PrinterHandler) PrintOrder(c *gin.Context) {
	actor, ok := GetActor(c)
	if !ok {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.PrintRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.BadRequest(c, "Invalid request body")
		return
	}

	mode, err := service.ParsePrintMode(req.Mode)
	if err != nil {
		response.Error(c, err)
		return
	}

	receipt, err := h.printerService.PrintOrder(actor, c.Param("id"), mode)
	if err != nil {
		if receipt != nil {
			response.OK(c, "Printer unavailable, returning document only", receipt)
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, "Document printed", receipt)
}
