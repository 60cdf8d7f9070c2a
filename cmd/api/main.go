package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/zaiqahq/zaiqa-dashboard/internal/application/service"
	"github.com/zaiqahq/zaiqa-dashboard/internal/application/state"
	"github.com/zaiqahq/zaiqa-dashboard/internal/config"
	"github.com/zaiqahq/zaiqa-dashboard/internal/domain/entity"
	"github.com/zaiqahq/zaiqa-dashboard/internal/infrastructure/upstream"
	"github.com/zaiqahq/zaiqa-dashboard/internal/presentation/http/handler"
	"github.com/zaiqahq/zaiqa-dashboard/internal/presentation/http/routes"
	"github.com/zaiqahq/zaiqa-dashboard/pkg/printer"
	"github.com/zaiqahq/zaiqa-dashboard/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Order service client + board
	orderRepo := upstream.NewOrderRepository(upstream.Config{
		BaseURL: cfg.Upstream.BaseURL,
		APIKey:  cfg.Upstream.APIKey,
		Timeout: cfg.Upstream.Timeout,
	})
	board := state.NewBoard()
	orderService := service.NewOrderService(orderRepo, board)

	// Thermal printer
	thermalPrinter, err := printer.New(printer.Options{
		Type:       cfg.Printer.Type,
		DevicePath: cfg.Printer.USBPath,
		Address:    cfg.Printer.Address,
	})
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.Null()
	}
	printerService := service.NewPrinterService(thermalPrinter, orderService, entity.ReceiptHeader{
		BusinessName: cfg.Business.Name,
		Address:      cfg.Business.Address,
		Phone:        cfg.Business.Phone,
	}, cfg.Printer.Type, cfg.Printer.Width)

	// Initialize handlers
	handlers := &routes.Handlers{
		Order:   handler.NewOrderHandler(orderService),
		Printer: handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
