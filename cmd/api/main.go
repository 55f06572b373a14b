package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-pharmacy-pos/internal/config"
	"go-pharmacy-pos/internal/handler"
	"go-pharmacy-pos/internal/metrics"
	"go-pharmacy-pos/internal/middleware"
	"go-pharmacy-pos/internal/repository"
	"go-pharmacy-pos/internal/seed"
	"go-pharmacy-pos/internal/service"
	"go-pharmacy-pos/internal/ws"
	"go-pharmacy-pos/pkg/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// 1. Load Env & Config
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg, err := config.Load(os.Getenv("PHARMACY_CONFIG"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	taxRate, _ := cfg.TaxRate()
	loc, _ := cfg.Location()

	lg := logger.New(cfg.App.Env)

	// 2. Metrics
	reg := prometheus.NewRegistry()
	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(reg)
	}

	// 3. Setup Store
	store := repository.NewStore()
	medicineRepo := repository.NewMedicineRepo(store)
	customerRepo := repository.NewCustomerRepo(store)
	supplierRepo := repository.NewSupplierRepo(store)
	saleRepo := repository.NewSaleRepo(store)

	if cfg.Seed.Enabled {
		err := seed.Load(seed.Repos{
			Medicines: medicineRepo,
			Customers: customerRepo,
			Suppliers: supplierRepo,
		}, lg)
		if err != nil {
			lg.Warn("seed failed", "err", err)
		}
	}

	// 4. Setup WebSocket Hub
	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	wsHub := ws.NewHub(lg)
	go wsHub.Run(ctx)

	// 5. Dependency Injection (Wiring Layers)
	medicineService := service.NewMedicineService(medicineRepo, wsHub, lg)
	customerService := service.NewCustomerService(customerRepo, lg)
	supplierService := service.NewSupplierService(supplierRepo, medicineRepo, lg)
	saleService := service.NewSaleService(store, saleRepo, service.SaleServiceConfig{
		TaxRate:     taxRate,
		RecentLimit: cfg.Sales.RecentLimit,
	}, wsHub, m, lg)
	dashService := service.NewDashboardService(medicineRepo, customerRepo, saleRepo, nil, loc)
	reportService := service.NewReportService(medicineRepo, saleRepo, nil, loc)

	handlers := &handler.Handlers{
		Medicines: handler.NewMedicineHandler(medicineService),
		Customers: handler.NewCustomerHandler(customerService),
		Suppliers: handler.NewSupplierHandler(supplierService),
		Sales:     handler.NewSaleHandler(saleService),
		Dashboard: handler.NewDashboardHandler(dashService),
		Reports:   handler.NewReportHandler(reportService),
	}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Pharmacy POS v1.0",
	})

	// Middleware
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.Observe(m, lg))

	// 7. Routes
	handlers.Register(app.Group("/api"))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "wsClients": wsHub.ClientCount()})
	})

	if m != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(wsHub.Serve))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.HTTP.Port); err != nil {
			log.Panic(err)
		}
	}()
	lg.Info("server started", "port", cfg.HTTP.Port, "env", cfg.App.Env, "timezone", loc.String())

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	lg.Info("shutting down server")
	stop()
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	lg.Info("server exited")
}
