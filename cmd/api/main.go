package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-farmpet-api/internal/config"
	"go-farmpet-api/internal/handler"
	"go-farmpet-api/internal/logger"
	"go-farmpet-api/internal/middleware"
	"go-farmpet-api/internal/repository"
	"go-farmpet-api/internal/service"
	"go-farmpet-api/internal/ws"
	"go-farmpet-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
)

func main() {
	// 1. Load Config
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("failed to load config")
	}
	log := logger.New(cfg)

	// 2. Setup Database
	db, err := database.ConnectDB(cfg.Database, logger.NewGormLogger(log, cfg))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	log.Info().Msg("database connection established")

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub(log)
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	medicationRepo := repository.NewMedicationRepo(db)
	clientRepo := repository.NewClientRepo(db)
	petRepo := repository.NewPetRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	uow := repository.NewUnitOfWork(db)

	purchaseService := service.NewPurchaseService(uow, purchaseRepo, clientRepo, medicationRepo, petRepo, wsHub, log)
	catalogService := service.NewCatalogService(medicationRepo, clientRepo, petRepo)
	dashService := service.NewDashboardService(purchaseRepo, cfg.Inventory.LowStockThreshold)

	handlers := handler.Handlers{
		Purchase:  handler.NewPurchaseHandler(purchaseService),
		Catalog:   handler.NewCatalogHandler(catalogService),
		Dashboard: handler.NewDashboardHandler(dashService),
	}

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      "FarmPet API v1.0",
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorHandler: middleware.ErrorHandler(log),
	})

	// Middleware
	app.Use(recover.New()) // Panic recovery
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSAllowedOrigins,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok", "ws_clients": wsHub.Count()})
	})

	// 6. Routes
	handler.RegisterRoutes(app.Group("/api/v1"), handlers)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Panic().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Server.Port).Msg("server started")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	wsHub.Stop()

	log.Info().Msg("server exited")
}
