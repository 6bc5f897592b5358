package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-sales-rest/internal/config"
	"go-sales-rest/internal/handler"
	"go-sales-rest/internal/middleware"
	"go-sales-rest/internal/model"
	"go-sales-rest/internal/repository"
	"go-sales-rest/internal/service"
	"go-sales-rest/internal/ws"
	"go-sales-rest/pkg/database"
	"go-sales-rest/pkg/jwt"
	"go-sales-rest/pkg/telemetry"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Telemetry
	shutdownTelemetry, err := telemetry.Init(context.Background(), cfg.Telemetry.OTLPEndpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		log.Fatalf("Failed to start telemetry: %v", err)
	}

	// 3. Setup Database
	db := database.ConnectDB(cfg.Database)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	clientRepo := repository.NewClientRepo(db)
	employeeRepo := repository.NewEmployeeRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	userRepo := repository.NewUserRepo(db)
	operatorRepo := repository.NewOperatorRepo(db)

	tokens := jwt.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.JWTExpirationHours)*time.Hour)
	authService := service.NewAuthService(operatorRepo, tokens)
	if err := authService.SeedAdmin(context.Background(), cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
		log.Printf("Warning: Failed to seed admin operator: %v", err)
	}

	handlers := handler.Handlers{
		Sale: handler.NewSaleHandler(
			service.NewSaleService(productRepo, clientRepo, saleRepo, db, wsHub),
			service.NewReportService(saleRepo),
		),
		Product:   handler.NewProductHandler(service.NewProductService(productRepo, wsHub)),
		Client:    handler.NewClientHandler(service.NewClientService(clientRepo)),
		Employee:  handler.NewEmployeeHandler(service.NewEmployeeService(employeeRepo)),
		User:      handler.NewUserHandler(service.NewUserService(userRepo)),
		Auth:      handler.NewAuthHandler(authService),
		Dashboard: handler.NewDashboardHandler(service.NewDashboardService(saleRepo)),
		Role:      handler.NewRoleHandler(model.RolePrivileges),
	}

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:      cfg.Server.AppName,
		ErrorHandler: handler.ErrorHandler,
	})

	// Middleware
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${locals:requestid} | ${status} | ${latency} | ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.Tracing())

	// 7. Routes
	app.Use("/ws", ws.UpgradeRequired)
	app.Get("/ws", wsHub.Handler())

	if !cfg.Auth.Required {
		log.Println("Warning: AUTH_REQUIRED=false, write routes are open")
	}
	handler.RegisterRoutes(app, handlers, middleware.NewGuard(authService, cfg.Auth.Required))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := shutdownTelemetry(ctx); err != nil {
		log.Printf("Telemetry shutdown: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("Server exited")
}
