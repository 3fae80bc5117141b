package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/orders"
	"github.com/jhoicas/almacen-api/internal/domain/validation"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/almacen-api/internal/interfaces/http"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("primary_material", cfg.Warehouse.PrimaryMaterial).
		Str("primary_location", cfg.Warehouse.PrimaryLocation).
		Msg("iniciando aplicación")

	rules := validation.Rules{
		PrimaryMaterial: cfg.Warehouse.PrimaryMaterial,
		PrimaryLocation: cfg.Warehouse.PrimaryLocation,
	}

	primaryRepo := memory.NewPrimaryRecordRepository()
	pseudoRepo := memory.NewPseudoRecordRepository()
	orderRepo := memory.NewOrderRepository()
	activityRepo := memory.NewActivityRepository()
	txRunner := memory.NewTxRunner(primaryRepo, pseudoRepo, orderRepo)

	inventoryUC := inventory.NewUseCase(primaryRepo, pseudoRepo, activityRepo, rules, log)
	fulfillUC := orders.NewFulfillOrderUseCase(txRunner, activityRepo, cfg.Warehouse.PrimaryLocation, log)
	orderUC := orders.NewOrderUseCase(orderRepo, activityRepo, fulfillUC,
		cfg.Warehouse.PrimaryMaterial, cfg.Warehouse.AutoFulfill, log)
	dashboardUC := analytics.NewDashboardUseCase(primaryRepo, pseudoRepo, orderRepo)
	activityUC := analytics.NewActivityUseCase(activityRepo)

	if cfg.Warehouse.SeedDemo {
		if err := seedDemoData(primaryRepo, pseudoRepo, orderRepo, activityRepo, cfg.Warehouse); err != nil {
			log.Fatal().Err(err).Msg("cargar datos de demostración")
		}
		log.Info().Msg("datos de demostración cargados")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacen API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC: inventoryUC,
		OrderUC:     orderUC,
		FulfillUC:   fulfillUC,
		DashboardUC: dashboardUC,
		ActivityUC:  activityUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
