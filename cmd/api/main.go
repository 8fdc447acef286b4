package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appinventory "github.com/hospitalia/almacen-api/internal/application/inventory"
	"github.com/hospitalia/almacen-api/internal/application/usecase"
	"github.com/hospitalia/almacen-api/internal/domain/event"
	"github.com/hospitalia/almacen-api/internal/infrastructure/eventbus"
	"github.com/hospitalia/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/hospitalia/almacen-api/internal/interfaces/http"
	"github.com/hospitalia/almacen-api/pkg/config"
	"github.com/hospitalia/almacen-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	itemRepo := postgres.NewItemRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	bus := eventbus.New(log)
	ledgerUC := appinventory.NewLedgerUseCase(txRunner, itemRepo, warehouseRepo, bus)
	queryUC := appinventory.NewStockQueryUseCase(inventoryRepo, movementRepo)
	itemUC := usecase.NewItemUseCase(itemRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)

	monitor := appinventory.NewLowStockMonitor(inventoryRepo, itemRepo, bus, log)
	monitor.Start()

	// Las alertas emitidas por el monitor se registran; otros consumidores
	// (correo, tickets de compra) se suscriben al mismo tópico.
	bus.Subscribe(event.TopicLowStock, func(ctx context.Context, payload any) {
		if alert, ok := payload.(event.LowStockAlert); ok {
			log.Warn().
				Str("sku", alert.SKU).
				Str("item", alert.ItemName).
				Int64("quantity", alert.CurrentQuantity).
				Int64("reorder_point", alert.ReorderPoint).
				Msg("stock bajo")
		}
	})

	// Resumen de arranque: cuántos ítems ya están bajo punto de reorden.
	if rows, err := queryUC.ListBelowReorderPoint(ctx); err != nil {
		log.Warn().Err(err).Msg("no se pudo leer el estado de reorden inicial")
	} else {
		log.Info().Int("items_bajo_reorden", len(rows)).Msg("estado inicial del inventario")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/ready", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "db unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ready"})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ItemUC:      itemUC,
		WarehouseUC: warehouseUC,
		Ledger:      ledgerUC,
		StockQuery:  queryUC,
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
