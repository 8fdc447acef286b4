package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hospitalia/almacen-api/internal/application/inventory"
	"github.com/hospitalia/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC      *usecase.ItemUseCase
	WarehouseUC *usecase.WarehouseUseCase
	Ledger      *inventory.LedgerUseCase
	StockQuery  *inventory.StockQueryUseCase
}

// Router registra las rutas de la API. La autenticación corre aguas arriba
// (gateway); la identidad del actor llega en X-Actor-Id.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de ítems
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)

	// Jerarquía almacén → zona → ubicación
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Post("/", warehouseHandler.CreateWarehouse)
	warehouses.Get("/", warehouseHandler.ListWarehouses)
	warehouses.Post("/:warehouseID/zones", warehouseHandler.CreateZone)
	warehouses.Get("/:warehouseID/zones", warehouseHandler.ListZones)
	api.Post("/zones/:zoneID/locations", warehouseHandler.CreateLocation)
	api.Get("/zones/:zoneID/locations", warehouseHandler.ListLocations)

	// Motor de movimientos y consultas de stock
	stock := api.Group("/stock")
	inventoryHandler := NewInventoryHandler(deps.Ledger, deps.StockQuery)
	stock.Post("/movements", inventoryHandler.RegisterMovement)
	stock.Post("/transfers", inventoryHandler.Transfer)
	stock.Get("/inventory", inventoryHandler.GetInventory)
	stock.Get("/locations/:locationID/inventory", inventoryHandler.ListByLocation)
	stock.Get("/inventory/:inventoryID/movements", inventoryHandler.ListMovements)
	stock.Get("/inventory/:inventoryID/consistency", inventoryHandler.CheckConsistency)
	stock.Get("/low", inventoryHandler.LowStock)
}
