package repository

import (
	"context"

	"github.com/hospitalia/almacen-api/internal/domain/entity"
)

// LowStockRow resultado crudo de la consulta de ítems bajo punto de reorden.
type LowStockRow struct {
	InventoryID       string
	ItemID            string
	SKU               string
	ItemName          string
	StorageLocationID string
	Quantity          int64
	ReorderPoint      int64
}

// InventoryRepository define el puerto de persistencia para filas de
// inventario. Los métodos *ForUpdate solo tienen sentido dentro de una
// transacción (TxRunner); bloquean la fila hasta el commit/rollback.
type InventoryRepository interface {
	// Get devuelve la fila del par (item, ubicación) o nil si no existe.
	Get(itemID, storageLocationID string) (*entity.Inventory, error)
	GetByID(id string) (*entity.Inventory, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) o devuelve nil si no existe.
	GetForUpdate(itemID, storageLocationID string) (*entity.Inventory, error)
	// CreateZero crea la fila con cantidad 0 si no existe y la devuelve
	// bloqueada. Idempotente frente a creaciones concurrentes del mismo par.
	CreateZero(itemID, storageLocationID string) (*entity.Inventory, error)
	// UpdateQuantity persiste Quantity y LastStockCheck de una fila existente.
	UpdateQuantity(inv *entity.Inventory) error
	ListByLocation(storageLocationID string, limit, offset int) ([]*entity.Inventory, error)

	// ListBelowReorderPoint devuelve las filas cuya cantidad actual está en o
	// por debajo del punto de reorden de su ítem, mayor déficit primero.
	ListBelowReorderPoint(ctx context.Context) ([]LowStockRow, error)
}
