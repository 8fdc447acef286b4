package repository

import (
	"time"

	"github.com/hospitalia/almacen-api/internal/domain/entity"
)

// StockMovementRepository define el puerto de persistencia del libro de
// movimientos. Las entradas son append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	ListByInventory(inventoryID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListByItem(itemID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	// Chain devuelve la cadena completa de una fila de inventario en orden de
	// fecha ascendente, para verificación de consistencia.
	Chain(inventoryID string) ([]*entity.StockMovement, error)
}
