package inventory

import (
	"context"
	"time"

	"github.com/hospitalia/almacen-api/internal/domain"
	"github.com/hospitalia/almacen-api/internal/domain/entity"
	"github.com/hospitalia/almacen-api/internal/domain/ledger"
	"github.com/hospitalia/almacen-api/internal/domain/repository"
)

// StockQueryUseCase expone las lecturas del inventario y del libro de
// movimientos. Solo consultas; toda mutación pasa por LedgerUseCase.
type StockQueryUseCase struct {
	invRepo repository.InventoryRepository
	movRepo repository.StockMovementRepository
}

// NewStockQueryUseCase construye el caso de uso de consultas.
func NewStockQueryUseCase(
	invRepo repository.InventoryRepository,
	movRepo repository.StockMovementRepository,
) *StockQueryUseCase {
	return &StockQueryUseCase{invRepo: invRepo, movRepo: movRepo}
}

// GetInventory devuelve la fila actual del par (ítem, ubicación).
func (uc *StockQueryUseCase) GetInventory(ctx context.Context, itemID, storageLocationID string) (*entity.Inventory, error) {
	if itemID == "" || storageLocationID == "" {
		return nil, domain.ErrMissingField
	}
	inv, err := uc.invRepo.Get(itemID, storageLocationID)
	if err != nil {
		return nil, domain.WrapStorage("consultar inventario", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// ListByLocation lista las filas de inventario de una ubicación.
func (uc *StockQueryUseCase) ListByLocation(ctx context.Context, storageLocationID string, limit, offset int) ([]*entity.Inventory, error) {
	if storageLocationID == "" {
		return nil, domain.ErrMissingField
	}
	list, err := uc.invRepo.ListByLocation(storageLocationID, limit, offset)
	if err != nil {
		return nil, domain.WrapStorage("listar inventario por ubicación", err)
	}
	return list, nil
}

// ListMovements lista el historial de una fila de inventario (fecha descendente).
func (uc *StockQueryUseCase) ListMovements(ctx context.Context, inventoryID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	if inventoryID == "" {
		return nil, domain.ErrMissingField
	}
	list, err := uc.movRepo.ListByInventory(inventoryID, from, to, limit, offset)
	if err != nil {
		return nil, domain.WrapStorage("listar movimientos", err)
	}
	return list, nil
}

// ListMovementsByItem lista el historial de un ítem en todas sus ubicaciones.
func (uc *StockQueryUseCase) ListMovementsByItem(ctx context.Context, itemID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	if itemID == "" {
		return nil, domain.ErrMissingField
	}
	list, err := uc.movRepo.ListByItem(itemID, from, to, limit, offset)
	if err != nil {
		return nil, domain.WrapStorage("listar movimientos por ítem", err)
	}
	return list, nil
}

// ListBelowReorderPoint devuelve las filas en o por debajo del punto de
// reorden de su ítem, mayor déficit primero.
func (uc *StockQueryUseCase) ListBelowReorderPoint(ctx context.Context) ([]repository.LowStockRow, error) {
	rows, err := uc.invRepo.ListBelowReorderPoint(ctx)
	if err != nil {
		return nil, domain.WrapStorage("listar bajo punto de reorden", err)
	}
	return rows, nil
}

// CheckConsistency reproduce la cadena completa de movimientos de una fila y
// la compara con la cantidad materializada. Devuelve ErrLedgerInconsistent si
// el encadenamiento está roto o el resultado no coincide.
func (uc *StockQueryUseCase) CheckConsistency(ctx context.Context, inventoryID string) error {
	if inventoryID == "" {
		return domain.ErrMissingField
	}
	inv, err := uc.invRepo.GetByID(inventoryID)
	if err != nil {
		return domain.WrapStorage("consultar inventario", err)
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	chain, err := uc.movRepo.Chain(inventoryID)
	if err != nil {
		return domain.WrapStorage("leer cadena de movimientos", err)
	}
	replayed, err := ledger.Replay(chain)
	if err != nil {
		return err
	}
	if replayed != inv.Quantity {
		return domain.ErrLedgerInconsistent
	}
	return nil
}
