package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hospitalia/almacen-api/internal/domain"
	"github.com/hospitalia/almacen-api/internal/domain/entity"
	"github.com/hospitalia/almacen-api/internal/domain/repository"
)

// WarehouseUseCase administra la jerarquía Warehouse → Zone → StorageLocation.
// Operaciones administrativas de creación y consulta; el borrado queda fuera
// de alcance.
type WarehouseUseCase struct {
	warehouseRepo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso de almacenes.
func NewWarehouseUseCase(warehouseRepo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{warehouseRepo: warehouseRepo}
}

// CreateWarehouse registra un almacén.
func (uc *WarehouseUseCase) CreateWarehouse(ctx context.Context, name, address string) (*entity.Warehouse, error) {
	if name == "" {
		return nil, domain.ErrMissingField
	}
	now := time.Now()
	w := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      name,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.warehouseRepo.CreateWarehouse(w); err != nil {
		return nil, domain.WrapStorage("crear almacén", err)
	}
	return w, nil
}

// CreateZone registra una zona dentro de un almacén existente.
func (uc *WarehouseUseCase) CreateZone(ctx context.Context, warehouseID, code, name string) (*entity.Zone, error) {
	if warehouseID == "" || code == "" {
		return nil, domain.ErrMissingField
	}
	parent, err := uc.warehouseRepo.GetWarehouseByID(warehouseID)
	if err != nil {
		return nil, domain.WrapStorage("consultar almacén", err)
	}
	if parent == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	z := &entity.Zone{
		ID:          uuid.New().String(),
		WarehouseID: warehouseID,
		Code:        code,
		Name:        name,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.warehouseRepo.CreateZone(z); err != nil {
		return nil, domain.WrapStorage("crear zona", err)
	}
	return z, nil
}

// CreateLocation registra una ubicación dentro de una zona. Capacity es
// informativa (nil = sin declarar); el motor de movimientos no la valida.
func (uc *WarehouseUseCase) CreateLocation(ctx context.Context, zoneID, code string, capacity *int64) (*entity.StorageLocation, error) {
	if zoneID == "" || code == "" {
		return nil, domain.ErrMissingField
	}
	if capacity != nil && *capacity < 0 {
		return nil, domain.ErrMissingField
	}
	now := time.Now()
	loc := &entity.StorageLocation{
		ID:        uuid.New().String(),
		ZoneID:    zoneID,
		Code:      code,
		Capacity:  capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.warehouseRepo.CreateLocation(loc); err != nil {
		return nil, domain.WrapStorage("crear ubicación", err)
	}
	return loc, nil
}

// ListWarehouses devuelve todos los almacenes.
func (uc *WarehouseUseCase) ListWarehouses(ctx context.Context) ([]*entity.Warehouse, error) {
	list, err := uc.warehouseRepo.ListWarehouses()
	if err != nil {
		return nil, domain.WrapStorage("listar almacenes", err)
	}
	return list, nil
}

// ListZones devuelve las zonas de un almacén.
func (uc *WarehouseUseCase) ListZones(ctx context.Context, warehouseID string) ([]*entity.Zone, error) {
	if warehouseID == "" {
		return nil, domain.ErrMissingField
	}
	list, err := uc.warehouseRepo.ListZonesByWarehouse(warehouseID)
	if err != nil {
		return nil, domain.WrapStorage("listar zonas", err)
	}
	return list, nil
}

// ListLocations devuelve las ubicaciones de una zona.
func (uc *WarehouseUseCase) ListLocations(ctx context.Context, zoneID string) ([]*entity.StorageLocation, error) {
	if zoneID == "" {
		return nil, domain.ErrMissingField
	}
	list, err := uc.warehouseRepo.ListLocationsByZone(zoneID)
	if err != nil {
		return nil, domain.WrapStorage("listar ubicaciones", err)
	}
	return list, nil
}
