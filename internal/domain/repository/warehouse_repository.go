package repository

import "github.com/hospitalia/almacen-api/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para la jerarquía
// Warehouse → Zone → StorageLocation. Creación administrativa; el borrado
// queda fuera de alcance.
type WarehouseRepository interface {
	CreateWarehouse(warehouse *entity.Warehouse) error
	GetWarehouseByID(id string) (*entity.Warehouse, error)
	ListWarehouses() ([]*entity.Warehouse, error)

	CreateZone(zone *entity.Zone) error
	ListZonesByWarehouse(warehouseID string) ([]*entity.Zone, error)

	CreateLocation(location *entity.StorageLocation) error
	GetLocationByID(id string) (*entity.StorageLocation, error)
	ListLocationsByZone(zoneID string) ([]*entity.StorageLocation, error)
}
