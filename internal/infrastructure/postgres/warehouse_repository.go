package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hospitalia/almacen-api/internal/domain/entity"
	"github.com/hospitalia/almacen-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación de WarehouseRepository sobre PostgreSQL:
// jerarquía warehouses → zones → storage_locations.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// CreateWarehouse persiste un almacén nuevo.
func (r *WarehouseRepo) CreateWarehouse(w *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, name, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query, w.ID, w.Name, w.Address, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetWarehouseByID obtiene un almacén por ID o nil si no existe.
func (r *WarehouseRepo) GetWarehouseByID(id string) (*entity.Warehouse, error) {
	query := `
		SELECT id, name, address, created_at, updated_at
		FROM warehouses WHERE id = $1`
	var w entity.Warehouse
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&w.ID, &w.Name, &w.Address, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// ListWarehouses devuelve todos los almacenes.
func (r *WarehouseRepo) ListWarehouses() ([]*entity.Warehouse, error) {
	query := `
		SELECT id, name, address, created_at, updated_at
		FROM warehouses ORDER BY name ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Warehouse
	for rows.Next() {
		var w entity.Warehouse
		if err := rows.Scan(&w.ID, &w.Name, &w.Address, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, &w)
	}
	return list, rows.Err()
}

// CreateZone persiste una zona nueva.
func (r *WarehouseRepo) CreateZone(z *entity.Zone) error {
	query := `
		INSERT INTO zones (id, warehouse_id, code, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query, z.ID, z.WarehouseID, z.Code, z.Name, z.CreatedAt, z.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert zone: %w", err)
	}
	return nil
}

// ListZonesByWarehouse devuelve las zonas de un almacén.
func (r *WarehouseRepo) ListZonesByWarehouse(warehouseID string) ([]*entity.Zone, error) {
	query := `
		SELECT id, warehouse_id, code, name, created_at, updated_at
		FROM zones WHERE warehouse_id = $1 ORDER BY code ASC`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	defer rows.Close()
	var list []*entity.Zone
	for rows.Next() {
		var z entity.Zone
		if err := rows.Scan(&z.ID, &z.WarehouseID, &z.Code, &z.Name, &z.CreatedAt, &z.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan zone: %w", err)
		}
		list = append(list, &z)
	}
	return list, rows.Err()
}

// CreateLocation persiste una ubicación nueva (capacity puede ser NULL).
func (r *WarehouseRepo) CreateLocation(loc *entity.StorageLocation) error {
	query := `
		INSERT INTO storage_locations (id, zone_id, code, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query, loc.ID, loc.ZoneID, loc.Code, loc.Capacity, loc.CreatedAt, loc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert storage location: %w", err)
	}
	return nil
}

// GetLocationByID obtiene una ubicación por ID o nil si no existe.
func (r *WarehouseRepo) GetLocationByID(id string) (*entity.StorageLocation, error) {
	query := `
		SELECT id, zone_id, code, capacity, created_at, updated_at
		FROM storage_locations WHERE id = $1`
	var loc entity.StorageLocation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&loc.ID, &loc.ZoneID, &loc.Code, &loc.Capacity, &loc.CreatedAt, &loc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get storage location: %w", err)
	}
	return &loc, nil
}

// ListLocationsByZone devuelve las ubicaciones de una zona.
func (r *WarehouseRepo) ListLocationsByZone(zoneID string) ([]*entity.StorageLocation, error) {
	query := `
		SELECT id, zone_id, code, capacity, created_at, updated_at
		FROM storage_locations WHERE zone_id = $1 ORDER BY code ASC`
	rows, err := r.q.Query(context.Background(), query, zoneID)
	if err != nil {
		return nil, fmt.Errorf("list storage locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.StorageLocation
	for rows.Next() {
		var loc entity.StorageLocation
		if err := rows.Scan(&loc.ID, &loc.ZoneID, &loc.Code, &loc.Capacity, &loc.CreatedAt, &loc.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan storage location: %w", err)
		}
		list = append(list, &loc)
	}
	return list, rows.Err()
}
