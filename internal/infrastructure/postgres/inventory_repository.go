package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/hospitalia/almacen-api/internal/domain/entity"
	"github.com/hospitalia/almacen-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository sobre PostgreSQL
// (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const inventoryColumns = `id, item_id, storage_location_id, quantity, reserved_quantity, last_stock_check, created_at, updated_at`

func scanInventory(row pgx.Row) (*entity.Inventory, error) {
	var inv entity.Inventory
	err := row.Scan(
		&inv.ID, &inv.ItemID, &inv.StorageLocationID, &inv.Quantity,
		&inv.ReservedQuantity, &inv.LastStockCheck, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// Get obtiene la fila del par (ítem, ubicación) o nil si no existe.
func (r *InventoryRepo) Get(itemID, storageLocationID string) (*entity.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory WHERE item_id = $1 AND storage_location_id = $2`
	inv, err := scanInventory(r.q.QueryRow(context.Background(), query, itemID, storageLocationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return inv, nil
}

// GetByID obtiene una fila de inventario por ID o nil si no existe.
func (r *InventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory WHERE id = $1`
	inv, err := scanInventory(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory by id: %w", err)
	}
	return inv, nil
}

// GetForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE), o nil si no
// existe. Solo tiene sentido dentro de una transacción.
func (r *InventoryRepo) GetForUpdate(itemID, storageLocationID string) (*entity.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory WHERE item_id = $1 AND storage_location_id = $2
		FOR UPDATE`
	inv, err := scanInventory(r.q.QueryRow(context.Background(), query, itemID, storageLocationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory for update: %w", err)
	}
	return inv, nil
}

// CreateZero crea la fila con cantidad 0 si no existe y la devuelve bloqueada.
// ON CONFLICT DO NOTHING hace la creación idempotente frente a dos primeros
// movimientos concurrentes sobre el mismo par; el SELECT FOR UPDATE posterior
// serializa a los dos escritores sobre la única fila resultante.
func (r *InventoryRepo) CreateZero(itemID, storageLocationID string) (*entity.Inventory, error) {
	insert := `
		INSERT INTO inventory (id, item_id, storage_location_id, quantity, reserved_quantity, last_stock_check, created_at, updated_at)
		VALUES ($1, $2, $3, 0, 0, now(), now(), now())
		ON CONFLICT (item_id, storage_location_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), insert, uuid.New().String(), itemID, storageLocationID); err != nil {
		return nil, fmt.Errorf("create zero inventory: %w", err)
	}
	inv, err := r.GetForUpdate(itemID, storageLocationID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("create zero inventory: fila ausente tras insert")
	}
	return inv, nil
}

// UpdateQuantity persiste Quantity y LastStockCheck de una fila existente.
func (r *InventoryRepo) UpdateQuantity(inv *entity.Inventory) error {
	query := `
		UPDATE inventory
		SET quantity = $2, last_stock_check = $3, updated_at = now()
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, inv.ID, inv.Quantity, inv.LastStockCheck)
	if err != nil {
		return fmt.Errorf("update inventory quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update inventory quantity: fila %s no existe", inv.ID)
	}
	return nil
}

// ListByLocation lista las filas de inventario de una ubicación.
func (r *InventoryRepo) ListByLocation(storageLocationID string, limit, offset int) ([]*entity.Inventory, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory WHERE storage_location_id = $1
		ORDER BY updated_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, storageLocationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list inventory by location: %w", err)
	}
	defer rows.Close()
	var list []*entity.Inventory
	for rows.Next() {
		var inv entity.Inventory
		if err := rows.Scan(&inv.ID, &inv.ItemID, &inv.StorageLocationID, &inv.Quantity,
			&inv.ReservedQuantity, &inv.LastStockCheck, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// ListBelowReorderPoint devuelve las filas cuya cantidad está en o por debajo
// del punto de reorden de su ítem, mayor déficit primero.
func (r *InventoryRepo) ListBelowReorderPoint(ctx context.Context) ([]repository.LowStockRow, error) {
	query := `
		SELECT inv.id, i.id, i.sku, i.name, inv.storage_location_id, inv.quantity, i.reorder_point
		FROM inventory inv
		JOIN items i ON i.id = inv.item_id
		WHERE inv.quantity <= i.reorder_point
		ORDER BY (i.reorder_point - inv.quantity) DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list below reorder point: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockRow
	for rows.Next() {
		var lr repository.LowStockRow
		if err := rows.Scan(&lr.InventoryID, &lr.ItemID, &lr.SKU, &lr.ItemName,
			&lr.StorageLocationID, &lr.Quantity, &lr.ReorderPoint); err != nil {
			return nil, fmt.Errorf("scan low stock row: %w", err)
		}
		list = append(list, lr)
	}
	return list, rows.Err()
}
