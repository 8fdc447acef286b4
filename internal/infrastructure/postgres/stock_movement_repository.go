package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hospitalia/almacen-api/internal/domain/entity"
	"github.com/hospitalia/almacen-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx). Solo inserta y consulta: las entradas son
// inmutables una vez escritas.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `id, inventory_id, type, quantity, from_quantity, to_quantity, document_reference, notes, created_at, created_by`

// Create persiste una entrada del libro.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.InventoryID, movement.Type,
		movement.Quantity, movement.FromQuantity, movement.ToQuantity,
		movement.DocumentReference, movement.Notes, movement.CreatedAt, movement.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada por ID o nil si no existe.
func (r *StockMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE id = $1`
	var m entity.StockMovement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.InventoryID, &m.Type, &m.Quantity, &m.FromQuantity, &m.ToQuantity,
		&m.DocumentReference, &m.Notes, &m.CreatedAt, &m.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return &m, nil
}

// ListByInventory lista las entradas de una fila de inventario en un rango de
// fechas (descendente, paginado).
func (r *StockMovementRepo) ListByInventory(inventoryID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE inventory_id = $1`
	args := []any{inventoryID}
	query, args = appendDateRange(query, args, "created_at", from, to)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	return r.list(query, args)
}

// ListByItem lista las entradas de un ítem en todas sus ubicaciones.
func (r *StockMovementRepo) ListByItem(itemID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT m.id, m.inventory_id, m.type, m.quantity, m.from_quantity, m.to_quantity, m.document_reference, m.notes, m.created_at, m.created_by
		FROM stock_movements m
		JOIN inventory inv ON inv.id = m.inventory_id
		WHERE inv.item_id = $1`
	args := []any{itemID}
	query, args = appendDateRange(query, args, "m.created_at", from, to)
	query += fmt.Sprintf(" ORDER BY m.created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	return r.list(query, args)
}

// Chain devuelve la cadena completa de una fila en orden ascendente de fecha,
// para reproducir el invariante de conservación.
func (r *StockMovementRepo) Chain(inventoryID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE inventory_id = $1
		ORDER BY created_at ASC`
	return r.list(query, []any{inventoryID})
}

func (r *StockMovementRepo) list(query string, args []any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.InventoryID, &m.Type, &m.Quantity, &m.FromQuantity,
			&m.ToQuantity, &m.DocumentReference, &m.Notes, &m.CreatedAt, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// appendDateRange agrega condiciones de rango de fechas con placeholders
// posicionales consecutivos.
func appendDateRange(query string, args []any, column string, from, to *time.Time) (string, []any) {
	if from != nil {
		query += fmt.Sprintf(" AND %s >= $%d", column, len(args)+1)
		args = append(args, *from)
	}
	if to != nil {
		query += fmt.Sprintf(" AND %s <= $%d", column, len(args)+1)
		args = append(args, *to)
	}
	return query, args
}
