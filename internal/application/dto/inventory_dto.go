package dto

import "time"

// RegisterMovementRequest body para POST /api/stock/movements.
// Quantity es puntero para distinguir ausente de cero.
type RegisterMovementRequest struct {
	Type              string `json:"type"`
	Quantity          *int64 `json:"quantity"`
	ItemID            string `json:"item_id"`
	StorageLocationID string `json:"storage_location_id"`
	DocumentReference string `json:"document_reference,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

// TransferRequest body para POST /api/stock/transfers.
type TransferRequest struct {
	ItemID            string `json:"item_id"`
	FromLocationID    string `json:"from_location_id"`
	ToLocationID      string `json:"to_location_id"`
	Quantity          *int64 `json:"quantity"`
	DocumentReference string `json:"document_reference,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

// InventoryResponse fila de inventario de un par (ítem, ubicación).
type InventoryResponse struct {
	ID                string    `json:"id"`
	ItemID            string    `json:"item_id"`
	StorageLocationID string    `json:"storage_location_id"`
	Quantity          int64     `json:"quantity"`
	ReservedQuantity  int64     `json:"reserved_quantity"`
	LastStockCheck    time.Time `json:"last_stock_check"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// StockMovementResponse entrada del libro de movimientos.
type StockMovementResponse struct {
	ID                string    `json:"id"`
	InventoryID       string    `json:"inventory_id"`
	Type              string    `json:"type"`
	Quantity          int64     `json:"quantity"`
	FromQuantity      int64     `json:"from_quantity"`
	ToQuantity        int64     `json:"to_quantity"`
	DocumentReference string    `json:"document_reference,omitempty"`
	Notes             string    `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	CreatedBy         string    `json:"created_by,omitempty"`
}

// MovementResponse resultado de registrar un movimiento.
type MovementResponse struct {
	Inventory InventoryResponse     `json:"inventory"`
	Movement  StockMovementResponse `json:"movement"`
}

// TransferResponse resultado de un traslado: ambas filas y el par
// débito/crédito del libro.
type TransferResponse struct {
	Source         InventoryResponse     `json:"source"`
	Destination    InventoryResponse     `json:"destination"`
	SourceMovement StockMovementResponse `json:"source_movement"`
	DestMovement   StockMovementResponse `json:"dest_movement"`
}

// LowStockItemResponse fila en o por debajo del punto de reorden de su ítem.
type LowStockItemResponse struct {
	InventoryID       string `json:"inventory_id"`
	ItemID            string `json:"item_id"`
	SKU               string `json:"sku"`
	ItemName          string `json:"item_name"`
	StorageLocationID string `json:"storage_location_id"`
	Quantity          int64  `json:"quantity"`
	ReorderPoint      int64  `json:"reorder_point"`
}
