package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemRequest entrada para crear o actualizar un ítem. En actualización el
// SKU se ignora (inmutable).
type ItemRequest struct {
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Manufacturer      string          `json:"manufacturer"`
	Model             string          `json:"model"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	MinimumStockLevel int64           `json:"minimum_stock_level"`
	ReorderPoint      int64           `json:"reorder_point"`
}

// ItemResponse salida de un ítem del catálogo.
type ItemResponse struct {
	ID                string          `json:"id"`
	SKU               string          `json:"sku"`
	Name              string          `json:"name"`
	Category          string          `json:"category,omitempty"`
	Manufacturer      string          `json:"manufacturer,omitempty"`
	Model             string          `json:"model,omitempty"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	MinimumStockLevel int64           `json:"minimum_stock_level"`
	ReorderPoint      int64           `json:"reorder_point"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
