package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un activo o insumo administrado por el almacén.
// SKU es la clave de negocio: única e inmutable una vez creado el ítem.
// MinimumStockLevel y ReorderPoint son los números de control para alertas;
// se espera ReorderPoint >= MinimumStockLevel pero no se fuerza.
type Item struct {
	ID                string
	SKU               string
	Name              string
	Category          string
	Manufacturer      string
	Model             string
	UnitPrice         decimal.Decimal
	MinimumStockLevel int64
	ReorderPoint      int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
