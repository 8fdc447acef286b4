package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeReceipt     = "receipt"      // entrada
	MovementTypeIssue       = "issue"        // salida
	MovementTypeAdjustment  = "adjustment"   // ajuste a valor absoluto
	MovementTypeTransferOut = "transfer-out" // débito del traslado
	MovementTypeTransferIn  = "transfer-in"  // crédito del traslado
)

// StockMovement es una entrada inmutable del libro de movimientos (append-only).
// FromQuantity y ToQuantity son la foto de Inventory.Quantity inmediatamente
// antes y después de aplicar la entrada; reproducir la cadena en orden de fecha
// debe dar la cantidad actual de la fila de inventario.
type StockMovement struct {
	ID                string
	InventoryID       string
	Type              string
	Quantity          int64
	FromQuantity      int64
	ToQuantity        int64
	DocumentReference string
	Notes             string
	CreatedAt         time.Time
	CreatedBy         string
}

// Inbound indica si el tipo suma cantidad (receipt, transfer-in).
func Inbound(movementType string) bool {
	return movementType == MovementTypeReceipt || movementType == MovementTypeTransferIn
}

// Outbound indica si el tipo resta cantidad (issue, transfer-out).
func Outbound(movementType string) bool {
	return movementType == MovementTypeIssue || movementType == MovementTypeTransferOut
}
