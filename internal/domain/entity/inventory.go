package entity

import "time"

// Inventory representa la cantidad actual de un ítem en una ubicación
// (fila materializada, única por par item + storage location).
// Se crea de forma perezosa con cantidad 0 en el primer movimiento que toca el
// par; solo el motor de movimientos muta Quantity. ReservedQuantity se
// almacena y se expone pero el motor no la modifica (reservas se gestionan
// fuera de este núcleo).
type Inventory struct {
	ID                string
	ItemID            string
	StorageLocationID string
	Quantity          int64
	ReservedQuantity  int64
	LastStockCheck    time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
