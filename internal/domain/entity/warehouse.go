package entity

import "time"

// Warehouse representa un almacén físico del hospital.
// Jerarquía de contención estricta: Warehouse → Zone → StorageLocation.
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Zone representa una zona dentro de un almacén.
type Zone struct {
	ID          string
	WarehouseID string
	Code        string
	Name        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StorageLocation representa una ubicación concreta dentro de una zona.
// Capacity es informativa; el motor de movimientos no la valida.
type StorageLocation struct {
	ID        string
	ZoneID    string
	Code      string
	Capacity  *int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
