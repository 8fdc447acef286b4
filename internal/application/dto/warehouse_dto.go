package dto

import "time"

// CreateWarehouseRequest entrada para crear un almacén.
type CreateWarehouseRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CreateZoneRequest entrada para crear una zona.
type CreateZoneRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CreateLocationRequest entrada para crear una ubicación. Capacity es
// informativa (nil = sin declarar).
type CreateLocationRequest struct {
	Code     string `json:"code"`
	Capacity *int64 `json:"capacity"`
}

// WarehouseResponse salida de un almacén.
type WarehouseResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ZoneResponse salida de una zona.
type ZoneResponse struct {
	ID          string    `json:"id"`
	WarehouseID string    `json:"warehouse_id"`
	Code        string    `json:"code"`
	Name        string    `json:"name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LocationResponse salida de una ubicación.
type LocationResponse struct {
	ID        string    `json:"id"`
	ZoneID    string    `json:"zone_id"`
	Code      string    `json:"code"`
	Capacity  *int64    `json:"capacity,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
