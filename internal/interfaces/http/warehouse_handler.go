package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hospitalia/almacen-api/internal/application/dto"
	"github.com/hospitalia/almacen-api/internal/application/usecase"
)

// WarehouseHandler maneja la administración de la jerarquía
// almacén → zona → ubicación.
type WarehouseHandler struct {
	uc *usecase.WarehouseUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(uc *usecase.WarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{uc: uc}
}

// CreateWarehouse registra un almacén.
func (h *WarehouseHandler) CreateWarehouse(c *fiber.Ctx) error {
	var in dto.CreateWarehouseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	w, err := h.uc.CreateWarehouse(c.Context(), in.Name, in.Address)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toWarehouseResponse(w))
}

// ListWarehouses devuelve todos los almacenes.
func (h *WarehouseHandler) ListWarehouses(c *fiber.Ctx) error {
	list, err := h.uc.ListWarehouses(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	warehouses := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		warehouses = append(warehouses, toWarehouseResponse(w))
	}
	return c.JSON(fiber.Map{"total": len(warehouses), "warehouses": warehouses})
}

// CreateZone registra una zona dentro de un almacén.
func (h *WarehouseHandler) CreateZone(c *fiber.Ctx) error {
	var in dto.CreateZoneRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	z, err := h.uc.CreateZone(c.Context(), c.Params("warehouseID"), in.Code, in.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toZoneResponse(z))
}

// ListZones devuelve las zonas de un almacén.
func (h *WarehouseHandler) ListZones(c *fiber.Ctx) error {
	list, err := h.uc.ListZones(c.Context(), c.Params("warehouseID"))
	if err != nil {
		return respondError(c, err)
	}
	zones := make([]dto.ZoneResponse, 0, len(list))
	for _, z := range list {
		zones = append(zones, toZoneResponse(z))
	}
	return c.JSON(fiber.Map{"total": len(zones), "zones": zones})
}

// CreateLocation registra una ubicación dentro de una zona.
func (h *WarehouseHandler) CreateLocation(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	loc, err := h.uc.CreateLocation(c.Context(), c.Params("zoneID"), in.Code, in.Capacity)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toLocationResponse(loc))
}

// ListLocations devuelve las ubicaciones de una zona.
func (h *WarehouseHandler) ListLocations(c *fiber.Ctx) error {
	list, err := h.uc.ListLocations(c.Context(), c.Params("zoneID"))
	if err != nil {
		return respondError(c, err)
	}
	locations := make([]dto.LocationResponse, 0, len(list))
	for _, loc := range list {
		locations = append(locations, toLocationResponse(loc))
	}
	return c.JSON(fiber.Map{"total": len(locations), "locations": locations})
}
