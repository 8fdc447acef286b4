package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hospitalia/almacen-api/internal/application/dto"
	"github.com/hospitalia/almacen-api/internal/application/inventory"
	"github.com/hospitalia/almacen-api/internal/domain"
)

// InventoryHandler traduce HTTP a las operaciones del motor de movimientos y
// a las consultas de inventario. Las reglas de negocio viven en los casos de
// uso; aquí solo se parsea el cuerpo y se mapea el error.
type InventoryHandler struct {
	ledger  *inventory.LedgerUseCase
	queries *inventory.StockQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger *inventory.LedgerUseCase, queries *inventory.StockQueryUseCase) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, queries: queries}
}

// RegisterMovement registra un receipt/issue/adjustment.
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Quantity == nil {
		return respondError(c, domain.ErrMissingField)
	}
	result, err := h.ledger.RecordMovement(c.Context(), inventory.MovementInput{
		Type:              in.Type,
		Quantity:          *in.Quantity,
		ItemID:            in.ItemID,
		StorageLocationID: in.StorageLocationID,
		DocumentReference: in.DocumentReference,
		Notes:             in.Notes,
		ActorID:           actorID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		Inventory: toInventoryResponse(result.Inventory),
		Movement:  toMovementResponse(result.Movement),
	})
}

// Transfer traslada cantidad entre dos ubicaciones del mismo ítem.
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Quantity == nil {
		return respondError(c, domain.ErrMissingField)
	}
	result, err := h.ledger.TransferStock(c.Context(), inventory.TransferInput{
		ItemID:            in.ItemID,
		FromLocationID:    in.FromLocationID,
		ToLocationID:      in.ToLocationID,
		Quantity:          *in.Quantity,
		DocumentReference: in.DocumentReference,
		Notes:             in.Notes,
		ActorID:           actorID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TransferResponse{
		Source:         toInventoryResponse(result.SourceInventory),
		Destination:    toInventoryResponse(result.DestInventory),
		SourceMovement: toMovementResponse(result.SourceMovement),
		DestMovement:   toMovementResponse(result.DestMovement),
	})
}

// GetInventory devuelve la fila actual de un par (ítem, ubicación).
func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	inv, err := h.queries.GetInventory(c.Context(), c.Query("item_id"), c.Query("location_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toInventoryResponse(inv))
}

// ListByLocation lista el inventario de una ubicación.
func (h *InventoryHandler) ListByLocation(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	list, err := h.queries.ListByLocation(c.Context(), c.Params("locationID"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "inventory": toInventoryList(list)})
}

// ListMovements devuelve el historial de una fila de inventario.
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	from, to, err := parseDateRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "formato de fecha inválido (RFC 3339)"})
	}
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	list, err := h.queries.ListMovements(c.Context(), c.Params("inventoryID"), from, to, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(list), "movements": toMovementList(list)})
}

// LowStock lista las filas en o por debajo del punto de reorden.
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	rows, err := h.queries.ListBelowReorderPoint(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.LowStockItemResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, toLowStockResponse(row))
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}

// CheckConsistency verifica que la cadena de movimientos reproduce la
// cantidad materializada de la fila.
func (h *InventoryHandler) CheckConsistency(c *fiber.Ctx) error {
	if err := h.queries.CheckConsistency(c.Context(), c.Params("inventoryID")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"consistent": true})
}

func parseDateRange(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if s := c.Query("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, nil, err
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, nil, err
		}
		to = &t
	}
	return from, to, nil
}
