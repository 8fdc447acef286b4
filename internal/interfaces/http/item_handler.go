package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hospitalia/almacen-api/internal/application/dto"
	"github.com/hospitalia/almacen-api/internal/application/usecase"
)

// ItemHandler maneja las peticiones del catálogo de ítems.
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// Create registra un ítem.
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Create(c.Context(), usecase.CreateItemInput{
		SKU:               in.SKU,
		Name:              in.Name,
		Category:          in.Category,
		Manufacturer:      in.Manufacturer,
		Model:             in.Model,
		UnitPrice:         in.UnitPrice,
		MinimumStockLevel: in.MinimumStockLevel,
		ReorderPoint:      in.ReorderPoint,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toItemResponse(item))
}

// Update modifica atributos descriptivos y números de control.
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.Update(c.Context(), c.Params("id"), usecase.UpdateItemInput{
		Name:              in.Name,
		Category:          in.Category,
		Manufacturer:      in.Manufacturer,
		Model:             in.Model,
		UnitPrice:         in.UnitPrice,
		MinimumStockLevel: in.MinimumStockLevel,
		ReorderPoint:      in.ReorderPoint,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toItemResponse(item))
}

// GetByID devuelve un ítem por ID.
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toItemResponse(item))
}

// List devuelve ítems paginados. Con ?sku= busca por clave de negocio.
func (h *ItemHandler) List(c *fiber.Ctx) error {
	if sku := c.Query("sku"); sku != "" {
		item, err := h.uc.GetBySKU(c.Context(), sku)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(toItemResponse(item))
	}
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	list, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	items := make([]dto.ItemResponse, 0, len(list))
	for _, item := range list {
		items = append(items, toItemResponse(item))
	}
	return c.JSON(fiber.Map{"total": len(items), "items": items})
}
