package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/hospitalia/almacen-api/internal/application/dto"
	"github.com/hospitalia/almacen-api/internal/domain"
)

// respondError mapea errores de dominio a códigos HTTP. Los StorageError y
// cualquier error no reconocido son 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FIELD", Message: err.Error()})
	case errors.Is(err, domain.ErrUnsupportedType):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_TYPE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidTransfer):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TRANSFER", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicateSKU):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_SKU", Message: err.Error()})
	case errors.Is(err, domain.ErrLedgerInconsistent):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "LEDGER_INCONSISTENT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// actorID devuelve el identificador del usuario autenticado. El middleware de
// autenticación corre aguas arriba (gateway) y propaga la identidad en este
// header.
func actorID(c *fiber.Ctx) string {
	return c.Get("X-Actor-Id")
}
