package http

import (
	"github.com/hospitalia/almacen-api/internal/application/dto"
	"github.com/hospitalia/almacen-api/internal/domain/entity"
	"github.com/hospitalia/almacen-api/internal/domain/repository"
)

// Mapeo entidad → DTO de respuesta. Las entidades de dominio no llevan tags
// JSON; la forma del contrato HTTP vive en el paquete dto.

func toInventoryResponse(inv *entity.Inventory) dto.InventoryResponse {
	return dto.InventoryResponse{
		ID:                inv.ID,
		ItemID:            inv.ItemID,
		StorageLocationID: inv.StorageLocationID,
		Quantity:          inv.Quantity,
		ReservedQuantity:  inv.ReservedQuantity,
		LastStockCheck:    inv.LastStockCheck,
		CreatedAt:         inv.CreatedAt,
		UpdatedAt:         inv.UpdatedAt,
	}
}

func toMovementResponse(m *entity.StockMovement) dto.StockMovementResponse {
	return dto.StockMovementResponse{
		ID:                m.ID,
		InventoryID:       m.InventoryID,
		Type:              m.Type,
		Quantity:          m.Quantity,
		FromQuantity:      m.FromQuantity,
		ToQuantity:        m.ToQuantity,
		DocumentReference: m.DocumentReference,
		Notes:             m.Notes,
		CreatedAt:         m.CreatedAt,
		CreatedBy:         m.CreatedBy,
	}
}

func toLowStockResponse(row repository.LowStockRow) dto.LowStockItemResponse {
	return dto.LowStockItemResponse{
		InventoryID:       row.InventoryID,
		ItemID:            row.ItemID,
		SKU:               row.SKU,
		ItemName:          row.ItemName,
		StorageLocationID: row.StorageLocationID,
		Quantity:          row.Quantity,
		ReorderPoint:      row.ReorderPoint,
	}
}

func toItemResponse(item *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:                item.ID,
		SKU:               item.SKU,
		Name:              item.Name,
		Category:          item.Category,
		Manufacturer:      item.Manufacturer,
		Model:             item.Model,
		UnitPrice:         item.UnitPrice,
		MinimumStockLevel: item.MinimumStockLevel,
		ReorderPoint:      item.ReorderPoint,
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}
}

func toWarehouseResponse(w *entity.Warehouse) dto.WarehouseResponse {
	return dto.WarehouseResponse{
		ID:        w.ID,
		Name:      w.Name,
		Address:   w.Address,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func toZoneResponse(z *entity.Zone) dto.ZoneResponse {
	return dto.ZoneResponse{
		ID:          z.ID,
		WarehouseID: z.WarehouseID,
		Code:        z.Code,
		Name:        z.Name,
		CreatedAt:   z.CreatedAt,
		UpdatedAt:   z.UpdatedAt,
	}
}

func toLocationResponse(loc *entity.StorageLocation) dto.LocationResponse {
	return dto.LocationResponse{
		ID:        loc.ID,
		ZoneID:    loc.ZoneID,
		Code:      loc.Code,
		Capacity:  loc.Capacity,
		CreatedAt: loc.CreatedAt,
		UpdatedAt: loc.UpdatedAt,
	}
}

func toInventoryList(list []*entity.Inventory) []dto.InventoryResponse {
	out := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInventoryResponse(inv))
	}
	return out
}

func toMovementList(list []*entity.StockMovement) []dto.StockMovementResponse {
	out := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMovementResponse(m))
	}
	return out
}
