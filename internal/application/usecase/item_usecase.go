package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hospitalia/almacen-api/internal/domain"
	"github.com/hospitalia/almacen-api/internal/domain/entity"
	"github.com/hospitalia/almacen-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// ItemUseCase administra el catálogo de ítems del almacén.
type ItemUseCase struct {
	itemRepo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso de ítems.
func NewItemUseCase(itemRepo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{itemRepo: itemRepo}
}

// CreateItemInput entrada para crear un ítem. SKU y Name son obligatorios.
type CreateItemInput struct {
	SKU               string
	Name              string
	Category          string
	Manufacturer      string
	Model             string
	UnitPrice         decimal.Decimal
	MinimumStockLevel int64
	ReorderPoint      int64
}

// Create registra un ítem nuevo. El SKU debe ser único; un duplicado devuelve
// ErrDuplicateSKU. No se fuerza ReorderPoint >= MinimumStockLevel.
func (uc *ItemUseCase) Create(ctx context.Context, input CreateItemInput) (*entity.Item, error) {
	if input.SKU == "" || input.Name == "" {
		return nil, domain.ErrMissingField
	}
	if input.MinimumStockLevel < 0 || input.ReorderPoint < 0 {
		return nil, domain.ErrMissingField
	}

	now := time.Now()
	item := &entity.Item{
		ID:                uuid.New().String(),
		SKU:               input.SKU,
		Name:              input.Name,
		Category:          input.Category,
		Manufacturer:      input.Manufacturer,
		Model:             input.Model,
		UnitPrice:         input.UnitPrice,
		MinimumStockLevel: input.MinimumStockLevel,
		ReorderPoint:      input.ReorderPoint,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, domain.WrapStorage("crear ítem", err)
	}
	return item, nil
}

// UpdateItemInput entrada para actualizar atributos descriptivos y números de
// control. El SKU es inmutable y no aparece aquí.
type UpdateItemInput struct {
	Name              string
	Category          string
	Manufacturer      string
	Model             string
	UnitPrice         decimal.Decimal
	MinimumStockLevel int64
	ReorderPoint      int64
}

// Update modifica un ítem existente.
func (uc *ItemUseCase) Update(ctx context.Context, id string, input UpdateItemInput) (*entity.Item, error) {
	if id == "" || input.Name == "" {
		return nil, domain.ErrMissingField
	}
	if input.MinimumStockLevel < 0 || input.ReorderPoint < 0 {
		return nil, domain.ErrMissingField
	}

	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, domain.WrapStorage("consultar ítem", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	item.Name = input.Name
	item.Category = input.Category
	item.Manufacturer = input.Manufacturer
	item.Model = input.Model
	item.UnitPrice = input.UnitPrice
	item.MinimumStockLevel = input.MinimumStockLevel
	item.ReorderPoint = input.ReorderPoint
	item.UpdatedAt = time.Now()

	if err := uc.itemRepo.Update(item); err != nil {
		return nil, domain.WrapStorage("actualizar ítem", err)
	}
	return item, nil
}

// GetByID devuelve un ítem por identificador.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	if id == "" {
		return nil, domain.ErrMissingField
	}
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, domain.WrapStorage("consultar ítem", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// GetBySKU devuelve un ítem por su clave de negocio.
func (uc *ItemUseCase) GetBySKU(ctx context.Context, sku string) (*entity.Item, error) {
	if sku == "" {
		return nil, domain.ErrMissingField
	}
	item, err := uc.itemRepo.GetBySKU(sku)
	if err != nil {
		return nil, domain.WrapStorage("consultar ítem por SKU", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// List devuelve ítems paginados.
func (uc *ItemUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Item, error) {
	list, err := uc.itemRepo.List(limit, offset)
	if err != nil {
		return nil, domain.WrapStorage("listar ítems", err)
	}
	return list, nil
}
