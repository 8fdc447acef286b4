package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitalia/almacen-api/internal/application/usecase"
	"github.com/hospitalia/almacen-api/internal/domain"
	"github.com/hospitalia/almacen-api/internal/domain/entity"
	"github.com/hospitalia/almacen-api/internal/domain/repository"
)

// fakeItemRepo doble en memoria con unicidad de SKU, como la restricción de la
// tabla items.
type fakeItemRepo struct {
	items map[string]*entity.Item
}

var _ repository.ItemRepository = (*fakeItemRepo)(nil)

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: make(map[string]*entity.Item)}
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	for _, it := range r.items {
		if it.SKU == item.SKU {
			return domain.ErrDuplicateSKU
		}
	}
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) { return r.items[id], nil }

func (r *fakeItemRepo) GetBySKU(sku string) (*entity.Item, error) {
	for _, it := range r.items {
		if it.SKU == sku {
			return it, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	var list []*entity.Item
	for _, it := range r.items {
		list = append(list, it)
	}
	return list, nil
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[item.ID] = item
	return nil
}

func TestItemCreate(t *testing.T) {
	repo := newFakeItemRepo()
	uc := usecase.NewItemUseCase(repo)

	item, err := uc.Create(context.Background(), usecase.CreateItemInput{
		SKU:          "LAP-001",
		Name:         "Laptop clínica",
		Category:     "computo",
		UnitPrice:    decimal.NewFromFloat(1499.90),
		ReorderPoint: 5,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "LAP-001", item.SKU)
	assert.Equal(t, int64(5), item.ReorderPoint)

	// SKU repetido.
	_, err = uc.Create(context.Background(), usecase.CreateItemInput{
		SKU:  "LAP-001",
		Name: "Otra laptop",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
}

func TestItemCreate_Validacion(t *testing.T) {
	uc := usecase.NewItemUseCase(newFakeItemRepo())

	_, err := uc.Create(context.Background(), usecase.CreateItemInput{Name: "sin sku"})
	assert.ErrorIs(t, err, domain.ErrMissingField)

	_, err = uc.Create(context.Background(), usecase.CreateItemInput{SKU: "X-1"})
	assert.ErrorIs(t, err, domain.ErrMissingField)

	_, err = uc.Create(context.Background(), usecase.CreateItemInput{
		SKU: "X-1", Name: "x", ReorderPoint: -1,
	})
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

// El SKU es inmutable: Update cambia atributos y números de control pero nunca
// la clave de negocio.
func TestItemUpdate_SKUInmutable(t *testing.T) {
	repo := newFakeItemRepo()
	uc := usecase.NewItemUseCase(repo)

	item, err := uc.Create(context.Background(), usecase.CreateItemInput{
		SKU: "MON-001", Name: "Monitor de signos", ReorderPoint: 2,
	})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), item.ID, usecase.UpdateItemInput{
		Name:         "Monitor de signos vitales",
		Manufacturer: "Acme Médica",
		ReorderPoint: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "MON-001", updated.SKU)
	assert.Equal(t, "Monitor de signos vitales", updated.Name)
	assert.Equal(t, int64(4), updated.ReorderPoint)

	_, err = uc.Update(context.Background(), "item-fantasma", usecase.UpdateItemInput{Name: "x"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestItemGet(t *testing.T) {
	repo := newFakeItemRepo()
	uc := usecase.NewItemUseCase(repo)

	item, err := uc.Create(context.Background(), usecase.CreateItemInput{
		SKU: "CAM-001", Name: "Camilla",
	})
	require.NoError(t, err)

	porID, err := uc.GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.SKU, porID.SKU)

	porSKU, err := uc.GetBySKU(context.Background(), "CAM-001")
	require.NoError(t, err)
	assert.Equal(t, item.ID, porSKU.ID)

	_, err = uc.GetBySKU(context.Background(), "NO-EXISTE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
