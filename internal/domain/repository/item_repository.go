package repository

import "github.com/hospitalia/almacen-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para ítems.
// El libro de movimientos referencia ítems; no existe borrado físico.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetBySKU(sku string) (*entity.Item, error)
	List(limit, offset int) ([]*entity.Item, error)
	// Update actualiza atributos descriptivos y números de control; el SKU es
	// inmutable y no se toca.
	Update(item *entity.Item) error
}
