package inventory

import (
	"context"

	"github.com/hospitalia/almacen-api/internal/domain/event"
	"github.com/hospitalia/almacen-api/internal/domain/repository"
	"github.com/hospitalia/almacen-api/pkg/logger"
)

// LowStockMonitor deriva alertas de stock bajo a partir de las notificaciones
// stock.changed. No posee estado propio: en cada notificación relee la fila de
// inventario y el punto de reorden del ítem, y emite stock.low cuando la
// cantidad queda en o por debajo del umbral. Re-alerta en cada movimiento que
// cumpla la condición (sin debounce). Es best-effort: sus fallos se registran
// y se descartan, nunca llegan al camino de escritura del motor.
type LowStockMonitor struct {
	invRepo  repository.InventoryRepository
	itemRepo repository.ItemRepository
	bus      event.Bus
	log      *logger.Logger
}

// NewLowStockMonitor construye el monitor. Llamar Start para suscribirlo.
func NewLowStockMonitor(
	invRepo repository.InventoryRepository,
	itemRepo repository.ItemRepository,
	bus event.Bus,
	log *logger.Logger,
) *LowStockMonitor {
	return &LowStockMonitor{
		invRepo:  invRepo,
		itemRepo: itemRepo,
		bus:      bus,
		log:      log,
	}
}

// Start suscribe el monitor al tópico stock.changed.
func (m *LowStockMonitor) Start() {
	m.bus.Subscribe(event.TopicStockChanged, m.handleStockChanged)
}

func (m *LowStockMonitor) handleStockChanged(ctx context.Context, payload any) {
	ev, ok := payload.(event.StockChanged)
	if !ok {
		m.log.Warn().Str("topic", event.TopicStockChanged).Msg("payload inesperado, se descarta")
		return
	}

	inv, err := m.invRepo.GetByID(ev.InventoryID)
	if err != nil || inv == nil {
		// La fila pudo desaparecer entre el commit y esta lectura: registrar y
		// descartar, el monitor no propaga fallos.
		m.log.Warn().Err(err).Str("inventory_id", ev.InventoryID).Msg("no se pudo releer inventario")
		return
	}
	item, err := m.itemRepo.GetByID(inv.ItemID)
	if err != nil || item == nil {
		m.log.Warn().Err(err).Str("item_id", inv.ItemID).Msg("no se pudo releer ítem")
		return
	}

	if inv.Quantity > item.ReorderPoint {
		return
	}

	m.bus.Publish(ctx, event.TopicLowStock, event.LowStockAlert{
		InventoryID:     inv.ID,
		ItemID:          item.ID,
		ItemName:        item.Name,
		SKU:             item.SKU,
		CurrentQuantity: inv.Quantity,
		ReorderPoint:    item.ReorderPoint,
	})
	m.log.Info().
		Str("sku", item.SKU).
		Int64("quantity", inv.Quantity).
		Int64("reorder_point", item.ReorderPoint).
		Msg("alerta de stock bajo emitida")
}
