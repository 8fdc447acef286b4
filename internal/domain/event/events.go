package event

import "context"

// Tópicos publicados por el motor de movimientos y el monitor de stock bajo.
const (
	TopicStockChanged  = "stock.changed"
	TopicItemRelocated = "stock.relocated"
	TopicLowStock      = "stock.low"
)

// StockChanged se publica tras cada movimiento confirmado (receipt, issue,
// adjustment y cada lado de un traslado).
type StockChanged struct {
	InventoryID       string
	ItemID            string
	StorageLocationID string
	FromQuantity      int64
	ToQuantity        int64
	ActorID           string
	MovementID        string
}

// ItemRelocated se publica tras un traslado confirmado entre ubicaciones.
type ItemRelocated struct {
	ItemID           string
	Quantity         int64
	FromLocationID   string
	ToLocationID     string
	ActorID          string
	SourceMovementID string
	DestMovementID   string
}

// LowStockAlert se emite cuando la cantidad queda en o por debajo del punto de
// reorden del ítem.
type LowStockAlert struct {
	InventoryID     string
	ItemID          string
	ItemName        string
	SKU             string
	CurrentQuantity int64
	ReorderPoint    int64
}

// Handler procesa el payload de un evento. Los errores no se propagan al
// publicador; cada handler registra y absorbe sus fallos.
type Handler func(ctx context.Context, payload any)

// Bus es el puerto de publicación/suscripción en proceso. Se inyecta como
// dependencia explícita (sin singleton global). Publish es fire-and-forget:
// el publicador no espera ni depende del resultado de los suscriptores.
type Bus interface {
	Publish(ctx context.Context, topic string, payload any)
	Subscribe(topic string, h Handler)
}
