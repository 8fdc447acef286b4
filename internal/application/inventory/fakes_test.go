package inventory_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hospitalia/almacen-api/internal/domain/entity"
	"github.com/hospitalia/almacen-api/internal/domain/event"
	"github.com/hospitalia/almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria: implementan los puertos de persistencia sobre mapas y un
// TxRunner que emula rollback restaurando un snapshot del estado cuando el
// callback falla. Suficiente para verificar atomicidad y conservación sin BD.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	items       map[string]*entity.Item
	locations   map[string]*entity.StorageLocation
	inventories map[string]*entity.Inventory // clave itemID|locationID
	movements   []*entity.StockMovement
}

func newMemStore() *memStore {
	return &memStore{
		items:       make(map[string]*entity.Item),
		locations:   make(map[string]*entity.StorageLocation),
		inventories: make(map[string]*entity.Inventory),
	}
}

func invKey(itemID, locationID string) string { return itemID + "|" + locationID }

func (s *memStore) addItem(id, sku, name string, reorderPoint int64) {
	s.items[id] = &entity.Item{ID: id, SKU: sku, Name: name, ReorderPoint: reorderPoint}
}

func (s *memStore) addLocation(id string) {
	s.locations[id] = &entity.StorageLocation{ID: id, ZoneID: "zona-1", Code: id}
}

func (s *memStore) addInventory(itemID, locationID string, quantity int64) *entity.Inventory {
	inv := &entity.Inventory{
		ID:                uuid.New().String(),
		ItemID:            itemID,
		StorageLocationID: locationID,
		Quantity:          quantity,
	}
	s.inventories[invKey(itemID, locationID)] = inv
	return inv
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for k, v := range s.items {
		cp := *v
		c.items[k] = &cp
	}
	for k, v := range s.locations {
		cp := *v
		c.locations[k] = &cp
	}
	for k, v := range s.inventories {
		cp := *v
		c.inventories[k] = &cp
	}
	c.movements = append([]*entity.StockMovement(nil), s.movements...)
	return c
}

func (s *memStore) restore(snapshot *memStore) {
	s.items = snapshot.items
	s.locations = snapshot.locations
	s.inventories = snapshot.inventories
	s.movements = snapshot.movements
}

// ── InventoryRepository ──────────────────────────────────────────────────────

type memInventoryRepo struct {
	s          *memStore
	failUpdate bool
}

var _ repository.InventoryRepository = (*memInventoryRepo)(nil)

func (r *memInventoryRepo) Get(itemID, locationID string) (*entity.Inventory, error) {
	return r.s.inventories[invKey(itemID, locationID)], nil
}

func (r *memInventoryRepo) GetByID(id string) (*entity.Inventory, error) {
	for _, inv := range r.s.inventories {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (r *memInventoryRepo) GetForUpdate(itemID, locationID string) (*entity.Inventory, error) {
	return r.s.inventories[invKey(itemID, locationID)], nil
}

func (r *memInventoryRepo) CreateZero(itemID, locationID string) (*entity.Inventory, error) {
	if inv := r.s.inventories[invKey(itemID, locationID)]; inv != nil {
		return inv, nil
	}
	return r.s.addInventory(itemID, locationID, 0), nil
}

func (r *memInventoryRepo) UpdateQuantity(inv *entity.Inventory) error {
	if r.failUpdate {
		return errors.New("fallo simulado de update")
	}
	stored := r.s.inventories[invKey(inv.ItemID, inv.StorageLocationID)]
	if stored == nil {
		return errors.New("fila inexistente")
	}
	stored.Quantity = inv.Quantity
	stored.LastStockCheck = inv.LastStockCheck
	return nil
}

func (r *memInventoryRepo) ListByLocation(locationID string, limit, offset int) ([]*entity.Inventory, error) {
	var list []*entity.Inventory
	for _, inv := range r.s.inventories {
		if inv.StorageLocationID == locationID {
			list = append(list, inv)
		}
	}
	return list, nil
}

func (r *memInventoryRepo) ListBelowReorderPoint(ctx context.Context) ([]repository.LowStockRow, error) {
	var rows []repository.LowStockRow
	for _, inv := range r.s.inventories {
		item := r.s.items[inv.ItemID]
		if item != nil && inv.Quantity <= item.ReorderPoint {
			rows = append(rows, repository.LowStockRow{
				InventoryID:       inv.ID,
				ItemID:            item.ID,
				SKU:               item.SKU,
				ItemName:          item.Name,
				StorageLocationID: inv.StorageLocationID,
				Quantity:          inv.Quantity,
				ReorderPoint:      item.ReorderPoint,
			})
		}
	}
	return rows, nil
}

// ── StockMovementRepository ──────────────────────────────────────────────────

type memMovementRepo struct {
	s *memStore
	// failOnNth hace fallar el Create número n (1-based); 0 = nunca.
	failOnNth int
	creates   int
}

var _ repository.StockMovementRepository = (*memMovementRepo)(nil)

func (r *memMovementRepo) Create(m *entity.StockMovement) error {
	r.creates++
	if r.failOnNth != 0 && r.creates == r.failOnNth {
		return errors.New("fallo simulado de insert")
	}
	cp := *m
	r.s.movements = append(r.s.movements, &cp)
	return nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.StockMovement, error) {
	for _, m := range r.s.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (r *memMovementRepo) ListByInventory(inventoryID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	return r.Chain(inventoryID)
}

func (r *memMovementRepo) ListByItem(itemID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for _, m := range r.s.movements {
		for _, inv := range r.s.inventories {
			if inv.ID == m.InventoryID && inv.ItemID == itemID {
				list = append(list, m)
			}
		}
	}
	return list, nil
}

func (r *memMovementRepo) Chain(inventoryID string) ([]*entity.StockMovement, error) {
	var list []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.InventoryID == inventoryID {
			list = append(list, m)
		}
	}
	return list, nil
}

// ── ItemRepository / WarehouseRepository (solo lo que usa el motor) ──────────

type memItemRepo struct {
	s *memStore
}

var _ repository.ItemRepository = (*memItemRepo)(nil)

func (r *memItemRepo) Create(item *entity.Item) error {
	r.s.items[item.ID] = item
	return nil
}

func (r *memItemRepo) GetByID(id string) (*entity.Item, error) { return r.s.items[id], nil }

func (r *memItemRepo) GetBySKU(sku string) (*entity.Item, error) {
	for _, it := range r.s.items {
		if it.SKU == sku {
			return it, nil
		}
	}
	return nil, nil
}

func (r *memItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	var list []*entity.Item
	for _, it := range r.s.items {
		list = append(list, it)
	}
	return list, nil
}

func (r *memItemRepo) Update(item *entity.Item) error {
	r.s.items[item.ID] = item
	return nil
}

type memWarehouseRepo struct {
	s *memStore
}

var _ repository.WarehouseRepository = (*memWarehouseRepo)(nil)

func (r *memWarehouseRepo) CreateWarehouse(w *entity.Warehouse) error       { return nil }
func (r *memWarehouseRepo) GetWarehouseByID(id string) (*entity.Warehouse, error) {
	return nil, nil
}
func (r *memWarehouseRepo) ListWarehouses() ([]*entity.Warehouse, error)    { return nil, nil }
func (r *memWarehouseRepo) CreateZone(z *entity.Zone) error                 { return nil }
func (r *memWarehouseRepo) ListZonesByWarehouse(id string) ([]*entity.Zone, error) {
	return nil, nil
}
func (r *memWarehouseRepo) CreateLocation(loc *entity.StorageLocation) error { return nil }

func (r *memWarehouseRepo) GetLocationByID(id string) (*entity.StorageLocation, error) {
	return r.s.locations[id], nil
}

func (r *memWarehouseRepo) ListLocationsByZone(zoneID string) ([]*entity.StorageLocation, error) {
	return nil, nil
}

// ── TxRunner con rollback por snapshot ───────────────────────────────────────

type memTxRunner struct {
	s       *memStore
	invRepo *memInventoryRepo
	movRepo *memMovementRepo
}

func (r *memTxRunner) Run(ctx context.Context, fn func(
	invRepo repository.InventoryRepository,
	movRepo repository.StockMovementRepository,
) error) error {
	snapshot := r.s.clone()
	if err := fn(r.invRepo, r.movRepo); err != nil {
		r.s.restore(snapshot)
		return err
	}
	return nil
}

// ── Bus síncrono para aserciones deterministas ───────────────────────────────

type publishedEvent struct {
	topic   string
	payload any
}

type syncBus struct {
	mu        sync.Mutex
	handlers  map[string][]event.Handler
	published []publishedEvent
}

var _ event.Bus = (*syncBus)(nil)

func newSyncBus() *syncBus {
	return &syncBus{handlers: make(map[string][]event.Handler)}
}

func (b *syncBus) Publish(ctx context.Context, topic string, payload any) {
	b.mu.Lock()
	b.published = append(b.published, publishedEvent{topic: topic, payload: payload})
	subs := append([]event.Handler(nil), b.handlers[topic]...)
	b.mu.Unlock()
	for _, h := range subs {
		h(ctx, payload)
	}
}

func (b *syncBus) Subscribe(topic string, h event.Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[topic] = append(b.handlers[topic], h)
}

// byTopic devuelve los payloads publicados en un tópico.
func (b *syncBus) byTopic(topic string) []any {
	b.mu.Lock()
	defer b.mu.Unlock()
	var list []any
	for _, p := range b.published {
		if p.topic == topic {
			list = append(list, p.payload)
		}
	}
	return list
}

// newLedgerFixture arma el motor completo sobre el estado en memoria.
func newLedgerFixture() (*memStore, *syncBus, *memTxRunner) {
	s := newMemStore()
	bus := newSyncBus()
	runner := &memTxRunner{
		s:       s,
		invRepo: &memInventoryRepo{s: s},
		movRepo: &memMovementRepo{s: s},
	}
	return s, bus, runner
}
