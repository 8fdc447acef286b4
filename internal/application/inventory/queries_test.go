package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitalia/almacen-api/internal/application/inventory"
	"github.com/hospitalia/almacen-api/internal/domain"
	"github.com/hospitalia/almacen-api/internal/domain/entity"
)

func newQueryFixture(t *testing.T) (*inventory.StockQueryUseCase, *inventory.LedgerUseCase, *memStore) {
	t.Helper()
	s, bus, runner := newLedgerFixture()
	s.addItem(itemLaptop, "LAP-001", "Laptop clínica", 5)
	s.addLocation(locBodega)
	s.addLocation(locFarmacia)
	ledgerUC := inventory.NewLedgerUseCase(runner, &memItemRepo{s: s}, &memWarehouseRepo{s: s}, bus)
	queryUC := inventory.NewStockQueryUseCase(runner.invRepo, runner.movRepo)
	return queryUC, ledgerUC, s
}

func TestGetInventory(t *testing.T) {
	queryUC, _, s := newQueryFixture(t)
	s.addInventory(itemLaptop, locBodega, 12)

	inv, err := queryUC.GetInventory(context.Background(), itemLaptop, locBodega)
	require.NoError(t, err)
	assert.Equal(t, int64(12), inv.Quantity)

	_, err = queryUC.GetInventory(context.Background(), itemLaptop, locFarmacia)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = queryUC.GetInventory(context.Background(), "", locBodega)
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestListBelowReorderPoint(t *testing.T) {
	queryUC, _, s := newQueryFixture(t)
	s.addInventory(itemLaptop, locBodega, 3) // punto de reorden del ítem: 5
	s.addItem("item-monitor", "MON-001", "Monitor de signos", 2)
	s.addInventory("item-monitor", locFarmacia, 8)

	rows, err := queryUC.ListBelowReorderPoint(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "LAP-001", rows[0].SKU)
	assert.Equal(t, int64(3), rows[0].Quantity)
	assert.Equal(t, int64(5), rows[0].ReorderPoint)
}

// TestCheckConsistency verifica que la reproducción de la cadena detecta una
// cantidad materializada manipulada por fuera del motor.
func TestCheckConsistency(t *testing.T) {
	queryUC, ledgerUC, s := newQueryFixture(t)
	ctx := context.Background()

	res, err := ledgerUC.RecordMovement(ctx, inventory.MovementInput{
		Type: entity.MovementTypeReceipt, Quantity: 50, ItemID: itemLaptop, StorageLocationID: locBodega,
	})
	require.NoError(t, err)
	_, err = ledgerUC.RecordMovement(ctx, inventory.MovementInput{
		Type: entity.MovementTypeIssue, Quantity: 20, ItemID: itemLaptop, StorageLocationID: locBodega,
	})
	require.NoError(t, err)

	require.NoError(t, queryUC.CheckConsistency(ctx, res.Inventory.ID))

	// Escritura directa sin pasar por el libro: la cadena ya no cuadra.
	s.inventories[invKey(itemLaptop, locBodega)].Quantity = 99
	assert.ErrorIs(t, queryUC.CheckConsistency(ctx, res.Inventory.ID), domain.ErrLedgerInconsistent)

	assert.ErrorIs(t, queryUC.CheckConsistency(ctx, "inv-fantasma"), domain.ErrNotFound)
	assert.ErrorIs(t, queryUC.CheckConsistency(ctx, ""), domain.ErrMissingField)
}
