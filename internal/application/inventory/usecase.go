package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hospitalia/almacen-api/internal/domain"
	"github.com/hospitalia/almacen-api/internal/domain/entity"
	"github.com/hospitalia/almacen-api/internal/domain/event"
	"github.com/hospitalia/almacen-api/internal/domain/repository"
)

// LedgerUseCase es el único escritor de Inventory.Quantity y del libro de
// movimientos. Cada operación corre en una transacción con bloqueo de fila
// (SELECT FOR UPDATE) y publica eventos solo tras el commit.
type LedgerUseCase struct {
	txRunner      TxRunner
	itemRepo      repository.ItemRepository
	warehouseRepo repository.WarehouseRepository
	bus           event.Bus
}

// NewLedgerUseCase construye el motor de movimientos. El bus se inyecta como
// dependencia explícita.
func NewLedgerUseCase(
	txRunner TxRunner,
	itemRepo repository.ItemRepository,
	warehouseRepo repository.WarehouseRepository,
	bus event.Bus,
) *LedgerUseCase {
	return &LedgerUseCase{
		txRunner:      txRunner,
		itemRepo:      itemRepo,
		warehouseRepo: warehouseRepo,
		bus:           bus,
	}
}

// MovementInput entrada para registrar un movimiento simple.
// Type debe ser receipt, issue o adjustment; los traslados usan TransferStock.
// Quantity es no negativa: delta para receipt/issue, valor absoluto para
// adjustment. DocumentReference y Notes son opcionales.
type MovementInput struct {
	Type              string
	Quantity          int64
	ItemID            string
	StorageLocationID string
	DocumentReference string
	Notes             string
	ActorID           string
}

// TransferInput entrada para trasladar cantidad entre dos ubicaciones del
// mismo ítem.
type TransferInput struct {
	ItemID            string
	FromLocationID    string
	ToLocationID      string
	Quantity          int64
	DocumentReference string
	Notes             string
	ActorID           string
}

// MovementResult fila de inventario actualizada y entrada creada en el libro.
type MovementResult struct {
	Inventory *entity.Inventory
	Movement  *entity.StockMovement
}

// TransferResult ambas filas actualizadas y el par débito/crédito del libro.
type TransferResult struct {
	SourceInventory *entity.Inventory
	DestInventory   *entity.Inventory
	SourceMovement  *entity.StockMovement
	DestMovement    *entity.StockMovement
}

// RecordMovement aplica un movimiento receipt/issue/adjustment sobre el par
// (ítem, ubicación): bloquea la fila de inventario (creándola con cantidad 0
// si es el primer movimiento del par), calcula la cantidad resultante,
// persiste fila y entrada del libro en una sola transacción y publica
// stock.changed tras el commit.
func (uc *LedgerUseCase) RecordMovement(ctx context.Context, input MovementInput) (*MovementResult, error) {
	// Validación antes de cualquier lectura: fail fast, sin escrituras parciales.
	if input.Type == "" || input.ItemID == "" || input.StorageLocationID == "" || input.Quantity < 0 {
		return nil, domain.ErrMissingField
	}
	switch input.Type {
	case entity.MovementTypeReceipt, entity.MovementTypeIssue, entity.MovementTypeAdjustment:
	default:
		// Incluye "transfer" pasado directamente: los traslados tienen su
		// propia operación con el par débito/crédito.
		return nil, domain.ErrUnsupportedType
	}

	if err := uc.checkItemAndLocation(input.ItemID, input.StorageLocationID); err != nil {
		return nil, err
	}

	now := time.Now()
	var result MovementResult

	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.StockMovementRepository,
	) error {
		inv, err := invRepo.GetForUpdate(input.ItemID, input.StorageLocationID)
		if err != nil {
			return err
		}
		if inv == nil {
			// Creación perezosa: primera vez que un movimiento toca el par.
			if inv, err = invRepo.CreateZero(input.ItemID, input.StorageLocationID); err != nil {
				return err
			}
		}

		from := inv.Quantity
		var to int64
		switch input.Type {
		case entity.MovementTypeReceipt:
			to = from + input.Quantity
		case entity.MovementTypeIssue:
			to = from - input.Quantity
			if to < 0 {
				return domain.ErrInsufficientStock
			}
		case entity.MovementTypeAdjustment:
			to = input.Quantity
		}

		inv.Quantity = to
		inv.LastStockCheck = now
		if err := invRepo.UpdateQuantity(inv); err != nil {
			return err
		}

		mov := &entity.StockMovement{
			ID:                uuid.New().String(),
			InventoryID:       inv.ID,
			Type:              input.Type,
			Quantity:          input.Quantity,
			FromQuantity:      from,
			ToQuantity:        to,
			DocumentReference: input.DocumentReference,
			Notes:             input.Notes,
			CreatedAt:         now,
			CreatedBy:         input.ActorID,
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}

		result = MovementResult{Inventory: inv, Movement: mov}
		return nil
	})
	if err != nil {
		return nil, domain.WrapStorage("registrar movimiento", err)
	}

	uc.bus.Publish(ctx, event.TopicStockChanged, event.StockChanged{
		InventoryID:       result.Inventory.ID,
		ItemID:            result.Inventory.ItemID,
		StorageLocationID: result.Inventory.StorageLocationID,
		FromQuantity:      result.Movement.FromQuantity,
		ToQuantity:        result.Movement.ToQuantity,
		ActorID:           input.ActorID,
		MovementID:        result.Movement.ID,
	})

	return &result, nil
}

// TransferStock mueve cantidad entre dos ubicaciones del mismo ítem como una
// unidad atómica: débito en origen y crédito en destino con un par
// transfer-out/transfer-in en el libro. Si cualquier paso falla se revierte
// todo; nunca queda el origen debitado sin el crédito correspondiente.
func (uc *LedgerUseCase) TransferStock(ctx context.Context, input TransferInput) (*TransferResult, error) {
	if input.ItemID == "" || input.FromLocationID == "" || input.ToLocationID == "" || input.Quantity < 0 {
		return nil, domain.ErrMissingField
	}
	if input.FromLocationID == input.ToLocationID {
		return nil, domain.ErrInvalidTransfer
	}

	if err := uc.checkItemAndLocation(input.ItemID, input.FromLocationID); err != nil {
		return nil, err
	}
	if loc, err := uc.warehouseRepo.GetLocationByID(input.ToLocationID); err != nil {
		return nil, domain.WrapStorage("consultar ubicación destino", err)
	} else if loc == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var result TransferResult

	err := uc.txRunner.Run(ctx, func(
		invRepo repository.InventoryRepository,
		movRepo repository.StockMovementRepository,
	) error {
		// Fail fast sobre el origen antes de tocar el destino. Una fila
		// inexistente equivale a cantidad 0.
		source, err := invRepo.GetForUpdate(input.ItemID, input.FromLocationID)
		if err != nil {
			return err
		}
		if source == nil || source.Quantity < input.Quantity {
			return domain.ErrInsufficientStock
		}

		sourceFrom := source.Quantity
		source.Quantity = sourceFrom - input.Quantity
		source.LastStockCheck = now
		if err := invRepo.UpdateQuantity(source); err != nil {
			return err
		}
		outMov := &entity.StockMovement{
			ID:                uuid.New().String(),
			InventoryID:       source.ID,
			Type:              entity.MovementTypeTransferOut,
			Quantity:          input.Quantity,
			FromQuantity:      sourceFrom,
			ToQuantity:        source.Quantity,
			DocumentReference: input.DocumentReference,
			Notes:             annotate(input.Notes, "traslado hacia "+input.ToLocationID),
			CreatedAt:         now,
			CreatedBy:         input.ActorID,
		}
		if err := movRepo.Create(outMov); err != nil {
			return err
		}

		dest, err := invRepo.GetForUpdate(input.ItemID, input.ToLocationID)
		if err != nil {
			return err
		}
		if dest == nil {
			if dest, err = invRepo.CreateZero(input.ItemID, input.ToLocationID); err != nil {
				return err
			}
		}

		destFrom := dest.Quantity
		dest.Quantity = destFrom + input.Quantity
		dest.LastStockCheck = now
		if err := invRepo.UpdateQuantity(dest); err != nil {
			return err
		}
		inMov := &entity.StockMovement{
			ID:                uuid.New().String(),
			InventoryID:       dest.ID,
			Type:              entity.MovementTypeTransferIn,
			Quantity:          input.Quantity,
			FromQuantity:      destFrom,
			ToQuantity:        dest.Quantity,
			DocumentReference: input.DocumentReference,
			Notes:             annotate(input.Notes, "traslado desde "+input.FromLocationID),
			CreatedAt:         now,
			CreatedBy:         input.ActorID,
		}
		if err := movRepo.Create(inMov); err != nil {
			return err
		}

		result = TransferResult{
			SourceInventory: source,
			DestInventory:   dest,
			SourceMovement:  outMov,
			DestMovement:    inMov,
		}
		return nil
	})
	if err != nil {
		return nil, domain.WrapStorage("trasladar stock", err)
	}

	// El traslado publica el evento de reubicación y además los dos efectos
	// subyacentes, para que los suscriptores de stock.changed (el monitor de
	// stock bajo entre ellos) observen los traslados igual que cualquier
	// movimiento simple.
	uc.bus.Publish(ctx, event.TopicItemRelocated, event.ItemRelocated{
		ItemID:           input.ItemID,
		Quantity:         input.Quantity,
		FromLocationID:   input.FromLocationID,
		ToLocationID:     input.ToLocationID,
		ActorID:          input.ActorID,
		SourceMovementID: result.SourceMovement.ID,
		DestMovementID:   result.DestMovement.ID,
	})
	for _, side := range []struct {
		inv *entity.Inventory
		mov *entity.StockMovement
	}{
		{result.SourceInventory, result.SourceMovement},
		{result.DestInventory, result.DestMovement},
	} {
		uc.bus.Publish(ctx, event.TopicStockChanged, event.StockChanged{
			InventoryID:       side.inv.ID,
			ItemID:            side.inv.ItemID,
			StorageLocationID: side.inv.StorageLocationID,
			FromQuantity:      side.mov.FromQuantity,
			ToQuantity:        side.mov.ToQuantity,
			ActorID:           input.ActorID,
			MovementID:        side.mov.ID,
		})
	}

	return &result, nil
}

// checkItemAndLocation valida que el ítem y la ubicación existan.
func (uc *LedgerUseCase) checkItemAndLocation(itemID, locationID string) error {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return domain.WrapStorage("consultar ítem", err)
	}
	if item == nil {
		return domain.ErrNotFound
	}
	loc, err := uc.warehouseRepo.GetLocationByID(locationID)
	if err != nil {
		return domain.WrapStorage("consultar ubicación", err)
	}
	if loc == nil {
		return domain.ErrNotFound
	}
	return nil
}

// annotate agrega la anotación del traslado a las notas del usuario.
func annotate(notes, suffix string) string {
	if notes == "" {
		return suffix
	}
	return fmt.Sprintf("%s (%s)", notes, suffix)
}
