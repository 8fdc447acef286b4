package ledger

import (
	"github.com/hospitalia/almacen-api/internal/domain"
	"github.com/hospitalia/almacen-api/internal/domain/entity"
)

// Replay reproduce una cadena de movimientos (ordenada por fecha ascendente) y
// devuelve la cantidad final. Valida el encadenamiento: FromQuantity de la
// entrada n debe coincidir con ToQuantity de la entrada n-1, y el efecto de
// cada entrada debe corresponder a su tipo. La primera entrada de una fila
// creada perezosamente parte de 0.
func Replay(entries []*entity.StockMovement) (int64, error) {
	var current int64
	for i, e := range entries {
		if i > 0 && e.FromQuantity != current {
			return 0, domain.ErrLedgerInconsistent
		}
		if i == 0 {
			current = e.FromQuantity
		}
		switch e.Type {
		case entity.MovementTypeReceipt, entity.MovementTypeTransferIn:
			if e.ToQuantity != current+e.Quantity {
				return 0, domain.ErrLedgerInconsistent
			}
		case entity.MovementTypeIssue, entity.MovementTypeTransferOut:
			if e.ToQuantity != current-e.Quantity {
				return 0, domain.ErrLedgerInconsistent
			}
		case entity.MovementTypeAdjustment:
			// El ajuste fija un valor absoluto; cualquier salto es válido.
		default:
			return 0, domain.ErrLedgerInconsistent
		}
		current = e.ToQuantity
	}
	return current, nil
}
