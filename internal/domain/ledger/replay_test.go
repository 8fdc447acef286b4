package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hospitalia/almacen-api/internal/domain"
	"github.com/hospitalia/almacen-api/internal/domain/entity"
	"github.com/hospitalia/almacen-api/internal/domain/ledger"
)

func mov(tipo string, qty, from, to int64) *entity.StockMovement {
	return &entity.StockMovement{Type: tipo, Quantity: qty, FromQuantity: from, ToQuantity: to}
}

func TestReplay_CadenaValida(t *testing.T) {
	chain := []*entity.StockMovement{
		mov(entity.MovementTypeReceipt, 50, 0, 50),
		mov(entity.MovementTypeIssue, 20, 50, 30),
		mov(entity.MovementTypeAdjustment, 100, 30, 100),
		mov(entity.MovementTypeTransferOut, 40, 100, 60),
		mov(entity.MovementTypeTransferIn, 5, 60, 65),
	}
	total, err := ledger.Replay(chain)
	require.NoError(t, err)
	assert.Equal(t, int64(65), total)
}

func TestReplay_CadenaVacia(t *testing.T) {
	total, err := ledger.Replay(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestReplay_EncadenamientoRoto(t *testing.T) {
	chain := []*entity.StockMovement{
		mov(entity.MovementTypeReceipt, 50, 0, 50),
		// Falta la entrada que llevó de 50 a 40.
		mov(entity.MovementTypeIssue, 10, 40, 30),
	}
	_, err := ledger.Replay(chain)
	assert.ErrorIs(t, err, domain.ErrLedgerInconsistent)
}

func TestReplay_EfectoNoCorrespondeAlTipo(t *testing.T) {
	chain := []*entity.StockMovement{
		mov(entity.MovementTypeReceipt, 50, 0, 40), // 0+50 != 40
	}
	_, err := ledger.Replay(chain)
	assert.ErrorIs(t, err, domain.ErrLedgerInconsistent)

	chain = []*entity.StockMovement{
		mov(entity.MovementTypeReceipt, 50, 0, 50),
		mov(entity.MovementTypeTransferOut, 10, 50, 45), // 50-10 != 45
	}
	_, err = ledger.Replay(chain)
	assert.ErrorIs(t, err, domain.ErrLedgerInconsistent)
}

// El ajuste fija un valor absoluto: cualquier salto es válido mientras el
// encadenamiento se mantenga.
func TestReplay_AjustePermiteSaltos(t *testing.T) {
	chain := []*entity.StockMovement{
		mov(entity.MovementTypeReceipt, 10, 0, 10),
		mov(entity.MovementTypeAdjustment, 500, 10, 500),
		mov(entity.MovementTypeAdjustment, 0, 500, 0),
	}
	total, err := ledger.Replay(chain)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestReplay_TipoDesconocido(t *testing.T) {
	chain := []*entity.StockMovement{mov("donation", 5, 0, 5)}
	_, err := ledger.Replay(chain)
	assert.ErrorIs(t, err, domain.ErrLedgerInconsistent)
}

// Una cadena que no parte de cero es válida por sí misma: el primer eslabón
// define el punto de partida.
func TestReplay_PrimerEslabonNoCero(t *testing.T) {
	chain := []*entity.StockMovement{
		mov(entity.MovementTypeIssue, 5, 20, 15),
	}
	total, err := ledger.Replay(chain)
	require.NoError(t, err)
	assert.Equal(t, int64(15), total)
}
