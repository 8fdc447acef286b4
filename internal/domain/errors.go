package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrMissingField       = errors.New("campo requerido ausente")
	ErrUnsupportedType    = errors.New("tipo de movimiento no soportado")
	ErrInvalidTransfer    = errors.New("traslado inválido: origen y destino deben ser distintos")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrDuplicateSKU       = errors.New("el SKU ya está registrado")
	ErrLedgerInconsistent = errors.New("el historial de movimientos no reproduce la cantidad actual")
)

// StorageError envuelve un fallo de la capa de persistencia. Cuando el caller
// lo recibe, el rollback ya dejó inventario y movimientos sin cambios.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("almacenamiento: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// sentinels lista los errores de negocio que se propagan sin envolver.
var sentinels = []error{
	ErrNotFound,
	ErrMissingField,
	ErrUnsupportedType,
	ErrInvalidTransfer,
	ErrInsufficientStock,
	ErrDuplicateSKU,
	ErrLedgerInconsistent,
}

// WrapStorage envuelve err en StorageError salvo que sea un error de dominio
// conocido (esos se devuelven tal cual al caller).
func WrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return err
		}
	}
	return &StorageError{Op: op, Err: err}
}
