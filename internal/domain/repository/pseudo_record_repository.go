package repository

import (
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PseudoRecordRepository acceso al stock extraviado (fuera de su ubicación esperada).
type PseudoRecordRepository interface {
	// Upsert suma la cantidad al registro existente con la misma tripleta
	// (material, esperada, real) o crea uno nuevo. Devuelve el registro
	// resultante y si hubo fusión con uno existente.
	Upsert(expectedLocation, actualLocation, material string, quantity decimal.Decimal) (*entity.PseudoRecord, bool, error)

	// List devuelve todos los registros en orden de inserción.
	List() ([]*entity.PseudoRecord, error)

	// ListByMaterial devuelve los registros del material en orden de inserción
	// (más antiguo primero). El orden es contractual: el procesamiento de
	// órdenes consume el stock extraviado descubierto primero.
	ListByMaterial(material string) ([]*entity.PseudoRecord, error)

	// Deplete descuenta amount del registro id (amount <= cantidad actual).
	// Si la cantidad llega exactamente a cero el registro se elimina;
	// el booleano indica esa eliminación.
	Deplete(id int64, amount decimal.Decimal) (*entity.PseudoRecord, bool, error)
}
