package repository

import (
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PrimaryRecordRepository acceso al stock de ubicaciones primarias.
type PrimaryRecordRepository interface {
	// Upsert suma la cantidad al registro existente con el mismo par
	// (material, ubicación) o crea uno nuevo. Devuelve el registro
	// resultante y si hubo fusión con uno existente.
	Upsert(location, material string, quantity decimal.Decimal) (*entity.PrimaryRecord, bool, error)

	// Find devuelve el registro para (material, ubicación) o nil si no existe.
	Find(material, location string) (*entity.PrimaryRecord, error)

	// List devuelve los registros en orden de inserción.
	List() ([]*entity.PrimaryRecord, error)

	// Deplete descuenta amount del registro (amount <= cantidad actual).
	// Si la cantidad llega exactamente a cero el registro se elimina;
	// el booleano indica esa eliminación.
	Deplete(material, location string, amount decimal.Decimal) (*entity.PrimaryRecord, bool, error)
}
