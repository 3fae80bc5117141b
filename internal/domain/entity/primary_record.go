package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusInStock estado fijo de los registros primarios.
const StatusInStock = "in-stock"

// PrimaryRecord representa stock en la ubicación primaria autorizada.
// Existe a lo sumo un registro por par (material, ubicación); los duplicados
// se fusionan sumando cantidades. Se elimina cuando la cantidad llega a cero.
type PrimaryRecord struct {
	ID        int64
	Location  string
	Material  string
	Quantity  decimal.Decimal
	Status    string
	CreatedAt time.Time
}
