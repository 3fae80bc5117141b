package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusMisplaced estado fijo de los registros pseudo.
const StatusMisplaced = "misplaced"

// PseudoRecord representa stock encontrado fuera de su ubicación esperada
// (inventario extraviado). ExpectedLocation y ActualLocation nunca coinciden.
// Existe a lo sumo un registro por tripleta (material, esperada, real).
type PseudoRecord struct {
	ID               int64
	ExpectedLocation string
	ActualLocation   string
	Material         string
	Quantity         decimal.Decimal
	Status           string
	CreatedAt        time.Time
}
