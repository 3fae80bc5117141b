package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden. La transición es de pending a un estado terminal
// (fulfilled, partial o unfulfilled) y ocurre una sola vez.
const (
	OrderStatusPending     = "pending"
	OrderStatusFulfilled   = "fulfilled"
	OrderStatusPartial     = "partial"
	OrderStatusUnfulfilled = "unfulfilled"
)

// Order representa un pedido de cliente a satisfacer desde el inventario.
type Order struct {
	ID                  string // 8 dígitos numéricos, único
	Material            string
	Quantity            decimal.Decimal
	Status              string
	FulfilledFrom       []FulfillmentSource // en orden de consumo; vacío si unfulfilled
	DestinationLocation string
	CreatedAt           time.Time
}

// IsTerminal indica si la orden ya alcanzó un estado final.
func (o *Order) IsTerminal() bool {
	return o.Status != OrderStatusPending
}

// FulfillmentSource describe cuánto se tomó y de qué ubicación
// durante el procesamiento de una orden.
type FulfillmentSource struct {
	Quantity decimal.Decimal
	Location string
}

// String devuelve el descriptor legible, ej: "25 from b2-05".
func (s FulfillmentSource) String() string {
	return fmt.Sprintf("%s from %s", s.Quantity, s.Location)
}

// JoinSources une los descriptores para mostrar, ej: "25 from b2-05, 60 from a1-01".
func JoinSources(sources []FulfillmentSource) string {
	if len(sources) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(sources))
	for _, s := range sources {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, ", ")
}
