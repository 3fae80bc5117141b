package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	Material            string          `json:"material"`
	Quantity            decimal.Decimal `json:"quantity"`
	DestinationLocation string          `json:"destination_location"`
}

// FulfillmentSourceDTO cuánto se tomó y de qué ubicación.
type FulfillmentSourceDTO struct {
	Quantity decimal.Decimal `json:"quantity"`
	Location string          `json:"location"`
}

// OrderResponse representación de una orden.
// FulfilledFromLabel es el descriptor unido para mostrar, ej:
// "25 from b2-05, 60 from a1-01" ("-" mientras no haya consumo).
type OrderResponse struct {
	ID                  string                 `json:"id"`
	Material            string                 `json:"material"`
	Quantity            decimal.Decimal        `json:"quantity"`
	Status              string                 `json:"status"`
	FulfilledFrom       []FulfillmentSourceDTO `json:"fulfilled_from"`
	FulfilledFromLabel  string                 `json:"fulfilled_from_label"`
	DestinationLocation string                 `json:"destination_location"`
	CreatedAt           time.Time              `json:"created_at"`
}

// OrderListResponse respuesta de GET /api/orders.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Total int             `json:"total"`
}
