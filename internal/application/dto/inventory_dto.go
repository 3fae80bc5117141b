package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddPrimaryRequest body para POST /api/inventory/primary.
// Location puede venir vacío para el material designado: se aplica la ubicación primaria.
type AddPrimaryRequest struct {
	Location string          `json:"location"`
	Material string          `json:"material"`
	Quantity decimal.Decimal `json:"quantity"`
}

// AddPseudoRequest body para POST /api/inventory/pseudo.
type AddPseudoRequest struct {
	ExpectedLocation string          `json:"expected_location"`
	ActualLocation   string          `json:"actual_location"`
	Material         string          `json:"material"`
	Quantity         decimal.Decimal `json:"quantity"`
}

// PrimaryRecordResponse registro de stock primario.
type PrimaryRecordResponse struct {
	ID        int64           `json:"id"`
	Location  string          `json:"location"`
	Material  string          `json:"material"`
	Quantity  decimal.Decimal `json:"quantity"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

// PseudoRecordResponse registro de stock extraviado.
type PseudoRecordResponse struct {
	ID               int64           `json:"id"`
	ExpectedLocation string          `json:"expected_location"`
	ActualLocation   string          `json:"actual_location"`
	Material         string          `json:"material"`
	Quantity         decimal.Decimal `json:"quantity"`
	Status           string          `json:"status"`
	CreatedAt        time.Time       `json:"created_at"`
}

// AddPrimaryResponse resultado del alta en el sistema primario.
// Redirected indica que el material designado llegó con una ubicación distinta
// a la primaria y el alta se registró como stock extraviado (Pseudo).
type AddPrimaryResponse struct {
	Redirected bool                   `json:"redirected"`
	Merged     bool                   `json:"merged"`
	Primary    *PrimaryRecordResponse `json:"primary,omitempty"`
	Pseudo     *PseudoRecordResponse  `json:"pseudo,omitempty"`
}

// AddPseudoResponse resultado del alta en el sistema pseudo.
type AddPseudoResponse struct {
	Merged bool                  `json:"merged"`
	Pseudo *PseudoRecordResponse `json:"pseudo"`
}

// PrimaryListResponse respuesta de GET /api/inventory/primary.
type PrimaryListResponse struct {
	Items []PrimaryRecordResponse `json:"items"`
	Total int                     `json:"total"`
}

// PseudoListResponse respuesta de GET /api/inventory/pseudo.
type PseudoListResponse struct {
	Items []PseudoRecordResponse `json:"items"`
	Total int                    `json:"total"`
}
