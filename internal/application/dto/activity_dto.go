package dto

import "time"

// ActivityEntryResponse entrada del historial de actividad.
type ActivityEntryResponse struct {
	Timestamp     time.Time `json:"timestamp"`
	TransactionID string    `json:"transaction_id,omitempty"`
	Message       string    `json:"message"`
}

// ActivityListResponse respuesta de GET /api/activity.
type ActivityListResponse struct {
	Items []ActivityEntryResponse `json:"items"`
	Total int                     `json:"total"`
}
