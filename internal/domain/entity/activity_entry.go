package entity

import "time"

// ActivityEntry es un evento legible del historial de actividad.
// El historial es solo-añadir: las entradas nunca se modifican ni se eliminan.
// TransactionID agrupa las entradas generadas por un mismo procesamiento de orden.
type ActivityEntry struct {
	Timestamp     time.Time
	TransactionID string
	Message       string
}
