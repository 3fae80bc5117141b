package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrMissingField          = errors.New("todos los campos son obligatorios")
	ErrInvalidLocationFormat = errors.New("formato de ubicación inválido (ej: a1-01)")
	ErrSameLocation          = errors.New("la ubicación esperada y la real no pueden ser iguales")
	ErrLocationMismatch      = errors.New("la ubicación esperada no corresponde a la ubicación primaria del material")
	ErrInvalidQuantity       = errors.New("la cantidad debe ser un entero positivo")
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrDuplicate             = errors.New("recurso duplicado")
	ErrInvalidState          = errors.New("la orden ya fue procesada")
	ErrInsufficientStock     = errors.New("stock insuficiente")
)
