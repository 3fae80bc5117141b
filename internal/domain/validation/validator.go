// Package validation contiene los predicados puros que protegen las
// mutaciones del inventario (servicio de dominio, sin efectos secundarios).
package validation

import (
	"regexp"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Formato de código de ubicación: letra minúscula, dígito, guion, dos dígitos (ej: a1-01, b2-05).
var locationCodePattern = regexp.MustCompile(`^[a-z][0-9]-[0-9]{2}$`)

// IsValidLocationCode verifica el formato del código de ubicación.
func IsValidLocationCode(code string) bool {
	return locationCodePattern.MatchString(code)
}

// IsPositiveIntegerQuantity verifica que la cantidad sea un entero mayor que cero.
// Rechaza fracciones en lugar de truncarlas.
func IsPositiveIntegerQuantity(q decimal.Decimal) bool {
	return q.IsInteger() && q.GreaterThan(decimal.Zero)
}

// Rules reglas del almacén: el material designado solo puede esperarse
// en la ubicación primaria autorizada.
type Rules struct {
	PrimaryMaterial string
	PrimaryLocation string
}

// ValidatePseudo valida el alta de un registro pseudo. Devuelve el primer
// error de dominio encontrado, en el mismo orden de evaluación que aplica
// el formulario de captura:
//
//	campos vacíos -> material designado fuera de su ubicación primaria ->
//	ubicaciones iguales -> formato de ubicación -> cantidad.
func (r Rules) ValidatePseudo(expectedLocation, actualLocation, material string, quantity decimal.Decimal) error {
	if expectedLocation == "" || actualLocation == "" || material == "" || quantity.IsZero() {
		return domain.ErrMissingField
	}
	if material == r.PrimaryMaterial && expectedLocation != r.PrimaryLocation {
		return domain.ErrLocationMismatch
	}
	if expectedLocation == actualLocation {
		return domain.ErrSameLocation
	}
	if !IsValidLocationCode(expectedLocation) || !IsValidLocationCode(actualLocation) {
		return domain.ErrInvalidLocationFormat
	}
	if !IsPositiveIntegerQuantity(quantity) {
		return domain.ErrInvalidQuantity
	}
	return nil
}
