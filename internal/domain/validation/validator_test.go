package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/validation"
)

var testRules = validation.Rules{
	PrimaryMaterial: "Steel Rods",
	PrimaryLocation: "a1-01",
}

func TestIsValidLocationCode(t *testing.T) {
	cases := []struct {
		code  string
		valid bool
	}{
		{"a1-01", true},
		{"b2-05", true},
		{"z9-99", true},
		{"A1-01", false},  // mayúscula
		{"a1-1", false},   // un solo dígito final
		{"a1-001", false}, // tres dígitos finales
		{"aa-01", false},  // letra donde va dígito
		{"1a-01", false},  // orden invertido
		{"a101", false},   // sin guion
		{"", false},
		{"a1-01 ", false}, // espacio final
	}
	for _, tc := range cases {
		assert.Equal(t, tc.valid, validation.IsValidLocationCode(tc.code),
			"código %q: se esperaba valid=%v", tc.code, tc.valid)
	}
}

func TestIsPositiveIntegerQuantity(t *testing.T) {
	assert.True(t, validation.IsPositiveIntegerQuantity(decimal.NewFromInt(1)))
	assert.True(t, validation.IsPositiveIntegerQuantity(decimal.NewFromInt(1000)))

	assert.False(t, validation.IsPositiveIntegerQuantity(decimal.Zero), "cero no es positivo")
	assert.False(t, validation.IsPositiveIntegerQuantity(decimal.NewFromInt(-5)), "negativo rechazado")
	assert.False(t, validation.IsPositiveIntegerQuantity(decimal.NewFromFloat(2.5)), "fracción rechazada, no truncada")
}

func TestValidatePseudo_CamposVacios(t *testing.T) {
	qty := decimal.NewFromInt(10)

	assert.ErrorIs(t, testRules.ValidatePseudo("", "b2-05", "Steel Rods", qty), domain.ErrMissingField)
	assert.ErrorIs(t, testRules.ValidatePseudo("a1-01", "", "Steel Rods", qty), domain.ErrMissingField)
	assert.ErrorIs(t, testRules.ValidatePseudo("a1-01", "b2-05", "", qty), domain.ErrMissingField)
	assert.ErrorIs(t, testRules.ValidatePseudo("a1-01", "b2-05", "Steel Rods", decimal.Zero), domain.ErrMissingField)
}

// El material designado solo puede esperarse en su ubicación primaria.
func TestValidatePseudo_MaterialDesignadoFueraDeUbicacionPrimaria(t *testing.T) {
	err := testRules.ValidatePseudo("c3-07", "b2-05", "Steel Rods", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrLocationMismatch)

	// Otros materiales pueden esperarse en cualquier ubicación válida.
	err = testRules.ValidatePseudo("c3-07", "b2-05", "Copper Wire", decimal.NewFromInt(10))
	assert.NoError(t, err)
}

func TestValidatePseudo_UbicacionesIguales(t *testing.T) {
	err := testRules.ValidatePseudo("a1-01", "a1-01", "Steel Rods", decimal.NewFromInt(5))
	assert.ErrorIs(t, err, domain.ErrSameLocation)
}

func TestValidatePseudo_FormatoDeUbicacion(t *testing.T) {
	err := testRules.ValidatePseudo("a1-01", "B2-05", "Steel Rods", decimal.NewFromInt(5))
	assert.ErrorIs(t, err, domain.ErrInvalidLocationFormat)

	err = testRules.ValidatePseudo("pasillo-3", "b2-05", "Copper Wire", decimal.NewFromInt(5))
	assert.ErrorIs(t, err, domain.ErrInvalidLocationFormat)
}

func TestValidatePseudo_Cantidad(t *testing.T) {
	err := testRules.ValidatePseudo("a1-01", "b2-05", "Steel Rods", decimal.NewFromInt(-3))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	err = testRules.ValidatePseudo("a1-01", "b2-05", "Steel Rods", decimal.NewFromFloat(2.5))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	err = testRules.ValidatePseudo("a1-01", "b2-05", "Steel Rods", decimal.NewFromInt(25))
	assert.NoError(t, err)
}
