package memory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Invariante de fusión: dos altas al mismo (material, ubicación) dejan un solo
// registro cuya cantidad es la suma de ambas.
func TestPrimaryUpsert_FusionaPorMaterialYUbicacion(t *testing.T) {
	repo := NewPrimaryRecordRepository()

	first, merged, err := repo.Upsert("a1-01", "Steel Rods", decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.False(t, merged)
	assert.Equal(t, entity.StatusInStock, first.Status)

	second, merged, err := repo.Upsert("a1-01", "Steel Rods", decimal.NewFromInt(50))
	require.NoError(t, err)
	assert.True(t, merged, "misma clave debe fusionar, no duplicar")
	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.Quantity.Equal(decimal.NewFromInt(150)))

	list, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPrimaryUpsert_UbicacionDistintaCreaOtroRegistro(t *testing.T) {
	repo := NewPrimaryRecordRepository()

	_, _, err := repo.Upsert("a1-01", "Steel Rods", decimal.NewFromInt(100))
	require.NoError(t, err)
	rec, merged, err := repo.Upsert("c3-07", "Steel Rods", decimal.NewFromInt(30))
	require.NoError(t, err)
	assert.False(t, merged)
	assert.NotEqual(t, int64(0), rec.ID)

	list, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

// Invariante de agotamiento: la cantidad nunca queda negativa y el registro
// se elimina exactamente cuando llega a cero.
func TestPrimaryDeplete_EliminaAlLlegarACero(t *testing.T) {
	repo := NewPrimaryRecordRepository()
	_, _, err := repo.Upsert("a1-01", "Steel Rods", decimal.NewFromInt(60))
	require.NoError(t, err)

	rec, removed, err := repo.Deplete("Steel Rods", "a1-01", decimal.NewFromInt(20))
	require.NoError(t, err)
	assert.False(t, removed)
	assert.True(t, rec.Quantity.Equal(decimal.NewFromInt(40)))

	rec, removed, err = repo.Deplete("Steel Rods", "a1-01", decimal.NewFromInt(40))
	require.NoError(t, err)
	assert.True(t, removed, "cantidad cero debe eliminar el registro")
	assert.True(t, rec.Quantity.IsZero())

	found, err := repo.Find("Steel Rods", "a1-01")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestPrimaryDeplete_RechazaMasDeLoDisponible(t *testing.T) {
	repo := NewPrimaryRecordRepository()
	_, _, err := repo.Upsert("a1-01", "Steel Rods", decimal.NewFromInt(10))
	require.NoError(t, err)

	_, _, err = repo.Deplete("Steel Rods", "a1-01", decimal.NewFromInt(11))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// El registro quedó intacto.
	rec, err := repo.Find("Steel Rods", "a1-01")
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.True(t, rec.Quantity.Equal(decimal.NewFromInt(10)))
}

func TestPrimaryDeplete_RegistroInexistente(t *testing.T) {
	repo := NewPrimaryRecordRepository()
	_, _, err := repo.Deplete("Steel Rods", "a1-01", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
