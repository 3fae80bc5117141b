package orders_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/orders"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

const (
	testMaterial        = "Steel Rods"
	testPrimaryLocation = "a1-01"
)

// fixture arma los repositorios en memoria y los casos de uso de órdenes.
type fixture struct {
	primaryRepo  *memory.PrimaryRecordRepository
	pseudoRepo   *memory.PseudoRecordRepository
	orderRepo    *memory.OrderRepository
	activityRepo *memory.ActivityRepository
	fulfillUC    *orders.FulfillOrderUseCase
	orderUC      *orders.OrderUseCase
}

func newFixture(t *testing.T, autoFulfill bool) *fixture {
	t.Helper()
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	f := &fixture{
		primaryRepo:  memory.NewPrimaryRecordRepository(),
		pseudoRepo:   memory.NewPseudoRecordRepository(),
		orderRepo:    memory.NewOrderRepository(),
		activityRepo: memory.NewActivityRepository(),
	}
	txRunner := memory.NewTxRunner(f.primaryRepo, f.pseudoRepo, f.orderRepo)
	f.fulfillUC = orders.NewFulfillOrderUseCase(txRunner, f.activityRepo, testPrimaryLocation, log)
	f.orderUC = orders.NewOrderUseCase(f.orderRepo, f.activityRepo, f.fulfillUC, testMaterial, autoFulfill, log)
	return f
}

func (f *fixture) seedPrimary(t *testing.T, qty int64) {
	t.Helper()
	_, _, err := f.primaryRepo.Upsert(testPrimaryLocation, testMaterial, decimal.NewFromInt(qty))
	require.NoError(t, err)
}

func (f *fixture) seedPseudo(t *testing.T, actualLocation string, qty int64) {
	t.Helper()
	_, _, err := f.pseudoRepo.Upsert(testPrimaryLocation, actualLocation, testMaterial, decimal.NewFromInt(qty))
	require.NoError(t, err)
}

func (f *fixture) seedPendingOrder(t *testing.T, id string, qty int64) {
	t.Helper()
	require.NoError(t, f.orderRepo.Create(&entity.Order{
		ID:                  id,
		Material:            testMaterial,
		Quantity:            decimal.NewFromInt(qty),
		Status:              entity.OrderStatusPending,
		DestinationLocation: testPrimaryLocation,
	}))
}

// Escenario base: 100 en primaria, 25 extraviadas en b2-05, orden de 85.
// Debe salir todo de b2-05 primero (25) y el resto de a1-01 (60); la
// ubicación extraviada queda vacía y se elimina, la primaria baja a 40.
func TestFulfill_DrenaExtraviadoAntesQuePrimario(t *testing.T) {
	f := newFixture(t, false)
	f.seedPrimary(t, 100)
	f.seedPseudo(t, "b2-05", 25)
	f.seedPendingOrder(t, "57749991", 85)

	resp, err := f.fulfillUC.Fulfill(context.Background(), "57749991")
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusFulfilled, resp.Status)
	require.Len(t, resp.FulfilledFrom, 2)
	assert.Equal(t, "b2-05", resp.FulfilledFrom[0].Location, "lo extraviado se consume primero")
	assert.True(t, resp.FulfilledFrom[0].Quantity.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, testPrimaryLocation, resp.FulfilledFrom[1].Location)
	assert.True(t, resp.FulfilledFrom[1].Quantity.Equal(decimal.NewFromInt(60)))
	assert.Equal(t, "25 from b2-05, 60 from a1-01", resp.FulfilledFromLabel)

	prim, err := f.primaryRepo.Find(testMaterial, testPrimaryLocation)
	require.NoError(t, err)
	require.NotNil(t, prim)
	assert.True(t, prim.Quantity.Equal(decimal.NewFromInt(40)))

	pseudos, err := f.pseudoRepo.ListByMaterial(testMaterial)
	require.NoError(t, err)
	assert.Empty(t, pseudos, "el registro extraviado agotado debe eliminarse")
}

// Orden mayor que todo el stock disponible: parcial, con ambas fuentes y
// el faltante reflejado en el historial.
func TestFulfill_ParcialCuandoElStockNoAlcanza(t *testing.T) {
	f := newFixture(t, false)
	f.seedPrimary(t, 100)
	f.seedPseudo(t, "b2-05", 25)
	f.seedPendingOrder(t, "11112222", 200)

	resp, err := f.fulfillUC.Fulfill(context.Background(), "11112222")
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPartial, resp.Status)
	require.Len(t, resp.FulfilledFrom, 2)

	// Se drenó todo: 25 + 100 = 125 de 200.
	total := decimal.Zero
	for _, s := range resp.FulfilledFrom {
		total = total.Add(s.Quantity)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(125)))

	prim, err := f.primaryRepo.Find(testMaterial, testPrimaryLocation)
	require.NoError(t, err)
	assert.Nil(t, prim, "la primaria agotada se elimina")

	entries, err := f.activityRepo.List()
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Contains(t, entries[len(entries)-1].Message, "partially fulfilled (125/200)")
}

func TestFulfill_SinStockQuedaUnfulfilled(t *testing.T) {
	f := newFixture(t, false)
	f.seedPendingOrder(t, "33334444", 10)

	resp, err := f.fulfillUC.Fulfill(context.Background(), "33334444")
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusUnfulfilled, resp.Status)
	assert.Empty(t, resp.FulfilledFrom)
	assert.Equal(t, "-", resp.FulfilledFromLabel)
}

// Varios registros extraviados: se consumen en orden de inserción
// (el descubierto primero se gasta primero).
func TestFulfill_ConsumeExtraviadoEnOrdenDeInsercion(t *testing.T) {
	f := newFixture(t, false)
	f.seedPseudo(t, "b2-05", 10)
	f.seedPseudo(t, "c3-07", 10)
	f.seedPendingOrder(t, "55556666", 15)

	resp, err := f.fulfillUC.Fulfill(context.Background(), "55556666")
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusFulfilled, resp.Status)
	require.Len(t, resp.FulfilledFrom, 2)
	assert.Equal(t, "b2-05", resp.FulfilledFrom[0].Location)
	assert.True(t, resp.FulfilledFrom[0].Quantity.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "c3-07", resp.FulfilledFrom[1].Location)
	assert.True(t, resp.FulfilledFrom[1].Quantity.Equal(decimal.NewFromInt(5)))

	// El segundo registro conserva las 5 restantes.
	pseudos, err := f.pseudoRepo.ListByMaterial(testMaterial)
	require.NoError(t, err)
	require.Len(t, pseudos, 1)
	assert.Equal(t, "c3-07", pseudos[0].ActualLocation)
	assert.True(t, pseudos[0].Quantity.Equal(decimal.NewFromInt(5)))
}

// Conservación: lo descontado del inventario es exactamente
// min(cantidad pedida, stock total del material).
func TestFulfill_ConservacionDeUnidades(t *testing.T) {
	f := newFixture(t, false)
	f.seedPrimary(t, 30)
	f.seedPseudo(t, "b2-05", 12)
	f.seedPseudo(t, "c3-07", 8)
	f.seedPendingOrder(t, "77778888", 45)

	resp, err := f.fulfillUC.Fulfill(context.Background(), "77778888")
	require.NoError(t, err)

	drained := decimal.Zero
	for _, s := range resp.FulfilledFrom {
		drained = drained.Add(s.Quantity)
	}
	// Disponible 50, pedido 45: se drenan 45.
	assert.True(t, drained.Equal(decimal.NewFromInt(45)))

	prim, err := f.primaryRepo.Find(testMaterial, testPrimaryLocation)
	require.NoError(t, err)
	require.NotNil(t, prim)
	assert.True(t, prim.Quantity.Equal(decimal.NewFromInt(5)), "30 - (45-20) = 5")
}

// Idempotencia: una orden terminal nunca se reprocesa; el segundo intento
// devuelve ErrInvalidState sin tocar el inventario.
func TestFulfill_SegundaLlamadaNoMuta(t *testing.T) {
	f := newFixture(t, false)
	f.seedPrimary(t, 100)
	f.seedPendingOrder(t, "99990000", 40)

	_, err := f.fulfillUC.Fulfill(context.Background(), "99990000")
	require.NoError(t, err)

	prim, err := f.primaryRepo.Find(testMaterial, testPrimaryLocation)
	require.NoError(t, err)
	require.NotNil(t, prim)
	before := prim.Quantity

	_, err = f.fulfillUC.Fulfill(context.Background(), "99990000")
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	prim, err = f.primaryRepo.Find(testMaterial, testPrimaryLocation)
	require.NoError(t, err)
	require.NotNil(t, prim)
	assert.True(t, prim.Quantity.Equal(before), "el segundo intento no debe descontar nada")
}

func TestFulfill_OrdenInexistente(t *testing.T) {
	f := newFixture(t, false)
	_, err := f.fulfillUC.Fulfill(context.Background(), "00000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El procesamiento solo toca la ubicación primaria designada: stock primario
// del mismo material en otra ubicación no participa.
func TestFulfill_IgnoraPrimarioFueraDeLaUbicacionDesignada(t *testing.T) {
	f := newFixture(t, false)
	_, _, err := f.primaryRepo.Upsert("c3-07", testMaterial, decimal.NewFromInt(100))
	require.NoError(t, err)
	f.seedPendingOrder(t, "12121212", 10)

	resp, err := f.fulfillUC.Fulfill(context.Background(), "12121212")
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusUnfulfilled, resp.Status)
}
