package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/almacen-api/internal/application/orders"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Verificación de interfaz.
var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner serializa los procesamientos de órdenes sobre los repositorios en
// memoria. Un mutex global cumple el papel de la transacción de base de datos:
// dos procesamientos concurrentes no pueden gastar dos veces el mismo registro,
// y el resultado de la orden queda registrado antes de liberar la sección crítica.
type TxRunner struct {
	mu          sync.Mutex
	primaryRepo repository.PrimaryRecordRepository
	pseudoRepo  repository.PseudoRecordRepository
	orderRepo   repository.OrderRepository
}

// NewTxRunner construye el runner con los repositorios compartidos.
func NewTxRunner(
	primaryRepo repository.PrimaryRecordRepository,
	pseudoRepo repository.PseudoRecordRepository,
	orderRepo repository.OrderRepository,
) *TxRunner {
	return &TxRunner{
		primaryRepo: primaryRepo,
		pseudoRepo:  pseudoRepo,
		orderRepo:   orderRepo,
	}
}

// Run ejecuta fn dentro de la sección crítica con los repositorios compartidos.
func (r *TxRunner) Run(ctx context.Context, fn func(
	primaryRepo repository.PrimaryRecordRepository,
	pseudoRepo repository.PseudoRecordRepository,
	orderRepo repository.OrderRepository,
) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return fn(r.primaryRepo, r.pseudoRepo, r.orderRepo)
}
