package orders

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner ejecuta fn como sección crítica sobre los tres almacenes.
// Garantiza que un procesamiento de orden no se intercale con otro:
// leer la orden, drenar inventario y registrar el resultado es atómico.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		primaryRepo repository.PrimaryRecordRepository,
		pseudoRepo repository.PseudoRecordRepository,
		orderRepo repository.OrderRepository,
	) error) error
}
