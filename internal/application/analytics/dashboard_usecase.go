// Package analytics contiene los casos de uso de solo lectura para el panel
// de control y el historial de actividad.
package analytics

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DashboardUseCase calcula los agregados del panel principal.
type DashboardUseCase struct {
	primaryRepo repository.PrimaryRecordRepository
	pseudoRepo  repository.PseudoRecordRepository
	orderRepo   repository.OrderRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	primaryRepo repository.PrimaryRecordRepository,
	pseudoRepo repository.PseudoRecordRepository,
	orderRepo repository.OrderRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		primaryRepo: primaryRepo,
		pseudoRepo:  pseudoRepo,
		orderRepo:   orderRepo,
	}
}

// GetSummary devuelve los cuatro contadores del panel: unidades totales,
// registros extraviados, órdenes pendientes y materiales distintos.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	primaries, err := uc.primaryRepo.List()
	if err != nil {
		return nil, err
	}
	pseudos, err := uc.pseudoRepo.List()
	if err != nil {
		return nil, err
	}
	orders, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	materials := make(map[string]struct{})
	for _, rec := range primaries {
		total = total.Add(rec.Quantity)
		materials[rec.Material] = struct{}{}
	}
	for _, rec := range pseudos {
		total = total.Add(rec.Quantity)
		materials[rec.Material] = struct{}{}
	}

	pending := 0
	for _, o := range orders {
		if o.Status == entity.OrderStatusPending {
			pending++
		}
	}

	return &dto.DashboardSummaryDTO{
		TotalInventory: total,
		MisplacedItems: len(pseudos),
		PendingOrders:  pending,
		MaterialTypes:  len(materials),
	}, nil
}
