package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// FulfillOrderUseCase procesa una orden drenando el inventario en dos fases:
// primero el stock extraviado del material (más antiguo primero) y después la
// ubicación primaria. La política es deliberada: quemar el inventario
// discrepante antes de tocar el pool autorizado.
type FulfillOrderUseCase struct {
	txRunner        TxRunner
	activityRepo    repository.ActivityRepository
	primaryLocation string
	log             *logger.Logger
}

// NewFulfillOrderUseCase construye el caso de uso.
func NewFulfillOrderUseCase(
	txRunner TxRunner,
	activityRepo repository.ActivityRepository,
	primaryLocation string,
	log *logger.Logger,
) *FulfillOrderUseCase {
	return &FulfillOrderUseCase{
		txRunner:        txRunner,
		activityRepo:    activityRepo,
		primaryLocation: primaryLocation,
		log:             log,
	}
}

// Fulfill ejecuta el procesamiento completo dentro de la sección crítica del
// TxRunner. Una orden inexistente devuelve ErrNotFound y una ya procesada
// ErrInvalidState; en ambos casos no se muta nada (una orden terminal nunca
// se reprocesa). El resultado queda registrado antes de liberar la sección.
func (uc *FulfillOrderUseCase) Fulfill(ctx context.Context, orderID string) (*dto.OrderResponse, error) {
	var result *entity.Order

	err := uc.txRunner.Run(ctx, func(
		primaryRepo repository.PrimaryRecordRepository,
		pseudoRepo repository.PseudoRecordRepository,
		orderRepo repository.OrderRepository,
	) error {
		order, err := orderRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		if order.IsTerminal() {
			return domain.ErrInvalidState
		}

		txID := uuid.New().String()
		remaining := order.Quantity
		var sources []entity.FulfillmentSource

		// Fase 1: drenar stock extraviado del material, más antiguo primero.
		pseudos, err := pseudoRepo.ListByMaterial(order.Material)
		if err != nil {
			return fmt.Errorf("listar stock extraviado: %w", err)
		}
		for _, rec := range pseudos {
			if !remaining.GreaterThan(decimal.Zero) {
				break
			}
			use := decimal.Min(remaining, rec.Quantity)
			_, removed, err := pseudoRepo.Deplete(rec.ID, use)
			if err != nil {
				return fmt.Errorf("descontar stock extraviado: %w", err)
			}
			remaining = remaining.Sub(use)
			sources = append(sources, entity.FulfillmentSource{Quantity: use, Location: rec.ActualLocation})
			uc.logActivity(txID, fmt.Sprintf("Used %s %s from discrepancy location %s for order %s",
				use, order.Material, rec.ActualLocation, order.ID))
			if removed {
				uc.logActivity(txID, fmt.Sprintf("Removed empty discrepancy location %s from system", rec.ActualLocation))
			}
		}

		// Fase 2: recurrir a la ubicación primaria si aún falta.
		if remaining.GreaterThan(decimal.Zero) {
			prim, err := primaryRepo.Find(order.Material, uc.primaryLocation)
			if err != nil {
				return fmt.Errorf("buscar stock primario: %w", err)
			}
			if prim != nil && prim.Quantity.GreaterThan(decimal.Zero) {
				use := decimal.Min(remaining, prim.Quantity)
				_, removed, err := primaryRepo.Deplete(order.Material, uc.primaryLocation, use)
				if err != nil {
					return fmt.Errorf("descontar stock primario: %w", err)
				}
				remaining = remaining.Sub(use)
				sources = append(sources, entity.FulfillmentSource{Quantity: use, Location: uc.primaryLocation})
				uc.logActivity(txID, fmt.Sprintf("Used %s %s from primary location %s for order %s",
					use, order.Material, uc.primaryLocation, order.ID))
				if removed {
					uc.logActivity(txID, fmt.Sprintf("Removed empty primary location %s from system", uc.primaryLocation))
				}
			}
		}

		// Resultado: fulfilled / partial / unfulfilled, una sola vez y terminal.
		order.FulfilledFrom = sources
		switch {
		case !remaining.GreaterThan(decimal.Zero):
			order.Status = entity.OrderStatusFulfilled
			uc.logActivity(txID, fmt.Sprintf("Order %s fully fulfilled", order.ID))
		case len(sources) > 0:
			order.Status = entity.OrderStatusPartial
			fulfilled := order.Quantity.Sub(remaining)
			uc.logActivity(txID, fmt.Sprintf("Order %s partially fulfilled (%s/%s)", order.ID, fulfilled, order.Quantity))
		default:
			order.Status = entity.OrderStatusUnfulfilled
			uc.logActivity(txID, fmt.Sprintf("Order %s could not be fulfilled due to insufficient inventory", order.ID))
		}

		if err := orderRepo.Update(order); err != nil {
			return fmt.Errorf("registrar resultado de la orden: %w", err)
		}

		uc.log.Info().
			Str("order_id", order.ID).
			Str("tx_id", txID).
			Str("status", order.Status).
			Str("remaining", remaining.String()).
			Msg("orden procesada")

		result = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToOrderResponse(result), nil
}

func (uc *FulfillOrderUseCase) logActivity(txID, msg string) {
	if err := uc.activityRepo.Append(entity.ActivityEntry{
		Timestamp:     time.Now(),
		TransactionID: txID,
		Message:       msg,
	}); err != nil {
		uc.log.Warn().Err(err).Msg("registrar actividad")
	}
}

// ToOrderResponse mapea la entidad al DTO de respuesta.
func ToOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	sources := make([]dto.FulfillmentSourceDTO, 0, len(o.FulfilledFrom))
	for _, s := range o.FulfilledFrom {
		sources = append(sources, dto.FulfillmentSourceDTO{Quantity: s.Quantity, Location: s.Location})
	}
	return &dto.OrderResponse{
		ID:                  o.ID,
		Material:            o.Material,
		Quantity:            o.Quantity,
		Status:              o.Status,
		FulfilledFrom:       sources,
		FulfilledFromLabel:  entity.JoinSources(o.FulfilledFrom),
		DestinationLocation: o.DestinationLocation,
		CreatedAt:           o.CreatedAt,
	}
}
