// Package orders contiene el libro de órdenes y su procesamiento contra el
// inventario (asignación en dos fases).
package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/validation"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// Intentos máximos del generador de IDs antes de rendirse.
const maxIDAttempts = 10

// OrderUseCase creación y consulta de órdenes.
type OrderUseCase struct {
	orderRepo       repository.OrderRepository
	activityRepo    repository.ActivityRepository
	fulfill         *FulfillOrderUseCase
	primaryMaterial string
	autoFulfill     bool
	log             *logger.Logger
}

// NewOrderUseCase construye el caso de uso. Si autoFulfill está activo, las
// órdenes del material designado se procesan inmediatamente tras su creación.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	activityRepo repository.ActivityRepository,
	fulfill *FulfillOrderUseCase,
	primaryMaterial string,
	autoFulfill bool,
	log *logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:       orderRepo,
		activityRepo:    activityRepo,
		fulfill:         fulfill,
		primaryMaterial: primaryMaterial,
		autoFulfill:     autoFulfill,
		log:             log,
	}
}

// Create crea una orden en estado pending con un ID numérico de 8 dígitos
// verificado contra colisiones, y la procesa de inmediato si corresponde.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	material := strings.TrimSpace(in.Material)
	destination := strings.TrimSpace(in.DestinationLocation)

	if material == "" || destination == "" || in.Quantity.IsZero() {
		return nil, domain.ErrMissingField
	}
	if !validation.IsPositiveIntegerQuantity(in.Quantity) {
		return nil, domain.ErrInvalidQuantity
	}

	id, err := uc.generateOrderID()
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:                  id,
		Material:            material,
		Quantity:            in.Quantity,
		Status:              entity.OrderStatusPending,
		DestinationLocation: destination,
		CreatedAt:           time.Now(),
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("crear orden: %w", err)
	}
	uc.logActivity(fmt.Sprintf("Created order #%s for %s %s", id, in.Quantity, material))
	uc.log.Info().
		Str("order_id", id).
		Str("material", material).
		Str("quantity", in.Quantity.String()).
		Msg("orden creada")

	// El material designado se procesa automáticamente al crear la orden.
	if uc.autoFulfill && material == uc.primaryMaterial {
		resp, err := uc.fulfill.Fulfill(ctx, id)
		if err != nil {
			// Otra llamada pudo habérsenos adelantado; la orden ya es terminal.
			if errors.Is(err, domain.ErrInvalidState) {
				return uc.GetByID(id)
			}
			return nil, err
		}
		return resp, nil
	}

	return ToOrderResponse(order), nil
}

// GetByID devuelve la orden indicada.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return ToOrderResponse(order), nil
}

// List devuelve las órdenes en orden de creación.
func (uc *OrderUseCase) List() (*dto.OrderListResponse, error) {
	list, err := uc.orderRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *ToOrderResponse(o))
	}
	return &dto.OrderListResponse{Items: items, Total: len(items)}, nil
}

// generateOrderID produce un ID numérico de 8 dígitos único. La entropía sale
// de un UUID v4; la unicidad se verifica contra el libro de órdenes.
func (uc *OrderUseCase) generateOrderID() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := fmt.Sprintf("%08d", uuid.New().ID()%100000000)
		exists, err := uc.orderRepo.Exists(id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", fmt.Errorf("generar ID de orden: %d colisiones consecutivas", maxIDAttempts)
}

func (uc *OrderUseCase) logActivity(msg string) {
	if err := uc.activityRepo.Append(entity.ActivityEntry{Timestamp: time.Now(), Message: msg}); err != nil {
		uc.log.Warn().Err(err).Msg("registrar actividad")
	}
}
