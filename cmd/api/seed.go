package main

import (
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/config"
	"github.com/shopspring/decimal"
)

// seedDemoData carga el escenario de demostración: 100 unidades del material
// designado en su ubicación primaria, 25 extraviadas en b2-05 y una orden
// pendiente de 85. Las órdenes sembradas quedan pendientes a propósito: el
// procesamiento debe dispararse desde la API, no al arrancar.
func seedDemoData(
	primaryRepo repository.PrimaryRecordRepository,
	pseudoRepo repository.PseudoRecordRepository,
	orderRepo repository.OrderRepository,
	activityRepo repository.ActivityRepository,
	wh config.WarehouseConfig,
) error {
	material := wh.PrimaryMaterial

	if _, _, err := primaryRepo.Upsert(wh.PrimaryLocation, material, decimal.NewFromInt(100)); err != nil {
		return fmt.Errorf("sembrar stock primario: %w", err)
	}
	if _, _, err := pseudoRepo.Upsert(wh.PrimaryLocation, "b2-05", material, decimal.NewFromInt(25)); err != nil {
		return fmt.Errorf("sembrar stock extraviado: %w", err)
	}
	if err := orderRepo.Create(&entity.Order{
		ID:                  "57749991",
		Material:            material,
		Quantity:            decimal.NewFromInt(85),
		Status:              entity.OrderStatusPending,
		DestinationLocation: wh.PrimaryLocation,
		CreatedAt:           time.Now(),
	}); err != nil {
		return fmt.Errorf("sembrar orden: %w", err)
	}

	for _, msg := range []string{
		fmt.Sprintf("System initialized with %s inventory", material),
		fmt.Sprintf("Found 25 %s misplaced in b2-05 location", material),
		fmt.Sprintf("Order #57749991 created for 85 %s", material),
	} {
		if err := activityRepo.Append(entity.ActivityEntry{Timestamp: time.Now(), Message: msg}); err != nil {
			return fmt.Errorf("sembrar historial: %w", err)
		}
	}
	return nil
}
