// Package inventory contiene los casos de uso de alta de stock en los
// sistemas primario y pseudo (extraviado).
package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/domain/validation"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// UseCase altas y consultas de inventario.
type UseCase struct {
	primaryRepo  repository.PrimaryRecordRepository
	pseudoRepo   repository.PseudoRecordRepository
	activityRepo repository.ActivityRepository
	rules        validation.Rules
	log          *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	primaryRepo repository.PrimaryRecordRepository,
	pseudoRepo repository.PseudoRecordRepository,
	activityRepo repository.ActivityRepository,
	rules validation.Rules,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		primaryRepo:  primaryRepo,
		pseudoRepo:   pseudoRepo,
		activityRepo: activityRepo,
		rules:        rules,
		log:          log,
	}
}

// AddPrimary registra stock en el sistema primario con fusión por (material, ubicación).
//
// Reglas para el material designado: sin ubicación se asume la primaria; con una
// ubicación distinta de la primaria el alta se redirige al sistema pseudo (el
// material está, por definición, fuera de su sitio). Todo-o-nada: ante un error
// de validación no se muta ningún almacén.
func (uc *UseCase) AddPrimary(in dto.AddPrimaryRequest) (*dto.AddPrimaryResponse, error) {
	location := strings.TrimSpace(in.Location)
	material := strings.TrimSpace(in.Material)

	if material == "" || in.Quantity.IsZero() {
		return nil, domain.ErrMissingField
	}
	if !validation.IsPositiveIntegerQuantity(in.Quantity) {
		return nil, domain.ErrInvalidQuantity
	}

	if material == uc.rules.PrimaryMaterial {
		if location == "" {
			location = uc.rules.PrimaryLocation
		} else if location != uc.rules.PrimaryLocation {
			// Material designado en ubicación ajena: es stock extraviado.
			pseudo, err := uc.AddPseudo(dto.AddPseudoRequest{
				ExpectedLocation: uc.rules.PrimaryLocation,
				ActualLocation:   location,
				Material:         material,
				Quantity:         in.Quantity,
			})
			if err != nil {
				return nil, err
			}
			return &dto.AddPrimaryResponse{
				Redirected: true,
				Merged:     pseudo.Merged,
				Pseudo:     pseudo.Pseudo,
			}, nil
		}
	}

	if location == "" {
		return nil, domain.ErrMissingField
	}
	if !validation.IsValidLocationCode(location) {
		return nil, domain.ErrInvalidLocationFormat
	}

	rec, merged, err := uc.primaryRepo.Upsert(location, material, in.Quantity)
	if err != nil {
		return nil, fmt.Errorf("alta de stock primario: %w", err)
	}

	if merged {
		uc.logActivity(fmt.Sprintf("Updated %s quantity at %s to %s", material, location, rec.Quantity))
	} else {
		uc.logActivity(fmt.Sprintf("Added %s %s to primary inventory at %s", in.Quantity, material, location))
	}
	uc.log.Info().
		Str("material", material).
		Str("location", location).
		Str("quantity", in.Quantity.String()).
		Bool("merged", merged).
		Msg("stock primario registrado")

	return &dto.AddPrimaryResponse{
		Merged:  merged,
		Primary: ToPrimaryResponse(rec),
	}, nil
}

// AddPseudo registra stock extraviado con fusión por (material, esperada, real).
// La validación corre completa antes de cualquier mutación.
func (uc *UseCase) AddPseudo(in dto.AddPseudoRequest) (*dto.AddPseudoResponse, error) {
	expected := strings.TrimSpace(in.ExpectedLocation)
	actual := strings.TrimSpace(in.ActualLocation)
	material := strings.TrimSpace(in.Material)

	if err := uc.rules.ValidatePseudo(expected, actual, material, in.Quantity); err != nil {
		return nil, err
	}

	rec, merged, err := uc.pseudoRepo.Upsert(expected, actual, material, in.Quantity)
	if err != nil {
		return nil, fmt.Errorf("alta de stock extraviado: %w", err)
	}

	if merged {
		uc.logActivity(fmt.Sprintf("Updated %s quantity at %s to %s", material, actual, rec.Quantity))
	} else {
		uc.logActivity(fmt.Sprintf("Added %s %s to pseudo inventory at %s (expected: %s)", in.Quantity, material, actual, expected))
	}
	uc.log.Info().
		Str("material", material).
		Str("expected_location", expected).
		Str("actual_location", actual).
		Str("quantity", in.Quantity.String()).
		Bool("merged", merged).
		Msg("stock extraviado registrado")

	return &dto.AddPseudoResponse{
		Merged: merged,
		Pseudo: ToPseudoResponse(rec),
	}, nil
}

// ListPrimary devuelve el stock primario en orden de inserción.
func (uc *UseCase) ListPrimary() (*dto.PrimaryListResponse, error) {
	recs, err := uc.primaryRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PrimaryRecordResponse, 0, len(recs))
	for _, rec := range recs {
		items = append(items, *ToPrimaryResponse(rec))
	}
	return &dto.PrimaryListResponse{Items: items, Total: len(items)}, nil
}

// ListPseudo devuelve el stock extraviado en orden de inserción.
func (uc *UseCase) ListPseudo() (*dto.PseudoListResponse, error) {
	recs, err := uc.pseudoRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PseudoRecordResponse, 0, len(recs))
	for _, rec := range recs {
		items = append(items, *ToPseudoResponse(rec))
	}
	return &dto.PseudoListResponse{Items: items, Total: len(items)}, nil
}

func (uc *UseCase) logActivity(msg string) {
	if err := uc.activityRepo.Append(entity.ActivityEntry{Timestamp: time.Now(), Message: msg}); err != nil {
		uc.log.Warn().Err(err).Msg("registrar actividad")
	}
}

// ToPrimaryResponse mapea la entidad al DTO de respuesta.
func ToPrimaryResponse(rec *entity.PrimaryRecord) *dto.PrimaryRecordResponse {
	if rec == nil {
		return nil
	}
	return &dto.PrimaryRecordResponse{
		ID:        rec.ID,
		Location:  rec.Location,
		Material:  rec.Material,
		Quantity:  rec.Quantity,
		Status:    rec.Status,
		CreatedAt: rec.CreatedAt,
	}
}

// ToPseudoResponse mapea la entidad al DTO de respuesta.
func ToPseudoResponse(rec *entity.PseudoRecord) *dto.PseudoRecordResponse {
	if rec == nil {
		return nil
	}
	return &dto.PseudoRecordResponse{
		ID:               rec.ID,
		ExpectedLocation: rec.ExpectedLocation,
		ActualLocation:   rec.ActualLocation,
		Material:         rec.Material,
		Quantity:         rec.Quantity,
		Status:           rec.Status,
		CreatedAt:        rec.CreatedAt,
	}
}
