package analytics

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ActivityUseCase lectura del historial de actividad.
type ActivityUseCase struct {
	activityRepo repository.ActivityRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(activityRepo repository.ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{activityRepo: activityRepo}
}

// List devuelve el historial completo, de la entrada más antigua a la más reciente.
func (uc *ActivityUseCase) List() (*dto.ActivityListResponse, error) {
	entries, err := uc.activityRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActivityEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, dto.ActivityEntryResponse{
			Timestamp:     e.Timestamp,
			TransactionID: e.TransactionID,
			Message:       e.Message,
		})
	}
	return &dto.ActivityListResponse{Items: items, Total: len(items)}, nil
}
