package memory

import (
	"sync"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Verificación de interfaz.
var _ repository.ActivityRepository = (*ActivityRepository)(nil)

// ActivityRepository historial de actividad en memoria, solo-añadir.
type ActivityRepository struct {
	mu      sync.RWMutex
	entries []entity.ActivityEntry
}

// NewActivityRepository construye el historial vacío.
func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

// Append añade una entrada al final del historial.
func (r *ActivityRepository) Append(e entity.ActivityEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, e)
	return nil
}

// List devuelve las entradas de la más antigua a la más reciente.
func (r *ActivityRepository) List() ([]entity.ActivityEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.ActivityEntry, len(r.entries))
	copy(out, r.entries)
	return out, nil
}
