package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ActivityRepository historial de actividad solo-añadir.
type ActivityRepository interface {
	Append(e entity.ActivityEntry) error

	// List devuelve las entradas de la más antigua a la más reciente.
	List() ([]entity.ActivityEntry, error)
}
