package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// OrderRepository acceso al libro de órdenes.
type OrderRepository interface {
	Create(o *entity.Order) error

	// GetByID devuelve la orden o nil si no existe.
	GetByID(id string) (*entity.Order, error)

	// Exists indica si el ID ya está en uso (chequeo de colisión del generador).
	Exists(id string) (bool, error)

	// Update reemplaza el estado de la orden (solo lo invoca el procesador).
	Update(o *entity.Order) error

	// List devuelve las órdenes en orden de creación.
	List() ([]*entity.Order, error)
}
