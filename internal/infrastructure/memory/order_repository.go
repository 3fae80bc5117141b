package memory

import (
	"sync"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Verificación de interfaz.
var _ repository.OrderRepository = (*OrderRepository)(nil)

// OrderRepository libro de órdenes en memoria.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []*entity.Order
	byID   map[string]*entity.Order
}

// NewOrderRepository construye el repositorio vacío.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{byID: make(map[string]*entity.Order)}
}

// Create añade la orden; el ID debe ser único.
func (r *OrderRepository) Create(o *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[o.ID]; ok {
		return domain.ErrDuplicate
	}
	c := cloneOrder(o)
	r.orders = append(r.orders, c)
	r.byID[o.ID] = c
	return nil
}

// GetByID devuelve la orden o nil si no existe.
func (r *OrderRepository) GetByID(id string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return cloneOrder(o), nil
}

// Exists indica si el ID ya está en uso.
func (r *OrderRepository) Exists(id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok, nil
}

// Update reemplaza estado y fuentes de la orden almacenada.
func (r *OrderRepository) Update(o *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[o.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.Status = o.Status
	stored.FulfilledFrom = append([]entity.FulfillmentSource(nil), o.FulfilledFrom...)
	return nil
}

// List devuelve las órdenes en orden de creación.
func (r *OrderRepository) List() ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, cloneOrder(o))
	}
	return out, nil
}

func cloneOrder(o *entity.Order) *entity.Order {
	c := *o
	c.FulfilledFrom = append([]entity.FulfillmentSource(nil), o.FulfilledFrom...)
	return &c
}
