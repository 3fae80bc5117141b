package memory

import (
	"sync"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Verificación de interfaz.
var _ repository.PseudoRecordRepository = (*PseudoRecordRepository)(nil)

// PseudoRecordRepository almacén en memoria del stock extraviado.
// El slice conserva el orden de inserción, que es contractual para
// el consumo FIFO durante el procesamiento de órdenes.
type PseudoRecordRepository struct {
	mu      sync.RWMutex
	records []*entity.PseudoRecord
	nextID  int64
}

// NewPseudoRecordRepository construye el repositorio vacío.
func NewPseudoRecordRepository() *PseudoRecordRepository {
	return &PseudoRecordRepository{nextID: 1}
}

// Upsert fusiona por (material, esperada, real) sumando cantidades, o crea un registro nuevo.
func (r *PseudoRecordRepository) Upsert(expectedLocation, actualLocation, material string, quantity decimal.Decimal) (*entity.PseudoRecord, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.Material == material && rec.ExpectedLocation == expectedLocation && rec.ActualLocation == actualLocation {
			rec.Quantity = rec.Quantity.Add(quantity)
			return clonePseudo(rec), true, nil
		}
	}

	rec := &entity.PseudoRecord{
		ID:               r.nextID,
		ExpectedLocation: expectedLocation,
		ActualLocation:   actualLocation,
		Material:         material,
		Quantity:         quantity,
		Status:           entity.StatusMisplaced,
		CreatedAt:        time.Now(),
	}
	r.nextID++
	r.records = append(r.records, rec)
	return clonePseudo(rec), false, nil
}

// List devuelve todos los registros en orden de inserción.
func (r *PseudoRecordRepository) List() ([]*entity.PseudoRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.PseudoRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, clonePseudo(rec))
	}
	return out, nil
}

// ListByMaterial devuelve los registros del material, más antiguo primero.
func (r *PseudoRecordRepository) ListByMaterial(material string) ([]*entity.PseudoRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.PseudoRecord
	for _, rec := range r.records {
		if rec.Material == material {
			out = append(out, clonePseudo(rec))
		}
	}
	return out, nil
}

// Deplete descuenta amount del registro id; lo elimina si la cantidad llega a cero.
func (r *PseudoRecordRepository) Deplete(id int64, amount decimal.Decimal) (*entity.PseudoRecord, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rec := range r.records {
		if rec.ID != id {
			continue
		}
		if amount.GreaterThan(rec.Quantity) {
			return nil, false, domain.ErrInsufficientStock
		}
		rec.Quantity = rec.Quantity.Sub(amount)
		if rec.Quantity.IsZero() {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return clonePseudo(rec), true, nil
		}
		return clonePseudo(rec), false, nil
	}
	return nil, false, domain.ErrNotFound
}

func clonePseudo(rec *entity.PseudoRecord) *entity.PseudoRecord {
	c := *rec
	return &c
}
