// Package memory implementa los repositorios del dominio sobre slices en
// memoria, conservando el orden de inserción. Cada repositorio protege su
// estado con su propio mutex; la atomicidad entre repositorios durante el
// procesamiento de órdenes la aporta TxRunner.
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
var _ repository.PrimaryRecordRepository = (*PrimaryRecordRepository)(nil)

// PrimaryRecordRepository almacén en memoria del stock primario.
type PrimaryRecordRepository struct {
	mu      sync.RWMutex
	records []*entity.PrimaryRecord
	nextID  int64
}

// NewPrimaryRecordRepository construye el repositorio vacío.
func NewPrimaryRecordRepository() *PrimaryRecordRepository {
	return &PrimaryRecordRepository{nextID: 1}
}

// Upsert fusiona por (material, ubicación) sumando cantidades, o crea un registro nuevo.
func (r *PrimaryRecordRepository) Upsert(location, material string, quantity decimal.Decimal) (*entity.PrimaryRecord, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range r.records {
		if rec.Material == material && rec.Location == location {
			rec.Quantity = rec.Quantity.Add(quantity)
			return clonePrimary(rec), true, nil
		}
	}

	rec := &entity.PrimaryRecord{
		ID:        r.nextID,
		Location:  location,
		Material:  material,
		Quantity:  quantity,
		Status:    entity.StatusInStock,
		CreatedAt: time.Now(),
	}
	r.nextID++
	r.records = append(r.records, rec)
	return clonePrimary(rec), false, nil
}

// Find devuelve el registro para (material, ubicación) o nil.
func (r *PrimaryRecordRepository) Find(material, location string) (*entity.PrimaryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.Material == material && rec.Location == location {
			return clonePrimary(rec), nil
		}
	}
	return nil, nil
}

// List devuelve los registros en orden de inserción.
func (r *PrimaryRecordRepository) List() ([]*entity.PrimaryRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.PrimaryRecord, 0, len(r.records))
	for _, rec := range r.records {
		out = append(out, clonePrimary(rec))
	}
	return out, nil
}

// Deplete descuenta amount; elimina el registro si la cantidad llega a cero.
func (r *PrimaryRecordRepository) Deplete(material, location string, amount decimal.Decimal) (*entity.PrimaryRecord, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, rec := range r.records {
		if rec.Material != material || rec.Location != location {
			continue
		}
		if amount.GreaterThan(rec.Quantity) {
			return nil, false, domain.ErrInsufficientStock
		}
		rec.Quantity = rec.Quantity.Sub(amount)
		if rec.Quantity.IsZero() {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return clonePrimary(rec), true, nil
		}
		return clonePrimary(rec), false, nil
	}
	return nil, false, domain.ErrNotFound
}

func clonePrimary(rec *entity.PrimaryRecord) *entity.PrimaryRecord {
	c := *rec
	return &c
}
