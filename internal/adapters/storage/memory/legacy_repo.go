package memory

import (
	"context"
	"fmt"
	"sync"

	"animal-shelter/internal/domain/legacy"
)

// LegacyRepo es una fuente legacy en memoria. Se siembra con Add* (tests y dev).
type LegacyRepo struct {
	mu      sync.RWMutex
	animals map[string]legacy.Animal
	order   []string
	records []legacy.MedicationRecord
}

func NewLegacyRepo() *LegacyRepo {
	return &LegacyRepo{animals: make(map[string]legacy.Animal)}
}

func (r *LegacyRepo) AddAnimal(a legacy.Animal) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.animals[a.ID]; !ok {
		r.order = append(r.order, a.ID)
	}
	r.animals[a.ID] = a
}

func (r *LegacyRepo) AddMedicationRecord(m legacy.MedicationRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, m)
}

func (r *LegacyRepo) ListAnimals(ctx context.Context) ([]legacy.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]legacy.Animal, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.animals[id])
	}
	return out, nil
}

func (r *LegacyRepo) GetAnimal(ctx context.Context, id string) (legacy.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.animals[id]
	if !ok {
		return legacy.Animal{}, fmt.Errorf("legacy animal %s: %w", id, legacy.ErrNotFound)
	}
	return a, nil
}

func (r *LegacyRepo) ListMedicationRecords(ctx context.Context) ([]legacy.MedicationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]legacy.MedicationRecord, len(r.records))
	copy(out, r.records)
	return out, nil
}
