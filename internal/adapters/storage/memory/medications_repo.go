package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"animal-shelter/internal/domain/medications"
)

type medicationRepo struct {
	mu    sync.RWMutex
	byID  map[string]medications.MedicationRecord
	order []string
}

func NewMedicationRepo() medications.Repository {
	return &medicationRepo{
		byID: make(map[string]medications.MedicationRecord),
	}
}

func (r *medicationRepo) Create(ctx context.Context, m medications.MedicationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("medication id required")
	}
	if _, exists := r.byID[m.ID]; exists {
		return errors.New("medication already exists")
	}
	r.byID[m.ID] = m
	r.order = append(r.order, m.ID)
	return nil
}

func (r *medicationRepo) GetByID(ctx context.Context, id string) (medications.MedicationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return medications.MedicationRecord{}, fmt.Errorf("medication %s: %w", id, medications.ErrNotFound)
	}
	return m, nil
}

func (r *medicationRepo) Update(ctx context.Context, m medications.MedicationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[m.ID]; !exists {
		return fmt.Errorf("medication %s: %w", m.ID, medications.ErrNotFound)
	}
	r.byID[m.ID] = m
	return nil
}

func (r *medicationRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return fmt.Errorf("medication %s: %w", id, medications.ErrNotFound)
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *medicationRepo) ListByAnimal(ctx context.Context, animalID string) ([]medications.MedicationRecord, error) {
	return r.filter(func(m medications.MedicationRecord) bool { return m.AnimalID == animalID }), nil
}

func (r *medicationRepo) ListByDate(ctx context.Context, date string) ([]medications.MedicationRecord, error) {
	return r.filter(func(m medications.MedicationRecord) bool { return m.Date == date }), nil
}

func (r *medicationRepo) ListByGroup(ctx context.Context, groupID string) ([]medications.MedicationRecord, error) {
	return r.filter(func(m medications.MedicationRecord) bool {
		return m.GroupID != nil && *m.GroupID == groupID
	}), nil
}

func (r *medicationRepo) filter(keep func(medications.MedicationRecord) bool) []medications.MedicationRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medications.MedicationRecord, 0)
	for _, id := range r.order {
		if m := r.byID[id]; keep(m) {
			out = append(out, m)
		}
	}
	return out
}
