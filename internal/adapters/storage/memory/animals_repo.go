package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"animal-shelter/internal/domain/animals"
)

type animalRepo struct {
	mu   sync.RWMutex
	byID map[string]animals.Animal
	// order preserva el orden de inserción (orden "nativo" del store).
	order []string
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		byID: make(map[string]animals.Animal),
	}
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("animal already exists")
	}
	r.byID[a.ID] = a
	r.order = append(r.order, a.ID)
	return nil
}

func (r *animalRepo) Update(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return fmt.Errorf("animal %s: %w", a.ID, animals.ErrNotFound)
	}
	r.byID[a.ID] = a
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, fmt.Errorf("animal %s: %w", id, animals.ErrNotFound)
	}
	return a, nil
}

func (r *animalRepo) ListActive(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0)
	for _, id := range r.order {
		if a := r.byID[id]; a.Active {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *animalRepo) FindFirstMatch(ctx context.Context, name, ownerName, createdBy string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		a := r.byID[id]
		if a.Name == name && a.OwnerName == ownerName && a.CreatedBy == createdBy {
			return a, nil
		}
	}
	return animals.Animal{}, animals.ErrNotFound
}
