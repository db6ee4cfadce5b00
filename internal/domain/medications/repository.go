package medications

import (
	"context"

	"animal-shelter/internal/domain/animals"
)

// Repository es el "document store" de registros de medicación.
// Cada método es un request atómico; no hay transacciones entre requests.
type Repository interface {
	Create(ctx context.Context, m MedicationRecord) error
	GetByID(ctx context.Context, id string) (MedicationRecord, error)
	Update(ctx context.Context, m MedicationRecord) error
	Delete(ctx context.Context, id string) error

	// Índice (animal_id, date).
	ListByAnimal(ctx context.Context, animalID string) ([]MedicationRecord, error)
	// Índice (date).
	ListByDate(ctx context.Context, date string) ([]MedicationRecord, error)
	// Índice (group_id).
	ListByGroup(ctx context.Context, groupID string) ([]MedicationRecord, error)
}

// AnimalLookup evita depender del Service de animals completo.
type AnimalLookup interface {
	Lookup(ctx context.Context, id string) (animals.Animal, error)
}
