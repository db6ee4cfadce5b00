package legacy

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("legacy record not found")

// Source lee las tablas legacy. Solo lectura: la migración nunca las modifica.
type Source interface {
	ListAnimals(ctx context.Context) ([]Animal, error)
	GetAnimal(ctx context.Context, id string) (Animal, error)
	ListMedicationRecords(ctx context.Context) ([]MedicationRecord, error)
}
