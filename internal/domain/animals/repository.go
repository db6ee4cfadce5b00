package animals

import "context"

type Repository interface {
	Create(ctx context.Context, a Animal) error
	Update(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	// ListActive devuelve los animales activos en el orden nativo del store (inserción).
	ListActive(ctx context.Context) ([]Animal, error)
	// FindFirstMatch busca el primer animal (activo o no) con el mismo
	// nombre, tutor y creador. Lo usa la migración legacy.
	FindFirstMatch(ctx context.Context, name, ownerName, createdBy string) (Animal, error)
}
