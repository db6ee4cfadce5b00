package animals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"animal-shelter/internal/platform/metrics"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("animal not found")
)

type Service struct {
	repo    Repository
	now     func() time.Time
	metrics metrics.Recorder
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:    repo,
		now:     time.Now,
		metrics: metrics.Nop{},
	}
}

// SetMetrics conecta un recorder opcional (Prometheus en el servidor).
func (s *Service) SetMetrics(r metrics.Recorder) {
	if r == nil {
		r = metrics.Nop{}
	}
	s.metrics = r
}

// AnimalInput son los atributos mutables de un animal.
type AnimalInput struct {
	Name         string
	Sex          Sex
	Coat         string
	Age          string
	OwnerName    string
	TreatmentFor string
	Treatment    string
	FIV          bool
	FeLV         bool
	Rabies       bool
	V6           bool
}

func (in AnimalInput) normalize() (AnimalInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Sex = Sex(strings.TrimSpace(string(in.Sex)))
	in.Coat = strings.TrimSpace(in.Coat)
	in.Age = strings.TrimSpace(in.Age)
	in.OwnerName = strings.TrimSpace(in.OwnerName)
	in.TreatmentFor = strings.TrimSpace(in.TreatmentFor)
	in.Treatment = strings.TrimSpace(in.Treatment)

	if in.Name == "" || !in.Sex.Valid() {
		return AnimalInput{}, ErrInvalidInput
	}
	return in, nil
}

func (in AnimalInput) apply(a *Animal) {
	a.Name = in.Name
	a.Sex = in.Sex
	a.Coat = in.Coat
	a.Age = in.Age
	a.OwnerName = in.OwnerName
	a.TreatmentFor = in.TreatmentFor
	a.Treatment = in.Treatment
	a.FIV = in.FIV
	a.FeLV = in.FeLV
	a.Rabies = in.Rabies
	a.V6 = in.V6
}

// Add registra un animal activo creado por caller. No hay chequeo de duplicados.
func (s *Service) Add(ctx context.Context, caller string, in AnimalInput) (a Animal, err error) {
	defer func() { s.metrics.Observe("animals.add", err) }()

	if strings.TrimSpace(caller) == "" {
		return Animal{}, ErrUnauthenticated
	}
	in, err = in.normalize()
	if err != nil {
		return Animal{}, err
	}

	now := s.now()
	a = Animal{
		ID:        uuid.NewString(),
		Active:    true,
		CreatedBy: caller,
		CreatedAt: now,
		UpdatedAt: now,
	}
	in.apply(&a)

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, fmt.Errorf("create animal: %w", err)
	}
	return a, nil
}

// List devuelve los animales activos. Sin caller devuelve vacío, no error:
// la UI muestra estado vacío mientras carga la sesión.
func (s *Service) List(ctx context.Context, caller string) ([]Animal, error) {
	if strings.TrimSpace(caller) == "" {
		return []Animal{}, nil
	}
	return s.repo.ListActive(ctx)
}

// Get devuelve el animal solo si existe y está activo. "No autenticado",
// "no existe" e "inactivo" son indistinguibles para el caller.
func (s *Service) Get(ctx context.Context, caller, id string) (Animal, bool, error) {
	if strings.TrimSpace(caller) == "" {
		return Animal{}, false, nil
	}
	a, err := s.Lookup(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Animal{}, false, nil
		}
		return Animal{}, false, err
	}
	if !a.Active {
		return Animal{}, false, nil
	}
	return a, true, nil
}

// Lookup resuelve el animal por id sin filtrar por Active ni exigir caller.
func (s *Service) Lookup(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// Update reemplaza todos los atributos mutables. Solo valida existencia:
// un animal inactivo también se puede actualizar.
func (s *Service) Update(ctx context.Context, caller, id string, in AnimalInput) (a Animal, err error) {
	defer func() { s.metrics.Observe("animals.update", err) }()

	if strings.TrimSpace(caller) == "" {
		return Animal{}, ErrUnauthenticated
	}
	a, err = s.Lookup(ctx, id)
	if err != nil {
		return Animal{}, err
	}
	in, err = in.normalize()
	if err != nil {
		return Animal{}, err
	}

	in.apply(&a)
	a.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, fmt.Errorf("update animal: %w", err)
	}
	return a, nil
}

// Deactivate hace el borrado lógico. No existe la operación inversa.
// Los registros de medicación del animal no se tocan.
func (s *Service) Deactivate(ctx context.Context, caller, id string) (err error) {
	defer func() { s.metrics.Observe("animals.deactivate", err) }()

	if strings.TrimSpace(caller) == "" {
		return ErrUnauthenticated
	}
	a, err := s.Lookup(ctx, id)
	if err != nil {
		return err
	}

	a.Active = false
	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, a); err != nil {
		return fmt.Errorf("deactivate animal: %w", err)
	}
	return nil
}
