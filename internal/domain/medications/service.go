package medications

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/platform/metrics"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("medication not found")
	// ErrAnimalNotFound cubre "nunca existió" y "desactivado" a propósito.
	ErrAnimalNotFound = errors.New("animal not found")
)

type Service struct {
	repo    Repository
	animals AnimalLookup
	now     func() time.Time
	metrics metrics.Recorder
}

func NewService(repo Repository, animals AnimalLookup) *Service {
	return &Service{
		repo:    repo,
		animals: animals,
		now:     time.Now,
		metrics: metrics.Nop{},
	}
}

// SetMetrics conecta un recorder opcional.
func (s *Service) SetMetrics(r metrics.Recorder) {
	if r == nil {
		r = metrics.Nop{}
	}
	s.metrics = r
}

func requireCaller(caller string) error {
	if strings.TrimSpace(caller) == "" {
		return ErrUnauthenticated
	}
	return nil
}

// activeAnimal resuelve el animal y exige que esté activo.
func (s *Service) activeAnimal(ctx context.Context, animalID string) (animals.Animal, error) {
	a, err := s.animals.Lookup(ctx, animalID)
	if err != nil {
		if errors.Is(err, animals.ErrNotFound) {
			return animals.Animal{}, ErrAnimalNotFound
		}
		return animals.Animal{}, err
	}
	if !a.Active {
		return animals.Animal{}, ErrAnimalNotFound
	}
	return a, nil
}

// loadChecked trae el registro y verifica que su animal siga activo.
// Es el chequeo común de administración, borrado y batch.
func (s *Service) loadChecked(ctx context.Context, id string) (MedicationRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return MedicationRecord{}, ErrNotFound
	}
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return MedicationRecord{}, err
	}
	if _, err := s.activeAnimal(ctx, m.AnimalID); err != nil {
		return MedicationRecord{}, err
	}
	return m, nil
}

// ListByAnimal devuelve los registros del animal, fecha más reciente primero.
// Vacío si no hay caller o el animal no existe / está inactivo.
func (s *Service) ListByAnimal(ctx context.Context, caller, animalID string) ([]MedicationRecord, error) {
	if requireCaller(caller) != nil {
		return []MedicationRecord{}, nil
	}
	if _, err := s.activeAnimal(ctx, animalID); err != nil {
		if errors.Is(err, ErrAnimalNotFound) {
			return []MedicationRecord{}, nil
		}
		return nil, err
	}

	items, err := s.repo.ListByAnimal(ctx, animalID)
	if err != nil {
		return nil, fmt.Errorf("list medications by animal: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date > items[j].Date
		}
		return items[i].Time > items[j].Time
	})
	return items, nil
}

// ListByDate devuelve los registros del día unidos con su animal, ordenados
// por hora. Los registros de animales inactivos se filtran.
func (s *Service) ListByDate(ctx context.Context, caller, date string) ([]MedicationWithAnimal, error) {
	if requireCaller(caller) != nil {
		return []MedicationWithAnimal{}, nil
	}
	date = strings.TrimSpace(date)
	if _, err := parseDate(date); err != nil {
		return nil, ErrInvalidInput
	}

	items, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("list medications by date: %w", err)
	}

	out, err := s.joinActive(ctx, items)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out, nil
}

// ListByGroup devuelve los registros de una orden, ordenados por (fecha, hora).
func (s *Service) ListByGroup(ctx context.Context, caller, groupID string) ([]MedicationWithAnimal, error) {
	if requireCaller(caller) != nil {
		return []MedicationWithAnimal{}, nil
	}
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return []MedicationWithAnimal{}, nil
	}

	items, err := s.repo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list medications by group: %w", err)
	}

	out, err := s.joinActive(ctx, items)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

// DailySchedule arma la vista del día: franjas horarias, progreso y últimas dosis.
// now lo provee el caller (no hay reloj del lado del core).
func (s *Service) DailySchedule(ctx context.Context, caller, date string, now time.Time) (DailySchedule, error) {
	items, err := s.ListByDate(ctx, caller, date)
	if err != nil {
		return DailySchedule{}, err
	}
	return BuildDailySchedule(strings.TrimSpace(date), items, now), nil
}

func (s *Service) joinActive(ctx context.Context, items []MedicationRecord) ([]MedicationWithAnimal, error) {
	cache := map[string]*animals.Animal{}
	out := make([]MedicationWithAnimal, 0, len(items))

	for _, m := range items {
		a, seen := cache[m.AnimalID]
		if !seen {
			found, err := s.activeAnimal(ctx, m.AnimalID)
			switch {
			case err == nil:
				a = &found
			case errors.Is(err, ErrAnimalNotFound):
				a = nil
			default:
				return nil, err
			}
			cache[m.AnimalID] = a
		}
		if a == nil {
			continue
		}
		out = append(out, MedicationWithAnimal{MedicationRecord: m, Animal: *a})
	}
	return out, nil
}
