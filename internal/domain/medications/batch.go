package medications

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Patch es el subconjunto de campos que aplica BatchUpdate. nil = no tocar.
// Observations = "" (explícito) borra las observaciones.
type Patch struct {
	Medication   *string
	Dose         *string
	Time         *string
	Observations *string
}

func (p Patch) normalize() (Patch, error) {
	p.Medication = optional(p.Medication)
	p.Dose = optional(p.Dose)
	p.Time = optional(p.Time)
	if p.Observations != nil {
		v := strings.TrimSpace(*p.Observations)
		p.Observations = &v
	}

	if p.Medication == nil && p.Dose == nil && p.Time == nil && p.Observations == nil {
		return Patch{}, ErrInvalidInput
	}
	if p.Time != nil {
		if _, err := time.Parse(TimeLayout, *p.Time); err != nil {
			return Patch{}, ErrInvalidInput
		}
	}
	return p, nil
}

func (p Patch) apply(m *MedicationRecord) {
	if p.Medication != nil {
		m.Medication = *p.Medication
	}
	if p.Dose != nil {
		m.Dose = *p.Dose
	}
	if p.Time != nil {
		m.Time = *p.Time
	}
	if p.Observations != nil {
		m.Observations = optional(p.Observations)
	}
}

// PartialApplyError indica que la fase de escritura se cortó a mitad.
// Las escrituras anteriores a Applied quedaron aplicadas: no hay rollback.
type PartialApplyError struct {
	Op      string
	Applied int
	Total   int
	Err     error
}

func (e *PartialApplyError) Error() string {
	return fmt.Sprintf("%s: applied %d of %d: %v", e.Op, e.Applied, e.Total, e.Err)
}

func (e *PartialApplyError) Unwrap() error { return e.Err }

// Todas las operaciones batch tienen dos fases explícitas:
//  1. validar: cada id existe y su animal está activo; un fallo aborta sin mutar nada.
//  2. aplicar: una escritura por registro, sin transacción entre ellas.

// BatchUpdate aplica el mismo patch a todos los registros.
func (s *Service) BatchUpdate(ctx context.Context, caller string, ids []string, patch Patch) (n int, err error) {
	defer func() { s.observeBatch("medications.batch_update", n, err) }()

	if err := requireCaller(caller); err != nil {
		return 0, err
	}
	patch, err = patch.normalize()
	if err != nil {
		return 0, err
	}
	records, err := s.validateAll(ctx, ids)
	if err != nil {
		return 0, err
	}

	return s.applyAll(ctx, "batch_update", records, func(m MedicationRecord) error {
		patch.apply(&m)
		m.UpdatedAt = s.now()
		return s.repo.Update(ctx, m)
	})
}

// BatchDelete borra todos los registros.
func (s *Service) BatchDelete(ctx context.Context, caller string, ids []string) (n int, err error) {
	defer func() { s.observeBatch("medications.batch_delete", n, err) }()

	if err := requireCaller(caller); err != nil {
		return 0, err
	}
	records, err := s.validateAll(ctx, ids)
	if err != nil {
		return 0, err
	}

	return s.applyAll(ctx, "batch_delete", records, func(m MedicationRecord) error {
		return s.repo.Delete(ctx, m.ID)
	})
}

// BatchMarkAdministered marca todos como administrados por caller con las
// mismas observaciones.
func (s *Service) BatchMarkAdministered(ctx context.Context, caller string, ids []string, observations *string) (n int, err error) {
	defer func() { s.observeBatch("medications.batch_mark_administered", n, err) }()

	if err := requireCaller(caller); err != nil {
		return 0, err
	}
	records, err := s.validateAll(ctx, ids)
	if err != nil {
		return 0, err
	}
	obs := optional(observations)

	return s.applyAll(ctx, "batch_mark_administered", records, func(m MedicationRecord) error {
		s.setAdministered(&m, caller, obs)
		return s.repo.Update(ctx, m)
	})
}

// BatchDeleteByGroup resuelve los ids por el índice de grupo y los borra.
// Grupo vacío o inexistente: 0 borrados, sin error.
func (s *Service) BatchDeleteByGroup(ctx context.Context, caller, groupID string) (n int, err error) {
	defer func() { s.observeBatch("medications.batch_delete_group", n, err) }()

	if err := requireCaller(caller); err != nil {
		return 0, err
	}
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return 0, nil
	}

	members, err := s.repo.ListByGroup(ctx, groupID)
	if err != nil {
		return 0, fmt.Errorf("list group %s: %w", groupID, err)
	}

	checked := map[string]error{}
	for _, m := range members {
		res, ok := checked[m.AnimalID]
		if !ok {
			_, res = s.activeAnimal(ctx, m.AnimalID)
			checked[m.AnimalID] = res
		}
		if res != nil {
			return 0, res
		}
	}

	return s.applyAll(ctx, "batch_delete_group", members, func(m MedicationRecord) error {
		return s.repo.Delete(ctx, m.ID)
	})
}

// validateAll es la fase 1: resuelve cada id (sin duplicados) y chequea su animal.
func (s *Service) validateAll(ctx context.Context, ids []string) ([]MedicationRecord, error) {
	unique := uniqueIDs(ids)
	out := make([]MedicationRecord, 0, len(unique))
	for _, id := range unique {
		m, err := s.loadChecked(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("medication %s: %w", id, err)
		}
		out = append(out, m)
	}
	return out, nil
}

// applyAll es la fase 2. Ante un error de storage devuelve cuántos se aplicaron.
func (s *Service) applyAll(ctx context.Context, op string, records []MedicationRecord, fn func(MedicationRecord) error) (int, error) {
	applied := 0
	for _, m := range records {
		if err := ctx.Err(); err != nil {
			return applied, &PartialApplyError{Op: op, Applied: applied, Total: len(records), Err: err}
		}
		if err := fn(m); err != nil {
			return applied, &PartialApplyError{Op: op, Applied: applied, Total: len(records), Err: err}
		}
		applied++
	}
	return applied, nil
}

func (s *Service) observeBatch(op string, n int, err error) {
	s.metrics.Observe(op, err)
	s.metrics.Add(op, n)
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
