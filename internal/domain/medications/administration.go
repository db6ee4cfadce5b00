package medications

import (
	"context"
	"fmt"
)

// MarkAdministered pasa el registro a administrado por caller. Las
// observaciones se sobrescriben (nil las limpia). Dos cuidadores sobre el
// mismo registro: gana la última escritura.
func (s *Service) MarkAdministered(ctx context.Context, caller, id string, observations *string) (err error) {
	defer func() { s.metrics.Observe("medications.mark_administered", err) }()

	if err := requireCaller(caller); err != nil {
		return err
	}
	m, err := s.loadChecked(ctx, id)
	if err != nil {
		return err
	}

	s.setAdministered(&m, caller, optional(observations))
	if err := s.repo.Update(ctx, m); err != nil {
		return fmt.Errorf("mark administered: %w", err)
	}
	return nil
}

// Undo vuelve el registro a pendiente. Borra quién administró y las
// observaciones sin condiciones: el texto cargado al administrar se pierde.
func (s *Service) Undo(ctx context.Context, caller, id string) (err error) {
	defer func() { s.metrics.Observe("medications.undo", err) }()

	if err := requireCaller(caller); err != nil {
		return err
	}
	m, err := s.loadChecked(ctx, id)
	if err != nil {
		return err
	}

	m.Administered = false
	m.AdministeredBy = nil
	m.Observations = nil
	m.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, m); err != nil {
		return fmt.Errorf("undo administration: %w", err)
	}
	return nil
}

// Delete borra un registro (borrado físico).
func (s *Service) Delete(ctx context.Context, caller, id string) (err error) {
	defer func() { s.metrics.Observe("medications.delete", err) }()

	if err := requireCaller(caller); err != nil {
		return err
	}
	m, err := s.loadChecked(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, m.ID); err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}
	return nil
}

func (s *Service) setAdministered(m *MedicationRecord, caller string, observations *string) {
	by := caller
	m.Administered = true
	m.AdministeredBy = &by
	m.Observations = observations
	m.UpdatedAt = s.now()
}
