package medications

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ScheduleInput es una dosis única.
type ScheduleInput struct {
	AnimalID     string
	Date         string
	Time         string
	Medication   string
	Dose         string
	Observations *string
	GroupID      *string
}

// RangeInput es una dosis diaria entre StartDate y EndDate (ambos incluidos).
type RangeInput struct {
	AnimalID     string
	StartDate    string
	EndDate      string
	Time         string
	Medication   string
	Dose         string
	Observations *string
	GroupID      *string
}

// NewGroupID genera el token que une los registros de una orden clínica.
func NewGroupID() string {
	return uuid.NewString()
}

type template struct {
	animalID     string
	time         string
	medication   string
	dose         string
	observations *string
	groupID      *string
}

func newTemplate(animalID, tm, medication, dose string, observations, groupID *string) (template, error) {
	t := template{
		animalID:     strings.TrimSpace(animalID),
		time:         strings.TrimSpace(tm),
		medication:   strings.TrimSpace(medication),
		dose:         strings.TrimSpace(dose),
		observations: optional(observations),
		groupID:      optional(groupID),
	}
	if t.animalID == "" || t.medication == "" || t.dose == "" {
		return template{}, ErrInvalidInput
	}
	if _, err := time.Parse(TimeLayout, t.time); err != nil {
		return template{}, ErrInvalidInput
	}
	return t, nil
}

func (t template) record(id, date string, endDate *string, now time.Time) MedicationRecord {
	return MedicationRecord{
		ID:           id,
		AnimalID:     t.animalID,
		Date:         date,
		EndDate:      endDate,
		Time:         t.time,
		Medication:   t.medication,
		Dose:         t.dose,
		Administered: false,
		Observations: t.observations,
		GroupID:      t.groupID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// AddSingle agenda una dosis para un animal activo.
func (s *Service) AddSingle(ctx context.Context, caller string, in ScheduleInput) (m MedicationRecord, err error) {
	defer func() { s.metrics.Observe("medications.add_single", err) }()

	if err := requireCaller(caller); err != nil {
		return MedicationRecord{}, err
	}
	tpl, err := newTemplate(in.AnimalID, in.Time, in.Medication, in.Dose, in.Observations, in.GroupID)
	if err != nil {
		return MedicationRecord{}, err
	}
	date := strings.TrimSpace(in.Date)
	if _, err := parseDate(date); err != nil {
		return MedicationRecord{}, ErrInvalidInput
	}
	if _, err := s.activeAnimal(ctx, tpl.animalID); err != nil {
		return MedicationRecord{}, err
	}

	m = tpl.record(uuid.NewString(), date, nil, s.now())
	if err := s.repo.Create(ctx, m); err != nil {
		return MedicationRecord{}, fmt.Errorf("create medication: %w", err)
	}
	s.metrics.Add("medications.add_single", 1)
	return m, nil
}

// AddRange crea un registro por día calendario del rango. Si StartDate > EndDate
// el rango es vacío: no crea nada y no es error.
//
// Los inserts son requests independientes: si uno falla, los anteriores quedan.
func (s *Service) AddRange(ctx context.Context, caller string, in RangeInput) (created []MedicationRecord, err error) {
	defer func() {
		s.metrics.Observe("medications.add_range", err)
		s.metrics.Add("medications.add_range", len(created))
	}()

	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	tpl, err := newTemplate(in.AnimalID, in.Time, in.Medication, in.Dose, in.Observations, in.GroupID)
	if err != nil {
		return nil, err
	}
	endDate := strings.TrimSpace(in.EndDate)
	dates, err := ExpandDates(strings.TrimSpace(in.StartDate), endDate)
	if err != nil {
		return nil, err
	}
	if _, err := s.activeAnimal(ctx, tpl.animalID); err != nil {
		return nil, err
	}

	now := s.now()
	created = make([]MedicationRecord, 0, len(dates))
	for _, d := range dates {
		end := endDate
		m := tpl.record(uuid.NewString(), d, &end, now)
		if err := s.repo.Create(ctx, m); err != nil {
			return created, &PartialApplyError{Op: "add_range", Applied: len(created), Total: len(dates), Err: err}
		}
		created = append(created, m)
	}
	return created, nil
}

// OrderInput es una orden completa: una o más horas diarias, en una fecha
// (EndDate vacío) o en un rango. Con más de una hora todos los registros
// comparten GroupID (se genera si no viene).
type OrderInput struct {
	AnimalID     string
	StartDate    string
	EndDate      string
	Times        []string
	Medication   string
	Dose         string
	Observations *string
	GroupID      *string
}

// AddOrder valida todas las horas, las fechas y el animal antes de escribir:
// un input inválido no deja registros. Solo un error de storage a mitad de
// los inserts deja lo ya creado (PartialApplyError).
func (s *Service) AddOrder(ctx context.Context, caller string, in OrderInput) (created []MedicationRecord, err error) {
	defer func() {
		s.metrics.Observe("medications.add_order", err)
		s.metrics.Add("medications.add_order", len(created))
	}()

	if err := requireCaller(caller); err != nil {
		return nil, err
	}
	if len(in.Times) == 0 {
		return nil, ErrInvalidInput
	}

	groupID := optional(in.GroupID)
	if groupID == nil && len(in.Times) > 1 {
		g := NewGroupID()
		groupID = &g
	}

	templates := make([]template, 0, len(in.Times))
	for _, tm := range in.Times {
		tpl, err := newTemplate(in.AnimalID, tm, in.Medication, in.Dose, in.Observations, groupID)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}

	start := strings.TrimSpace(in.StartDate)
	var (
		dates   []string
		endDate *string
	)
	if end := strings.TrimSpace(in.EndDate); end == "" {
		if _, err := parseDate(start); err != nil {
			return nil, ErrInvalidInput
		}
		dates = []string{start}
	} else {
		dates, err = ExpandDates(start, end)
		if err != nil {
			return nil, err
		}
		endDate = &end
	}

	if _, err := s.activeAnimal(ctx, templates[0].animalID); err != nil {
		return nil, err
	}

	now := s.now()
	total := len(templates) * len(dates)
	created = make([]MedicationRecord, 0, total)
	for _, tpl := range templates {
		for _, d := range dates {
			var end *string
			if endDate != nil {
				v := *endDate
				end = &v
			}
			m := tpl.record(uuid.NewString(), d, end, now)
			if err := s.repo.Create(ctx, m); err != nil {
				return created, &PartialApplyError{Op: "add_order", Applied: len(created), Total: total, Err: err}
			}
			created = append(created, m)
		}
	}
	return created, nil
}

// MaxRangeDays acota un rango: un tratamiento de más de un año se carga en partes.
const MaxRangeDays = 366

// ExpandDates devuelve cada día calendario entre start y end inclusive,
// avanzando con AddDate en hora local (respeta cambios de horario).
// Más de MaxRangeDays días es ErrInvalidInput.
func ExpandDates(start, end string) ([]string, error) {
	from, err := parseDate(start)
	if err != nil {
		return nil, ErrInvalidInput
	}
	to, err := parseDate(end)
	if err != nil {
		return nil, ErrInvalidInput
	}
	if from.AddDate(0, 0, MaxRangeDays-1).Before(to) {
		return nil, ErrInvalidInput
	}

	out := make([]string, 0)
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		out = append(out, d.Format(DateLayout))
	}
	return out, nil
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
