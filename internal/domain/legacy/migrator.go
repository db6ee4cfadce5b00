package legacy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/medications"
	"animal-shelter/internal/platform/logger"

	"github.com/google/uuid"
)

// Report resume una corrida de la migración.
type Report struct {
	AnimalsCopied  int `json:"animals_copied"`
	RecordsCopied  int `json:"records_copied"`
	RecordsSkipped int `json:"records_skipped"`
}

// Migrator copia las tablas legacy (portugués) a las nuevas (inglés).
//
// Es de una sola corrida: no detecta lo ya migrado, correrlo dos veces duplica.
// La FK de las medicaciones no se copia; se re-resuelve buscando el primer
// animal nuevo con el mismo (nombre, tutor, creador). Si dos animales legacy
// comparten esa terna, todas sus medicaciones terminan en el primero.
type Migrator struct {
	source  Source
	animals animals.Repository
	meds    medications.Repository
	log     logger.Logger
	now     func() time.Time
}

func NewMigrator(source Source, animalRepo animals.Repository, medRepo medications.Repository, log logger.Logger) *Migrator {
	if log == nil {
		log = logger.Nop()
	}
	return &Migrator{
		source:  source,
		animals: animalRepo,
		meds:    medRepo,
		log:     log.With(map[string]any{"component": "legacy-migrator"}),
		now:     time.Now,
	}
}

// Run ejecuta las dos fases en orden: animales, luego medicaciones.
// Un error de storage corta la corrida (lo ya insertado queda).
func (m *Migrator) Run(ctx context.Context) (Report, error) {
	var rep Report

	n, err := m.copyAnimals(ctx)
	rep.AnimalsCopied = n
	if err != nil {
		return rep, err
	}

	copied, skipped, err := m.copyMedications(ctx)
	rep.RecordsCopied = copied
	rep.RecordsSkipped = skipped
	if err != nil {
		return rep, err
	}

	m.log.Info("legacy migration finished", map[string]any{
		"animals_copied":  rep.AnimalsCopied,
		"records_copied":  rep.RecordsCopied,
		"records_skipped": rep.RecordsSkipped,
	})
	return rep, nil
}

func (m *Migrator) copyAnimals(ctx context.Context) (int, error) {
	items, err := m.source.ListAnimals(ctx)
	if err != nil {
		return 0, fmt.Errorf("list legacy animals: %w", err)
	}

	copied := 0
	for _, la := range items {
		a := MapAnimal(la, uuid.NewString(), m.now())
		if err := m.animals.Create(ctx, a); err != nil {
			return copied, fmt.Errorf("copy legacy animal %s: %w", la.ID, err)
		}
		copied++
	}
	return copied, nil
}

func (m *Migrator) copyMedications(ctx context.Context) (copied, skipped int, err error) {
	items, err := m.source.ListMedicationRecords(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("list legacy medications: %w", err)
	}

	for _, lm := range items {
		original, err := m.source.GetAnimal(ctx, lm.AnimalID)
		if errors.Is(err, ErrNotFound) {
			m.log.Warn("original animal not found for medication record", map[string]any{
				"record_id": lm.ID,
				"animal_id": lm.AnimalID,
			})
			skipped++
			continue
		}
		if err != nil {
			return copied, skipped, fmt.Errorf("get legacy animal %s: %w", lm.AnimalID, err)
		}

		target, err := m.animals.FindFirstMatch(ctx, original.Nome, original.NomeTutor, original.CreatedBy)
		if errors.Is(err, animals.ErrNotFound) {
			m.log.Warn("new animal not found for medication record", map[string]any{
				"record_id":  lm.ID,
				"name":       original.Nome,
				"owner_name": original.NomeTutor,
			})
			skipped++
			continue
		}
		if err != nil {
			return copied, skipped, fmt.Errorf("match animal for record %s: %w", lm.ID, err)
		}

		rec := MapMedicationRecord(lm, uuid.NewString(), target.ID, m.now())
		if err := m.meds.Create(ctx, rec); err != nil {
			return copied, skipped, fmt.Errorf("copy legacy medication %s: %w", lm.ID, err)
		}
		copied++
	}
	return copied, skipped, nil
}

// MapAnimal renombra campos 1:1. La única traducción de valor es Fêmea -> Femea.
func MapAnimal(la Animal, newID string, now time.Time) animals.Animal {
	sex := animals.Sex(la.Sexo)
	if la.Sexo == SexoFemea {
		sex = animals.SexFemale
	}
	return animals.Animal{
		ID:           newID,
		Name:         la.Nome,
		Sex:          sex,
		Coat:         la.Pelagem,
		Age:          la.Idade,
		OwnerName:    la.NomeTutor,
		TreatmentFor: la.TratamentoPara,
		Treatment:    la.Tratamento,
		FIV:          flag(la.FIV),
		FeLV:         flag(la.FeLV),
		Rabies:       flag(la.Raiva),
		V6:           flag(la.V6),
		Active:       la.Ativo,
		CreatedBy:    la.CreatedBy,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// MapMedicationRecord copia todos los campos apuntando al animal nuevo.
// Los registros legacy no tienen grupo.
func MapMedicationRecord(lm MedicationRecord, newID, animalID string, now time.Time) medications.MedicationRecord {
	return medications.MedicationRecord{
		ID:             newID,
		AnimalID:       animalID,
		Date:           lm.Data,
		EndDate:        lm.EndDate,
		Time:           lm.Horario,
		Medication:     lm.Medicamento,
		Dose:           lm.Dose,
		Administered:   lm.Administrado,
		Observations:   lm.Observacoes,
		AdministeredBy: lm.AdministradoPor,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func flag(b *bool) bool {
	return b != nil && *b
}
