package legacy_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"animal-shelter/internal/adapters/storage/memory"
	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/legacy"
	"animal-shelter/internal/domain/medications"
	"animal-shelter/internal/platform/logger"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newFixture(t *testing.T) (*memory.LegacyRepo, animals.Repository, medications.Repository, *legacy.Migrator) {
	t.Helper()
	src := memory.NewLegacyRepo()
	ar := memory.NewAnimalRepo()
	mr := memory.NewMedicationRepo()
	return src, ar, mr, legacy.NewMigrator(src, ar, mr, logger.Nop())
}

func TestMigrator_CopiesAnimalsAndMapsSex(t *testing.T) {
	src, ar, _, m := newFixture(t)

	src.AddAnimal(legacy.Animal{ID: "l1", Nome: "Mia", Sexo: legacy.SexoFemea, NomeTutor: "Ana", FIV: ptr(true), Ativo: true, CreatedBy: "u1"})
	src.AddAnimal(legacy.Animal{ID: "l2", Nome: "Tom", Sexo: legacy.SexoMacho, NomeTutor: "Bia", Ativo: false, CreatedBy: "u1"})

	rep, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, legacy.Report{AnimalsCopied: 2}, rep)

	mia, err := ar.FindFirstMatch(context.Background(), "Mia", "Ana", "u1")
	require.NoError(t, err)
	assert.Equal(t, animals.SexFemale, mia.Sex)
	assert.True(t, mia.FIV)
	assert.False(t, mia.FeLV, "nil flags become false")
	assert.True(t, mia.Active)
	assert.NotEqual(t, "l1", mia.ID)

	tom, err := ar.FindFirstMatch(context.Background(), "Tom", "Bia", "u1")
	require.NoError(t, err)
	assert.Equal(t, animals.SexMale, tom.Sex)
	assert.False(t, tom.Active, "inactive animals are copied as inactive")

	active, err := ar.ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestMigrator_RelinksMedicationRecords(t *testing.T) {
	src, ar, mr, m := newFixture(t)

	src.AddAnimal(legacy.Animal{ID: "l1", Nome: "Rex", Sexo: legacy.SexoMacho, NomeTutor: "Ana", Ativo: true, CreatedBy: "u1"})
	src.AddMedicationRecord(legacy.MedicationRecord{
		ID: "r1", AnimalID: "l1", Data: "2024-03-10", EndDate: ptr("2024-03-12"), Horario: "08:00",
		Medicamento: "Amoxicilina", Dose: "5ml", Administrado: true,
		Observacoes: ptr("com comida"), AdministradoPor: ptr("u2"),
	})

	rep, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, legacy.Report{AnimalsCopied: 1, RecordsCopied: 1}, rep)

	rex, err := ar.FindFirstMatch(context.Background(), "Rex", "Ana", "u1")
	require.NoError(t, err)

	got, err := mr.ListByAnimal(context.Background(), rex.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)

	want := medications.MedicationRecord{
		AnimalID:       rex.ID,
		Date:           "2024-03-10",
		EndDate:        ptr("2024-03-12"),
		Time:           "08:00",
		Medication:     "Amoxicilina",
		Dose:           "5ml",
		Administered:   true,
		Observations:   ptr("com comida"),
		AdministeredBy: ptr("u2"),
	}
	opts := cmpopts.IgnoreFields(medications.MedicationRecord{}, "ID", "CreatedAt", "UpdatedAt")
	if diff := cmp.Diff(want, got[0], opts); diff != "" {
		t.Fatalf("migrated record mismatch (-want +got):\n%s", diff)
	}
}

func TestMigrator_SkipsOrphanRecords(t *testing.T) {
	src, _, mr, m := newFixture(t)

	src.AddMedicationRecord(legacy.MedicationRecord{ID: "r1", AnimalID: "missing", Data: "2024-03-10", Horario: "08:00", Medicamento: "X", Dose: "1"})

	rep, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, legacy.Report{RecordsSkipped: 1}, rep)

	got, err := mr.ListByDate(context.Background(), "2024-03-10")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMigrator_AmbiguousMatchGoesToFirstAnimal(t *testing.T) {
	src, ar, mr, m := newFixture(t)

	src.AddAnimal(legacy.Animal{ID: "l1", Nome: "Luna", Sexo: legacy.SexoFemea, NomeTutor: "Ana", Ativo: true, CreatedBy: "u1"})
	src.AddAnimal(legacy.Animal{ID: "l2", Nome: "Luna", Sexo: legacy.SexoFemea, NomeTutor: "Ana", Ativo: true, CreatedBy: "u1"})
	src.AddMedicationRecord(legacy.MedicationRecord{ID: "r1", AnimalID: "l1", Data: "2024-03-10", Horario: "08:00", Medicamento: "A", Dose: "1"})
	src.AddMedicationRecord(legacy.MedicationRecord{ID: "r2", AnimalID: "l2", Data: "2024-03-10", Horario: "09:00", Medicamento: "B", Dose: "1"})

	rep, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, rep.RecordsCopied)

	first, err := ar.FindFirstMatch(context.Background(), "Luna", "Ana", "u1")
	require.NoError(t, err)

	got, err := mr.ListByAnimal(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

type failingMeds struct {
	medications.Repository
}

func (failingMeds) Create(ctx context.Context, m medications.MedicationRecord) error {
	return errors.New("disk full")
}

func TestMigrator_StorageErrorAborts(t *testing.T) {
	src := memory.NewLegacyRepo()
	ar := memory.NewAnimalRepo()
	m := legacy.NewMigrator(src, ar, failingMeds{memory.NewMedicationRepo()}, nil)

	src.AddAnimal(legacy.Animal{ID: "l1", Nome: "Rex", Sexo: legacy.SexoMacho, Ativo: true, CreatedBy: "u1"})
	src.AddMedicationRecord(legacy.MedicationRecord{ID: "r1", AnimalID: "l1", Data: "2024-03-10", Horario: "08:00", Medicamento: "A", Dose: "1"})
	src.AddMedicationRecord(legacy.MedicationRecord{ID: "r2", AnimalID: "l1", Data: "2024-03-11", Horario: "08:00", Medicamento: "A", Dose: "1"})

	rep, err := m.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, rep.AnimalsCopied)
	assert.Equal(t, 0, rep.RecordsCopied)
}

func TestMapAnimal_MaleAndNewID(t *testing.T) {
	a := legacy.MapAnimal(legacy.Animal{Nome: "X", Sexo: "Macho"}, "id", time.Unix(0, 0))
	assert.Equal(t, animals.SexMale, a.Sex)
	assert.Equal(t, "id", a.ID)
}
