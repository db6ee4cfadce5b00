package sqlstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/legacy"
	"animal-shelter/internal/domain/medications"
	"animal-shelter/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(SQLite, filepath.Join(t.TempDir(), "shelter.db"), Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	n, err := Migrate(db)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	return db
}

func strPtr(s string) *string { return &s }

var t0 = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func seedAnimal(t *testing.T, repo *AnimalsRepo, id, name string, active bool, at time.Time) animals.Animal {
	t.Helper()
	a := animals.Animal{
		ID:        id,
		Name:      name,
		Sex:       animals.SexMale,
		OwnerName: "Ana",
		FeLV:      true,
		Active:    active,
		CreatedBy: "u1",
		CreatedAt: at,
		UpdatedAt: at,
	}
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}

func TestRebind(t *testing.T) {
	pg := &DB{dialect: Postgres}
	lite := &DB{dialect: SQLite}

	q := `SELECT * FROM t WHERE a = $1 AND b = $12`
	assert.Equal(t, q, pg.rebind(q))
	assert.Equal(t, `SELECT * FROM t WHERE a = ?1 AND b = ?12`, lite.rebind(q))
}

func TestOpen_UnknownDialect(t *testing.T) {
	_, err := Open(Dialect("oracle"), "x", Options{})
	require.Error(t, err)
}

func TestMigrate_IsIdempotentAndRollsBack(t *testing.T) {
	db := openTestDB(t)

	n, err := Migrate(db)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = Rollback(db, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestAnimalsRepo_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalsRepo(openTestDB(t))

	rex := seedAnimal(t, repo, "a1", "Rex", true, t0)
	seedAnimal(t, repo, "a2", "Old", false, t0.Add(time.Second))
	seedAnimal(t, repo, "a3", "Mia", true, t0.Add(2*time.Second))

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, rex.Name, got.Name)
	assert.Equal(t, animals.SexMale, got.Sex)
	assert.True(t, got.FeLV)
	assert.False(t, got.FIV)
	assert.True(t, got.CreatedAt.Equal(t0))

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, animals.ErrNotFound)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "a1", active[0].ID)
	assert.Equal(t, "a3", active[1].ID)

	got.Active = false
	got.Treatment = "antibiotico"
	got.UpdatedAt = t0.Add(time.Hour)
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	assert.False(t, again.Active)
	assert.Equal(t, "antibiotico", again.Treatment)

	err = repo.Update(ctx, animals.Animal{ID: "missing"})
	assert.ErrorIs(t, err, animals.ErrNotFound)
}

func TestAnimalsRepo_FindFirstMatch(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalsRepo(openTestDB(t))

	seedAnimal(t, repo, "b", "Luna", false, t0)
	seedAnimal(t, repo, "a", "Luna", true, t0.Add(time.Minute))

	got, err := repo.FindFirstMatch(ctx, "Luna", "Ana", "u1")
	require.NoError(t, err)
	assert.Equal(t, "b", got.ID, "first in creation order, inactive included")

	_, err = repo.FindFirstMatch(ctx, "Luna", "Ana", "other")
	assert.ErrorIs(t, err, animals.ErrNotFound)
}

func TestMedicationsRepo_CRUDAndLists(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	ar := NewAnimalsRepo(db)
	repo := NewMedicationsRepo(db)

	seedAnimal(t, ar, "a1", "Rex", true, t0)
	seedAnimal(t, ar, "a2", "Mia", true, t0)

	group := strPtr("g1")
	recs := []medications.MedicationRecord{
		{ID: "m1", AnimalID: "a1", Date: "2024-03-10", EndDate: strPtr("2024-03-11"), Time: "08:00", Medication: "Amoxicilina", Dose: "5ml", GroupID: group, CreatedAt: t0, UpdatedAt: t0},
		{ID: "m2", AnimalID: "a1", Date: "2024-03-11", EndDate: strPtr("2024-03-11"), Time: "08:00", Medication: "Amoxicilina", Dose: "5ml", GroupID: group, CreatedAt: t0.Add(time.Second), UpdatedAt: t0},
		{ID: "m3", AnimalID: "a2", Date: "2024-03-10", Time: "20:00", Medication: "Dipirona", Dose: "2 gotas", CreatedAt: t0.Add(2 * time.Second), UpdatedAt: t0},
	}
	for _, m := range recs {
		require.NoError(t, repo.Create(ctx, m))
	}

	got, err := repo.GetByID(ctx, "m3")
	require.NoError(t, err)
	assert.Nil(t, got.EndDate)
	assert.Nil(t, got.GroupID)
	assert.Nil(t, got.Observations)
	assert.False(t, got.Administered)

	byAnimal, err := repo.ListByAnimal(ctx, "a1")
	require.NoError(t, err)
	assert.Len(t, byAnimal, 2)

	byDate, err := repo.ListByDate(ctx, "2024-03-10")
	require.NoError(t, err)
	require.Len(t, byDate, 2)
	assert.Equal(t, "m1", byDate[0].ID)
	assert.Equal(t, "m3", byDate[1].ID)

	byGroup, err := repo.ListByGroup(ctx, "g1")
	require.NoError(t, err)
	assert.Len(t, byGroup, 2)

	got.Administered = true
	got.AdministeredBy = strPtr("u2")
	got.Observations = strPtr("gave with food")
	got.Time = "21:00"
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, "m3")
	require.NoError(t, err)
	assert.True(t, updated.Administered)
	require.NotNil(t, updated.AdministeredBy)
	assert.Equal(t, "u2", *updated.AdministeredBy)
	require.NotNil(t, updated.Observations)
	assert.Equal(t, "gave with food", *updated.Observations)
	assert.Equal(t, "21:00", updated.Time)

	require.NoError(t, repo.Delete(ctx, "m3"))
	_, err = repo.GetByID(ctx, "m3")
	assert.ErrorIs(t, err, medications.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "m3"), medications.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, got), medications.ErrNotFound)
}

func TestLegacyRepo_MigratesIntoNewTables(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	src := NewLegacyRepo(db)
	ar := NewAnimalsRepo(db)
	mr := NewMedicationsRepo(db)

	yes := true
	require.NoError(t, src.InsertAnimal(ctx, legacy.Animal{
		ID: "l1", Nome: "Mia", Sexo: legacy.SexoFemea, NomeTutor: "Ana",
		Raiva: &yes, Ativo: true, CreatedBy: "u1", CreatedAt: t0,
	}))
	require.NoError(t, src.InsertMedicationRecord(ctx, legacy.MedicationRecord{
		ID: "r1", AnimalID: "l1", Data: "2024-03-10", Horario: "08:00",
		Medicamento: "Amoxicilina", Dose: "5ml", CreatedAt: t0,
	}))
	require.NoError(t, src.InsertMedicationRecord(ctx, legacy.MedicationRecord{
		ID: "r2", AnimalID: "ghost", Data: "2024-03-10", Horario: "09:00",
		Medicamento: "Dipirona", Dose: "1ml", CreatedAt: t0.Add(time.Second),
	}))

	la, err := src.GetAnimal(ctx, "l1")
	require.NoError(t, err)
	require.NotNil(t, la.Raiva)
	assert.True(t, *la.Raiva)
	assert.Nil(t, la.FIV)

	_, err = src.GetAnimal(ctx, "ghost")
	assert.ErrorIs(t, err, legacy.ErrNotFound)

	rep, err := legacy.NewMigrator(src, ar, mr, logger.Nop()).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, legacy.Report{AnimalsCopied: 1, RecordsCopied: 1, RecordsSkipped: 1}, rep)

	mia, err := ar.FindFirstMatch(ctx, "Mia", "Ana", "u1")
	require.NoError(t, err)
	assert.Equal(t, animals.SexFemale, mia.Sex)
	assert.True(t, mia.Rabies)

	recs, err := mr.ListByAnimal(ctx, mia.ID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Amoxicilina", recs[0].Medication)
}
