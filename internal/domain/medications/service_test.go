package medications_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"animal-shelter/internal/adapters/storage/memory"
	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/medications"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type env struct {
	animals *animals.Service
	meds    *medications.Service
	repo    medications.Repository
}

func newEnv(t *testing.T) env {
	t.Helper()
	as := animals.NewService(memory.NewAnimalRepo())
	repo := memory.NewMedicationRepo()
	return env{animals: as, meds: medications.NewService(repo, as), repo: repo}
}

func (e env) addAnimal(t *testing.T, name string) animals.Animal {
	t.Helper()
	a, err := e.animals.Add(context.Background(), "u1", animals.AnimalInput{Name: name, Sex: animals.SexMale, OwnerName: "Ana"})
	require.NoError(t, err)
	return a
}

func strPtr(s string) *string { return &s }

func single(animalID, date, tm string) medications.ScheduleInput {
	return medications.ScheduleInput{AnimalID: animalID, Date: date, Time: tm, Medication: "Dipirona", Dose: "2 gotas"}
}

func TestAddSingle(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	rex := e.addAnimal(t, "Rex")

	m, err := e.meds.AddSingle(ctx, "u1", single(rex.ID, "2024-01-01", "08:00"))
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.False(t, m.Administered)
	assert.Nil(t, m.EndDate)
	assert.Nil(t, m.AdministeredBy)

	_, err = e.meds.AddSingle(ctx, "", single(rex.ID, "2024-01-01", "08:00"))
	assert.ErrorIs(t, err, medications.ErrUnauthenticated)

	_, err = e.meds.AddSingle(ctx, "u1", single(rex.ID, "2024-01-01", "25:99"))
	assert.ErrorIs(t, err, medications.ErrInvalidInput)

	_, err = e.meds.AddSingle(ctx, "u1", single(rex.ID, "01/01/2024", "08:00"))
	assert.ErrorIs(t, err, medications.ErrInvalidInput)

	_, err = e.meds.AddSingle(ctx, "u1", single("missing", "2024-01-01", "08:00"))
	assert.ErrorIs(t, err, medications.ErrAnimalNotFound)
}

func TestAddSingle_InactiveAnimal(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	rex := e.addAnimal(t, "Rex")
	require.NoError(t, e.animals.Deactivate(ctx, "u1", rex.ID))

	_, err := e.meds.AddSingle(ctx, "u1", single(rex.ID, "2024-01-01", "08:00"))
	assert.ErrorIs(t, err, medications.ErrAnimalNotFound)
}

func TestAddRange_RexScenario(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	rex := e.addAnimal(t, "Rex")

	created, err := e.meds.AddRange(ctx, "u1", medications.RangeInput{
		AnimalID: rex.ID, StartDate: "2024-01-01", EndDate: "2024-01-03",
		Time: "08:00", Medication: "Amoxicillin", Dose: "5ml",
	})
	require.NoError(t, err)
	require.Len(t, created, 3)

	list, err := e.meds.ListByAnimal(ctx, "u1", rex.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)

	dates := make([]string, 0, len(list))
	for _, m := range list {
		dates = append(dates, m.Date)
		assert.False(t, m.Administered)
		require.NotNil(t, m.EndDate)
		assert.Equal(t, "2024-01-03", *m.EndDate)
	}
	assert.Equal(t, []string{"2024-01-03", "2024-01-02", "2024-01-01"}, dates, "most recent first")
}

func TestAddRange_CountsAndEmptyRange(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	rex := e.addAnimal(t, "Rex")

	in := medications.RangeInput{AnimalID: rex.ID, StartDate: "2024-02-27", EndDate: "2024-03-02", Time: "20:00", Medication: "Meloxicam", Dose: "0.5ml"}
	created, err := e.meds.AddRange(ctx, "u1", in)
	require.NoError(t, err)
	require.Len(t, created, 5, "leap day included")

	seen := map[string]bool{}
	for _, m := range created {
		assert.False(t, seen[m.Date], "dates are distinct")
		seen[m.Date] = true
	}
	assert.True(t, seen["2024-02-29"])

	in.StartDate, in.EndDate = "2024-03-05", "2024-03-01"
	created, err = e.meds.AddRange(ctx, "u1", in)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestExpandDates(t *testing.T) {
	got, err := medications.ExpandDates("2023-12-30", "2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-12-30", "2023-12-31", "2024-01-01", "2024-01-02"}, got)

	got, err = medications.ExpandDates("2024-01-01", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-01"}, got)

	_, err = medications.ExpandDates("2024-13-01", "2024-01-01")
	assert.ErrorIs(t, err, medications.ErrInvalidInput)
}

func TestMarkAdministeredAndUndo_GaveWithFood(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	rex := e.addAnimal(t, "Rex")

	m, err := e.meds.AddSingle(ctx, "u1", single(rex.ID, "2024-01-01", "08:00"))
	require.NoError(t, err)

	require.NoError(t, e.meds.MarkAdministered(ctx, "carol", m.ID, strPtr("gave with food")))

	got, err := e.repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, got.Administered)
	require.NotNil(t, got.AdministeredBy)
	assert.Equal(t, "carol", *got.AdministeredBy)
	require.NotNil(t, got.Observations)
	assert.Equal(t, "gave with food", *got.Observations)

	require.NoError(t, e.meds.Undo(ctx, "carol", m.ID))

	got, err = e.repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.False(t, got.Administered)
	assert.Nil(t, got.AdministeredBy)
	assert.Nil(t, got.Observations)
}

func TestAdministration_Errors(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	rex := e.addAnimal(t, "Rex")

	m, err := e.meds.AddSingle(ctx, "u1", single(rex.ID, "2024-01-01", "08:00"))
	require.NoError(t, err)

	assert.ErrorIs(t, e.meds.MarkAdministered(ctx, "", m.ID, nil), medications.ErrUnauthenticated)
	assert.ErrorIs(t, e.meds.MarkAdministered(ctx, "u1", "missing", nil), medications.ErrNotFound)
	assert.ErrorIs(t, e.meds.Undo(ctx, "u1", "missing"), medications.ErrNotFound)

	require.NoError(t, e.animals.Deactivate(ctx, "u1", rex.ID))
	assert.ErrorIs(t, e.meds.MarkAdministered(ctx, "u1", m.ID, nil), medications.ErrAnimalNotFound)
	assert.ErrorIs(t, e.meds.Delete(ctx, "u1", m.ID), medications.ErrAnimalNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	rex := e.addAnimal(t, "Rex")

	m, err := e.meds.AddSingle(ctx, "u1", single(rex.ID, "2024-01-01", "08:00"))
	require.NoError(t, err)

	require.NoError(t, e.meds.Delete(ctx, "u1", m.ID))
	assert.ErrorIs(t, e.meds.Delete(ctx, "u1", m.ID), medications.ErrNotFound)
}

func TestListByDate_FiltersInactiveAndSortsByTime(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	rex := e.addAnimal(t, "Rex")
	mia := e.addAnimal(t, "Mia")

	_, err := e.meds.AddSingle(ctx, "u1", single(rex.ID, "2024-01-01", "20:00"))
	require.NoError(t, err)
	_, err = e.meds.AddSingle(ctx, "u1", single(rex.ID, "2024-01-01", "08:00"))
	require.NoError(t, err)
	_, err = e.meds.AddSingle(ctx, "u1", single(mia.ID, "2024-01-01", "12:00"))
	require.NoError(t, err)
	_, err = e.meds.AddSingle(ctx, "u1", single(rex.ID, "2024-01-02", "08:00"))
	require.NoError(t, err)

	list, err := e.meds.ListByDate(ctx, "u1", "2024-01-01")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "08:00", list[0].Time)
	assert.Equal(t, "12:00", list[1].Time)
	assert.Equal(t, "Mia", list[1].Animal.Name)
	assert.Equal(t, "20:00", list[2].Time)

	require.NoError(t, e.animals.Deactivate(ctx, "u1", mia.ID))

	list, err = e.meds.ListByDate(ctx, "u1", "2024-01-01")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = e.meds.ListByDate(ctx, "", "2024-01-01")
	require.NoError(t, err)
	assert.Empty(t, list)

	byAnimal, err := e.meds.ListByAnimal(ctx, "u1", mia.ID)
	require.NoError(t, err)
	assert.Empty(t, byAnimal)
}

func TestListByGroup(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	rex := e.addAnimal(t, "Rex")
	g := medications.NewGroupID()

	_, err := e.meds.AddRange(ctx, "u1", medications.RangeInput{AnimalID: rex.ID, StartDate: "2024-01-01", EndDate: "2024-01-02", Time: "20:00", Medication: "A", Dose: "1", GroupID: &g})
	require.NoError(t, err)
	_, err = e.meds.AddRange(ctx, "u1", medications.RangeInput{AnimalID: rex.ID, StartDate: "2024-01-01", EndDate: "2024-01-02", Time: "08:00", Medication: "A", Dose: "1", GroupID: &g})
	require.NoError(t, err)
	_, err = e.meds.AddSingle(ctx, "u1", single(rex.ID, "2024-01-01", "10:00"))
	require.NoError(t, err)

	list, err := e.meds.ListByGroup(ctx, "u1", g)
	require.NoError(t, err)
	require.Len(t, list, 4)

	order := make([]string, 0, 4)
	for _, m := range list {
		order = append(order, m.Date+" "+m.Time)
	}
	assert.Equal(t, []string{"2024-01-01 08:00", "2024-01-01 20:00", "2024-01-02 08:00", "2024-01-02 20:00"}, order)

	empty, err := e.meds.ListByGroup(ctx, "u1", "  ")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestBatchUpdate(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	rex := e.addAnimal(t, "Rex")

	created, err := e.meds.AddRange(ctx, "u1", medications.RangeInput{AnimalID: rex.ID, StartDate: "2024-01-01", EndDate: "2024-01-03", Time: "08:00", Medication: "A", Dose: "1ml"})
	require.NoError(t, err)
	ids := []string{created[0].ID, created[1].ID, created[0].ID}

	n, err := e.meds.BatchUpdate(ctx, "u1", ids, medications.Patch{Dose: strPtr("2ml"), Time: strPtr("09:30")})
	require.NoError(t, err)
	assert.Equal(t, 2, n, "duplicates applied once")

	got, err := e.repo.GetByID(ctx, created[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "2ml", got.Dose)
	assert.Equal(t, "09:30", got.Time)
	assert.Equal(t, "A", got.Medication)

	untouched, err := e.repo.GetByID(ctx, created[2].ID)
	require.NoError(t, err)
	assert.Equal(t, "1ml", untouched.Dose)

	_, err = e.meds.BatchUpdate(ctx, "u1", ids, medications.Patch{})
	assert.ErrorIs(t, err, medications.ErrInvalidInput)

	_, err = e.meds.BatchUpdate(ctx, "u1", ids, medications.Patch{Time: strPtr("8h")})
	assert.ErrorIs(t, err, medications.ErrInvalidInput)
}

func TestBatch_ValidationAbortsBeforeMutation(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	rex := e.addAnimal(t, "Rex")
	mia := e.addAnimal(t, "Mia")

	a, err := e.meds.AddSingle(ctx, "u1", single(rex.ID, "2024-01-01", "08:00"))
	require.NoError(t, err)
	b, err := e.meds.AddSingle(ctx, "u1", single(mia.ID, "2024-01-01", "08:00"))
	require.NoError(t, err)

	n, err := e.meds.BatchMarkAdministered(ctx, "u1", []string{a.ID, "missing"}, nil)
	assert.ErrorIs(t, err, medications.ErrNotFound)
	assert.Equal(t, 0, n)

	got, err := e.repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, got.Administered, "first record untouched")

	require.NoError(t, e.animals.Deactivate(ctx, "u1", mia.ID))

	n, err = e.meds.BatchDelete(ctx, "u1", []string{a.ID, b.ID})
	assert.ErrorIs(t, err, medications.ErrAnimalNotFound)
	assert.Equal(t, 0, n)

	_, err = e.repo.GetByID(ctx, a.ID)
	require.NoError(t, err, "nothing deleted")
}

func TestBatchMarkAdministeredAndDelete(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	rex := e.addAnimal(t, "Rex")

	a, err := e.meds.AddSingle(ctx, "u1", single(rex.ID, "2024-01-01", "08:00"))
	require.NoError(t, err)
	b, err := e.meds.AddSingle(ctx, "u1", single(rex.ID, "2024-01-01", "20:00"))
	require.NoError(t, err)

	n, err := e.meds.BatchMarkAdministered(ctx, "bob", []string{a.ID, b.ID}, strPtr("ok"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range []string{a.ID, b.ID} {
		got, err := e.repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.True(t, got.Administered)
		assert.Equal(t, "bob", *got.AdministeredBy)
		assert.Equal(t, "ok", *got.Observations)
	}

	n, err = e.meds.BatchDelete(ctx, "u1", []string{a.ID, b.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = e.meds.BatchDelete(ctx, "u1", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = e.meds.BatchDelete(ctx, "", []string{a.ID})
	assert.ErrorIs(t, err, medications.ErrUnauthenticated)
}

func TestBatchDeleteByGroup_ReportsThree(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	rex := e.addAnimal(t, "Rex")
	mia := e.addAnimal(t, "Mia")
	g := medications.NewGroupID()

	_, err := e.meds.AddRange(ctx, "u1", medications.RangeInput{AnimalID: rex.ID, StartDate: "2024-01-01", EndDate: "2024-01-02", Time: "08:00", Medication: "A", Dose: "1", GroupID: &g})
	require.NoError(t, err)
	in := single(mia.ID, "2024-01-01", "08:00")
	in.GroupID = &g
	_, err = e.meds.AddSingle(ctx, "u1", in)
	require.NoError(t, err)
	other, err := e.meds.AddSingle(ctx, "u1", single(mia.ID, "2024-01-01", "09:00"))
	require.NoError(t, err)

	n, err := e.meds.BatchDeleteByGroup(ctx, "u1", g)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	left, err := e.repo.ListByGroup(ctx, g)
	require.NoError(t, err)
	assert.Empty(t, left)

	_, err = e.repo.GetByID(ctx, other.ID)
	require.NoError(t, err, "records outside the group survive")

	n, err = e.meds.BatchDeleteByGroup(ctx, "u1", "unknown")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestBatchDeleteByGroup_InactiveMemberAborts(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	rex := e.addAnimal(t, "Rex")
	g := medications.NewGroupID()

	_, err := e.meds.AddRange(ctx, "u1", medications.RangeInput{AnimalID: rex.ID, StartDate: "2024-01-01", EndDate: "2024-01-02", Time: "08:00", Medication: "A", Dose: "1", GroupID: &g})
	require.NoError(t, err)
	require.NoError(t, e.animals.Deactivate(ctx, "u1", rex.ID))

	n, err := e.meds.BatchDeleteByGroup(ctx, "u1", g)
	assert.ErrorIs(t, err, medications.ErrAnimalNotFound)
	assert.Equal(t, 0, n)

	left, err := e.repo.ListByGroup(ctx, g)
	require.NoError(t, err)
	assert.Len(t, left, 2)
}

// flakyRepo falla el update número failAt (1-based).
type flakyRepo struct {
	medications.Repository
	calls  int
	failAt int
}

func (r *flakyRepo) Update(ctx context.Context, m medications.MedicationRecord) error {
	r.calls++
	if r.calls == r.failAt {
		return errors.New("connection reset")
	}
	return r.Repository.Update(ctx, m)
}

func TestBatch_PartialApplyReportsCount(t *testing.T) {
	ctx := context.Background()
	as := animals.NewService(memory.NewAnimalRepo())
	repo := &flakyRepo{Repository: memory.NewMedicationRepo(), failAt: 2}
	svc := medications.NewService(repo, as)

	rex, err := as.Add(ctx, "u1", animals.AnimalInput{Name: "Rex", Sex: animals.SexMale})
	require.NoError(t, err)
	created, err := svc.AddRange(ctx, "u1", medications.RangeInput{AnimalID: rex.ID, StartDate: "2024-01-01", EndDate: "2024-01-03", Time: "08:00", Medication: "A", Dose: "1"})
	require.NoError(t, err)

	ids := []string{created[0].ID, created[1].ID, created[2].ID}
	n, err := svc.BatchMarkAdministered(ctx, "u1", ids, nil)
	require.Error(t, err)
	assert.Equal(t, 1, n)

	var partial *medications.PartialApplyError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 1, partial.Applied)
	assert.Equal(t, 3, partial.Total)
}

func TestDailySchedule(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	rex := e.addAnimal(t, "Rex")

	_, err := e.meds.AddRange(ctx, "u1", medications.RangeInput{AnimalID: rex.ID, StartDate: "2024-01-01", EndDate: "2024-01-02", Time: "08:00", Medication: "A", Dose: "1"})
	require.NoError(t, err)
	last, err := e.meds.AddRange(ctx, "u1", medications.RangeInput{AnimalID: rex.ID, StartDate: "2024-01-01", EndDate: "2024-01-02", Time: "20:00", Medication: "B", Dose: "1"})
	require.NoError(t, err)

	now := time.Date(2024, 1, 2, 12, 0, 0, 0, time.Local)
	view, err := e.meds.DailySchedule(ctx, "u1", "2024-01-02", now)
	require.NoError(t, err)

	require.Len(t, view.Slots, 2)
	assert.Equal(t, "08:00", view.Slots[0].Time)
	assert.True(t, view.Slots[0].Collapsed)
	assert.Equal(t, "20:00", view.Slots[1].Time)
	assert.False(t, view.Slots[1].Collapsed)
	assert.Equal(t, []string{last[1].ID}, view.LastDoseIDs)
}

func TestAddOrder_TwoTimesShareGroup(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	mia := e.addAnimal(t, "Mia")

	created, err := e.meds.AddOrder(ctx, "u1", medications.OrderInput{
		AnimalID: mia.ID, StartDate: "2024-02-01", EndDate: "2024-02-02",
		Times: []string{"08:00", "20:00"}, Medication: "Meloxicam", Dose: "0.5ml",
	})
	require.NoError(t, err)
	require.Len(t, created, 4)

	require.NotNil(t, created[0].GroupID)
	for _, m := range created {
		require.NotNil(t, m.GroupID)
		assert.Equal(t, *created[0].GroupID, *m.GroupID)
		require.NotNil(t, m.EndDate)
		assert.Equal(t, "2024-02-02", *m.EndDate)
	}

	one, err := e.meds.AddOrder(ctx, "u1", medications.OrderInput{
		AnimalID: mia.ID, StartDate: "2024-02-05", Times: []string{"12:00"}, Medication: "Dipirona", Dose: "2 gotas",
	})
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Nil(t, one[0].GroupID, "a single time gets no group")
	assert.Nil(t, one[0].EndDate)
}

func TestAddOrder_InvalidInputCreatesNothing(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	rex := e.addAnimal(t, "Rex")

	base := medications.OrderInput{
		AnimalID: rex.ID, StartDate: "2024-01-01", EndDate: "2024-01-03",
		Times: []string{"08:00", "25:99"}, Medication: "Amoxicillin", Dose: "5ml",
	}
	_, err := e.meds.AddOrder(ctx, "u1", base)
	assert.ErrorIs(t, err, medications.ErrInvalidInput)

	tooLong := base
	tooLong.Times = []string{"08:00"}
	tooLong.EndDate = "2025-01-01"
	_, err = e.meds.AddOrder(ctx, "u1", tooLong)
	assert.ErrorIs(t, err, medications.ErrInvalidInput)

	noTimes := base
	noTimes.Times = nil
	_, err = e.meds.AddOrder(ctx, "u1", noTimes)
	assert.ErrorIs(t, err, medications.ErrInvalidInput)

	list, err := e.meds.ListByAnimal(ctx, "u1", rex.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestExpandDates_MaxRange(t *testing.T) {
	got, err := medications.ExpandDates("2024-01-01", "2024-12-31")
	require.NoError(t, err)
	assert.Len(t, got, medications.MaxRangeDays, "leap year fits exactly")

	_, err = medications.ExpandDates("2024-01-01", "2025-01-01")
	assert.ErrorIs(t, err, medications.ErrInvalidInput)

	_, err = medications.ExpandDates("0001-01-01", "9999-12-31")
	assert.ErrorIs(t, err, medications.ErrInvalidInput)
}

func TestBatchUpdate_EmptyObservationsClears(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	rex := e.addAnimal(t, "Rex")

	in := single(rex.ID, "2024-01-01", "08:00")
	in.Observations = strPtr("with food")
	m, err := e.meds.AddSingle(ctx, "u1", in)
	require.NoError(t, err)
	require.NotNil(t, m.Observations)

	n, err := e.meds.BatchUpdate(ctx, "u1", []string{m.ID}, medications.Patch{Observations: strPtr("  ")})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := e.repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Observations)
	assert.Equal(t, "Dipirona", got.Medication)
}
