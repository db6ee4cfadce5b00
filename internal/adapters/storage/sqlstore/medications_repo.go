package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"animal-shelter/internal/domain/medications"
)

type MedicationsRepo struct {
	db *DB
}

func NewMedicationsRepo(db *DB) *MedicationsRepo {
	return &MedicationsRepo{db: db}
}

const medicationColumns = `
	id, animal_id,
	dose_date, end_date, dose_time,
	medication, dose,
	administered, observations, administered_by,
	group_id, created_at, updated_at`

func (r *MedicationsRepo) Create(ctx context.Context, m medications.MedicationRecord) error {
	_, err := r.db.exec(ctx, `
		INSERT INTO medication_records (`+medicationColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		m.ID,
		m.AnimalID,
		m.Date,
		toNullString(m.EndDate),
		m.Time,
		m.Medication,
		m.Dose,
		m.Administered,
		toNullString(m.Observations),
		toNullString(m.AdministeredBy),
		toNullString(m.GroupID),
		formatTime(m.CreatedAt),
		formatTime(m.UpdatedAt),
	)
	return err
}

func (r *MedicationsRepo) GetByID(ctx context.Context, id string) (medications.MedicationRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return medications.MedicationRecord{}, medications.ErrNotFound
	}

	row := r.db.queryRow(ctx, `SELECT `+medicationColumns+` FROM medication_records WHERE id = $1`, id)
	m, err := scanMedication(row)
	if errors.Is(err, sql.ErrNoRows) {
		return medications.MedicationRecord{}, fmt.Errorf("medication %s: %w", id, medications.ErrNotFound)
	}
	return m, err
}

// Update reescribe los campos mutables. animal_id, dose_date, end_date y group_id no cambian.
func (r *MedicationsRepo) Update(ctx context.Context, m medications.MedicationRecord) error {
	res, err := r.db.exec(ctx, `
		UPDATE medication_records
		SET
			dose_time = $2,
			medication = $3,
			dose = $4,
			administered = $5,
			observations = $6,
			administered_by = $7,
			updated_at = $8
		WHERE id = $1
	`,
		m.ID,
		m.Time,
		m.Medication,
		m.Dose,
		m.Administered,
		toNullString(m.Observations),
		toNullString(m.AdministeredBy),
		formatTime(m.UpdatedAt),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("medication %s: %w", m.ID, medications.ErrNotFound)
	}
	return nil
}

func (r *MedicationsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.exec(ctx, `DELETE FROM medication_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("medication %s: %w", id, medications.ErrNotFound)
	}
	return nil
}

func (r *MedicationsRepo) ListByAnimal(ctx context.Context, animalID string) ([]medications.MedicationRecord, error) {
	return r.list(ctx, `animal_id = $1`, animalID)
}

func (r *MedicationsRepo) ListByDate(ctx context.Context, date string) ([]medications.MedicationRecord, error) {
	return r.list(ctx, `dose_date = $1`, date)
}

func (r *MedicationsRepo) ListByGroup(ctx context.Context, groupID string) ([]medications.MedicationRecord, error) {
	return r.list(ctx, `group_id = $1`, groupID)
}

func (r *MedicationsRepo) list(ctx context.Context, where string, arg any) ([]medications.MedicationRecord, error) {
	rows, err := r.db.query(ctx, `
		SELECT `+medicationColumns+`
		FROM medication_records
		WHERE `+where+`
		ORDER BY created_at ASC, id ASC
	`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medications.MedicationRecord, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMedication(s scanner) (medications.MedicationRecord, error) {
	var (
		m                                   medications.MedicationRecord
		endDate, obs, administeredBy, group sql.NullString
		createdAt, updatedAt                string
	)
	err := s.Scan(
		&m.ID,
		&m.AnimalID,
		&m.Date,
		&endDate,
		&m.Time,
		&m.Medication,
		&m.Dose,
		&m.Administered,
		&obs,
		&administeredBy,
		&group,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return medications.MedicationRecord{}, err
	}
	m.EndDate = fromNullString(endDate)
	m.Observations = fromNullString(obs)
	m.AdministeredBy = fromNullString(administeredBy)
	m.GroupID = fromNullString(group)
	m.CreatedAt = parseTime(createdAt)
	m.UpdatedAt = parseTime(updatedAt)
	return m, nil
}
