package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"animal-shelter/internal/domain/legacy"
)

// LegacyRepo lee las tablas viejas (legacy_animals, legacy_medication_records).
type LegacyRepo struct {
	db *DB
}

func NewLegacyRepo(db *DB) *LegacyRepo {
	return &LegacyRepo{db: db}
}

const legacyAnimalColumns = `
	id, nome, sexo, pelagem, idade, nome_tutor,
	tratamento_para, tratamento,
	fiv, felv, raiva, v6,
	ativo, created_by, created_at`

const legacyMedicationColumns = `
	id, animal_id, data, end_date, horario,
	medicamento, dose,
	administrado, observacoes, administrado_por, created_at`

func (r *LegacyRepo) ListAnimals(ctx context.Context) ([]legacy.Animal, error) {
	rows, err := r.db.query(ctx, `
		SELECT `+legacyAnimalColumns+`
		FROM legacy_animals
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]legacy.Animal, 0)
	for rows.Next() {
		a, err := scanLegacyAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *LegacyRepo) GetAnimal(ctx context.Context, id string) (legacy.Animal, error) {
	row := r.db.queryRow(ctx, `SELECT `+legacyAnimalColumns+` FROM legacy_animals WHERE id = $1`, id)
	a, err := scanLegacyAnimal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return legacy.Animal{}, fmt.Errorf("legacy animal %s: %w", id, legacy.ErrNotFound)
	}
	return a, err
}

func (r *LegacyRepo) ListMedicationRecords(ctx context.Context) ([]legacy.MedicationRecord, error) {
	rows, err := r.db.query(ctx, `
		SELECT `+legacyMedicationColumns+`
		FROM legacy_medication_records
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]legacy.MedicationRecord, 0)
	for rows.Next() {
		var (
			m                             legacy.MedicationRecord
			endDate, obs, administradoPor sql.NullString
			createdAt                     string
		)
		if err := rows.Scan(
			&m.ID,
			&m.AnimalID,
			&m.Data,
			&endDate,
			&m.Horario,
			&m.Medicamento,
			&m.Dose,
			&m.Administrado,
			&obs,
			&administradoPor,
			&createdAt,
		); err != nil {
			return nil, err
		}
		m.EndDate = fromNullString(endDate)
		m.Observacoes = fromNullString(obs)
		m.AdministradoPor = fromNullString(administradoPor)
		m.CreatedAt = parseTime(createdAt)
		out = append(out, m)
	}
	return out, rows.Err()
}

// InsertAnimal carga una fila legacy. Solo se usa para sembrar datos.
func (r *LegacyRepo) InsertAnimal(ctx context.Context, a legacy.Animal) error {
	_, err := r.db.exec(ctx, `
		INSERT INTO legacy_animals (`+legacyAnimalColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		a.ID,
		a.Nome,
		a.Sexo,
		a.Pelagem,
		a.Idade,
		a.NomeTutor,
		a.TratamentoPara,
		a.Tratamento,
		toNullBool(a.FIV),
		toNullBool(a.FeLV),
		toNullBool(a.Raiva),
		toNullBool(a.V6),
		a.Ativo,
		a.CreatedBy,
		formatTime(a.CreatedAt),
	)
	return err
}

// InsertMedicationRecord carga una fila legacy de medicación.
func (r *LegacyRepo) InsertMedicationRecord(ctx context.Context, m legacy.MedicationRecord) error {
	_, err := r.db.exec(ctx, `
		INSERT INTO legacy_medication_records (`+legacyMedicationColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
	`,
		m.ID,
		m.AnimalID,
		m.Data,
		toNullString(m.EndDate),
		m.Horario,
		m.Medicamento,
		m.Dose,
		m.Administrado,
		toNullString(m.Observacoes),
		toNullString(m.AdministradoPor),
		formatTime(m.CreatedAt),
	)
	return err
}

func scanLegacyAnimal(s scanner) (legacy.Animal, error) {
	var (
		a                    legacy.Animal
		fiv, felv, raiva, v6 sql.NullBool
		createdAt            string
	)
	err := s.Scan(
		&a.ID,
		&a.Nome,
		&a.Sexo,
		&a.Pelagem,
		&a.Idade,
		&a.NomeTutor,
		&a.TratamentoPara,
		&a.Tratamento,
		&fiv,
		&felv,
		&raiva,
		&v6,
		&a.Ativo,
		&a.CreatedBy,
		&createdAt,
	)
	if err != nil {
		return legacy.Animal{}, err
	}
	a.FIV = fromNullBool(fiv)
	a.FeLV = fromNullBool(felv)
	a.Raiva = fromNullBool(raiva)
	a.V6 = fromNullBool(v6)
	a.CreatedAt = parseTime(createdAt)
	return a, nil
}
