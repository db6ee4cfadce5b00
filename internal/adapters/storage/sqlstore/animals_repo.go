package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"animal-shelter/internal/domain/animals"
)

type AnimalsRepo struct {
	db *DB
}

func NewAnimalsRepo(db *DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `
	id, name, sex, coat, age, owner_name,
	treatment_for, treatment,
	fiv, felv, rabies, v6,
	active, created_by, created_at, updated_at`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.exec(ctx, `
		INSERT INTO animals (`+animalColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
	`,
		a.ID,
		a.Name,
		string(a.Sex),
		a.Coat,
		a.Age,
		a.OwnerName,
		a.TreatmentFor,
		a.Treatment,
		a.FIV,
		a.FeLV,
		a.Rabies,
		a.V6,
		a.Active,
		a.CreatedBy,
		formatTime(a.CreatedAt),
		formatTime(a.UpdatedAt),
	)
	return err
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.db.exec(ctx, `
		UPDATE animals
		SET
			name = $2,
			sex = $3,
			coat = $4,
			age = $5,
			owner_name = $6,
			treatment_for = $7,
			treatment = $8,
			fiv = $9,
			felv = $10,
			rabies = $11,
			v6 = $12,
			active = $13,
			updated_at = $14
		WHERE id = $1
	`,
		a.ID,
		a.Name,
		string(a.Sex),
		a.Coat,
		a.Age,
		a.OwnerName,
		a.TreatmentFor,
		a.Treatment,
		a.FIV,
		a.FeLV,
		a.Rabies,
		a.V6,
		a.Active,
		formatTime(a.UpdatedAt),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("animal %s: %w", a.ID, animals.ErrNotFound)
	}
	return nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	row := r.db.queryRow(ctx, `SELECT `+animalColumns+` FROM animals WHERE id = $1`, id)
	a, err := scanAnimal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return animals.Animal{}, fmt.Errorf("animal %s: %w", id, animals.ErrNotFound)
	}
	return a, err
}

func (r *AnimalsRepo) ListActive(ctx context.Context) ([]animals.Animal, error) {
	rows, err := r.db.query(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE active = $1
		ORDER BY created_at ASC, id ASC
	`, true)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// FindFirstMatch no filtra por active: la migración también enlaza animales inactivos.
func (r *AnimalsRepo) FindFirstMatch(ctx context.Context, name, ownerName, createdBy string) (animals.Animal, error) {
	row := r.db.queryRow(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE name = $1 AND owner_name = $2 AND created_by = $3
		ORDER BY created_at ASC, id ASC
		LIMIT 1
	`, name, ownerName, createdBy)

	a, err := scanAnimal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnimal(s scanner) (animals.Animal, error) {
	var (
		a                    animals.Animal
		sex                  string
		createdAt, updatedAt string
	)
	err := s.Scan(
		&a.ID,
		&a.Name,
		&sex,
		&a.Coat,
		&a.Age,
		&a.OwnerName,
		&a.TreatmentFor,
		&a.Treatment,
		&a.FIV,
		&a.FeLV,
		&a.Rabies,
		&a.V6,
		&a.Active,
		&a.CreatedBy,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return animals.Animal{}, err
	}
	a.Sex = animals.Sex(sex)
	a.CreatedAt = parseTime(createdAt)
	a.UpdatedAt = parseTime(updatedAt)
	return a, nil
}
