package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"animal-shelter/internal/domain/animals"
)

const animalColumns = `id, name, age, kind, adopted, created_at`

type animalsRepo struct{ s *Store }

func (r *animalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.s.db.ExecContext(ctx, r.s.q(`
		INSERT INTO animals (id, name, age, kind, adopted, created_at)
		VALUES (?, ?, ?, ?, FALSE, ?)`),
		a.ID, a.Name, nullAge(a.Age), string(a.Kind), a.CreatedAt.UTC(),
	)
	if isUniqueViolation(err) {
		return animals.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert animal: %w", err)
	}
	return nil
}

func (r *animalsRepo) GetByName(ctx context.Context, name string) (animals.Animal, error) {
	row := r.s.db.QueryRowContext(ctx, r.s.q(`SELECT `+animalColumns+` FROM animals WHERE name = ?`), name)

	a, err := scanAnimal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return animals.Animal{}, animals.ErrNotFound
	}
	if err != nil {
		return animals.Animal{}, fmt.Errorf("get animal: %w", err)
	}
	return a, nil
}

func (r *animalsRepo) ListAvailable(ctx context.Context, kind animals.Kind) ([]animals.Animal, error) {
	query := `SELECT ` + animalColumns + ` FROM animals WHERE adopted = FALSE`
	var args []any
	if kind != "" {
		query += ` AND kind = ?`
		args = append(args, string(kind))
	}
	query += ` ORDER BY name, id`

	rows, err := r.s.db.QueryContext(ctx, r.s.q(query), args...)
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan animal: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	return out, nil
}

func scanAnimal(row scanner) (animals.Animal, error) {
	var (
		a         animals.Animal
		age       sql.NullInt64
		kind      string
		createdAt any
	)
	if err := row.Scan(&a.ID, &a.Name, &age, &kind, &a.Adopted, &createdAt); err != nil {
		return animals.Animal{}, err
	}
	a.Age = agePtr(age)
	a.Kind = animals.Kind(kind)
	t, err := timeValue(createdAt)
	if err != nil {
		return animals.Animal{}, err
	}
	a.CreatedAt = t
	return a, nil
}
