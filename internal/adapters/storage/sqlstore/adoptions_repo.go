package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"animal-shelter/internal/domain/adoptions"
	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/users"
)

type adoptionsRepo struct{ s *Store }

func (r *adoptionsRepo) AdoptByName(ctx context.Context, userName, animalName string, on time.Time) (adoptions.Adoption, error) {
	var out adoptions.Adoption
	err := r.s.withTx(ctx, func(tx *sql.Tx) error {
		u, err := userByName(ctx, r.s, tx, userName)
		if err != nil {
			return err
		}

		row := tx.QueryRowContext(ctx, r.s.q(`SELECT `+animalColumns+` FROM animals WHERE name = ?`), animalName)
		a, err := scanAnimal(row)
		if errors.Is(err, sql.ErrNoRows) {
			return animals.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("get animal: %w", err)
		}

		out, err = r.adopt(ctx, tx, u, a, on)
		return err
	})
	return out, err
}

func (r *adoptionsRepo) AdoptOldest(ctx context.Context, userName string, kind animals.Kind, on time.Time) (adoptions.Adoption, error) {
	var out adoptions.Adoption
	err := r.s.withTx(ctx, func(tx *sql.Tx) error {
		u, err := userByName(ctx, r.s, tx, userName)
		if err != nil {
			return err
		}

		query := `SELECT ` + animalColumns + ` FROM animals WHERE adopted = FALSE`
		var args []any
		if kind != "" {
			query += ` AND kind = ?`
			args = append(args, string(kind))
		}
		query += ` ORDER BY age DESC NULLS LAST, id ASC LIMIT 1`

		a, err := scanAnimal(tx.QueryRowContext(ctx, r.s.q(query), args...))
		if errors.Is(err, sql.ErrNoRows) {
			return adoptions.ErrNoneAvailable
		}
		if err != nil {
			return fmt.Errorf("select oldest animal: %w", err)
		}

		out, err = r.adopt(ctx, tx, u, a, on)
		return err
	})
	return out, err
}

// adopt marca el animal y crea la fila dentro de tx. El UPDATE condicional
// garantiza un único ganador aunque dos transacciones leyeran el mismo animal.
func (r *adoptionsRepo) adopt(ctx context.Context, tx *sql.Tx, u users.User, a animals.Animal, on time.Time) (adoptions.Adoption, error) {
	if a.Adopted {
		return adoptions.Adoption{}, adoptions.ErrAnimalUnavailable
	}

	res, err := tx.ExecContext(ctx, r.s.q(`UPDATE animals SET adopted = TRUE WHERE id = ? AND adopted = FALSE`), a.ID)
	if err != nil {
		return adoptions.Adoption{}, fmt.Errorf("mark adopted: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return adoptions.Adoption{}, fmt.Errorf("mark adopted: %w", err)
	}
	if n == 0 {
		return adoptions.Adoption{}, adoptions.ErrAnimalUnavailable
	}

	_, err = tx.ExecContext(ctx, r.s.q(`INSERT INTO adoptions (animal_id, user_id, adopted_on) VALUES (?, ?, ?)`),
		a.ID, u.ID, on.Format(time.DateOnly))
	if isUniqueViolation(err) {
		return adoptions.Adoption{}, adoptions.ErrAnimalUnavailable
	}
	if err != nil {
		return adoptions.Adoption{}, fmt.Errorf("insert adoption: %w", err)
	}

	return adoptions.Adoption{
		AnimalID:   a.ID,
		AnimalName: a.Name,
		UserID:     u.ID,
		UserName:   u.Name,
		Date:       on,
	}, nil
}

const adoptionSelect = `
	SELECT ad.animal_id, an.name, ad.user_id, us.name, CAST(ad.adopted_on AS TEXT)
	FROM adoptions ad
	JOIN animals an ON an.id = ad.animal_id
	JOIN users us ON us.id = ad.user_id`

func (r *adoptionsRepo) GetByAnimalID(ctx context.Context, animalID string) (adoptions.Adoption, error) {
	row := r.s.db.QueryRowContext(ctx, r.s.q(adoptionSelect+` WHERE ad.animal_id = ?`), animalID)

	a, err := scanAdoption(row)
	if errors.Is(err, sql.ErrNoRows) {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}
	if err != nil {
		return adoptions.Adoption{}, fmt.Errorf("get adoption: %w", err)
	}
	return a, nil
}

func (r *adoptionsRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	rows, err := r.s.db.QueryContext(ctx, adoptionSelect+` ORDER BY ad.adopted_on, an.name`)
	if err != nil {
		return nil, fmt.Errorf("list adoptions: %w", err)
	}
	defer rows.Close()

	out := make([]adoptions.Adoption, 0)
	for rows.Next() {
		a, err := scanAdoption(rows)
		if err != nil {
			return nil, fmt.Errorf("scan adoption: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list adoptions: %w", err)
	}
	return out, nil
}

func scanAdoption(row scanner) (adoptions.Adoption, error) {
	var (
		a  adoptions.Adoption
		on string
	)
	if err := row.Scan(&a.AnimalID, &a.AnimalName, &a.UserID, &a.UserName, &on); err != nil {
		return adoptions.Adoption{}, err
	}
	d, err := dateValue(on)
	if err != nil {
		return adoptions.Adoption{}, err
	}
	a.Date = d
	return a, nil
}
