package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"animal-shelter/internal/domain/users"
)

type usersRepo struct{ s *Store }

func (r *usersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.s.db.ExecContext(ctx, r.s.q(`
		INSERT INTO users (id, name, email, phone, address, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`),
		u.ID, u.Name, u.Email, nullInt64(u.Phone), u.Address, u.CreatedAt.UTC(),
	)
	if isUniqueViolation(err) {
		return users.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.s.db.QueryRowContext(ctx, r.s.q(`
		SELECT id, name, email, phone, address, created_at
		FROM users WHERE email = ?`), email)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return users.User{}, users.ErrNotFound
	}
	if err != nil {
		return users.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func scanUser(row scanner) (users.User, error) {
	var (
		u         users.User
		phone     sql.NullInt64
		createdAt any
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &phone, &u.Address, &createdAt); err != nil {
		return users.User{}, err
	}
	if phone.Valid {
		p := phone.Int64
		u.Phone = &p
	}
	t, err := timeValue(createdAt)
	if err != nil {
		return users.User{}, err
	}
	u.CreatedAt = t
	return u, nil
}

// userByName: con nombres repetidos gana el de menor id (el más antiguo).
func userByName(ctx context.Context, s *Store, tx *sql.Tx, name string) (users.User, error) {
	row := tx.QueryRowContext(ctx, s.q(`
		SELECT id, name, email, phone, address, created_at
		FROM users WHERE name = ?
		ORDER BY id LIMIT 1`), name)

	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return users.User{}, users.ErrNotFound
	}
	if err != nil {
		return users.User{}, fmt.Errorf("get user by name: %w", err)
	}
	return u, nil
}
