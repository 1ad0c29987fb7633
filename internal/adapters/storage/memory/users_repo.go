package memory

import (
	"context"
	"errors"
	"strings"

	"animal-shelter/internal/domain/users"
)

type usersRepo struct{ s *Store }

func (r usersRepo) Create(ctx context.Context, u users.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return users.ErrDuplicate
		}
	}
	if _, exists := r.s.users[u.ID]; exists {
		return errors.New("user id already exists")
	}
	r.s.users[u.ID] = u
	return nil
}

func (r usersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}
