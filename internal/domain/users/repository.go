package users

import "context"

// Repository persiste usuarios.
// Create devuelve ErrDuplicate si el email ya existe; GetByEmail devuelve ErrNotFound.
type Repository interface {
	Create(ctx context.Context, u User) error
	GetByEmail(ctx context.Context, email string) (User, error)
}
