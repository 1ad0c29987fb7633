package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"animal-shelter/internal/domain/errs"
	"animal-shelter/internal/platform/logger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrDuplicate = errs.Duplicate("user already registered")
	ErrNotFound  = errs.NotFound("user not registered")
)

var tracer = otel.Tracer("animal-shelter/users")

type Service struct {
	repo  Repository
	now   func() time.Time
	newID func() (uuid.UUID, error)
}

func NewService(repo Repository) *Service {
	return &Service{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewV7,
	}
}

type RegisterInput struct {
	Name    string
	Email   string
	Phone   *int64
	Address string
}

// Register crea un usuario nuevo. No existe camino de actualización:
// un email ya registrado siempre es ErrDuplicate.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	ctx, span := tracer.Start(ctx, "users.Register")
	defer span.End()

	log := logger.FromContext(ctx)

	if err := ValidateRegistration(in); err != nil {
		return User{}, err
	}

	email := strings.TrimSpace(in.Email)
	span.SetAttributes(attribute.String("user.email", email))

	_, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return User{}, ErrDuplicate
	case !errors.Is(err, ErrNotFound):
		span.SetStatus(codes.Error, err.Error())
		return User{}, err
	}

	id, err := s.newID()
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:        id.String(),
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Phone:     in.Phone,
		Address:   strings.TrimSpace(in.Address),
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errs.KindOf(err) == errs.KindInternal {
			span.SetStatus(codes.Error, err.Error())
		}
		return User{}, err
	}

	log.Info("user registered", map[string]any{"user_id": u.ID, "name": u.Name})
	return u, nil
}
