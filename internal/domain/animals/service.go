package animals

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
	ErrDuplicate = errs.Duplicate("animal already registered")
	ErrNotFound  = errs.NotFound("animal not registered")
)

var tracer = otel.Tracer("animal-shelter/animals")

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
	Name string
	Age  *int
	Kind string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Animal, error) {
	ctx, span := tracer.Start(ctx, "animals.Register")
	defer span.End()

	if err := ValidateRegistration(in); err != nil {
		return Animal{}, err
	}

	name := strings.TrimSpace(in.Name)
	span.SetAttributes(attribute.String("animal.name", name), attribute.String("animal.kind", in.Kind))

	_, err := s.repo.GetByName(ctx, name)
	switch {
	case err == nil:
		return Animal{}, ErrDuplicate
	case !errors.Is(err, ErrNotFound):
		span.SetStatus(codes.Error, err.Error())
		return Animal{}, err
	}

	id, err := s.newID()
	if err != nil {
		return Animal{}, err
	}

	a := Animal{
		ID:        id.String(),
		Name:      name,
		Age:       in.Age,
		Kind:      Kind(in.Kind),
		Adopted:   false,
		CreatedAt: s.now().UTC(),
	}

	if err := s.repo.Create(ctx, a); err != nil {
		if errs.KindOf(err) == errs.KindInternal {
			span.SetStatus(codes.Error, err.Error())
		}
		return Animal{}, err
	}

	logger.FromContext(ctx).Info("animal registered", map[string]any{
		"animal_id": a.ID,
		"name":      a.Name,
		"kind":      a.Kind,
	})
	return a, nil
}

// ListAvailable lista los animales no adoptados.
// Un kind desconocido no es error: simplemente no coincide con nada.
func (s *Service) ListAvailable(ctx context.Context, kind string) ([]Animal, error) {
	ctx, span := tracer.Start(ctx, "animals.ListAvailable")
	defer span.End()

	k := Kind(strings.TrimSpace(kind))
	if k != "" && !k.Valid() {
		return []Animal{}, nil
	}
	span.SetAttributes(attribute.String("animal.kind", string(k)))

	items, err := s.repo.ListAvailable(ctx, k)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return items, nil
}
