package adoptions

import (
	"context"
	"strings"
	"time"

	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/errs"
	"animal-shelter/internal/platform/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrAnimalUnavailable = errs.Conflict("animal not available")
	ErrNoneAvailable     = errs.NotFound("no animals available")
	ErrNotFound          = errs.NotFound("adoption not found")
)

var tracer = otel.Tracer("animal-shelter/adoptions")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type AdoptByNameInput struct {
	UserName   string
	AnimalName string
}

type AdoptRandomInput struct {
	UserName string
	Kind     string // opcional
}

// AdoptByName registra la adopción dirigida de un animal concreto.
func (s *Service) AdoptByName(ctx context.Context, in AdoptByNameInput) (Adoption, error) {
	ctx, span := tracer.Start(ctx, "adoptions.AdoptByName")
	defer span.End()

	userName := strings.TrimSpace(in.UserName)
	animalName := strings.TrimSpace(in.AnimalName)
	if userName == "" {
		return Adoption{}, errs.Validation("user_name required")
	}
	if animalName == "" {
		return Adoption{}, errs.Validation("animal_name required")
	}
	span.SetAttributes(attribute.String("user.name", userName), attribute.String("animal.name", animalName))

	a, err := s.repo.AdoptByName(ctx, userName, animalName, s.today())
	if err != nil {
		return Adoption{}, s.fail(ctx, span, err)
	}

	s.logAdoption(ctx, "directed", a)
	return a, nil
}

// AdoptRandom adopta el animal disponible de mayor edad del tipo pedido.
// Un kind desconocido no coincide con ningún animal (ErrNoneAvailable).
func (s *Service) AdoptRandom(ctx context.Context, in AdoptRandomInput) (Adoption, error) {
	ctx, span := tracer.Start(ctx, "adoptions.AdoptRandom")
	defer span.End()

	userName := strings.TrimSpace(in.UserName)
	if userName == "" {
		return Adoption{}, errs.Validation("user_name required")
	}
	kind := animals.Kind(strings.TrimSpace(in.Kind))
	span.SetAttributes(attribute.String("user.name", userName), attribute.String("animal.kind", string(kind)))

	a, err := s.repo.AdoptOldest(ctx, userName, kind, s.today())
	if err != nil {
		return Adoption{}, s.fail(ctx, span, err)
	}

	s.logAdoption(ctx, "random", a)
	return a, nil
}

func (s *Service) GetByAnimal(ctx context.Context, animalID string) (Adoption, error) {
	animalID = strings.TrimSpace(animalID)
	if animalID == "" {
		return Adoption{}, errs.Validation("animal_id required")
	}
	return s.repo.GetByAnimalID(ctx, animalID)
}

func (s *Service) List(ctx context.Context) ([]Adoption, error) {
	ctx, span := tracer.Start(ctx, "adoptions.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return items, nil
}

func (s *Service) today() time.Time {
	y, m, d := s.now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *Service) fail(ctx context.Context, span trace.Span, err error) error {
	kind := errs.KindOf(err)
	span.SetAttributes(attribute.String("error.kind", string(kind)))
	if kind == errs.KindInternal {
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	logger.FromContext(ctx).Info("adoption rejected", map[string]any{"reason": err.Error()})
	return err
}

func (s *Service) logAdoption(ctx context.Context, mode string, a Adoption) {
	logger.FromContext(ctx).Info("adoption recorded", map[string]any{
		"mode":      mode,
		"animal_id": a.AnimalID,
		"animal":    a.AnimalName,
		"user":      a.UserName,
		"date":      a.Date.Format(time.DateOnly),
	})
}
