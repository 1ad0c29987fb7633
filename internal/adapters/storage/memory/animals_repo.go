package memory

import (
	"context"
	"errors"
	"strings"

	"animal-shelter/internal/domain/animals"
)

type animalsRepo struct{ s *Store }

func (r animalsRepo) Create(ctx context.Context, a animals.Animal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.s.animalByName(a.Name); exists {
		return animals.ErrDuplicate
	}
	if _, exists := r.s.animals[a.ID]; exists {
		return errors.New("animal id already exists")
	}
	a.Age = copyAge(a.Age)
	r.s.animals[a.ID] = a
	return nil
}

func (r animalsRepo) GetByName(ctx context.Context, name string) (animals.Animal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.animalByName(name)
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	a.Age = copyAge(a.Age)
	return a, nil
}

func (r animalsRepo) ListAvailable(ctx context.Context, kind animals.Kind) ([]animals.Animal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]animals.Animal, 0)
	for _, a := range r.s.animals {
		if a.Adopted {
			continue
		}
		if kind != "" && a.Kind != kind {
			continue
		}
		a.Age = copyAge(a.Age)
		out = append(out, a)
	}
	sortByName(out)
	return out, nil
}
