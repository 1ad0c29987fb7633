package memory

import (
	"context"
	"sort"
	"time"

	"animal-shelter/internal/domain/adoptions"
	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/users"
)

type adoptionsRepo struct{ s *Store }

func (r adoptionsRepo) AdoptByName(ctx context.Context, userName, animalName string, on time.Time) (adoptions.Adoption, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.userByName(userName)
	if !ok {
		return adoptions.Adoption{}, users.ErrNotFound
	}
	a, ok := r.s.animalByName(animalName)
	if !ok {
		return adoptions.Adoption{}, animals.ErrNotFound
	}
	return r.adopt(u, a, on)
}

func (r adoptionsRepo) AdoptOldest(ctx context.Context, userName string, kind animals.Kind, on time.Time) (adoptions.Adoption, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.userByName(userName)
	if !ok {
		return adoptions.Adoption{}, users.ErrNotFound
	}

	var (
		best  animals.Animal
		found bool
	)
	for _, a := range r.s.animals {
		if a.Adopted || (kind != "" && a.Kind != kind) {
			continue
		}
		if !found || older(a, best) {
			best, found = a, true
		}
	}
	if !found {
		return adoptions.Adoption{}, adoptions.ErrNoneAvailable
	}
	return r.adopt(u, best, on)
}

// older reporta si a va antes que b: mayor edad, sin edad al final, empate por id.
func older(a, b animals.Animal) bool {
	switch {
	case a.Age != nil && b.Age == nil:
		return true
	case a.Age == nil && b.Age != nil:
		return false
	case a.Age != nil && b.Age != nil && *a.Age != *b.Age:
		return *a.Age > *b.Age
	}
	return a.ID < b.ID
}

// Llamar con s.mu tomado.
func (r adoptionsRepo) adopt(u users.User, a animals.Animal, on time.Time) (adoptions.Adoption, error) {
	if a.Adopted {
		return adoptions.Adoption{}, adoptions.ErrAnimalUnavailable
	}
	if _, exists := r.s.adoptions[a.ID]; exists {
		return adoptions.Adoption{}, adoptions.ErrAnimalUnavailable
	}

	a.Adopted = true
	r.s.animals[a.ID] = a
	r.s.adoptions[a.ID] = adoptionRow{animalID: a.ID, userID: u.ID, date: on}

	return adoptions.Adoption{
		AnimalID:   a.ID,
		AnimalName: a.Name,
		UserID:     u.ID,
		UserName:   u.Name,
		Date:       on,
	}, nil
}

func (r adoptionsRepo) GetByAnimalID(ctx context.Context, animalID string) (adoptions.Adoption, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row, ok := r.s.adoptions[animalID]
	if !ok {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}
	return r.toAdoption(row), nil
}

func (r adoptionsRepo) List(ctx context.Context) ([]adoptions.Adoption, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]adoptions.Adoption, 0, len(r.s.adoptions))
	for _, row := range r.s.adoptions {
		out = append(out, r.toAdoption(row))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].AnimalName < out[j].AnimalName
	})
	return out, nil
}

// Llamar con s.mu tomado.
func (r adoptionsRepo) toAdoption(row adoptionRow) adoptions.Adoption {
	return adoptions.Adoption{
		AnimalID:   row.animalID,
		AnimalName: r.s.animals[row.animalID].Name,
		UserID:     row.userID,
		UserName:   r.s.users[row.userID].Name,
		Date:       row.date,
	}
}
