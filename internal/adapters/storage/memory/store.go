// Package memory implementa los repositorios del refugio en memoria.
// Un único mutex protege las tres "tablas", así una adopción es atómica.
package memory

import (
	"sort"
	"sync"
	"time"

	"animal-shelter/internal/domain/adoptions"
	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/users"
)

type adoptionRow struct {
	animalID string
	userID   string
	date     time.Time
}

type Store struct {
	mu sync.Mutex

	users     map[string]users.User
	animals   map[string]animals.Animal
	adoptions map[string]adoptionRow // por animalID
}

func NewStore() *Store {
	return &Store{
		users:     make(map[string]users.User),
		animals:   make(map[string]animals.Animal),
		adoptions: make(map[string]adoptionRow),
	}
}

func (s *Store) Users() users.Repository         { return usersRepo{s} }
func (s *Store) Animals() animals.Repository     { return animalsRepo{s} }
func (s *Store) Adoptions() adoptions.Repository { return adoptionsRepo{s} }

func (s *Store) Close() error { return nil }

// userByName devuelve el de menor id si hay nombres repetidos.
// Llamar con s.mu tomado.
func (s *Store) userByName(name string) (users.User, bool) {
	var (
		found users.User
		ok    bool
	)
	for _, u := range s.users {
		if u.Name != name {
			continue
		}
		if !ok || u.ID < found.ID {
			found, ok = u, true
		}
	}
	return found, ok
}

// Llamar con s.mu tomado.
func (s *Store) animalByName(name string) (animals.Animal, bool) {
	for _, a := range s.animals {
		if a.Name == name {
			return a, true
		}
	}
	return animals.Animal{}, false
}

func copyAge(age *int) *int {
	if age == nil {
		return nil
	}
	v := *age
	return &v
}

func sortByName(items []animals.Animal) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].ID < items[j].ID
	})
}
