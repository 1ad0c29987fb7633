// Package storetest contiene la batería de pruebas que todo store del
// refugio debe pasar (memoria, SQLite, Postgres).
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"animal-shelter/internal/domain/adoptions"
	"animal-shelter/internal/domain/animals"
	"animal-shelter/internal/domain/users"
)

// Store es lo mínimo que expone un backend.
type Store interface {
	Users() users.Repository
	Animals() animals.Repository
	Adoptions() adoptions.Repository
}

// Opener crea un store vacío y registra su cierre en t.Cleanup.
type Opener func(t *testing.T) Store

var day = time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

// Run ejecuta toda la batería contra los stores que devuelve open.
func Run(t *testing.T, open Opener) {
	t.Run("UserDuplicateEmail", func(t *testing.T) { testUserDuplicateEmail(t, open(t)) })
	t.Run("UserNotFound", func(t *testing.T) { testUserNotFound(t, open(t)) })
	t.Run("AnimalDuplicateName", func(t *testing.T) { testAnimalDuplicateName(t, open(t)) })
	t.Run("ListAvailable", func(t *testing.T) { testListAvailable(t, open(t)) })
	t.Run("AdoptByName", func(t *testing.T) { testAdoptByName(t, open(t)) })
	t.Run("AdoptTwice", func(t *testing.T) { testAdoptTwice(t, open(t)) })
	t.Run("AdoptUnknown", func(t *testing.T) { testAdoptUnknown(t, open(t)) })
	t.Run("AdoptOldest", func(t *testing.T) { testAdoptOldest(t, open(t)) })
	t.Run("AdoptOldestNone", func(t *testing.T) { testAdoptOldestNone(t, open(t)) })
	t.Run("ConcurrentAdoption", func(t *testing.T) { testConcurrentAdoption(t, open(t)) })
	t.Run("AdoptedMatchesRows", func(t *testing.T) { testAdoptedMatchesRows(t, open) })
}

func seq(prefix string, n int) string { return fmt.Sprintf("%s-%06d", prefix, n) }

func user(n int, name string) users.User {
	return users.User{
		ID:        seq("u", n),
		Name:      name,
		Email:     fmt.Sprintf("user%d@example.com", n),
		Address:   "Calle Mayor 1",
		CreatedAt: day,
	}
}

func animal(n int, name string, age *int, kind animals.Kind) animals.Animal {
	return animals.Animal{
		ID:        seq("a", n),
		Name:      name,
		Age:       age,
		Kind:      kind,
		CreatedAt: day,
	}
}

func age(v int) *int { return &v }

func mustUser(t *testing.T, s Store, u users.User) {
	t.Helper()
	require.NoError(t, s.Users().Create(context.Background(), u))
}

func mustAnimal(t *testing.T, s Store, a animals.Animal) {
	t.Helper()
	require.NoError(t, s.Animals().Create(context.Background(), a))
}

func names(items []animals.Animal) []string {
	out := make([]string, 0, len(items))
	for _, a := range items {
		out = append(out, a.Name)
	}
	return out
}

func testUserDuplicateEmail(t *testing.T, s Store) {
	ctx := context.Background()
	phone := int64(612345678)
	u := user(1, "Alice Smith")
	u.Phone = &phone
	mustUser(t, s, u)

	dup := user(2, "Alice Again")
	dup.Email = u.Email
	err := s.Users().Create(ctx, dup)
	require.ErrorIs(t, err, users.ErrDuplicate)

	got, err := s.Users().GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, "Alice Smith", got.Name)
	require.NotNil(t, got.Phone)
	require.Equal(t, phone, *got.Phone)
	require.True(t, got.CreatedAt.Equal(day))
}

func testUserNotFound(t *testing.T, s Store) {
	_, err := s.Users().GetByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, users.ErrNotFound)
}

func testAnimalDuplicateName(t *testing.T, s Store) {
	ctx := context.Background()
	mustAnimal(t, s, animal(1, "Rex", age(4), animals.KindDog))

	err := s.Animals().Create(ctx, animal(2, "Rex", nil, animals.KindCat))
	require.ErrorIs(t, err, animals.ErrDuplicate)

	got, err := s.Animals().GetByName(ctx, "Rex")
	require.NoError(t, err)
	require.Equal(t, animals.KindDog, got.Kind)
	require.NotNil(t, got.Age)
	require.Equal(t, 4, *got.Age)
	require.False(t, got.Adopted)

	_, err = s.Animals().GetByName(ctx, "Nadie")
	require.ErrorIs(t, err, animals.ErrNotFound)
}

func testListAvailable(t *testing.T, s Store) {
	ctx := context.Background()

	empty, err := s.Animals().ListAvailable(ctx, "")
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	mustAnimal(t, s, animal(1, "Toby", age(3), animals.KindDog))
	mustAnimal(t, s, animal(2, "Misu", nil, animals.KindCat))
	mustAnimal(t, s, animal(3, "Bruno", age(8), animals.KindDog))

	all, err := s.Animals().ListAvailable(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{"Bruno", "Misu", "Toby"}, names(all))
	require.Nil(t, all[1].Age)

	dogs, err := s.Animals().ListAvailable(ctx, animals.KindDog)
	require.NoError(t, err)
	require.Equal(t, []string{"Bruno", "Toby"}, names(dogs))

	// dos lecturas seguidas sin escrituras devuelven lo mismo
	again, err := s.Animals().ListAvailable(ctx, animals.KindDog)
	require.NoError(t, err)
	require.Equal(t, dogs, again)
}

func testAdoptByName(t *testing.T, s Store) {
	ctx := context.Background()
	mustUser(t, s, user(1, "Alice Smith"))
	mustAnimal(t, s, animal(1, "Rex", age(4), animals.KindDog))
	mustAnimal(t, s, animal(2, "Luna", age(2), animals.KindDog))

	got, err := s.Adoptions().AdoptByName(ctx, "Alice Smith", "Rex", day)
	require.NoError(t, err)
	require.Equal(t, "Rex", got.AnimalName)
	require.Equal(t, "Alice Smith", got.UserName)
	require.Equal(t, seq("a", 1), got.AnimalID)
	require.True(t, got.Date.Equal(day))

	dogs, err := s.Animals().ListAvailable(ctx, animals.KindDog)
	require.NoError(t, err)
	require.Equal(t, []string{"Luna"}, names(dogs))

	rex, err := s.Animals().GetByName(ctx, "Rex")
	require.NoError(t, err)
	require.True(t, rex.Adopted)

	byAnimal, err := s.Adoptions().GetByAnimalID(ctx, rex.ID)
	require.NoError(t, err)
	require.Equal(t, "Alice Smith", byAnimal.UserName)
	require.True(t, byAnimal.Date.Equal(day))

	list, err := s.Adoptions().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, seq("u", 1), list[0].UserID)

	_, err = s.Adoptions().GetByAnimalID(ctx, seq("a", 2))
	require.ErrorIs(t, err, adoptions.ErrNotFound)
}

func testAdoptTwice(t *testing.T, s Store) {
	ctx := context.Background()
	mustUser(t, s, user(1, "Alice Smith"))
	mustUser(t, s, user(2, "Bob Jones"))
	mustAnimal(t, s, animal(1, "Rex", age(4), animals.KindDog))

	_, err := s.Adoptions().AdoptByName(ctx, "Alice Smith", "Rex", day)
	require.NoError(t, err)

	_, err = s.Adoptions().AdoptByName(ctx, "Bob Jones", "Rex", day)
	require.ErrorIs(t, err, adoptions.ErrAnimalUnavailable)

	list, err := s.Adoptions().List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "Alice Smith", list[0].UserName)
}

func testAdoptUnknown(t *testing.T, s Store) {
	ctx := context.Background()
	mustUser(t, s, user(1, "Alice Smith"))
	mustAnimal(t, s, animal(1, "Rex", age(4), animals.KindDog))

	_, err := s.Adoptions().AdoptByName(ctx, "Ghost", "Rex", day)
	require.ErrorIs(t, err, users.ErrNotFound)

	_, err = s.Adoptions().AdoptByName(ctx, "Alice Smith", "Nadie", day)
	require.ErrorIs(t, err, animals.ErrNotFound)

	_, err = s.Adoptions().AdoptOldest(ctx, "Ghost", "", day)
	require.ErrorIs(t, err, users.ErrNotFound)

	// nada cambió
	rex, err := s.Animals().GetByName(ctx, "Rex")
	require.NoError(t, err)
	require.False(t, rex.Adopted)

	list, err := s.Adoptions().List(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func testAdoptOldest(t *testing.T, s Store) {
	ctx := context.Background()
	mustUser(t, s, user(1, "Alice Smith"))
	mustUser(t, s, user(2, "Bob Jones"))
	mustAnimal(t, s, animal(1, "A", age(2), animals.KindDog))
	mustAnimal(t, s, animal(2, "C", age(7), animals.KindDog))
	mustAnimal(t, s, animal(3, "B", age(7), animals.KindDog))
	mustAnimal(t, s, animal(4, "Old Cat", age(15), animals.KindCat))
	mustAnimal(t, s, animal(5, "N", nil, animals.KindDog))

	_, err := s.Adoptions().AdoptByName(ctx, "Bob Jones", "C", day)
	require.NoError(t, err)

	got, err := s.Adoptions().AdoptOldest(ctx, "Alice Smith", animals.KindDog, day)
	require.NoError(t, err)
	require.Equal(t, "B", got.AnimalName)

	got, err = s.Adoptions().AdoptOldest(ctx, "Alice Smith", animals.KindDog, day)
	require.NoError(t, err)
	require.Equal(t, "A", got.AnimalName)

	// sin edad va después de cualquier edad
	got, err = s.Adoptions().AdoptOldest(ctx, "Alice Smith", animals.KindDog, day)
	require.NoError(t, err)
	require.Equal(t, "N", got.AnimalName)

	// sin filtro queda el gato
	got, err = s.Adoptions().AdoptOldest(ctx, "Alice Smith", "", day)
	require.NoError(t, err)
	require.Equal(t, "Old Cat", got.AnimalName)
}

func testAdoptOldestNone(t *testing.T, s Store) {
	ctx := context.Background()
	mustUser(t, s, user(1, "Alice Smith"))
	mustAnimal(t, s, animal(1, "Misu", age(1), animals.KindCat))

	_, err := s.Adoptions().AdoptOldest(ctx, "Alice Smith", animals.KindDog, day)
	require.ErrorIs(t, err, adoptions.ErrNoneAvailable)

	_, err = s.Adoptions().AdoptOldest(ctx, "Alice Smith", animals.Kind("parrot"), day)
	require.ErrorIs(t, err, adoptions.ErrNoneAvailable)

	got, err := s.Adoptions().AdoptOldest(ctx, "Alice Smith", animals.KindCat, day)
	require.NoError(t, err)
	require.Equal(t, "Misu", got.AnimalName)

	_, err = s.Adoptions().AdoptOldest(ctx, "Alice Smith", "", day)
	require.ErrorIs(t, err, adoptions.ErrNoneAvailable)
}

func testConcurrentAdoption(t *testing.T, s Store) {
	const workers = 8
	for i := 1; i <= workers; i++ {
		mustUser(t, s, user(i, fmt.Sprintf("User %d", i)))
	}
	mustAnimal(t, s, animal(1, "Rex", age(4), animals.KindDog))

	var (
		wg        sync.WaitGroup
		wins      atomic.Int32
		conflicts atomic.Int32
		others    = make(chan error, workers)
	)
	for i := 1; i <= workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Adoptions().AdoptByName(context.Background(), fmt.Sprintf("User %d", i), "Rex", day)
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, adoptions.ErrAnimalUnavailable):
				conflicts.Add(1)
			default:
				others <- err
			}
		}(i)
	}
	wg.Wait()
	close(others)

	for err := range others {
		require.NoError(t, err)
	}
	require.Equal(t, int32(1), wins.Load())
	require.Equal(t, int32(workers-1), conflicts.Load())

	list, err := s.Adoptions().List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
}

// Tras cualquier secuencia de operaciones, un animal figura como adoptado
// si y solo si tiene fila de adopción.
func testAdoptedMatchesRows(t *testing.T, open Opener) {
	rapid.Check(t, func(r *rapid.T) {
		s := open(t)
		ctx := context.Background()

		numUsers := rapid.IntRange(1, 3).Draw(r, "numUsers")
		for i := 1; i <= numUsers; i++ {
			if err := s.Users().Create(ctx, user(i, fmt.Sprintf("User %d", i))); err != nil {
				r.Fatalf("create user: %v", err)
			}
		}

		numAnimals := rapid.IntRange(1, 6).Draw(r, "numAnimals")
		all := make(map[string]bool, numAnimals)
		for i := 1; i <= numAnimals; i++ {
			kind := rapid.SampledFrom([]animals.Kind{animals.KindDog, animals.KindCat}).Draw(r, "kind")
			var a *int
			if rapid.Bool().Draw(r, "hasAge") {
				a = age(rapid.IntRange(0, 20).Draw(r, "age"))
			}
			name := fmt.Sprintf("Animal %d", i)
			if err := s.Animals().Create(ctx, animal(i, name, a, kind)); err != nil {
				r.Fatalf("create animal: %v", err)
			}
			all[name] = true
		}

		ops := rapid.IntRange(0, 10).Draw(r, "ops")
		for i := 0; i < ops; i++ {
			userName := fmt.Sprintf("User %d", rapid.IntRange(1, numUsers).Draw(r, "user"))
			var err error
			if rapid.Bool().Draw(r, "random") {
				kind := rapid.SampledFrom([]animals.Kind{"", animals.KindDog, animals.KindCat}).Draw(r, "filter")
				_, err = s.Adoptions().AdoptOldest(ctx, userName, kind, day)
			} else {
				target := fmt.Sprintf("Animal %d", rapid.IntRange(1, numAnimals).Draw(r, "target"))
				_, err = s.Adoptions().AdoptByName(ctx, userName, target, day)
			}
			if err != nil && !errors.Is(err, adoptions.ErrAnimalUnavailable) && !errors.Is(err, adoptions.ErrNoneAvailable) {
				r.Fatalf("adopt: %v", err)
			}
		}

		available, err := s.Animals().ListAvailable(ctx, "")
		if err != nil {
			r.Fatalf("list available: %v", err)
		}
		adopted, err := s.Adoptions().List(ctx)
		if err != nil {
			r.Fatalf("list adoptions: %v", err)
		}

		seen := make(map[string]bool, numAnimals)
		for _, a := range available {
			seen[a.Name] = true
		}
		for _, a := range adopted {
			if seen[a.AnimalName] {
				r.Fatalf("%s is available and adopted at the same time", a.AnimalName)
			}
			seen[a.AnimalName] = true

			got, err := s.Animals().GetByName(ctx, a.AnimalName)
			if err != nil {
				r.Fatalf("get animal: %v", err)
			}
			if !got.Adopted {
				r.Fatalf("%s has an adoption row but adopted=false", a.AnimalName)
			}
		}
		if len(seen) != len(all) {
			r.Fatalf("expected %d animals accounted for, got %d", len(all), len(seen))
		}
	})
}
