package adoptions

import (
	"context"
	"time"

	"animal-shelter/internal/domain/animals"
)

// Repository ejecuta cada adopción como una única unidad atómica:
// marcar el animal como adoptado e insertar la fila de adopción
// se persisten juntos o no se persiste nada.
type Repository interface {
	// AdoptByName errores: users.ErrNotFound, animals.ErrNotFound, ErrAnimalUnavailable.
	AdoptByName(ctx context.Context, userName, animalName string, on time.Time) (Adoption, error)

	// AdoptOldest elige el disponible de mayor edad (kind vacío = cualquiera).
	// Sin edad cuenta como menor que cualquier edad; empate: menor id.
	// Errores: users.ErrNotFound, ErrNoneAvailable, ErrAnimalUnavailable.
	AdoptOldest(ctx context.Context, userName string, kind animals.Kind, on time.Time) (Adoption, error)

	GetByAnimalID(ctx context.Context, animalID string) (Adoption, error)
	List(ctx context.Context) ([]Adoption, error)
}
