package animals

import "context"

type Repository interface {
	// Create devuelve ErrDuplicate si ya existe un animal con ese nombre.
	Create(ctx context.Context, a Animal) error
	GetByName(ctx context.Context, name string) (Animal, error)
	// ListAvailable devuelve los no adoptados ordenados por nombre.
	// kind vacío = sin filtro.
	ListAvailable(ctx context.Context, kind Kind) ([]Animal, error)
}
