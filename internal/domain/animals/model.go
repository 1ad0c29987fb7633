package animals

import "time"

// Kind define las especies que acepta el refugio.
// @Enum dog, cat
type Kind string

const (
	KindDog Kind = "dog"
	KindCat Kind = "cat"
)

func (k Kind) Valid() bool {
	return k == KindDog || k == KindCat
}

// Animal es un individuo adoptable. Adopted es el único campo mutable
// y pasa de false a true una sola vez.
type Animal struct {
	ID   string
	Name string
	Age  *int // nil si no se informó
	Kind Kind

	Adopted bool

	CreatedAt time.Time
}
