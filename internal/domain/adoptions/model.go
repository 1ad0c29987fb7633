package adoptions

import "time"

// Adoption vincula un usuario con el animal que adoptó.
// AnimalID es la clave: un animal aparece como mucho en una adopción.
type Adoption struct {
	AnimalID   string
	AnimalName string

	UserID   string
	UserName string

	// Date es una fecha de calendario (medianoche UTC).
	Date time.Time
}
