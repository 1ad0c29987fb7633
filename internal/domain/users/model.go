package users

import "time"

// User es una persona registrada que quiere adoptar.
type User struct {
	ID    string
	Name  string
	Email string

	Phone   *int64 // opcional, 9 dígitos
	Address string

	CreatedAt time.Time
}
