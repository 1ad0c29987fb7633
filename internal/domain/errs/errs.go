// Package errs define la taxonomía de errores del registro del refugio.
// Cada error de dominio lleva un Kind que el borde HTTP traduce a un status.
package errs

import "errors"

type Kind string

const (
	KindValidation Kind = "validation"
	KindDuplicate  Kind = "duplicate"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindInternal   Kind = "internal"
)

// Error es un error de dominio con mensaje legible para el cliente.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Msg: msg} }
func Duplicate(msg string) *Error  { return &Error{Kind: KindDuplicate, Msg: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Msg: msg} }
func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Msg: msg} }

// KindOf devuelve el Kind del primer *Error en la cadena.
// Cualquier otro error (driver, red, bug) es KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message devuelve el mensaje expuesto al cliente.
// Los errores internos nunca filtran su texto.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "internal error"
}
