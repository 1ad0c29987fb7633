// Package httpjson junta el writeJSON que antes estaba duplicado en cada módulo
// y la traducción de errores de dominio a status HTTP.
package httpjson

import (
	"encoding/json"
	"net/http"

	"animal-shelter/internal/domain/errs"
	"animal-shelter/internal/platform/logger"
)

type ErrorResponse struct {
	Detail string    `json:"detail"`
	Error  errs.Kind `json:"error"`
}

func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// StatusFor mapea un Kind a status HTTP.
// Duplicate, NotFound y Conflict comparten 400; el campo "error" del body los distingue.
func StatusFor(kind errs.Kind) int {
	switch kind {
	case errs.KindValidation:
		return http.StatusUnprocessableEntity
	case errs.KindDuplicate, errs.KindNotFound, errs.KindConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteError escribe el error como JSON. Los errores internos se loguean
// y al cliente sólo le llega "internal error".
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	kind := errs.KindOf(err)
	if kind == errs.KindInternal {
		logger.FromContext(r.Context()).Error("request failed", map[string]any{"error": err})
	}

	Write(w, StatusFor(kind), ErrorResponse{
		Detail: errs.Message(err),
		Error:  kind,
	})
}
