package animals

import (
	"strings"
	"unicode/utf8"

	"animal-shelter/internal/domain/errs"
)

const minNameLen = 3

func ValidateRegistration(in RegisterInput) error {
	if utf8.RuneCountInString(strings.TrimSpace(in.Name)) < minNameLen {
		return errs.Validation("name too short")
	}
	if in.Age != nil && *in.Age < 0 {
		return errs.Validation("age must be non-negative")
	}
	if !Kind(in.Kind).Valid() {
		return errs.Validation("invalid kind")
	}
	return nil
}
