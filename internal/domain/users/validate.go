package users

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"animal-shelter/internal/domain/errs"
)

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

const minNameLen = 3

// ValidateRegistration valida la entrada antes de tocar el store.
// Devuelve nil o un *errs.Error de tipo validation con el primer problema encontrado.
func ValidateRegistration(in RegisterInput) error {
	if utf8.RuneCountInString(strings.TrimSpace(in.Name)) < minNameLen {
		return errs.Validation("name too short")
	}
	if !emailPattern.MatchString(strings.TrimSpace(in.Email)) {
		return errs.Validation("malformed email")
	}
	if in.Phone != nil {
		if *in.Phone < 0 || len(strconv.FormatInt(*in.Phone, 10)) != 9 {
			return errs.Validation("phone must be 9 digits")
		}
	}
	if strings.TrimSpace(in.Address) == "" {
		return errs.Validation("address required")
	}
	return nil
}
