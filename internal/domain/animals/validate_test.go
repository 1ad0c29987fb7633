package animals

import (
	"testing"

	"animal-shelter/internal/domain/errs"
)

func age(n int) *int { return &n }

func TestValidateRegistration(t *testing.T) {
	cases := []struct {
		name    string
		in      RegisterInput
		wantMsg string
	}{
		{"dog", RegisterInput{Name: "Rex", Age: age(4), Kind: "dog"}, ""},
		{"cat without age", RegisterInput{Name: "Misu", Kind: "cat"}, ""},
		{"age zero", RegisterInput{Name: "Puppy", Age: age(0), Kind: "dog"}, ""},
		{"name too short", RegisterInput{Name: "Re", Age: age(4), Kind: "dog"}, "name too short"},
		{"short name wins over bad kind", RegisterInput{Name: "Re", Kind: "bird"}, "name too short"},
		{"negative age", RegisterInput{Name: "Rex", Age: age(-1), Kind: "dog"}, "age must be non-negative"},
		{"bird", RegisterInput{Name: "Tweety", Kind: "bird"}, "invalid kind"},
		{"spanish kind", RegisterInput{Name: "Rex", Kind: "perro"}, "invalid kind"},
		{"uppercase kind", RegisterInput{Name: "Rex", Kind: "Dog"}, "invalid kind"},
		{"empty kind", RegisterInput{Name: "Rex"}, "invalid kind"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRegistration(tc.in)
			if tc.wantMsg == "" {
				if err != nil {
					t.Fatalf("expected valid input, got %v", err)
				}
				return
			}
			if errs.KindOf(err) != errs.KindValidation || err.Error() != tc.wantMsg {
				t.Fatalf("expected validation %q, got %v", tc.wantMsg, err)
			}
		})
	}
}
