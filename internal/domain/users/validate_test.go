package users

import (
	"testing"

	"animal-shelter/internal/domain/errs"
)

func phone(n int64) *int64 { return &n }

func TestValidateRegistration(t *testing.T) {
	valid := RegisterInput{
		Name:    "Alice Smith",
		Email:   "alice@x.com",
		Phone:   phone(123456789),
		Address: "Calle Mayor 1",
	}

	cases := []struct {
		name    string
		mutate  func(in *RegisterInput)
		wantMsg string
	}{
		{"valid", func(in *RegisterInput) {}, ""},
		{"phone optional", func(in *RegisterInput) { in.Phone = nil }, ""},
		{"short email ok", func(in *RegisterInput) { in.Email = "a@b.co" }, ""},
		{"name too short", func(in *RegisterInput) { in.Name = "Al" }, "name too short"},
		{"name blank padded", func(in *RegisterInput) { in.Name = "  Al  " }, "name too short"},
		{"short name wins over bad email", func(in *RegisterInput) { in.Name = "Al"; in.Email = "nope" }, "name too short"},
		{"malformed email", func(in *RegisterInput) { in.Email = "not-an-email" }, "malformed email"},
		{"email without tld", func(in *RegisterInput) { in.Email = "alice@localhost" }, "malformed email"},
		{"phone too short", func(in *RegisterInput) { in.Phone = phone(12345) }, "phone must be 9 digits"},
		{"phone too long", func(in *RegisterInput) { in.Phone = phone(1234567890) }, "phone must be 9 digits"},
		{"phone negative", func(in *RegisterInput) { in.Phone = phone(-12345678) }, "phone must be 9 digits"},
		{"address required", func(in *RegisterInput) { in.Address = " " }, "address required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)

			err := ValidateRegistration(in)
			if tc.wantMsg == "" {
				if err != nil {
					t.Fatalf("expected valid input, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected %q, got nil", tc.wantMsg)
			}
			if errs.KindOf(err) != errs.KindValidation || err.Error() != tc.wantMsg {
				t.Fatalf("expected validation %q, got %v (%s)", tc.wantMsg, err, errs.KindOf(err))
			}
		})
	}
}
