package auth

import (
	"testing"

	"github.com/mixtape-cli/mixtape/internal/shared"
)

func TestValidate(t *testing.T) {
	t.Run("accepts valid fields", func(t *testing.T) {
		if errs := Validate("user@test.com", "123456"); len(errs) != 0 {
			t.Errorf("expected no field errors, got %v", errs)
		}
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		errs := Validate("not-an-email", "123456")
		if errs["email"] == "" {
			t.Error("expected email field error")
		}
	})

	t.Run("rejects short password", func(t *testing.T) {
		errs := Validate("user@test.com", "12345")
		if errs["password"] == "" {
			t.Error("expected password field error")
		}
	})

	t.Run("reports both fields at once", func(t *testing.T) {
		if errs := Validate("bad", "x"); len(errs) != 2 {
			t.Errorf("expected 2 field errors, got %v", errs)
		}
	})
}

func TestCheck(t *testing.T) {
	allowed := []shared.CredentialConfig{
		{Email: "user@test.com", Password: "123456"},
		{Email: "admin@test.com", Password: "123456"},
	}

	t.Run("accepts listed pair", func(t *testing.T) {
		if !Check(allowed, "admin@test.com", "123456") {
			t.Error("expected listed pair to pass")
		}
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		if Check(allowed, "user@test.com", "654321") {
			t.Error("expected wrong password to fail")
		}
	})

	t.Run("rejects unknown email", func(t *testing.T) {
		if Check(allowed, "nobody@test.com", "123456") {
			t.Error("expected unknown email to fail")
		}
	})
}
