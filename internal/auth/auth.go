// Package auth implements the static demo credential check consulted
// before the session container's login action. This is a fixed
// allow-list comparison, not an authentication system.
package auth

import (
	"regexp"

	"github.com/mixtape-cli/mixtape/internal/shared"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldErrors maps form field names to inline validation messages.
// Validation problems are surfaced this way, never as errors.
type FieldErrors map[string]string

// Validate checks the shape of the submitted fields: a plausible email
// and a password of at least six characters.
func Validate(email, password string) FieldErrors {
	errs := FieldErrors{}
	if !emailPattern.MatchString(email) {
		errs["email"] = "invalid email format"
	}
	if len(password) < 6 {
		errs["password"] = "password must have at least 6 characters"
	}
	return errs
}

// Check reports whether the email/password pair is on the allow list.
func Check(allowed []shared.CredentialConfig, email, password string) bool {
	for _, cred := range allowed {
		if cred.Email == email && cred.Password == password {
			return true
		}
	}
	return false
}
