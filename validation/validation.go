// Package validation rejects malformed input before it reaches persistence and
// normalizes strings on the way through. Every check precedes the single write
// of its handler, so a failed request leaves storage untouched.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func isValidEmail(email string) bool {
	return validate.Var(email, "email") == nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isEmpty(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
