// Package validation provides input validation for entities and their fields.
package validation

import (
	"strings"
)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidEmail checks if an email address contains an "@" character.
// Intentionally minimal; no further format checking is done.
func (v *Validator) IsValidEmail(email string) bool {
	return strings.Contains(email, "@")
}

// Trim returns the string with surrounding whitespace removed
func (v *Validator) Trim(s string) string {
	return strings.TrimSpace(s)
}
