package validation

import (
	"regexp"
	"strings"
	"time"

	"taskman/internal/config"
)

// Validator provides common validation utilities
type Validator struct {
	usernameRegex *regexp.Regexp
	config        *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return NewValidatorWithConfig(nil)
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		usernameRegex: regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`),
		config:        cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsSingleLine checks that a string carries no embedded line breaks.
// Both storage grammars are line-delimited, so a stray newline in any
// field corrupts the record framing on the next load.
func (v *Validator) IsSingleLine(s string) bool {
	return !strings.ContainsAny(s, "\r\n")
}

// IsValidUsername checks if a username contains only allowed characters.
// Semicolons are excluded so the value survives the legacy record format.
func (v *Validator) IsValidUsername(name string) bool {
	return v.usernameRegex.MatchString(name)
}

// ParseDate parses a calendar date in the configured input format
func (v *Validator) ParseDate(s string) (time.Time, error) {
	return time.Parse(v.DateFormat(), strings.TrimSpace(s))
}

// IsReasonableDate checks if a date is within reasonable bounds
func (v *Validator) IsReasonableDate(t time.Time) bool {
	now := time.Now()
	// Allow dates from 50 years ago to 50 years in the future
	return t.After(now.AddDate(-50, 0, 0)) && t.Before(now.AddDate(50, 0, 0))
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// DateFormat returns the configured date input format or the default
func (v *Validator) DateFormat() string {
	if v.config != nil {
		return v.config.Format.DateFormat
	}
	return "02-01-2006" // Default DD-MM-YYYY
}
