package validation

// CredentialValidator provides validation for credential-related operations
type CredentialValidator struct {
	validator *Validator
}

// NewCredentialValidator creates a new credential validator
func NewCredentialValidator() *CredentialValidator {
	return &CredentialValidator{
		validator: NewValidator(),
	}
}

// ValidateUsername validates a username for registration
func (cv *CredentialValidator) ValidateUsername(username string) error {
	validationError := NewValidationError()

	trimmed := cv.validator.TrimAndValidateString(username)

	if !cv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("username")
		return validationError
	}

	if !cv.validator.IsValidStringLength(trimmed, 1, 64) {
		validationError.AddInvalidLengthError("username", trimmed, 1, 64)
	}

	if !cv.validator.IsValidUsername(trimmed) {
		validationError.AddInvalidCharacterError("username", trimmed)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidatePassword validates a password for registration. Passwords persist
// on a single storage line, so line breaks are rejected.
func (cv *CredentialValidator) ValidatePassword(password string) error {
	validationError := NewValidationError()

	if password == "" {
		validationError.AddRequiredError("password")
		return validationError
	}

	if !cv.validator.IsSingleLine(password) {
		validationError.AddInvalidCharacterError("password", password)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidatePasswordConfirmation checks that a password and its confirmation match
func (cv *CredentialValidator) ValidatePasswordConfirmation(password, confirmation string) error {
	if password != confirmation {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("password_confirmation", nil, "passwords do not match")
		return validationError
	}
	return nil
}

// GetValidUsername returns a cleaned username if valid
func (cv *CredentialValidator) GetValidUsername(username string) (string, error) {
	if err := cv.ValidateUsername(username); err != nil {
		return "", err
	}
	return cv.validator.TrimAndValidateString(username), nil
}
