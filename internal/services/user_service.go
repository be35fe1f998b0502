package services

import (
	"context"
	"sort"

	"taskman/internal/errors"
	"taskman/internal/repository/textfile"
	"taskman/internal/validation"
)

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	repo                textfile.Repository
	creds               map[string]string
	credentialValidator *validation.CredentialValidator
}

// NewUserService creates a new UserService instance
func NewUserService(repo textfile.Repository) UserService {
	return &userServiceImpl{
		repo:                repo,
		creds:               make(map[string]string),
		credentialValidator: validation.NewCredentialValidator(),
	}
}

// Load replaces the in-memory mapping with the persisted one
func (u *userServiceImpl) Load(ctx context.Context) error {
	creds, err := u.repo.LoadCredentials(ctx)
	if err != nil {
		return err
	}
	if creds == nil {
		creds = make(map[string]string)
	}
	u.creds = creds
	return nil
}

// Credentials returns a copy of the in-memory username to password mapping
func (u *userServiceImpl) Credentials() map[string]string {
	out := make(map[string]string, len(u.creds))
	for username, password := range u.creds {
		out[username] = password
	}
	return out
}

// Usernames returns all known usernames in sorted order
func (u *userServiceImpl) Usernames() []string {
	usernames := make([]string, 0, len(u.creds))
	for username := range u.creds {
		usernames = append(usernames, username)
	}
	sort.Strings(usernames)
	return usernames
}

// Exists reports whether a username is present in the store
func (u *userServiceImpl) Exists(username string) bool {
	_, ok := u.creds[username]
	return ok
}

// Authenticate checks a username/password pair, distinguishing an unknown
// user from a wrong password
func (u *userServiceImpl) Authenticate(username, password string) error {
	stored, ok := u.creds[username]
	if !ok {
		return errors.NewNotFoundError("user", username)
	}
	if stored != password {
		return errors.NewValidationError("wrong password", nil)
	}
	return nil
}

// Register adds a new credential and persists the mapping. Registration
// conflicts when the username already exists; it never overwrites. On save
// failure the new entry stays in memory.
func (u *userServiceImpl) Register(ctx context.Context, username, password string) error {
	cleaned, err := u.credentialValidator.GetValidUsername(username)
	if err != nil {
		return errors.NewValidationError("invalid username", err)
	}
	if err := u.credentialValidator.ValidatePassword(password); err != nil {
		return errors.NewValidationError("invalid password", err)
	}

	if u.Exists(cleaned) {
		return errors.NewConflictError("username", cleaned)
	}

	u.creds[cleaned] = password
	return u.repo.SaveCredentials(ctx, u.creds)
}
