package domain

// Credential represents a username/password pair in the flat credential store.
// Passwords are stored in plaintext; the store predates any hashing scheme
// and the on-disk format is part of the external interface.
type Credential struct {
	Username string
	Password string
}

// IsValid checks if the credential has both fields populated.
func (c Credential) IsValid() bool {
	return c.Username != "" && c.Password != ""
}
