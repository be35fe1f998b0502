package cli

// Session carries the per-login state passed explicitly to every menu
// handler. There is no ambient global session: the struct is constructed
// once at login and threaded through each operation.
type Session struct {
	CurrentUser string
	Admin       bool
}

// NewSession creates a session for an authenticated user
func NewSession(username string, admin bool) *Session {
	return &Session{
		CurrentUser: username,
		Admin:       admin,
	}
}
