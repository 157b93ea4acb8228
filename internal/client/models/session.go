package models

// Session is the authenticated identity of the current user together with
// its bearer token. The zero value means "not logged in".
type Session struct {
	Role  Role
	Name  string
	Email string
	// Token is the opaque bearer token issued by the backend.
	Token string
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
