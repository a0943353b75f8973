// Package models defines client-side data models used by the VideoGenius CLI.
package models

// User is the cached profile of the authenticated account. It is replaced
// wholesale on login and on successful revalidation, never patched in place.
type User struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Points int64  `json:"points"`
}

// Session is the single active credential/profile pair.
type Session struct {
	// Token is the opaque bearer credential issued by the server.
	Token string `json:"token"`
	User  User   `json:"user"`
}

// IsZero reports whether s holds no credential.
func (s Session) IsZero() bool {
	return s.Token == ""
}
