// Package session holds the administrator's authenticated identity: the
// backend access token plus user id, role and email.
package session

import "strings"

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleDesigner Role = "Designer"
	RoleUser     Role = "User"
)

// ParseRole maps the backend's role strings onto Role, ignoring case.
// Unknown values are returned as-is.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	case "designer":
		return RoleDesigner
	case "user":
		return RoleUser
	}
	return Role(s)
}

type Session struct {
	AccessToken string
	UserID      string
	Role        Role
	Email       string
}

// Store persists one session. Accessors return zero values when unset.
type Store interface {
	Set(s Session) error
	Token() string
	UserID() string
	Role() Role
	Email() string
	Clear() error
	IsAuthenticated() bool
}

// Snapshot copies the current values out of a store.
func Snapshot(s Store) Session {
	return Session{
		AccessToken: s.Token(),
		UserID:      s.UserID(),
		Role:        s.Role(),
		Email:       s.Email(),
	}
}
