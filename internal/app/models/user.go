package models

import (
	"context"
	"posyandu-console/internal/pkg/constvars"
	"strconv"
	"strings"
	"time"
)

type Role int

const (
	RoleUser Role = iota
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	default:
		return "user"
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// ResolveRole maps the numeric role code returned by the remote login endpoint onto a Role.
func ResolveRole(code, adminCode string) Role {
	if adminCode != "" && strings.TrimSpace(code) == adminCode {
		return RoleAdmin
	}
	return RoleUser
}

// RemoteUser is the body of a successful remote login.
type RemoteUser struct {
	ID    FlexibleID `json:"id"`
	Name  string     `json:"name,omitempty"`
	Email string     `json:"email,omitempty"`
	Role  FlexibleID `json:"role"`
}

// Session is the console's server-side record of a logged in petugas.
type Session struct {
	SessionID     string    `json:"session_id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name,omitempty"`
	Email         string    `json:"email,omitempty"`
	Role          Role      `json:"role"`
	RemoteCookies []string  `json:"remote_cookies,omitempty"`
	ExpiresAt     time.Time `json:"expires_at"`
}

func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

// RoleCode formats the role for tokens and logs.
func (s *Session) RoleCode() string {
	return strconv.Itoa(int(s.Role))
}

// SessionClaims is what the signed session cookie carries.
type SessionClaims struct {
	SessionID string
	UserID    string
	Role      Role
}

// SessionFromContext returns the session the Authenticate middleware bound to ctx, or nil.
func SessionFromContext(ctx context.Context) *Session {
	session, _ := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*Session)
	return session
}

func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_SESSION_KEY, session)
}
