package echoaway

import (
	"time"

	"github.com/echoaway/echoaway-go/internal/tokens"
	"github.com/echoaway/echoaway-go/role"
)

// IsAuthenticated reports whether both a user and a token are present.
// A restored-but-unverified token alone does not count.
func (s *Session) IsAuthenticated() bool {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.token != "" && s.user != nil
}

// CurrentUser returns a copy of the session user, nil when logged out.
func (s *Session) CurrentUser() *User {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the current bearer token, empty when logged out. It also
// implements [api.TokenSource], which is how the adapter sources credentials.
func (s *Session) Token() string {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.token
}

// UserRole returns the session's role, [role.Default] when no user is
// present.
func (s *Session) UserRole() role.Role {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	if s.user == nil {
		return role.Default
	}
	return s.currentRole
}

// IsAdmin reports whether the session user is an administrator.
func (s *Session) IsAdmin() bool {
	return s.UserRole() == role.Admin
}

// IsHost reports whether the session user can manage listings. Admin is a
// superset of host, so both roles qualify.
func (s *Session) IsHost() bool {
	return s.UserRole().AtLeast(role.Host)
}

// IsGuest reports whether the session user is a traveller account.
func (s *Session) IsGuest() bool {
	return s.UserRole() == role.Guest
}

// IsVisitor reports whether the session is effectively anonymous.
func (s *Session) IsVisitor() bool {
	return s.UserRole() == role.Visitor
}

// FullName returns the user's display name, empty when logged out.
func (s *Session) FullName() string {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	if s.user == nil {
		return ""
	}
	return s.user.Name
}

// TokenExpiry returns the unverified expiry hint carried by the current
// token. ok is false for opaque tokens, tokens without an exp claim, and
// logged-out sessions. A hint, never a proof.
func (s *Session) TokenExpiry() (expiry time.Time, ok bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}
	hint, err := tokens.Peek(token)
	if err != nil || hint.ExpiresAt.IsZero() {
		return time.Time{}, false
	}
	return hint.ExpiresAt, true
}
