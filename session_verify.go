package echoaway

import (
	"context"
	"errors"
	"time"

	"github.com/echoaway/echoaway-go/api"
	"github.com/echoaway/echoaway-go/internal/tokens"
	"github.com/echoaway/echoaway-go/role"
	"github.com/echoaway/echoaway-go/storage"
)

// CheckAuth reconciles "I have a token" with "the token is still honored".
// With no token present it returns false immediately, no network call.
// Otherwise it fetches the profile with the current token:
//
//   - Backend accepts → the cached user is refreshed, result is true.
//   - Backend rejects (any non-2xx) → full logout, result is false with a
//     nil error: an invalid token is a clean outcome, not an exception.
//   - Backend unreachable → the session is preserved and the connectivity
//     error returned, unless Session.LogoutOnUnreachable opts into the
//     legacy discard-on-outage behavior.
func (s *Session) CheckAuth(ctx context.Context) (bool, error) {
	if s.closed.Load() {
		return false, ErrSessionClosed
	}
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.loading.Store(true)
	defer s.loading.Store(false)

	return s.checkAuthLocked(ctx)
}

func (s *Session) checkAuthLocked(ctx context.Context) (bool, error) {
	token := s.Token()
	if token == "" {
		return false, nil
	}

	start := time.Now()
	resp, err := s.client.Profile(ctx)
	s.metrics.Observe(MetricProfileLatency, time.Since(start))

	if err != nil {
		if errors.Is(err, api.ErrUnreachable) && !s.config.Session.LogoutOnUnreachable {
			s.metricInc(MetricBackendUnreachable)
			s.emit(ctx, auditEventCheckAuthOffline, "", "", false, err)
			return false, err
		}
		s.metricInc(MetricCheckAuthFailure)
		s.emit(ctx, auditEventCheckAuthFailure, "", "", false, err)
		_ = s.logoutLocked(ctx)
		return false, nil
	}

	user, r, err := s.adoptUser(resp.User)
	if err != nil {
		s.metricInc(MetricCheckAuthFailure)
		s.emit(ctx, auditEventRoleRejected, resp.User.Email, resp.User.Role, false, err)
		_ = s.logoutLocked(ctx)
		return false, err
	}

	// Some backend revisions rotate the token on profile fetch.
	if resp.Token != "" {
		token = resp.Token
	}

	persistErr := s.persist(ctx, user, token)
	s.setState(user, token, r)

	s.metricInc(MetricCheckAuthSuccess)
	s.emit(ctx, auditEventCheckAuthSuccess, user.Email, user.Role, true, nil)

	// The token is verified and the session live; a failed mirror write is
	// reported but does not demote the result.
	return true, persistErr
}

// RefreshToken opportunistically refreshes the cached profile. It only runs
// when a token is already in memory; with Session.RefreshWindow set, tokens
// whose (unverified) expiry hint is comfortably far away skip the round-trip.
func (s *Session) RefreshToken(ctx context.Context) (bool, error) {
	if s.closed.Load() {
		return false, ErrSessionClosed
	}
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.loading.Store(true)
	defer s.loading.Store(false)

	token := s.Token()
	if token == "" {
		return false, nil
	}

	if w := s.config.Session.RefreshWindow; w > 0 && s.IsAuthenticated() && !tokens.ExpiresWithin(token, w) {
		s.metricInc(MetricRefreshSkipped)
		return true, nil
	}

	ok, err := s.checkAuthLocked(ctx)
	if ok {
		s.metricInc(MetricRefreshSuccess)
	} else {
		s.metricInc(MetricRefreshFailure)
	}
	return ok, err
}

// InitAuth is the idempotent startup hook: it restores the persisted record
// and verifies it once, no matter how many callers race it. Guards await it
// before reading session state, so none of them can observe the pre-restore
// empty session.
func (s *Session) InitAuth(ctx context.Context) (bool, error) {
	if s.closed.Load() {
		return false, ErrSessionClosed
	}
	s.initOnce.Do(func() {
		s.initOK, s.initErr = s.initAuth(ctx)
	})
	return s.initOK, s.initErr
}

func (s *Session) initAuth(ctx context.Context) (bool, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.loading.Store(true)
	defer s.loading.Store(false)

	rec, err := s.store.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return false, nil
	case errors.Is(err, storage.ErrCorrupt):
		// Unreadable record: treat as absent and clean up.
		_ = s.store.Delete(ctx)
		return false, nil
	case err != nil:
		return false, err
	}

	// Token-only records from older layouts restore without a user: the
	// token is held, the user left to the verification below. The only
	// state where token and user are not set together.
	var restored *api.User
	r := role.Default
	if rec.User != nil {
		adopted, resolved, err := s.adoptUser(*rec.User)
		if err != nil {
			// Stored under a vocabulary this build no longer accepts.
			_ = s.store.Delete(ctx)
			return false, nil
		}
		restored = adopted
		r = resolved
	}

	s.setState(restored, rec.Token, r)
	s.metricInc(MetricSessionRestored)
	email := ""
	if restored != nil {
		email = restored.Email
	}
	s.emit(ctx, auditEventSessionRestored, email, r.String(), true, nil)

	return s.checkAuthLocked(ctx)
}
