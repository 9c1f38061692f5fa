package echoaway

import (
	"context"
	"fmt"

	"github.com/echoaway/echoaway-go/api"
	"github.com/echoaway/echoaway-go/role"
)

// Login exchanges credentials for an authenticated session. On success the
// in-memory pair is set and the durable record written; the server payload is
// returned for UI use. On failure the adapter error is propagated untouched
// and no state changes.
//
// Sequence per call: network → persistence → state mutation. A failure at any
// step leaves the session exactly as it was.
func (s *Session) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	if s.closed.Load() {
		return nil, ErrSessionClosed
	}
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.loading.Store(true)
	defer s.loading.Store(false)

	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.metricInc(MetricLoginFailure)
		s.emit(ctx, auditEventLoginFailure, email, "", false, err)
		return nil, err
	}

	user, r, err := s.adoptUser(resp.User)
	if err != nil {
		s.metricInc(MetricLoginFailure)
		s.emit(ctx, auditEventRoleRejected, email, resp.User.Role, false, err)
		return nil, err
	}

	if err := s.persist(ctx, user, resp.Token); err != nil {
		s.metricInc(MetricLoginFailure)
		return nil, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	s.setState(user, resp.Token, r)

	s.metricInc(MetricLoginSuccess)
	s.emit(ctx, auditEventLoginSuccess, user.Email, user.Role, true, nil)

	return resp, nil
}

// Register creates an account and establishes a session, with the same
// contract as [Session.Login].
func (s *Session) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if s.closed.Load() {
		return nil, ErrSessionClosed
	}
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.loading.Store(true)
	defer s.loading.Store(false)

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		s.metricInc(MetricRegisterFailure)
		s.emit(ctx, auditEventRegisterFailure, req.Email, req.Role, false, err)
		return nil, err
	}

	user, r, err := s.adoptUser(resp.User)
	if err != nil {
		s.metricInc(MetricRegisterFailure)
		s.emit(ctx, auditEventRoleRejected, req.Email, resp.User.Role, false, err)
		return nil, err
	}

	if err := s.persist(ctx, user, resp.Token); err != nil {
		s.metricInc(MetricRegisterFailure)
		return nil, fmt.Errorf("%w: %v", ErrPersistFailed, err)
	}
	s.setState(user, resp.Token, r)

	s.metricInc(MetricRegisterSuccess)
	s.emit(ctx, auditEventRegisterSuccess, user.Email, user.Role, true, nil)

	return resp, nil
}

// adoptUser normalizes the role string on a wire user against the configured
// vocabulary. Users with roles outside the vocabulary are rejected here, at
// the decode boundary, never carried into session state.
func (s *Session) adoptUser(wire api.User) (*api.User, role.Role, error) {
	r, err := s.roles.Resolve(wire.Role)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q", ErrRoleRejected, wire.Role)
	}
	user := wire
	user.Role = r.String()
	return &user, r, nil
}
