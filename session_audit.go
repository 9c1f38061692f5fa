package echoaway

import (
	"context"
	"time"
)

const (
	auditEventLoginSuccess     = "login_success"
	auditEventLoginFailure     = "login_failure"
	auditEventRegisterSuccess  = "register_success"
	auditEventRegisterFailure  = "register_failure"
	auditEventLogout           = "logout"
	auditEventCheckAuthSuccess = "check_auth_success"
	auditEventCheckAuthFailure = "check_auth_failure"
	auditEventCheckAuthOffline = "check_auth_offline"
	auditEventSessionRestored  = "session_restored"
	auditEventRoleRejected     = "role_rejected"
)

// emit sends one lifecycle event to the audit dispatcher. Emission is
// observability only; no session operation depends on it for correctness.
func (s *Session) emit(ctx context.Context, eventType, email, roleName string, success bool, opErr error) {
	if s == nil || s.audit == nil {
		return
	}

	event := AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		Email:     email,
		Role:      roleName,
		Success:   success,
	}
	if opErr != nil {
		event.Error = opErr.Error()
	}

	s.audit.Emit(ctx, event)
}
