package echoaway

import "context"

// Logout clears the in-memory pair and deletes the durable record. It is
// idempotent: logging out an already-logged-out session succeeds.
func (s *Session) Logout(ctx context.Context) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	s.opMu.Lock()
	defer s.opMu.Unlock()

	return s.logoutLocked(ctx)
}

// logoutLocked requires opMu. Memory is cleared before the storage delete so
// no reader can observe a logged-in session whose record is already gone the
// other way around.
func (s *Session) logoutLocked(ctx context.Context) error {
	email := ""
	if u := s.CurrentUser(); u != nil {
		email = u.Email
	}

	hadSession := s.clearState()
	err := s.store.Delete(ctx)

	if hadSession {
		s.metricInc(MetricLogout)
		s.emit(ctx, auditEventLogout, email, "", err == nil, err)
	}
	return err
}
