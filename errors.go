package echoaway

import "errors"

var (
	// ErrRoleRejected is returned when the backend hands back a user whose
	// role is outside the configured vocabulary. The session refuses to hold
	// a user it cannot classify.
	ErrRoleRejected = errors.New("role rejected by vocabulary")
	// ErrSessionClosed is returned by operations on a closed session.
	ErrSessionClosed = errors.New("session closed")
	// ErrPersistFailed wraps durable-storage write failures during login and
	// register. The operation is rolled back: no in-memory state survives a
	// failed mirror write.
	ErrPersistFailed = errors.New("session persistence failed")
)
