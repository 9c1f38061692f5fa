// Package audit implements async event dispatching for session-lifecycle
// operations (login, register, logout, token verification, guard redirects).
//
// # Components
//
//   - [Sink] — interface for event consumers (channel, JSON writer, no-op).
//   - [Dispatcher] — buffered async relay with drop-if-full / block-if-full semantics.
//   - [Event] — structured record with timestamp, type, email, role, metadata.
//
// # Architecture boundaries
//
// This package owns event buffering and sink delivery. It does NOT decide which
// events to emit — that responsibility belongs to the Session manager. Emission
// is observability only: no session operation depends on it for correctness.
//
// # What this package must NOT do
//
//   - Filter or suppress events based on business logic.
//   - Import echoaway or any sibling internal package.
//   - Perform network I/O beyond what a caller-supplied Sink does.
package audit
