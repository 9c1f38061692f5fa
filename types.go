package echoaway

import (
	"io"

	"github.com/echoaway/echoaway-go/api"
	internalaudit "github.com/echoaway/echoaway-go/internal/audit"
)

// User is the backend account record, re-exported from the adapter so most
// callers never import api directly.
type User = api.User

// AuthResponse is the user+token payload returned by login and register.
type AuthResponse = api.AuthResponse

// RegisterRequest is the account-creation payload for [Session.Register].
type RegisterRequest = api.RegisterRequest

// AuditEvent is a structured session-lifecycle record emitted by the session
// manager.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the session's audit dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes one JSON object
// per line to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}
