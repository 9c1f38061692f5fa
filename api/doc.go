// Package api is the HTTP adapter for the EchoAway REST backend. It translates
// domain operations (login, register, profile fetch, accommodation CRUD) into
// JSON-over-HTTP requests and translates HTTP-level outcomes into domain-level
// errors.
//
// # Error mapping
//
// Non-2xx responses become [*Error] values carrying the numeric status code and
// any structured detail payload, so callers can branch on status without
// re-parsing messages. A JSON error body supplies the message; when the body is
// unparsable a status-specific fallback is synthesized. Transport failures are
// wrapped in [ErrUnreachable], distinct from application-level errors.
//
// # Token sourcing
//
// The adapter never reads durable storage. Requests that require a bearer
// token obtain it from the [TokenSource] injected at construction — one policy,
// everywhere.
//
// # Architecture boundaries
//
// This package owns request plumbing, the wire models, and the error taxonomy.
// It does NOT hold session state, retry failed calls, or decide redirects.
//
// # What this package must NOT do
//
//   - Read or write the persisted session record.
//   - Retry automatically (retry decisions belong to the caller).
//   - Swallow an error: every failure is returned to the caller.
package api
