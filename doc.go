// Package echoaway is a client kit for the EchoAway accommodation-listing
// backend: session lifecycle management with durable persistence, a typed REST
// adapter, and navigation guards.
//
// A [Session] is built through [Builder.Build] and is the single source of
// truth for "who is logged in". It owns the in-memory user+token pair,
// mirrors it into a [storage.Store] after every mutating action, and exposes
// derived authorization getters (IsAuthenticated, IsHost, ...). Session
// methods are safe to call from multiple goroutines: mutating operations are
// serialized so at most one is in flight at a time.
//
// # Architecture boundaries
//
// echoaway is the public surface. It exposes [Session], [Builder], [Config],
// audit sinks, and metrics value types. The HTTP adapter lives in api/, the
// persisted record stores in storage/, the role vocabulary in role/, and the
// navigation guards in guard/. Async event dispatch lives under internal/ and
// is never exported directly.
//
// # What this package must NOT do
//
//   - Validate bearer tokens client-side: only the backend profile endpoint
//     decides whether a token is still honored.
//   - Retry failed calls: retry decisions belong to the caller.
//   - Expose the storage backend or raw HTTP plumbing in its public API.
package echoaway
