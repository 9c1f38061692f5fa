// Package guard evaluates navigation decisions against session state:
// require-authenticated, require-guest, and require-role, each returning an
// allow or a redirect target.
//
// Every guard first awaits [echoaway.Session.InitAuth], so a guard that runs
// during startup can never read the empty, not-yet-restored session.
//
// # Architecture boundaries
//
// This package translates navigation semantics into Session calls. It does
// NOT implement authentication logic itself — all liveness and role decisions
// are delegated to the session.
//
// # What this package must NOT do
//
//   - Call the backend directly (the session owns verification).
//   - Read durable storage.
//   - Make authorization decisions beyond allow/redirect from session state.
package guard
