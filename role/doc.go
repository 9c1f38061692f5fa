// Package role defines the EchoAway user role vocabulary, normalization at the
// decode boundary, and the privilege relation used by authorization getters.
//
// # Vocabulary
//
// The canonical roles are visitor < guest < host < admin, ordered by privilege.
// Older backend revisions used a three-role scheme with "user" in place of
// "guest"; [Normalize] folds those aliases into the canonical set. Unknown role
// strings are rejected, never passed through.
//
// # Architecture boundaries
//
// This package is a pure in-memory vocabulary with no I/O. The allow-list is
// selected at [Registry] construction time and is immutable thereafter.
//
// # What this package must NOT do
//
//   - Access storage or the network.
//   - Import echoaway, api, or guard (no upward imports).
//   - Accept unknown role strings as valid.
package role
