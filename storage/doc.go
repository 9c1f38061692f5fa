// Package storage persists the EchoAway session record across process
// restarts. One record, one key: the durable store is a passive mirror that
// the session layer reads once at startup and rewrites after every mutating
// action.
//
// # Backends
//
//   - [FileStore] — a JSON file on disk, the default for desktop and CLI use.
//   - [RedisStore] — a single Redis key, for processes that already run
//     against Redis or need the record shared across hosts.
//   - [MemoryStore] — process-local, for tests and throwaway sessions.
//
// # Architecture boundaries
//
// This package owns serialization of [Record] and the single-record
// load/save/delete contract. It does NOT validate tokens, normalize roles, or
// decide when a record is stale — those calls belong to the session layer.
//
// # What this package must NOT do
//
//   - Call the EchoAway backend.
//   - Interpret the token beyond treating it as an opaque string.
//   - Keep more than one record per store.
package storage
