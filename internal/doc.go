// Package internal groups helper packages that are intentionally private to
// echoaway-go.
//
// # Sub-packages
//
//   - audit — async session-event dispatch (Dispatcher + Sink implementations)
//   - tokens — unverified JWT claim peeking for refresh scheduling
//
// # What this package must NOT do
//
//   - Export types that appear in the public echoaway API.
//   - Be imported by any package outside the echoaway-go module.
package internal
