// Package prometheus renders session metrics in Prometheus text exposition
// format.
//
// [NewPrometheusExporter] accepts an [echoaway.Session] and exposes an
// [net/http.Handler] for scraping. Counter names are prefixed
// echoaway_*_total; the single histogram is echoaway_profile_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the
//     Handler.
//   - Mutate session state.
package prometheus
