package internaldefs

import (
	echoaway "github.com/echoaway/echoaway-go"
)

// CounterDef binds a session counter to its stable exported name.
type CounterDef struct {
	ID   echoaway.MetricID
	Name string
	Help string
}

// HistogramDef binds a session histogram to its stable exported name.
type HistogramDef struct {
	ID   echoaway.MetricID
	Name string
	Help string
}

// CounterDefs lists every exported session counter, in emission order.
var CounterDefs = []CounterDef{
	{ID: echoaway.MetricLoginSuccess, Name: "echoaway_login_success_total", Help: "Successful logins."},
	{ID: echoaway.MetricLoginFailure, Name: "echoaway_login_failure_total", Help: "Failed or rejected logins."},
	{ID: echoaway.MetricRegisterSuccess, Name: "echoaway_register_success_total", Help: "Successful registrations."},
	{ID: echoaway.MetricRegisterFailure, Name: "echoaway_register_failure_total", Help: "Failed or rejected registrations."},
	{ID: echoaway.MetricLogout, Name: "echoaway_logout_total", Help: "Logouts that cleared a session."},
	{ID: echoaway.MetricCheckAuthSuccess, Name: "echoaway_check_auth_success_total", Help: "Token verifications the backend honored."},
	{ID: echoaway.MetricCheckAuthFailure, Name: "echoaway_check_auth_failure_total", Help: "Token verifications ending in forced logout."},
	{ID: echoaway.MetricRefreshSuccess, Name: "echoaway_refresh_success_total", Help: "Successful profile refreshes."},
	{ID: echoaway.MetricRefreshFailure, Name: "echoaway_refresh_failure_total", Help: "Failed profile refreshes."},
	{ID: echoaway.MetricRefreshSkipped, Name: "echoaway_refresh_skipped_total", Help: "Refreshes skipped by the expiry-hint fast path."},
	{ID: echoaway.MetricSessionRestored, Name: "echoaway_session_restored_total", Help: "Sessions restored from durable storage at startup."},
	{ID: echoaway.MetricSessionPersisted, Name: "echoaway_session_persisted_total", Help: "Durable session record writes."},
	{ID: echoaway.MetricBackendUnreachable, Name: "echoaway_backend_unreachable_total", Help: "Verification attempts that never reached the backend."},
}

// HistogramDefs lists every exported session histogram.
var HistogramDefs = []HistogramDef{
	{ID: echoaway.MetricProfileLatency, Name: "echoaway_profile_latency_seconds", Help: "Profile-fetch latency histogram."},
}

// HistogramBounds are the upper bucket bounds in seconds, as rendered labels.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix mirrors HistogramBounds with instrument-name-safe
// suffixes.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets pads or truncates a raw bucket slice to the fixed width.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts into the cumulative form both
// exposition formats expect.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
