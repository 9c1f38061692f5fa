package echoaway

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/echoaway/echoaway-go/api"
	internalaudit "github.com/echoaway/echoaway-go/internal/audit"
	"github.com/echoaway/echoaway-go/role"
	"github.com/echoaway/echoaway-go/storage"
)

// Session is the single source of truth for "who is logged in". It owns the
// in-memory user+token pair and mirrors it into durable storage after every
// mutating action.
//
// Mutating operations (Login, Register, Logout, CheckAuth, RefreshToken,
// InitAuth) serialize through one lock: at most one mutation is in flight at
// a time, so a logout can never interleave with a half-finished login.
// Getters are cheap and never block behind an in-flight network call.
type Session struct {
	config  Config
	client  *api.Client
	store   storage.Store
	roles   *role.Registry
	audit   *internalaudit.Dispatcher
	metrics *Metrics

	// opMu is the single-writer lock for mutating operations.
	opMu    sync.Mutex
	loading atomic.Bool
	closed  atomic.Bool

	stateMu     sync.RWMutex
	user        *api.User
	token       string
	currentRole role.Role

	initOnce sync.Once
	initOK   bool
	initErr  error
}

// Client exposes the REST adapter for listing CRUD and connectivity probes.
// Authenticated adapter calls use this session's token automatically.
func (s *Session) Client() *api.Client {
	return s.client
}

// Close flushes and stops the audit dispatcher. The session is unusable
// afterwards.
func (s *Session) Close() {
	if s == nil {
		return
	}
	s.closed.Store(true)
	if s.audit != nil {
		s.audit.Close()
	}
}

// AuditDropped reports how many events the dispatcher discarded under
// backpressure.
func (s *Session) AuditDropped() uint64 {
	if s == nil || s.audit == nil {
		return 0
	}
	return s.audit.Dropped()
}

// MetricsSnapshot deep-copies the session's counters.
func (s *Session) MetricsSnapshot() MetricsSnapshot {
	if s == nil || s.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return s.metrics.Snapshot()
}

// Loading reports whether a session-mutating operation is in flight. UI
// affordance only — it is not a lock.
func (s *Session) Loading() bool {
	return s.loading.Load()
}

func (s *Session) metricInc(id MetricID) {
	if s == nil || s.metrics == nil {
		return
	}
	s.metrics.Inc(id)
}

// setState installs a verified user+token pair. role must already be
// resolved against the vocabulary.
func (s *Session) setState(user *api.User, token string, r role.Role) {
	s.stateMu.Lock()
	s.user = user
	s.token = token
	s.currentRole = r
	s.stateMu.Unlock()
}

func (s *Session) clearState() (hadSession bool) {
	s.stateMu.Lock()
	hadSession = s.token != "" || s.user != nil
	s.user = nil
	s.token = ""
	s.currentRole = role.Default
	s.stateMu.Unlock()
	return hadSession
}

// persist mirrors the current pair into durable storage. Token and user are
// written together — never one without the other.
func (s *Session) persist(ctx context.Context, user *api.User, token string) error {
	u := *user
	rec := &storage.Record{
		Token:   token,
		User:    &u,
		SavedAt: time.Now().UTC(),
	}
	if err := s.store.Save(ctx, rec); err != nil {
		return err
	}
	s.metricInc(MetricSessionPersisted)
	return nil
}
