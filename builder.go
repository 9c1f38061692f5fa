package echoaway

import (
	"errors"
	"net/http"

	"github.com/echoaway/echoaway-go/api"
	internalaudit "github.com/echoaway/echoaway-go/internal/audit"
	"github.com/echoaway/echoaway-go/role"
	"github.com/echoaway/echoaway-go/storage"
)

// Builder assembles a [Session]. Construction is allocation-only: no I/O
// happens until [Session.InitAuth].
type Builder struct {
	config     Config
	httpClient *http.Client
	store      storage.Store
	auditSink  AuditSink

	built bool
}

// New returns a [Builder] seeded with defaults.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the whole configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithBaseURL overrides just the backend base URL.
func (b *Builder) WithBaseURL(url string) *Builder {
	b.config.API.BaseURL = url
	return b
}

// WithHTTPClient supplies a custom HTTP client for the adapter; the
// configured timeout is ignored when set.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithStorage supplies the durable session record store. When omitted, Build
// uses a [storage.FileStore] at the platform's per-user config location.
func (b *Builder) WithStorage(store storage.Store) *Builder {
	b.store = store
	return b
}

// WithAuditSink supplies the consumer for session-lifecycle events.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled toggles the in-process counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration and wires the session, adapter, role
// registry, storage, audit dispatcher, and metrics together.
func (b *Builder) Build() (*Session, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	roles, err := role.NewRegistry(cfg.Roles.AllowList)
	if err != nil {
		return nil, err
	}

	store := b.store
	if store == nil {
		path, err := storage.DefaultSessionPath()
		if err != nil {
			return nil, err
		}
		store, err = storage.NewFileStore(path)
		if err != nil {
			return nil, err
		}
	}

	s := &Session{
		config:  cfg,
		store:   store,
		roles:   roles,
		metrics: NewMetrics(cfg.Metrics),
	}
	s.audit = internalaudit.NewDispatcher(internalaudit.Config{
		Enabled:    cfg.Audit.Enabled,
		BufferSize: cfg.Audit.BufferSize,
		DropIfFull: cfg.Audit.DropIfFull,
	}, b.auditSink)

	// The adapter sources bearer tokens from the session itself — one
	// policy, decided here, never from durable storage.
	client, err := api.New(api.Config{
		BaseURL:    cfg.API.BaseURL,
		Timeout:    cfg.API.Timeout,
		UserAgent:  cfg.API.UserAgent,
		HTTPClient: b.httpClient,
	}, s)
	if err != nil {
		return nil, err
	}
	s.client = client

	b.built = true

	return s, nil
}
