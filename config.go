package echoaway

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/echoaway/echoaway-go/api"
)

// Config defines session-kit behavior. Zero values are completed by
// defaultConfig; pass a modified copy to [Builder.WithConfig].
type Config struct {
	API     APIConfig     `yaml:"api"`
	Session SessionConfig `yaml:"session"`
	Roles   RoleConfig    `yaml:"roles"`
	Audit   AuditConfig   `yaml:"audit"`
	Metrics MetricsConfig `yaml:"metrics"`
}

/*
====================================
API CONFIG
====================================
*/

// APIConfig configures the REST adapter.
type APIConfig struct {
	// BaseURL of the backend; non-empty must be http(s). Empty means bare
	// /api-prefixed paths for a development-time reverse proxy and requires
	// a custom HTTP client that supplies the host; see [api.Config].
	BaseURL string `yaml:"base_url"`
	// Timeout per request. Defaults to 15s.
	Timeout time.Duration `yaml:"timeout"`
	// UserAgent for outbound requests.
	UserAgent string `yaml:"user_agent"`
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig configures session verification behavior.
type SessionConfig struct {
	// RefreshWindow makes RefreshToken skip the network round-trip while the
	// token's (unverified) expiry hint is further away than the window.
	// Zero disables the fast path and every call verifies.
	RefreshWindow time.Duration `yaml:"refresh_window"`
	// LogoutOnUnreachable restores the legacy behavior of discarding the
	// session when the backend cannot be reached during verification. The
	// default keeps the stored session and reports it unverified.
	LogoutOnUnreachable bool `yaml:"logout_on_unreachable"`
}

/*
====================================
ROLE CONFIG
====================================
*/

// RoleConfig configures the role vocabulary accepted at the decode boundary.
type RoleConfig struct {
	// AllowList restricts accepted roles. Empty admits the full canonical
	// vocabulary (visitor, guest, host, admin).
	AllowList []string `yaml:"allow_list"`
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig controls async session-event dispatch.
type AuditConfig struct {
	Enabled    bool `yaml:"enabled"`
	BufferSize int  `yaml:"buffer_size"`
	DropIfFull bool `yaml:"drop_if_full"`
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig controls the in-process counters.
type MetricsConfig struct {
	Enabled                 bool `yaml:"enabled"`
	EnableLatencyHistograms bool `yaml:"enable_latency_histograms"`
}

func defaultConfig() Config {
	return Config{
		API: APIConfig{
			Timeout: 15 * time.Second,
		},
		Session: SessionConfig{
			RefreshWindow: 0,
		},
		Audit: AuditConfig{
			Enabled:    true,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.Roles.AllowList = append([]string(nil), cfg.Roles.AllowList...)
	return out
}

// Validate rejects configurations the builder cannot honor.
func (c *Config) Validate() error {
	apiCfg := api.Config{BaseURL: c.API.BaseURL}
	if err := apiCfg.Validate(); err != nil {
		return err
	}
	if c.API.Timeout < 0 {
		return errors.New("api timeout must not be negative")
	}
	if c.Session.RefreshWindow < 0 {
		return errors.New("refresh window must not be negative")
	}
	if c.Audit.Enabled && c.Audit.BufferSize < 0 {
		return errors.New("audit buffer size must not be negative")
	}
	return nil
}

// FromYAML decodes a [Config] from YAML, starting from defaults so omitted
// sections keep their default values.
func FromYAML(data []byte) (Config, error) {
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML config file and applies environment overrides.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := FromYAML(data)
	if err != nil {
		return Config{}, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

// ConfigFromEnv returns defaults with environment overrides applied. The
// recognized variables mirror the front end's VITE_API_URL convention.
func ConfigFromEnv() Config {
	cfg := defaultConfig()
	applyEnv(&cfg)
	return cfg
}

func applyEnv(cfg *Config) {
	if url := os.Getenv("ECHOAWAY_API_URL"); url != "" {
		cfg.API.BaseURL = url
	}
	if ua := os.Getenv("ECHOAWAY_USER_AGENT"); ua != "" {
		cfg.API.UserAgent = ua
	}
}
