package guard

import (
	"context"
	"net/url"

	echoaway "github.com/echoaway/echoaway-go"
	"github.com/echoaway/echoaway-go/role"
)

// Decision is the outcome of a guard evaluation. Either Allow is true, or
// RedirectPath (plus optional RedirectQuery) names where to send the caller.
type Decision struct {
	Allow         bool
	RedirectPath  string
	RedirectQuery url.Values
}

// RedirectURL renders the redirect target as a path with query string.
func (d Decision) RedirectURL() string {
	if d.Allow || d.RedirectPath == "" {
		return ""
	}
	u := url.URL{Path: d.RedirectPath, RawQuery: d.RedirectQuery.Encode()}
	return u.String()
}

func allowed() Decision {
	return Decision{Allow: true}
}

// Default redirect targets, overridable per Evaluator.
const (
	DefaultLoginPath = "/login"
	DefaultHomePath  = "/"
)

// Evaluator binds the guard functions to one session. The zero paths fall
// back to /login and /.
type Evaluator struct {
	session   *echoaway.Session
	loginPath string
	homePath  string
}

// NewEvaluator builds an [Evaluator] over s.
func NewEvaluator(s *echoaway.Session) *Evaluator {
	return &Evaluator{
		session:   s,
		loginPath: DefaultLoginPath,
		homePath:  DefaultHomePath,
	}
}

// WithPaths overrides the login and home redirect targets.
func (e *Evaluator) WithPaths(loginPath, homePath string) *Evaluator {
	if loginPath != "" {
		e.loginPath = loginPath
	}
	if homePath != "" {
		e.homePath = homePath
	}
	return e
}

// loginRedirect carries the originally requested path so the login view can
// return the user where they were headed.
func (e *Evaluator) loginRedirect(target string) Decision {
	query := url.Values{}
	if target != "" {
		query.Set("redirect", target)
	}
	return Decision{RedirectPath: e.loginPath, RedirectQuery: query}
}

func (e *Evaluator) homeRedirect() Decision {
	return Decision{RedirectPath: e.homePath}
}

// RequireAuth gates routes that need a live session. An unauthenticated
// session redirects to login with the target path attached; an authenticated
// one is re-verified against the backend first and redirected only if the
// verification ends in a logout. An unreachable backend does not evict a
// restored session.
func (e *Evaluator) RequireAuth(ctx context.Context, target string) Decision {
	_, _ = e.session.InitAuth(ctx)

	if !e.session.IsAuthenticated() {
		return e.loginRedirect(target)
	}

	ok, _ := e.session.CheckAuth(ctx)
	if !ok && !e.session.IsAuthenticated() {
		return e.loginRedirect(target)
	}
	return allowed()
}

// RequireGuest gates routes meant for logged-out users (login, register).
// An authenticated session is sent home.
func (e *Evaluator) RequireGuest(ctx context.Context) Decision {
	_, _ = e.session.InitAuth(ctx)

	if e.session.IsAuthenticated() {
		return e.homeRedirect()
	}
	return allowed()
}

// RequireRole gates routes by role. Unauthenticated sessions go to login
// with the target attached; authenticated sessions outside the allowed set
// go home.
func (e *Evaluator) RequireRole(ctx context.Context, target string, roles ...role.Role) Decision {
	_, _ = e.session.InitAuth(ctx)

	if !e.session.IsAuthenticated() {
		return e.loginRedirect(target)
	}

	current := e.session.UserRole()
	for _, r := range roles {
		if current == r {
			return allowed()
		}
	}
	return e.homeRedirect()
}
