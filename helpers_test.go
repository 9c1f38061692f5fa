package echoaway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/echoaway/echoaway-go/api"
	"github.com/echoaway/echoaway-go/storage"
)

// fakeBackend emulates the EchoAway REST API closely enough to exercise the
// session lifecycle: login/register mint tokens, profile honors them until
// revoked.
type fakeBackend struct {
	mu           sync.Mutex
	users        map[string]api.User // email -> account
	passwords    map[string]string   // email -> password
	tokens       map[string]string   // token -> email
	nextID       int
	nextToken    int
	profileCalls int
	rotateTo     string // when set, profile answers with this fresh token

	server *httptest.Server
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		users:     map[string]api.User{},
		passwords: map[string]string{},
		tokens:    map[string]string{},
		nextID:    1,
	}
}

// addUser seeds an account and returns it.
func (b *fakeBackend) addUser(email, password, roleName string) api.User {
	b.mu.Lock()
	defer b.mu.Unlock()
	user := api.User{
		ID:        b.nextID,
		Email:     email,
		Firstname: "Test",
		Name:      "User " + email,
		Role:      roleName,
	}
	b.nextID++
	b.users[email] = user
	b.passwords[email] = password
	return user
}

// mintToken issues a token for an existing account, as login would.
func (b *fakeBackend) mintToken(email string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextToken++
	token := fmt.Sprintf("tok-%d", b.nextToken)
	b.tokens[token] = email
	return token
}

// revokeAll invalidates every outstanding token.
func (b *fakeBackend) revokeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens = map[string]string{}
}

func (b *fakeBackend) profileCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.profileCalls
}

func (b *fakeBackend) handler() http.Handler {
	r := chi.NewRouter()
	r.Post("/api/auth/login", b.handleLogin)
	r.Post("/api/auth/register", b.handleRegister)
	r.Get("/api/auth/profile", b.handleProfile)
	return r
}

func (b *fakeBackend) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "malformed body")
		return
	}

	b.mu.Lock()
	user, ok := b.users[req.Email]
	pass := b.passwords[req.Email]
	b.mu.Unlock()
	if !ok || pass != req.Password {
		writeJSONError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token := b.mintToken(req.Email)
	_ = json.NewEncoder(w).Encode(api.AuthResponse{User: user, Token: token})
}

func (b *fakeBackend) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "malformed body")
		return
	}

	b.mu.Lock()
	_, exists := b.users[req.Email]
	b.mu.Unlock()
	if exists {
		writeJSONError(w, http.StatusConflict, "Email already used")
		return
	}

	roleName := req.Role
	if roleName == "" {
		roleName = "guest"
	}
	user := b.addUser(req.Email, req.Password, roleName)
	user.Firstname = req.Firstname
	user.Name = req.Name
	b.mu.Lock()
	b.users[req.Email] = user
	b.mu.Unlock()

	token := b.mintToken(req.Email)
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(api.AuthResponse{User: user, Token: token})
}

func (b *fakeBackend) handleProfile(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.profileCalls++
	b.mu.Unlock()

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	b.mu.Lock()
	email, ok := b.tokens[token]
	user := b.users[email]
	b.mu.Unlock()
	if !ok {
		writeJSONError(w, http.StatusUnauthorized, "Token expired")
		return
	}

	resp := api.AuthResponse{User: user}
	b.mu.Lock()
	if b.rotateTo != "" {
		resp.Token = b.rotateTo
		b.tokens[b.rotateTo] = email
	}
	b.mu.Unlock()
	_ = json.NewEncoder(w).Encode(resp)
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// sessionOption tweaks the builder used by newTestSession.
type sessionOption func(*Builder)

func withStore(store storage.Store) sessionOption {
	return func(b *Builder) { b.WithStorage(store) }
}

func withConfig(mutate func(*Config)) sessionOption {
	return func(b *Builder) {
		cfg := b.config
		mutate(&cfg)
		b.WithConfig(cfg)
	}
}

// newTestSession builds a session against a fake backend. The backend and the
// backing store are returned so tests can manipulate them directly.
func newTestSession(t *testing.T, opts ...sessionOption) (*Session, *fakeBackend, *storage.MemoryStore) {
	t.Helper()

	backend := newFakeBackend()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)
	backend.server = server

	store := storage.NewMemoryStore()
	builder := New().
		WithBaseURL(server.URL).
		WithStorage(store)
	for _, opt := range opts {
		opt(builder)
	}

	session, err := builder.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(session.Close)

	return session, backend, store
}

// loginAs is the common arrange step: seed an account and log the session in.
func loginAs(t *testing.T, s *Session, backend *fakeBackend, email, roleName string) *AuthResponse {
	t.Helper()

	backend.addUser(email, "secret", roleName)
	resp, err := s.Login(context.Background(), email, "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	return resp
}
