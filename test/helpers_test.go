package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	echoaway "github.com/echoaway/echoaway-go"
	"github.com/echoaway/echoaway-go/api"
	"github.com/echoaway/echoaway-go/storage"
)

// backend is a full in-memory rendition of the EchoAway REST API: auth,
// profile, and accommodation CRUD, with bearer-token enforcement.
type backend struct {
	mu             sync.Mutex
	users          map[string]api.User
	passwords      map[string]string
	tokens         map[string]string
	accommodations map[int]api.Accommodation
	nextID         int
	nextToken      int
}

func newBackend() *backend {
	return &backend{
		users:          map[string]api.User{},
		passwords:      map[string]string{},
		tokens:         map[string]string{},
		accommodations: map[int]api.Accommodation{},
		nextID:         1,
	}
}

func (b *backend) addUser(email, password, roleName string) api.User {
	b.mu.Lock()
	defer b.mu.Unlock()
	user := api.User{ID: b.nextID, Email: email, Name: "User " + email, Role: roleName}
	b.nextID++
	b.users[email] = user
	b.passwords[email] = password
	return user
}

func (b *backend) authed(r *http.Request) (api.User, bool) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	b.mu.Lock()
	defer b.mu.Unlock()
	email, ok := b.tokens[token]
	if !ok {
		return api.User{}, false
	}
	return b.users[email], true
}

func (b *backend) handler() http.Handler {
	r := chi.NewRouter()

	r.Post("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		var body api.LoginRequest
		_ = json.NewDecoder(req.Body).Decode(&body)

		b.mu.Lock()
		user, ok := b.users[body.Email]
		pass := b.passwords[body.Email]
		b.mu.Unlock()
		if !ok || pass != body.Password {
			jsonError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		b.mu.Lock()
		b.nextToken++
		token := "tok-" + strconv.Itoa(b.nextToken)
		b.tokens[token] = body.Email
		b.mu.Unlock()
		_ = json.NewEncoder(w).Encode(api.AuthResponse{User: user, Token: token})
	})

	r.Get("/api/auth/profile", func(w http.ResponseWriter, req *http.Request) {
		user, ok := b.authed(req)
		if !ok {
			jsonError(w, http.StatusUnauthorized, "Token expired")
			return
		}
		_ = json.NewEncoder(w).Encode(api.AuthResponse{User: user})
	})

	r.Get("/api/accommodations", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		list := make([]api.Accommodation, 0, len(b.accommodations))
		for _, a := range b.accommodations {
			list = append(list, a)
		}
		b.mu.Unlock()
		_ = json.NewEncoder(w).Encode(list)
	})

	r.Post("/api/accommodations", func(w http.ResponseWriter, req *http.Request) {
		user, ok := b.authed(req)
		if !ok {
			jsonError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		var draft api.AccommodationDraft
		_ = json.NewDecoder(req.Body).Decode(&draft)

		b.mu.Lock()
		id := b.nextID
		b.nextID++
		created := api.Accommodation{
			ID:               id,
			HostID:           user.ID,
			Title:            draft.Title,
			Address:          draft.Address,
			PostalCode:       draft.PostalCode,
			City:             draft.City,
			Type:             draft.Type,
			NumberOfBeds:     draft.NumberOfBeds,
			Connectivity:     draft.Connectivity,
			PriceMinPerNight: draft.PriceMinPerNight,
			PriceMaxPerNight: draft.PriceMaxPerNight,
			Description:      draft.Description,
		}
		b.accommodations[id] = created
		b.mu.Unlock()

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(created)
	})

	r.Delete("/api/accommodations/{id}", func(w http.ResponseWriter, req *http.Request) {
		if _, ok := b.authed(req); !ok {
			jsonError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		id, _ := strconv.Atoi(chi.URLParam(req, "id"))

		b.mu.Lock()
		_, exists := b.accommodations[id]
		delete(b.accommodations, id)
		b.mu.Unlock()
		if !exists {
			jsonError(w, http.StatusNotFound, "not found")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}

func jsonError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}

// env bundles everything an end-to-end scenario touches.
type env struct {
	backend *backend
	server  *httptest.Server
	store   storage.Store
}

func newEnv(t *testing.T, store storage.Store) *env {
	t.Helper()

	b := newBackend()
	server := httptest.NewServer(b.handler())
	t.Cleanup(server.Close)

	if store == nil {
		store = storage.NewMemoryStore()
	}
	return &env{backend: b, server: server, store: store}
}

// newSession builds a fresh session over the environment, as a new process
// start would.
func (e *env) newSession(t *testing.T) *echoaway.Session {
	t.Helper()

	s, err := echoaway.New().
		WithBaseURL(e.server.URL).
		WithStorage(e.store).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func newRedisStore(t *testing.T) storage.Store {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store, err := storage.NewRedisStore(client, "", 0)
	if err != nil {
		t.Fatalf("NewRedisStore failed: %v", err)
	}
	return store
}
