package storage

import (
	"context"
	"errors"
	"time"

	"github.com/echoaway/echoaway-go/api"
)

// ErrNotFound is returned by [Store.Load] when no record has been saved, or
// after [Store.Delete].
var ErrNotFound = errors.New("no session record")

// ErrCorrupt is returned by [Store.Load] when a record exists but cannot be
// decoded. Callers treat it like an absent record and overwrite on next save.
var ErrCorrupt = errors.New("session record corrupt")

// Record is the single serialized session blob: the bearer token, the user it
// belongs to, and when it was written. Token and User travel together — a
// record is never saved with one and not the other.
type Record struct {
	Token   string    `json:"token"`
	User    *api.User `json:"user,omitempty"`
	SavedAt time.Time `json:"saved_at"`
}

// Store is the single-record persistence contract. Delete is idempotent:
// deleting an absent record succeeds.
type Store interface {
	Load(ctx context.Context) (*Record, error)
	Save(ctx context.Context, rec *Record) error
	Delete(ctx context.Context) error
}
