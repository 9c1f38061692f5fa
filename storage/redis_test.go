package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store, err := NewRedisStore(client, "", ttl)
	if err != nil {
		t.Fatalf("NewRedisStore failed: %v", err)
	}
	return store, mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newRedisStore(t, 0)
	ctx := context.Background()

	if _, err := store.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load on empty store = %v, want ErrNotFound", err)
	}

	if err := store.Save(ctx, sampleRecord()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Token != "T1" || got.User == nil || got.User.ID != 7 {
		t.Fatalf("record not preserved: %+v", got)
	}

	if err := store.Delete(ctx); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete(ctx); err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load after Delete = %v, want ErrNotFound", err)
	}
}

func TestRedisStoreDefaultKey(t *testing.T) {
	store, mr := newRedisStore(t, 0)

	if err := store.Save(context.Background(), sampleRecord()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !mr.Exists("echoaway:session") {
		t.Fatal("record not stored under the default key")
	}
}

func TestRedisStoreTTL(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	ctx := context.Background()

	if err := store.Save(ctx, sampleRecord()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if ttl := mr.TTL("echoaway:session"); ttl != time.Minute {
		t.Fatalf("key TTL = %v, want 1m", ttl)
	}

	mr.FastForward(2 * time.Minute)
	if _, err := store.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load after expiry = %v, want ErrNotFound", err)
	}
}

func TestRedisStoreCorruptPayload(t *testing.T) {
	store, mr := newRedisStore(t, 0)

	mr.Set("echoaway:session", "{not json")
	if _, err := store.Load(context.Background()); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("Load on garbage = %v, want ErrCorrupt", err)
	}
}

func TestRedisStoreUnavailable(t *testing.T) {
	store, mr := newRedisStore(t, 0)
	ctx := context.Background()

	if err := store.Save(ctx, sampleRecord()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	mr.Close()

	if _, err := store.Load(ctx); !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("Load on closed server = %v, want ErrRedisUnavailable", err)
	}
	if err := store.Save(ctx, sampleRecord()); !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("Save on closed server = %v, want ErrRedisUnavailable", err)
	}
	if err := store.Delete(ctx); !errors.Is(err, ErrRedisUnavailable) {
		t.Fatalf("Delete on closed server = %v, want ErrRedisUnavailable", err)
	}
}
