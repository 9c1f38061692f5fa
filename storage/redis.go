package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable wraps transport-level Redis failures so callers can
// tell an unreachable store from an absent record.
var ErrRedisUnavailable = errors.New("redis unavailable")

const defaultRedisKey = "echoaway:session"

// RedisStore keeps the session record under a single Redis key. An optional
// TTL lets the record expire with the token's expected lifetime.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisStore builds a [RedisStore]. An empty key falls back to
// "echoaway:session"; ttl <= 0 means the record does not expire.
func NewRedisStore(client *redis.Client, key string, ttl time.Duration) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis client required")
	}
	if key == "" {
		key = defaultRedisKey
	}
	return &RedisStore{client: client, key: key, ttl: ttl}, nil
}

// Load implements [Store].
func (s *RedisStore) Load(ctx context.Context) (*Record, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if rec.Token == "" {
		return nil, ErrCorrupt
	}
	return &rec, nil
}

// Save implements [Store].
func (s *RedisStore) Save(ctx context.Context, rec *Record) error {
	if rec == nil || rec.Token == "" {
		return errors.New("refusing to save empty session record")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	ttl := s.ttl
	if ttl < 0 {
		ttl = 0
	}
	if err := s.client.Set(ctx, s.key, data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}

// Delete implements [Store]. Deleting an absent key succeeds.
func (s *RedisStore) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	return nil
}
