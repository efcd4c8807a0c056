// Package session holds the server-side binding from an opaque token id to an
// authenticated identity and role. Bindings are created at login, destroyed at
// logout, and evicted by TTL.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/complaint-portal/internal/domain"
)

// ErrNotFound indicates the session id has no live binding.
var ErrNotFound = errors.New("session not found")

// Binding ties a session id to a user identity and its cached role.
type Binding struct {
	UserID int64       `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Store persists session bindings. Per-id operations are linearizable;
// operations on different ids never interfere.
type Store interface {
	Create(ctx context.Context, binding Binding) (string, error)
	Get(ctx context.Context, id string) (*Binding, error)
	Delete(ctx context.Context, id string) error
}

const keyPrefix = "session:"

// RedisStore keeps bindings in Redis with a TTL so abandoned sessions expire
// without a reaper.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore builds a Redis-backed store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &RedisStore{client: client, ttl: ttl}
}

// Create stores a new binding under a fresh session id.
func (s *RedisStore) Create(ctx context.Context, binding Binding) (string, error) {
	id := uuid.NewString()
	payload, err := json.Marshal(binding)
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, keyPrefix+id, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return id, nil
}

// Get returns the binding for id, or ErrNotFound when absent or expired.
func (s *RedisStore) Get(ctx context.Context, id string) (*Binding, error) {
	payload, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	var binding Binding
	if err := json.Unmarshal(payload, &binding); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &binding, nil
}

// Delete removes the binding. Deleting an absent id is not an error.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
