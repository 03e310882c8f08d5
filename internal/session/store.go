// Package session tracks the one piece of state a recommendation
// session keeps: the ID of the movie shown last, so the next request
// can try not to repeat it.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store reads and writes the last shown movie per session. LastShown
// returns an empty ID when the session has no previous pick.
type Store interface {
	LastShown(ctx context.Context, sessionID string) (string, error)
	SetLastShown(ctx context.Context, sessionID, imdbID string) error
}

// ---- Redis-backed store ----

// RedisStore keeps last-shown IDs in Redis, one key per session, with a
// TTL so idle sessions expire on their own.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func sessionKey(sessionID string) string {
	return "session:lastshown:" + sessionID
}

func (s *RedisStore) LastShown(ctx context.Context, sessionID string) (string, error) {
	val, err := s.rdb.Get(ctx, sessionKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session state: %w", err)
	}
	return val, nil
}

func (s *RedisStore) SetLastShown(ctx context.Context, sessionID, imdbID string) error {
	if err := s.rdb.Set(ctx, sessionKey(sessionID), imdbID, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write session state: %w", err)
	}
	return nil
}

// ---- In-memory store ----

// MemoryStore is the fallback when Redis is not configured. Safe for
// concurrent sessions; entries live for the process lifetime.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string]string
}

// NewMemoryStore creates an in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]string)}
}

func (s *MemoryStore) LastShown(_ context.Context, sessionID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m[sessionID], nil
}

func (s *MemoryStore) SetLastShown(_ context.Context, sessionID, imdbID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[sessionID] = imdbID
	return nil
}
