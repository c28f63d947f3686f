package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisStore is a Redis-backed session store. Sessions are stored as one
// JSON blob per key with a TTL, so expiry is handled by Redis itself.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRedisStore connects to Redis and returns a session store. The
// connection is verified with a ping before the store is handed out.
func NewRedisStore(ctx context.Context, addr, password string, ttl time.Duration, logger zerolog.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return &RedisStore{
		client: client,
		prefix: "session:",
		ttl:    ttl,
		logger: logger.With().Str("component", "redis-session-store").Logger(),
	}, nil
}

func (r *RedisStore) key(sessionID string) string {
	return r.prefix + sessionID
}

// Get returns the session data, or (nil, nil) when the key is absent.
func (r *RedisStore) Get(ctx context.Context, sessionID string) (*Data, error) {
	val, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var d Data
	if err := json.Unmarshal([]byte(val), &d); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if d.Cart == nil {
		d.Cart = make(map[int]int)
	}

	return &d, nil
}

// Save stores the session data and resets its TTL.
func (r *RedisStore) Save(ctx context.Context, sessionID string, data *Data) error {
	blob, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	return r.client.Set(ctx, r.key(sessionID), blob, r.ttl).Err()
}

// Delete removes the session data.
func (r *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.key(sessionID)).Err()
}

// Close releases the underlying Redis connection.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
