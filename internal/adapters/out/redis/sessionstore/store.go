// Package sessionstore keeps server-side sessions in redis. Each session is
// one key holding the JSON-encoded identity, expiring with the cookie TTL.
package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fastdelivery/internal/core/domain/model/kernel"
	"fastdelivery/internal/core/ports"
	"fastdelivery/internal/pkg/errs"
)

const sessionKeyPrefix = "session:"

// RedisSessionStore implements ports.SessionStore on a redis client.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore creates a session store. Sessions expire after ttl;
// redis handles the expiry, so there is no cleanup job.
func NewRedisSessionStore(addr, password string, db int, ttl time.Duration) *RedisSessionStore {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisSessionStore{client: client, ttl: ttl}
}

// Ping verifies the redis connection at startup.
func (s *RedisSessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the redis connection.
func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}

// Create stores the identity under a fresh opaque token and returns the token.
func (s *RedisSessionStore) Create(ctx context.Context, identity ports.Identity) (string, error) {
	data, err := json.Marshal(identity)
	if err != nil {
		return "", err
	}

	token := kernel.NewUUID().String()
	if err = s.client.Set(ctx, sessionKey(token), data, s.ttl).Err(); err != nil {
		return "", err
	}

	return token, nil
}

// Get resolves a token back to its identity. Expired and unknown tokens are
// indistinguishable; both return errs.ObjectNotFoundError.
func (s *RedisSessionStore) Get(ctx context.Context, token string) (ports.Identity, error) {
	data, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.Identity{}, errs.NewObjectNotFoundError("session", token)
	}
	if err != nil {
		return ports.Identity{}, err
	}

	var identity ports.Identity
	if err = json.Unmarshal(data, &identity); err != nil {
		return ports.Identity{}, err
	}

	return identity, nil
}

// Delete destroys the session. Deleting an unknown token is not an error.
func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}

func sessionKey(token string) string {
	return fmt.Sprintf("%s%s", sessionKeyPrefix, token)
}
