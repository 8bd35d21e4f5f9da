package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"jobtrack/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "session:"
	refreshKeyPrefix = "refresh:"
)

// SessionStore is the one holder of session identity. Components read the
// identity through it (via the auth middleware) instead of re-deriving it,
// so every request sees the same snapshot.
type SessionStore interface {
	Save(ctx context.Context, sid string, identity models.SessionIdentity, ttl time.Duration) error
	Get(ctx context.Context, sid string) (*models.SessionIdentity, error)
	Delete(ctx context.Context, sid string) error
	// SaveRefresh binds a refresh token to a session id.
	SaveRefresh(ctx context.Context, token, sid string, ttl time.Duration) error
	// TakeRefresh resolves and invalidates a refresh token in one step, so a
	// token can be spent exactly once.
	TakeRefresh(ctx context.Context, token string) (string, error)
}

// RedisSessionStore keeps session blobs in Redis under session:<sid>, the
// well-known key the rest of the system reads identity from.
type RedisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore wraps the shared Redis client.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

var _ SessionStore = (*RedisSessionStore)(nil)

func (s *RedisSessionStore) Save(ctx context.Context, sid string, identity models.SessionIdentity, ttl time.Duration) error {
	blob, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal session identity: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+sid, blob, ttl).Err(); err != nil {
		return fmt.Errorf("save session %s: %w", sid, err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sid string) (*models.SessionIdentity, error) {
	blob, err := s.client.Get(ctx, sessionKeyPrefix+sid).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("load session %s: %w", sid, err)
	}
	var identity models.SessionIdentity
	if err := json.Unmarshal(blob, &identity); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sid, err)
	}
	return &identity, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sid string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+sid).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", sid, err)
	}
	return nil
}

func (s *RedisSessionStore) SaveRefresh(ctx context.Context, token, sid string, ttl time.Duration) error {
	if err := s.client.Set(ctx, refreshKeyPrefix+token, sid, ttl).Err(); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) TakeRefresh(ctx context.Context, token string) (string, error) {
	sid, err := s.client.GetDel(ctx, refreshKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSessionExpired
		}
		return "", fmt.Errorf("resolve refresh token: %w", err)
	}
	return sid, nil
}
