// File: services/conversation/store.go
package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"roomdesk/models"

	"github.com/go-redis/redis/v8"
)

// ErrSessionNotFound is returned when a session is absent or expired.
var ErrSessionNotFound = errors.New("chat session not found or expired")

const (
	sessionKeyPrefix = "chat:sess:"
	ownerKeyPrefix   = "chat:owner:"
)

// Store persists conversation sessions between turns.
type Store interface {
	Get(ctx context.Context, sessionID string) (*models.ChatSession, error)
	Save(ctx context.Context, session *models.ChatSession) error
	Delete(ctx context.Context, sessionID string) error
	// DropOwner removes every live session belonging to an owner.
	DropOwner(ctx context.Context, ownerID string) error
}

// RedisSessionStore keeps sessions as JSON documents under a TTL, with a
// per-owner index so sign-out can drop all of an owner's sessions.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore returns a Store backed by the given Redis client.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.ChatSession, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	var session models.ChatSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.ChatSession) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+session.SessionID, b, s.ttl).Err(); err != nil {
		return err
	}
	if session.OwnerID != "" {
		ownerKey := ownerKeyPrefix + session.OwnerID
		if err := s.client.SAdd(ctx, ownerKey, session.SessionID).Err(); err != nil {
			return err
		}
		return s.client.Expire(ctx, ownerKey, s.ttl).Err()
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}

func (s *RedisSessionStore) DropOwner(ctx context.Context, ownerID string) error {
	ownerKey := ownerKeyPrefix + ownerID
	sessionIDs, err := s.client.SMembers(ctx, ownerKey).Result()
	if err != nil && err != redis.Nil {
		return err
	}
	for _, id := range sessionIDs {
		if err := s.client.Del(ctx, sessionKeyPrefix+id).Err(); err != nil {
			return err
		}
	}
	return s.client.Del(ctx, ownerKey).Err()
}
