package session

import (
	"context"
	"geics-service/internal/app/models"
	"geics-service/internal/pkg/constvars"
	"geics-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) Save(ctx context.Context, sessionID string, session *models.Session, ttl time.Duration) error {
	jsonValue, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrSessionStoreSave(err)
	}

	err = s.client.Set(ctx, constvars.SessionKeyPrefix+sessionID, jsonValue, ttl).Err()
	if err != nil {
		return exceptions.ErrSessionStoreSave(err)
	}
	return nil
}

func (s *redisSessionStore) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := s.client.Get(ctx, constvars.SessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, exceptions.ErrSessionStoreFind(err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, exceptions.ErrSessionStoreFind(err)
	}
	// Redis TTL already bounds the lifetime; the expiry check covers clock
	// drift between Save and the key eviction.
	if session.Expired() {
		return nil, nil
	}
	return &session, nil
}

func (s *redisSessionStore) Destroy(ctx context.Context, sessionID string) error {
	err := s.client.Del(ctx, constvars.SessionKeyPrefix+sessionID).Err()
	if err != nil {
		return exceptions.ErrSessionStoreDestroy(err)
	}
	return nil
}
