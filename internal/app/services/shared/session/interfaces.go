package session

import (
	"context"
	"geics-service/internal/app/models"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore keeps the server-side session state keyed by the opaque
// session id carried in the cookie. Find returns (nil, nil) when the id is
// unknown or the session has expired.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, session *models.Session, ttl time.Duration) error
	Find(ctx context.Context, sessionID string) (*models.Session, error)
	Destroy(ctx context.Context, sessionID string) error
}

// NewSessionStore selects the backend: Redis when the startup probe produced
// a client, in-process otherwise.
func NewSessionStore(client *redis.Client) SessionStore {
	if client == nil {
		return NewMemorySessionStore()
	}
	return NewRedisSessionStore(client)
}
