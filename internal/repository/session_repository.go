package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kidanta/kidanta-center/internal/models"
	appErrors "github.com/kidanta/kidanta-center/pkg/errors"
)

const sessionKeyPrefix = "session:"

// SessionRepository stores login sessions in Redis. Sessions expire via TTL
// and are revoked by logout.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository constructs a SessionRepository.
func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionRepository{client: client, ttl: ttl}
}

// Save stores the session under its token for the configured TTL.
func (r *SessionRepository) Save(ctx context.Context, session *models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := r.client.Set(ctx, sessionKeyPrefix+session.Token, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Find resolves a session token. Returns ErrSessionMissing for unknown or
// expired tokens.
func (r *SessionRepository) Find(ctx context.Context, token string) (*models.Session, error) {
	raw, err := r.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, appErrors.ErrSessionMissing
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	session.Token = token
	return &session, nil
}

// Delete removes the session.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
