package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// SessionDuration is 7 days
	SessionDuration = 7 * 24 * time.Hour
	// ResetDuration bounds how long a pending password reset stays valid
	ResetDuration = 15 * time.Minute
	// SessionKeyPrefix is the Redis key prefix for login sessions
	SessionKeyPrefix = "session:"
	// ResetKeyPrefix is the Redis key prefix for pending-reset identities
	ResetKeyPrefix = "reset:"
)

// SessionManager stores session identities in Redis: token -> phone for
// logged-in users, and a separate token namespace for pending password
// resets. A pending-reset identity is not a login session; it only entitles
// its holder to submit a new password once.
type SessionManager struct {
	rdb *redis.Client
}

// NewSessionManager returns a manager backed by the given Redis client.
func NewSessionManager(rdb *redis.Client) *SessionManager {
	return &SessionManager{rdb: rdb}
}

// Create mints a session token bound to phone, valid for SessionDuration.
func (m *SessionManager) Create(ctx context.Context, phone string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	if err := m.rdb.Set(ctx, SessionKeyPrefix+token, phone, SessionDuration).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Phone resolves a session token to the phone it is bound to. The second
// return value is false for empty, unknown, or expired tokens.
func (m *SessionManager) Phone(ctx context.Context, token string) (string, bool) {
	if token == "" {
		return "", false
	}
	phone, err := m.rdb.Get(ctx, SessionKeyPrefix+token).Result()
	if err != nil {
		return "", false
	}
	return phone, true
}

// Destroy removes a session.
func (m *SessionManager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.rdb.Del(ctx, SessionKeyPrefix+token).Err()
}

// CreateReset mints a pending-reset token bound to phone, valid for
// ResetDuration.
func (m *SessionManager) CreateReset(ctx context.Context, phone string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	if err := m.rdb.Set(ctx, ResetKeyPrefix+token, phone, ResetDuration).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// ResetPhone resolves a pending-reset token to its phone without consuming
// it (the reset form needs to render before the reset is submitted).
func (m *SessionManager) ResetPhone(ctx context.Context, token string) (string, bool) {
	if token == "" {
		return "", false
	}
	phone, err := m.rdb.Get(ctx, ResetKeyPrefix+token).Result()
	if err != nil {
		return "", false
	}
	return phone, true
}

// ClearReset removes a pending-reset identity once the reset completes.
func (m *SessionManager) ClearReset(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.rdb.Del(ctx, ResetKeyPrefix+token).Err()
}

func newToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(tokenBytes), nil
}
