package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// FlashKeyPrefix is the Redis key prefix for one-shot flash messages
	FlashKeyPrefix = "flash:"
	// FlashCookie carries the flash id between the redirect and the next page
	FlashCookie = "flash_id"
	// FlashDuration: a flash the user never loads expires on its own
	FlashDuration = 5 * time.Minute
)

// Flash stores one-shot messages in Redis, carried across a redirect by a
// short-lived cookie. A message is consumed on first read.
type Flash struct {
	rdb *redis.Client
}

// NewFlash returns a flash service backed by the given Redis client.
func NewFlash(rdb *redis.Client) *Flash {
	return &Flash{rdb: rdb}
}

// Set stores msg and points the flash cookie at it.
func (f *Flash) Set(ctx context.Context, w http.ResponseWriter, msg string) {
	id := uuid.New().String()
	if err := f.rdb.Set(ctx, FlashKeyPrefix+id, msg, FlashDuration).Err(); err != nil {
		// A lost flash message only costs the user a hint; don't fail the request.
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(FlashDuration.Seconds()),
		HttpOnly: true,
	})
}

// Take returns the pending message, if any, and clears it.
func (f *Flash) Take(ctx context.Context, w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(FlashCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}
	key := FlashKeyPrefix + cookie.Value
	msg, err := f.rdb.Get(ctx, key).Result()
	if err != nil {
		msg = ""
	}
	f.rdb.Del(ctx, key)
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return msg
}
