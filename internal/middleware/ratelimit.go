package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shamiohaque/ueldo-backend/pkg/clientip"
)

const (
	// AuthRateLimitWindow is the fixed window for the auth endpoints
	AuthRateLimitWindow = 120 * time.Second
	// AuthRateLimitMaxRequests caps signup/login/reset attempts per window
	AuthRateLimitMaxRequests = 15
	// AuthRateLimitKeyPrefix is the Redis key prefix for auth rate limiting
	AuthRateLimitKeyPrefix = "ratelimit:auth:"
)

// AuthRateLimit limits the credential-handling form endpoints per client IP
// using a Redis fixed window. Redis failures fail open: a rate limiter must
// not take down login.
func AuthRateLimit(rdb *redis.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := AuthRateLimitKeyPrefix + clientip.RealClientIP(r)

			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				rdb.Expire(ctx, key, AuthRateLimitWindow)
			}

			if count > AuthRateLimitMaxRequests {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(fmt.Sprintf(`{"success":false,"message":"Too many attempts. Please try again later.","retry_after":%d}`, int(AuthRateLimitWindow.Seconds()))))
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(AuthRateLimitMaxRequests))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(AuthRateLimitMaxRequests-int(count)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(AuthRateLimitWindow).Unix(), 10))

			next.ServeHTTP(w, r)
		})
	}
}
