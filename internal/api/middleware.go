package api

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs one line per request. Server errors are logged at warn.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			level := slog.LevelInfo
			if ww.Status() >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}
			logger.Log(r.Context(), level, "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", chiMiddleware.GetReqID(r.Context()),
			)
		})
	}
}

// rateLimiter is a sliding one-window log of request times per client.
type rateLimiter struct {
	mu        sync.Mutex
	requests  map[string][]time.Time
	limit     int
	window    time.Duration
	now       func() time.Time
	lastPrune time.Time
}

func newRateLimiter(limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

// allow records a request for key. When the client is over the limit it
// returns false and how long until the oldest request leaves the window.
func (rl *rateLimiter) allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)
	if now.Sub(rl.lastPrune) > rl.window {
		rl.prune(cutoff)
		rl.lastPrune = now
	}

	valid := recent(rl.requests[key], cutoff)
	if len(valid) >= rl.limit {
		rl.requests[key] = valid
		return false, valid[0].Sub(cutoff)
	}
	rl.requests[key] = append(valid, now)
	return true, 0
}

// prune drops clients with no requests inside the window.
func (rl *rateLimiter) prune(cutoff time.Time) {
	for key, times := range rl.requests {
		if len(recent(times, cutoff)) == 0 {
			delete(rl.requests, key)
		}
	}
}

func recent(times []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(times) && !times[i].After(cutoff) {
		i++
	}
	return times[i:]
}

// clientKey is the client host without the port. Behind a proxy the router's
// RealIP middleware has already rewritten RemoteAddr.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimitMiddleware allows requestsPerMinute per client address. A
// non-positive limit disables limiting.
func RateLimitMiddleware(requestsPerMinute int) func(http.Handler) http.Handler {
	return rateLimit(newRateLimiter(requestsPerMinute, time.Minute))
}

func rateLimit(rl *rateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rl.limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, retryAfter := rl.allow(clientKey(r))
			if !ok {
				rateLimited.Inc()
				secs := int(retryAfter.Seconds()) + 1
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
