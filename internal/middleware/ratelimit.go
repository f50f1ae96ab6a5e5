package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

type window struct {
	mu       sync.Mutex
	requests []time.Time
}

// RateLimiter allows max requests per client within a sliding window.
type RateLimiter struct {
	max    int
	window time.Duration
	now    func() time.Time
	store  sync.Map
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{max: max, window: window, now: time.Now}
}

// allow records a request and returns how long the client must wait when
// the limit is reached.
func (rl *RateLimiter) allow(client string) (bool, time.Duration) {
	now := rl.now()
	cutoff := now.Add(-rl.window)

	v, _ := rl.store.LoadOrStore(client, &window{})
	w := v.(*window)

	w.mu.Lock()
	defer w.mu.Unlock()

	kept := w.requests[:0]
	for _, t := range w.requests {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	w.requests = kept

	if len(w.requests) >= rl.max {
		return false, w.requests[0].Add(rl.window).Sub(now)
	}
	w.requests = append(w.requests, now)
	return true, 0
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok, wait := rl.allow(clientIP(r))
		if !ok {
			secs := int(wait.Seconds())
			if secs < 1 {
				secs = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(secs))
			deny(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP prefers the first X-Forwarded-For hop, then the connection address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
