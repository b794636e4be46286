package web

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/okbaghel/devfolio/db"
	"github.com/okbaghel/devfolio/logging"
	"github.com/okbaghel/devfolio/model"
	"golang.org/x/time/rate"
)

// requestLogger logs one line per request through slog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.AppendCtx(logging.WithPackage(r.Context(), "web"),
			slog.String(logging.RequestID, middleware.GetReqID(r.Context())))

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r.WithContext(ctx))

		slog.DebugContext(ctx, "Handled request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start))
	})
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		// connect-src 'self' covers the same-origin terminal socket.
		w.Header().Set("Content-Security-Policy",
			"default-src 'self'; "+
				"script-src 'self'; "+
				"style-src 'self' 'unsafe-inline'; "+
				"img-src 'self' data: https:; "+
				"connect-src 'self'; "+
				"frame-ancestors 'none'")

		next.ServeHTTP(w, r)
	})
}

func disableCacheInDevMode(dev bool, next http.Handler) http.Handler {
	if !dev {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiter is a per-IP token bucket. Buckets idle for longer than idle
// are dropped by sweep.
type rateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*ipLimiter
	rps      rate.Limit
	burst    int
}

func newRateLimiter(rps float64, burst int) *rateLimiter {
	return &rateLimiter{
		limiters: make(map[string]*ipLimiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(ip string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.limiters[ip]
	if !ok {
		l = &ipLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.limiters[ip] = l
	}

	l.lastSeen = now

	return l.limiter.AllowN(now, 1)
}

func (rl *rateLimiter) sweep(now time.Time, idle time.Duration) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0

	for ip, l := range rl.limiters {
		if now.Sub(l.lastSeen) > idle {
			delete(rl.limiters, ip)
			removed++
		}
	}

	return removed
}

func (rl *rateLimiter) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			rl.sweep(now, interval)
		}
	}
}

func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r), time.Now()) {
			w.Header().Set("Retry-After", "1")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)

			return
		}

		next.ServeHTTP(w, r)
	})
}

// HashIP returns a salted digest of the client address so that raw addresses
// are never stored.
func HashIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(salt + ip))

	return hex.EncodeToString(sum[:])
}

// untracked paths are plumbing, not page views.
var untracked = []string{"/assets/", "/ws/", "/nav/", "/api/health", "/favicon.ico"}

func shouldTrack(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}

	if r.Header.Get("DNT") == "1" {
		return false
	}

	for _, prefix := range untracked {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return false
		}
	}

	return true
}

// trackVisits records page views. Failures are logged and never affect the response.
func trackVisits(storage db.Storage, salt string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if shouldTrack(r) {
				visit := &model.Visit{
					HashedIP:  HashIP(clientIP(r), salt),
					UserAgent: r.UserAgent(),
					Path:      r.URL.Path,
					Timestamp: time.Now(),
				}

				if err := storage.Store(visit); err != nil {
					slog.ErrorContext(logging.WithPackage(r.Context(), "web"), "Failed to record visit", "error", err)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
