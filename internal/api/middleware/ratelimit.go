package middleware

import (
	"context"
	"log/slog"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/phrazzld/kitchen-api/internal/api/shared"
	"github.com/phrazzld/kitchen-api/internal/config"
	"github.com/robfig/cron/v3"
)

// sweepSchedule is how often clients with expired windows are evicted.
const sweepSchedule = "@every 1m"

// client counts the requests of one address in its current window.
type client struct {
	start time.Time
	count int
}

// RateLimiter allows each client address a fixed number of requests per
// window. The window starts with the client's first request.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client

	requests int
	window   time.Duration
	now      func() time.Time

	cron   *cron.Cron
	logger *slog.Logger
}

// NewRateLimiter creates a RateLimiter from cfg. Call Start to begin
// evicting idle clients and Stop on shutdown.
func NewRateLimiter(cfg config.RateLimitConfig, log *slog.Logger) *RateLimiter {
	if log == nil {
		log = slog.Default()
	}
	window := time.Duration(cfg.WindowMinutes) * time.Minute
	return &RateLimiter{
		clients:  make(map[string]*client),
		requests: cfg.Requests,
		window:   window,
		now:      time.Now,
		cron:     cron.New(),
		logger:   log.With(slog.String("component", "rate_limiter")),
	}
}

// Start schedules the idle sweep.
func (l *RateLimiter) Start() error {
	if _, err := l.cron.AddFunc(sweepSchedule, l.sweep); err != nil {
		return err
	}
	l.cron.Start()
	return nil
}

// Stop halts the sweep. The returned context is done once a running sweep finishes.
func (l *RateLimiter) Stop() context.Context {
	return l.cron.Stop()
}

// Middleware rejects clients over their allowance with a 429 envelope.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		allowed, remaining, reset := l.allow(key)
		resetSeconds := strconv.Itoa(int(math.Ceil(reset.Seconds())))

		w.Header().Set("RateLimit-Limit", strconv.Itoa(l.requests))
		w.Header().Set("RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("RateLimit-Reset", resetSeconds)

		if !allowed {
			w.Header().Set("Retry-After", resetSeconds)
			shared.RespondWithErrorAndLog(w, r, http.StatusTooManyRequests,
				"Too many requests, please try again later.", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// allow counts a request for key. It reports whether the request fits the
// window, how many requests are left and how long until the window resets.
func (l *RateLimiter) allow(key string) (bool, int, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	c, ok := l.clients[key]
	if !ok || !now.Before(c.start.Add(l.window)) {
		c = &client{start: now}
		l.clients[key] = c
	}
	reset := c.start.Add(l.window).Sub(now)

	if c.count >= l.requests {
		return false, 0, reset
	}
	c.count++
	return true, l.requests - c.count, reset
}

// sweep drops clients whose window has ended; their next request starts a
// fresh window either way.
func (l *RateLimiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	evicted := 0
	for key, c := range l.clients {
		if !now.Before(c.start.Add(l.window)) {
			delete(l.clients, key)
			evicted++
		}
	}
	if evicted > 0 {
		l.logger.Debug("evicted expired rate limit clients",
			slog.Int("evicted", evicted),
			slog.Int("remaining", len(l.clients)))
	}
}

func (l *RateLimiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// clientKey uses the address set by chi's RealIP middleware, without port.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
