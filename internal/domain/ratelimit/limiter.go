package ratelimit

import (
	"context"
	"log/slog"
	"time"
)

const (
	DefaultMaxRequests = 10
	DefaultWindow      = time.Minute
)

// WindowState is the counter for the current window of one key.
type WindowState struct {
	Count int64
	TTL   time.Duration
}

// WindowStore keeps fixed-window counters. IncrementWindow must create the window with the
// given length on first use and return the post-increment count.
type WindowStore interface {
	IncrementWindow(ctx context.Context, key string, window time.Duration) (WindowState, error)
}

// Config tunes the limiter.
type Config struct {
	MaxRequests int
	Window      time.Duration
}

// Decision is the limiter verdict for one call.
type Decision struct {
	Allowed    bool          `json:"allowed"`
	Remaining  int           `json:"remaining"`
	RetryAfter time.Duration `json:"retryAfter,omitempty"`
}

// Limiter enforces a fixed number of calls per window per key.
type Limiter struct {
	store  WindowStore
	cfg    Config
	logger *slog.Logger
}

// NewLimiter fills zero config values with the defaults.
func NewLimiter(store WindowStore, cfg Config, logger *slog.Logger) *Limiter {
	if cfg.MaxRequests <= 0 {
		cfg.MaxRequests = DefaultMaxRequests
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	return &Limiter{store: store, cfg: cfg, logger: logger.With("component", "ratelimit.limiter")}
}

// Allow counts one call for key. Store failures let the call through.
func (l *Limiter) Allow(ctx context.Context, key string) Decision {
	state, err := l.store.IncrementWindow(ctx, key, l.cfg.Window)
	if err != nil {
		l.logger.Warn("rate limit store unavailable, allowing request", "key", key, "error", err)
		return Decision{Allowed: true, Remaining: l.cfg.MaxRequests}
	}
	limit := int64(l.cfg.MaxRequests)
	if state.Count > limit {
		retry := state.TTL
		if retry <= 0 {
			retry = l.cfg.Window
		}
		return Decision{Allowed: false, Remaining: 0, RetryAfter: retry}
	}
	return Decision{Allowed: true, Remaining: int(limit - state.Count)}
}
