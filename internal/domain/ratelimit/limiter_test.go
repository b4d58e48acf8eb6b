package ratelimit

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu      sync.Mutex
	now     time.Time
	windows map[string]*fakeWindow
	err     error
}

type fakeWindow struct {
	count   int64
	expires time.Time
}

func newFakeStore(now time.Time) *fakeStore {
	return &fakeStore{now: now, windows: map[string]*fakeWindow{}}
}

func (f *fakeStore) IncrementWindow(_ context.Context, key string, window time.Duration) (WindowState, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return WindowState{}, f.err
	}
	w, ok := f.windows[key]
	if !ok || !f.now.Before(w.expires) {
		w = &fakeWindow{expires: f.now.Add(window)}
		f.windows[key] = w
	}
	w.count++
	return WindowState{Count: w.count, TTL: w.expires.Sub(f.now)}, nil
}

func (f *fakeStore) advance(d time.Duration) {
	f.mu.Lock()
	f.now = f.now.Add(d)
	f.mu.Unlock()
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLimiterDefaults(t *testing.T) {
	l := NewLimiter(newFakeStore(time.Now()), Config{}, quietLogger())
	require.Equal(t, DefaultMaxRequests, l.cfg.MaxRequests)
	require.Equal(t, time.Minute, l.cfg.Window)
}

func TestLimiterBlocksWithinWindow(t *testing.T) {
	store := newFakeStore(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	l := NewLimiter(store, Config{MaxRequests: 3, Window: time.Minute}, quietLogger())
	ctx := context.Background()

	for i := 2; i >= 0; i-- {
		d := l.Allow(ctx, "user-1")
		require.True(t, d.Allowed)
		require.Equal(t, i, d.Remaining)
	}
	store.advance(20 * time.Second)
	blocked := l.Allow(ctx, "user-1")
	require.False(t, blocked.Allowed)
	require.Equal(t, 40*time.Second, blocked.RetryAfter)

	require.True(t, l.Allow(ctx, "user-2").Allowed)

	store.advance(41 * time.Second)
	require.True(t, l.Allow(ctx, "user-1").Allowed)
}

func TestLimiterFailsOpen(t *testing.T) {
	store := newFakeStore(time.Now())
	store.err = errors.New("connection refused")
	l := NewLimiter(store, Config{MaxRequests: 1}, quietLogger())
	for i := 0; i < 5; i++ {
		require.True(t, l.Allow(context.Background(), "k").Allowed)
	}
}
