package ratestore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/mariemajor/looking-beyond-cosmos/internal/domain/ratelimit"
)

// incrementWindowScript counts one hit and guarantees the key expires. A key left without a
// TTL (PTTL -1) gets the window reapplied so a counter can never outlive its window.
var incrementWindowScript = valkey.NewLuaScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 or redis.call("PTTL", KEYS[1]) < 0 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {count, redis.call("PTTL", KEYS[1])}
`)

// ValkeyStore keeps fixed-window counters in a Valkey-compatible server so limits hold
// across replicas.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs the store. Keys are namespaced by prefix.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// IncrementWindow implements ratelimit.WindowStore. The increment and the expiry run in one
// script, so they apply together or not at all.
func (s *ValkeyStore) IncrementWindow(ctx context.Context, key string, length time.Duration) (ratelimit.WindowState, error) {
	if key == "" || length <= 0 {
		return ratelimit.WindowState{}, errors.New("invalid rate window payload")
	}
	millis := strconv.FormatInt(length.Milliseconds(), 10)
	values, err := incrementWindowScript.Exec(ctx, s.client, []string{s.key(key)}, []string{millis}).ToArray()
	if err != nil {
		return ratelimit.WindowState{}, fmt.Errorf("increment rate key: %w", err)
	}
	if len(values) != 2 {
		return ratelimit.WindowState{}, fmt.Errorf("increment rate key: unexpected reply of %d values", len(values))
	}
	count, err := values[0].AsInt64()
	if err != nil {
		return ratelimit.WindowState{}, fmt.Errorf("read rate count: %w", err)
	}
	ttlMillis, err := values[1].AsInt64()
	if err != nil {
		return ratelimit.WindowState{}, fmt.Errorf("read rate key ttl: %w", err)
	}
	if ttlMillis < 0 {
		ttlMillis = 0
	}
	return ratelimit.WindowState{Count: count, TTL: time.Duration(ttlMillis) * time.Millisecond}, nil
}

func (s *ValkeyStore) key(key string) string {
	return s.prefix + ":" + key
}

var _ ratelimit.WindowStore = (*ValkeyStore)(nil)
