// Package counter keeps the cosmetic visitor count and the simulated
// "online now" figure shown on the home screen.
package counter

import (
	"context"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/ryan-rushton/toolbelt/internal/store"
)

const (
	// Seed is the visitor count used when none is stored.
	Seed = 12847
	// OnlineMin and OnlineMax bound the simulated online count.
	OnlineMin = 15
	OnlineMax = 44
	// OnlineRefresh is how often the online count changes.
	OnlineRefresh = 10 * time.Second
)

// Counter owns the visitor and online counts.
type Counter struct {
	kv store.KV

	mu     sync.Mutex
	rng    *rand.Rand
	visits int
	online int
}

// New returns a counter persisting through kv. rng nil means a randomly
// seeded source.
func New(kv store.KV, rng *rand.Rand) *Counter {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Counter{kv: kv, rng: rng}
}

// Visit reads the stored count (Seed when absent or unreadable), adds one,
// stores it and returns it. It also draws the first online count.
func (c *Counter) Visit(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := Seed
	if raw, ok, err := c.kv.Get(ctx, store.KeyVisitorCount); err != nil {
		return 0, err
	} else if ok {
		if parsed, err := strconv.Atoi(raw); err == nil {
			n = parsed
		}
	}
	n++
	if err := c.kv.Set(ctx, store.KeyVisitorCount, strconv.Itoa(n)); err != nil {
		return 0, err
	}
	c.visits = n
	c.online = c.drawOnline()
	return n, nil
}

func (c *Counter) drawOnline() int {
	return OnlineMin + c.rng.IntN(OnlineMax-OnlineMin+1)
}

// Visits is the count returned by the last Visit.
func (c *Counter) Visits() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visits
}

// Online is the current simulated online count, zero before Visit.
func (c *Counter) Online() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.online
}

// Refresh draws a new online count and returns it.
func (c *Counter) Refresh() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.online = c.drawOnline()
	return c.online
}
