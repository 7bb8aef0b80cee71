// Package quota bounds calls to the quota-limited video provider with a
// shared, day-scoped counter. The counter store is the only state that
// outlives a request; any failure talking to it degrades to "allow" because
// quota protection is a cost control, not a correctness requirement.
package quota

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// CounterStore is the narrow contract the governor needs from the counter
// backend.
type CounterStore interface {
	Get(ctx context.Context, key string) (int64, error)
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

const keyPrefix = "video:quota:"

// Governor admits or denies video-provider calls against a daily ceiling.
type Governor struct {
	store CounterStore
	limit int64
	log   *zap.SugaredLogger
	now   func() time.Time
}

func NewGovernor(store CounterStore, dailyLimit int64, log *zap.SugaredLogger) *Governor {
	return &Governor{store: store, limit: dailyLimit, log: log, now: time.Now}
}

func (g *Governor) key() string {
	return keyPrefix + g.now().UTC().Format("2006-01-02")
}

// Admit reports whether one more video-provider call may run today. On admit
// it increments the counter and refreshes a 24h TTL so the counter
// self-resets; increment-then-expire is best effort, worst case is mild
// over-admission.
func (g *Governor) Admit(ctx context.Context) bool {
	if g.store == nil {
		return true
	}
	key := g.key()

	used, err := g.store.Get(ctx, key)
	if err != nil {
		g.log.Warnw("quota counter unreachable, admitting", "error", err)
		return true
	}
	if used >= g.limit {
		g.log.Infow("video quota exhausted", "used", used, "limit", g.limit)
		return false
	}

	if _, err := g.store.Incr(ctx, key); err != nil {
		g.log.Warnw("quota increment failed, admitting", "error", err)
		return true
	}
	if err := g.store.Expire(ctx, key, 24*time.Hour); err != nil {
		g.log.Warnw("quota expire failed", "error", err)
	}
	return true
}

// Status is the quota endpoint payload.
type Status struct {
	Enabled    bool  `json:"enabled"`
	Remaining  int64 `json:"remaining"`
	DailyLimit int64 `json:"daily_limit"`
	Used       int64 `json:"used"`
}

// CurrentStatus reports today's usage. With no counter store configured the
// full ceiling is reported as remaining.
func (g *Governor) CurrentStatus(ctx context.Context) Status {
	st := Status{Enabled: true, DailyLimit: g.limit, Remaining: g.limit}
	if g.store == nil {
		return st
	}
	used, err := g.store.Get(ctx, g.key())
	if err != nil {
		g.log.Warnw("quota status read failed", "error", err)
		return st
	}
	st.Used = used
	st.Remaining = g.limit - used
	if st.Remaining < 0 {
		st.Remaining = 0
	}
	return st
}
