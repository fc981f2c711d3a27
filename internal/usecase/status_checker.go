package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
)

// DefaultStatusTimeout bounds how long an onboarding-status lookup may take
// before the checker gives up and fails open.
const DefaultStatusTimeout = 3 * time.Second

// StatusChecker answers "has this user completed onboarding" with three
// guarantees the route gate depends on:
//
//   - concurrent callers for the same user id share one database round trip
//     (singleflight keyed by user id);
//   - a lookup error or timeout FAILS OPEN: the user is treated as onboarded
//     so a flaky backend can never trap them in a redirect loop;
//   - Invalidate discards any in-flight result for the user id, so a lookup
//     started before sign-out cannot repopulate state afterwards.
//
// Positive answers are cached: completing onboarding is effectively
// monotonic, so token refreshes and repeated requests cost nothing until
// Invalidate is called.
type StatusChecker struct {
	prefs   domain.PreferencesRepository
	timeout time.Duration
	log     *slog.Logger

	group singleflight.Group

	mu        sync.Mutex
	completed map[string]bool   // positive results only
	gen       map[string]uint64 // bumped by Invalidate; guards stale stores
}

func NewStatusChecker(prefs domain.PreferencesRepository, timeout time.Duration, log *slog.Logger) *StatusChecker {
	if timeout <= 0 {
		timeout = DefaultStatusTimeout
	}
	if log == nil {
		log = slog.Default()
	}
	return &StatusChecker{
		prefs:     prefs,
		timeout:   timeout,
		log:       log,
		completed: make(map[string]bool),
		gen:       make(map[string]uint64),
	}
}

// Check reports whether the user has completed onboarding. It never returns
// an error: failure to find out is resolved in the user's favor.
func (c *StatusChecker) Check(ctx context.Context, userID string) bool {
	c.mu.Lock()
	if c.completed[userID] {
		c.mu.Unlock()
		return true
	}
	gen := c.gen[userID]
	c.mu.Unlock()

	ch := c.group.DoChan(userID, func() (interface{}, error) {
		// Detached context: the lookup is shared by every waiter, so one
		// caller's cancellation must not abort it for the others.
		lookupCtx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()
		return c.prefs.Exists(lookupCtx, userID)
	})

	var (
		exists bool
		err    error
	)
	select {
	case res := <-ch:
		if res.Err != nil {
			err = res.Err
		} else {
			exists = res.Val.(bool)
		}
	case <-ctx.Done():
		err = ctx.Err()
	case <-time.After(c.timeout):
		err = context.DeadlineExceeded
	}

	if err != nil {
		// Fail open: blocking access on a failed check is worse than letting
		// a not-yet-onboarded user reach the dashboard once.
		c.log.Warn("onboarding status check failed, failing open", "user_id", userID, "error", err)
		return true
	}

	if exists {
		c.mu.Lock()
		// A result that started before Invalidate ran is stale; drop it.
		if c.gen[userID] == gen {
			c.completed[userID] = true
		}
		c.mu.Unlock()
	}
	return exists
}

// Invalidate evicts the cached answer for a user id and marks any in-flight
// lookup stale. Called on sign-out and when onboarding state changes.
func (c *StatusChecker) Invalidate(userID string) {
	c.mu.Lock()
	delete(c.completed, userID)
	c.gen[userID]++
	c.mu.Unlock()
	c.group.Forget(userID)
}
