package usecase_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Koushik2208/contentgen-pro/internal/domain"
	"github.com/Koushik2208/contentgen-pro/internal/usecase"
)

// slowPrefsRepo is a hand-rolled stub: the checker's concurrency behavior
// (call counting under parallel access, delays) is awkward to express with
// testify mocks.
type slowPrefsRepo struct {
	calls  int32
	delay  time.Duration
	exists int32 // atomic bool
	err    error
}

func (r *slowPrefsRepo) setExists(v bool) {
	var i int32
	if v {
		i = 1
	}
	atomic.StoreInt32(&r.exists, i)
}

func (r *slowPrefsRepo) Exists(ctx context.Context, userID string) (bool, error) {
	atomic.AddInt32(&r.calls, 1)
	if r.delay > 0 {
		select {
		case <-time.After(r.delay):
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
	if r.err != nil {
		return false, r.err
	}
	return atomic.LoadInt32(&r.exists) == 1, nil
}

func (r *slowPrefsRepo) GetByUserID(ctx context.Context, userID string) (*domain.UserPreferences, error) {
	return nil, domain.ErrNotFound
}

func (r *slowPrefsRepo) Upsert(ctx context.Context, prefs *domain.UserPreferences) error {
	return nil
}

func TestStatusCheckerDeduplication(t *testing.T) {
	repo := &slowPrefsRepo{delay: 50 * time.Millisecond}
	repo.setExists(true)
	checker := usecase.NewStatusChecker(repo, time.Second, nil)

	const waiters = 10
	var wg sync.WaitGroup
	results := make([]bool, waiters)
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = checker.Check(context.Background(), "user1")
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.True(t, got, "waiter %d", i)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&repo.calls), "concurrent checks must share one lookup")
}

func TestStatusCheckerCachesPositiveAnswers(t *testing.T) {
	repo := &slowPrefsRepo{}
	repo.setExists(true)
	checker := usecase.NewStatusChecker(repo, time.Second, nil)

	assert.True(t, checker.Check(context.Background(), "user1"))
	assert.True(t, checker.Check(context.Background(), "user1"))
	assert.Equal(t, int32(1), atomic.LoadInt32(&repo.calls), "second check must be served from cache")
}

func TestStatusCheckerDoesNotCacheNegatives(t *testing.T) {
	repo := &slowPrefsRepo{}
	checker := usecase.NewStatusChecker(repo, time.Second, nil)

	assert.False(t, checker.Check(context.Background(), "user1"))

	// Onboarding completes between checks
	repo.setExists(true)
	assert.True(t, checker.Check(context.Background(), "user1"))
	assert.Equal(t, int32(2), atomic.LoadInt32(&repo.calls))
}

func TestStatusCheckerFailsOpen(t *testing.T) {
	t.Run("Should fail open on lookup error", func(t *testing.T) {
		repo := &slowPrefsRepo{err: errors.New("connection refused")}
		checker := usecase.NewStatusChecker(repo, time.Second, nil)

		assert.True(t, checker.Check(context.Background(), "user1"))
	})

	t.Run("Should fail open when the lookup exceeds the timeout", func(t *testing.T) {
		repo := &slowPrefsRepo{delay: 500 * time.Millisecond}
		checker := usecase.NewStatusChecker(repo, 20*time.Millisecond, nil)

		start := time.Now()
		got := checker.Check(context.Background(), "user1")
		assert.True(t, got)
		assert.Less(t, time.Since(start), 400*time.Millisecond, "caller must not wait out the slow lookup")
	})

	t.Run("Should fail open when the caller's context is canceled", func(t *testing.T) {
		repo := &slowPrefsRepo{delay: 200 * time.Millisecond}
		checker := usecase.NewStatusChecker(repo, time.Second, nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.True(t, checker.Check(ctx, "user1"))
	})

	t.Run("Should not cache a failed-open answer", func(t *testing.T) {
		repo := &slowPrefsRepo{err: errors.New("connection refused")}
		checker := usecase.NewStatusChecker(repo, time.Second, nil)

		assert.True(t, checker.Check(context.Background(), "user1"))

		repo.err = nil
		assert.False(t, checker.Check(context.Background(), "user1"),
			"a recovered backend must be consulted again")
	})
}

func TestStatusCheckerInvalidate(t *testing.T) {
	t.Run("Should evict the cached answer", func(t *testing.T) {
		repo := &slowPrefsRepo{}
		repo.setExists(true)
		checker := usecase.NewStatusChecker(repo, time.Second, nil)

		assert.True(t, checker.Check(context.Background(), "user1"))
		checker.Invalidate("user1")
		repo.setExists(false)

		assert.False(t, checker.Check(context.Background(), "user1"))
		assert.Equal(t, int32(2), atomic.LoadInt32(&repo.calls))
	})

	t.Run("Should discard an in-flight result", func(t *testing.T) {
		repo := &slowPrefsRepo{delay: 80 * time.Millisecond}
		repo.setExists(true)
		checker := usecase.NewStatusChecker(repo, time.Second, nil)

		done := make(chan bool)
		go func() {
			done <- checker.Check(context.Background(), "user1")
		}()

		// Sign-out races the lookup that started before it
		time.Sleep(20 * time.Millisecond)
		checker.Invalidate("user1")
		<-done

		// The pre-invalidate result must not have been cached
		repo.setExists(false)
		assert.False(t, checker.Check(context.Background(), "user1"))
	})
}
