package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExecute_SucceedsFirstTry(t *testing.T) {
	r := NewWithDefaults()
	calls := 0

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestExecute_RetriesUntilSuccess(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseDelay = time.Millisecond
	cfg.Jitter = false
	r := New(cfg)

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("transient")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_ExhaustsRetries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRetries = 2
	cfg.BaseDelay = time.Millisecond
	cfg.Jitter = false
	r := New(cfg)

	boom := errors.New("boom")
	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return boom
	})

	assert.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls) // initial attempt + 2 retries
}

func TestExecute_NonRetryableStopsImmediately(t *testing.T) {
	fatal := errors.New("bad request")
	cfg := DefaultConfig()
	cfg.BaseDelay = time.Millisecond
	cfg.RetryableFunc = func(err error) bool {
		return !errors.Is(err, fatal)
	}
	r := New(cfg)

	calls := 0
	err := r.Execute(context.Background(), func(ctx context.Context) error {
		calls++
		return fatal
	})

	assert.ErrorIs(t, err, fatal)
	assert.Equal(t, 1, calls)
}

func TestExecute_ContextCancellation(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseDelay = time.Second
	cfg.Jitter = false
	r := New(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := r.Execute(ctx, func(ctx context.Context) error {
		return errors.New("transient")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestCalculateDelay_Backoff(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseDelay = 100 * time.Millisecond
	cfg.MaxDelay = 300 * time.Millisecond
	cfg.Multiplier = 2.0
	cfg.Jitter = false
	r := New(cfg)

	assert.Equal(t, 100*time.Millisecond, r.calculateDelay(0))
	assert.Equal(t, 200*time.Millisecond, r.calculateDelay(1))
	// capped at MaxDelay
	assert.Equal(t, 300*time.Millisecond, r.calculateDelay(2))
	assert.Equal(t, 300*time.Millisecond, r.calculateDelay(5))
}
