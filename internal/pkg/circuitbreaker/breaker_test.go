package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errUpstream = errors.New("upstream unavailable")

func failingCall(ctx context.Context) error { return errUpstream }
func okCall(ctx context.Context) error      { return nil }

func TestBreaker_OpensAfterThreshold(t *testing.T) {
	cfg := DefaultConfig("test")
	cfg.FailureThreshold = 3
	cb := New(cfg)

	for i := 0; i < 3; i++ {
		err := cb.Execute(context.Background(), failingCall)
		assert.ErrorIs(t, err, errUpstream)
	}

	assert.Equal(t, StateOpen, cb.State())

	// Requests are rejected without reaching the upstream while open
	err := cb.Execute(context.Background(), okCall)
	assert.ErrorIs(t, err, ErrOpen)
}

func TestBreaker_HalfOpenRecovers(t *testing.T) {
	cfg := DefaultConfig("test")
	cfg.FailureThreshold = 1
	cfg.Timeout = 10 * time.Millisecond
	cb := New(cfg)

	assert.ErrorIs(t, cb.Execute(context.Background(), failingCall), errUpstream)
	assert.Equal(t, StateOpen, cb.State())

	time.Sleep(20 * time.Millisecond)

	// First call after the timeout probes the upstream; success closes
	assert.NoError(t, cb.Execute(context.Background(), okCall))
	assert.Equal(t, StateClosed, cb.State())
}

func TestBreaker_HalfOpenFailureReopens(t *testing.T) {
	cfg := DefaultConfig("test")
	cfg.FailureThreshold = 1
	cfg.Timeout = 10 * time.Millisecond
	cb := New(cfg)

	assert.ErrorIs(t, cb.Execute(context.Background(), failingCall), errUpstream)
	time.Sleep(20 * time.Millisecond)

	assert.ErrorIs(t, cb.Execute(context.Background(), failingCall), errUpstream)
	assert.Equal(t, StateOpen, cb.State())
}

func TestBreaker_SuccessResetsFailureStreak(t *testing.T) {
	cfg := DefaultConfig("test")
	cfg.FailureThreshold = 3
	cb := New(cfg)

	assert.Error(t, cb.Execute(context.Background(), failingCall))
	assert.Error(t, cb.Execute(context.Background(), failingCall))
	assert.NoError(t, cb.Execute(context.Background(), okCall))
	assert.Error(t, cb.Execute(context.Background(), failingCall))

	assert.Equal(t, StateClosed, cb.State())
}

func TestBreaker_CustomIsFailure(t *testing.T) {
	cfg := DefaultConfig("test")
	cfg.FailureThreshold = 1
	cfg.IsFailure = func(err error) bool {
		// 4xx-style errors should not trip the breaker
		return err != nil && !errors.Is(err, errUpstream)
	}
	cb := New(cfg)

	assert.Error(t, cb.Execute(context.Background(), failingCall))
	assert.Equal(t, StateClosed, cb.State())
}
