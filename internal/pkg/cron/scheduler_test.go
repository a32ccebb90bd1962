package cron

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler() *Scheduler {
	return NewScheduler(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestScheduler_RunOnce(t *testing.T) {
	t.Parallel()
	s := newTestScheduler()

	var ran atomic.Int32
	s.AddJob("count", time.Hour, func(ctx context.Context) error {
		ran.Add(1)
		return nil
	})

	require.NoError(t, s.RunOnce(context.Background()))
	assert.Equal(t, int32(1), ran.Load())
}

func TestScheduler_RunOnce_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()
	s := newTestScheduler()

	boom := errors.New("boom")
	var secondRan atomic.Bool
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		return boom
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		secondRan.Store(true)
		return nil
	})

	err := s.RunOnce(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "first")
	assert.False(t, secondRan.Load())
}

func TestScheduler_StartRunsImmediately(t *testing.T) {
	t.Parallel()
	s := newTestScheduler()

	ran := make(chan struct{})
	s.AddJob("nightly", time.Hour, func(ctx context.Context) error {
		close(ran)
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not fire on start")
	}
}
