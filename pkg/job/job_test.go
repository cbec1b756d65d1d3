package job_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Black-png/trackers-api/pkg/job"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_RunsUntilCancelled(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	ctx, cancel := context.WithCancel(context.Background())

	s := job.NewScheduler(discard()).
		Register("count", 5*time.Millisecond, func(context.Context) error {
			calls.Add(1)
			return nil
		}).
		Register("fail", 5*time.Millisecond, func(context.Context) error {
			return errors.New("boom")
		}).
		Register("panic", 5*time.Millisecond, func(context.Context) error {
			panic("nil map")
		})

	s.Start(ctx)

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)

	cancel()
	s.Wait()

	stopped := calls.Load()
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, stopped, calls.Load())
}

func TestScheduler_DisabledJob(t *testing.T) {
	t.Parallel()

	s := job.NewScheduler(discard()).Register("off", 0, func(context.Context) error {
		t.Error("disabled job ran")
		return nil
	})

	require.Zero(t, s.Len())

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()
	s.Wait()
}
