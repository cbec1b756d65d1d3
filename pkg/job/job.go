package job

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"
)

type job struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
}

// Scheduler runs registered functions on fixed intervals until its context
// is cancelled. The first run happens one interval after Start.
type Scheduler struct {
	l    *slog.Logger
	jobs []job
	wg   sync.WaitGroup
}

func NewScheduler(l *slog.Logger) *Scheduler {
	return &Scheduler{l: l}
}

// Register adds a job. Non-positive intervals disable it.
func (s *Scheduler) Register(name string, interval time.Duration, fn func(ctx context.Context) error) *Scheduler {
	if interval <= 0 {
		s.l.Debug("job disabled", "job", name)
		return s
	}

	s.jobs = append(s.jobs, job{
		name:     name,
		interval: interval,
		fn:       fn,
	})

	return s
}

func (s *Scheduler) Len() int {
	return len(s.jobs)
}

func (s *Scheduler) Start(ctx context.Context) {
	for _, j := range s.jobs {
		s.wg.Add(1)

		go s.run(ctx, j)
	}
}

func (s *Scheduler) run(ctx context.Context, j job) {
	defer s.wg.Done()

	l := s.l.With("job", j.name)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.Debug("job stopped by ctx")
			return
		case <-ticker.C:
		}

		l.Debug("job started")

		err := withRecover(ctx, j)
		if err != nil {
			l.Error("job failed", "error", err)
		} else {
			l.Debug("job finished")
		}
	}
}

func withRecover(ctx context.Context, j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()

	return j.fn(ctx)
}

// Wait blocks until every job returned after its context was cancelled.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
