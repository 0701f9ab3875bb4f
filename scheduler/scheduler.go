package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrInvalidInterval is returned by Start when the interval is not positive
var ErrInvalidInterval = errors.New("scheduler interval must be positive")

// Option configures a Scheduler
type Option func(*Scheduler)

// WithImmediateRun executes the task once as soon as the scheduler starts
func WithImmediateRun() Option {
	return func(s *Scheduler) {
		s.runImmediately = true
	}
}

// Scheduler runs a background task at a fixed interval. It implements core.Interface.
type Scheduler struct {
	interval       time.Duration
	task           func(context.Context)
	runImmediately bool

	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
}

// New creates a new Scheduler instance
func New(interval time.Duration, task func(context.Context), opts ...Option) *Scheduler {
	s := &Scheduler{
		interval: interval,
		task:     task,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins executing the task at the configured interval. Starting a running
// scheduler is a no-op.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil
	}
	if s.interval <= 0 {
		return ErrInvalidInterval
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.running = true

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		if s.runImmediately {
			s.task(ctx)
		}

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.task(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop terminates the periodic task execution and waits for a running task to return
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	s.running = false
}

// IsRunning returns true if the scheduler has been started and not stopped
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
