package mainloop

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/dumbhint/internal/logging"
)

// ErrLoopStopped is returned by Invoke once the loop has stopped.
var ErrLoopStopped = errors.New("main loop stopped")

// Loop is a single goroutine acting as the UI thread for hosts without a
// native main loop: the terminal demo, the D-Bus server and tests.
type Loop struct {
	mu      sync.Mutex
	tasks   []func()
	wake    chan struct{}
	done    chan struct{}
	stopped bool
	once    sync.Once
}

// NewLoop creates a loop. Nothing runs until Run is called.
func NewLoop() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Post schedules fn on the loop goroutine. Safe from any goroutine,
// including the loop itself. Posts after Stop are dropped.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.tasks = append(l.tasks, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Invoke runs fn on the loop goroutine and waits for it to return.
func (l *Loop) Invoke(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	l.Post(func() {
		defer close(finished)
		fn()
	})
	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run executes posted tasks in order until ctx is done or Stop is called.
// A panicking task is logged and does not stop the loop.
func (l *Loop) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)
	log.Debug().Msg("main loop started")
	defer log.Debug().Msg("main loop stopped")

	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-l.done:
			return nil
		case <-l.wake:
		}
		l.runPending(ctx)
	}
}

func (l *Loop) runPending(ctx context.Context) {
	l.mu.Lock()
	tasks := l.tasks
	l.tasks = nil
	l.mu.Unlock()

	for _, fn := range tasks {
		if err := safeRun(fn); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("main loop task panicked")
		}
	}
}

func safeRun(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	fn()
	return nil
}

// Stop ends Run and drops pending tasks.
func (l *Loop) Stop() {
	l.once.Do(func() {
		l.mu.Lock()
		l.stopped = true
		l.tasks = nil
		l.mu.Unlock()
		close(l.done)
	})
}

// Done is closed once the loop has stopped.
func (l *Loop) Done() <-chan struct{} { return l.done }
