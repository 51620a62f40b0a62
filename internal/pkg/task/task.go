// Package task runs delayed callbacks that can be cancelled before they fire.
package task

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/piresc/ojekdriver/internal/pkg/logger"
)

// Status represents the lifecycle of a scheduled task
type Status int32

const (
	StatusPending Status = iota
	StatusRunning
	StatusDone
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusDone:
		return "done"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Func is the body of a task. The context is cancelled when the scheduler stops.
type Func func(ctx context.Context)

// Task is a handle to a delayed callback
type Task struct {
	name    string
	status  atomic.Int32
	timer   *time.Timer
	done    chan struct{}
	release func()
}

// Name returns the task name used in logs
func (t *Task) Name() string {
	return t.name
}

// Status returns the current task status
func (t *Task) Status() Status {
	return Status(t.status.Load())
}

// Cancel prevents the task from running. It returns false if the task
// already started, finished or was cancelled.
func (t *Task) Cancel() bool {
	if !t.status.CompareAndSwap(int32(StatusPending), int32(StatusCancelled)) {
		return false
	}
	close(t.done)
	// when the timer already fired, run observes the cancellation and releases
	if t.timer.Stop() {
		t.release()
	}
	return true
}

// Done is closed once the task has run or was cancelled
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Scheduler owns a set of tasks and cancels the pending ones on Stop
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	tasks   map[*Task]struct{}
	stopped bool
	wg      sync.WaitGroup
}

// NewScheduler creates a new scheduler instance
func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
		tasks:  make(map[*Task]struct{}),
	}
}

// After schedules fn to run once after d. A stopped scheduler returns a
// task that is already cancelled.
func (s *Scheduler) After(name string, d time.Duration, fn Func) *Task {
	t := &Task{name: name, done: make(chan struct{})}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		t.status.Store(int32(StatusCancelled))
		close(t.done)
		return t
	}

	s.tasks[t] = struct{}{}
	s.wg.Add(1)
	t.release = func() {
		s.forget(t)
		s.wg.Done()
	}
	t.timer = time.AfterFunc(d, func() { s.run(t, fn) })
	return t
}

func (s *Scheduler) run(t *Task, fn Func) {
	defer t.release()

	if !t.status.CompareAndSwap(int32(StatusPending), int32(StatusRunning)) {
		return
	}
	defer close(t.done)
	defer t.status.Store(int32(StatusDone))
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Task panicked",
				logger.String("task", t.name),
				logger.Any("panic", r))
		}
	}()

	fn(s.ctx)
}

func (s *Scheduler) forget(t *Task) {
	s.mu.Lock()
	delete(s.tasks, t)
	s.mu.Unlock()
}

// Pending returns the number of tasks that have not fired yet
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for t := range s.tasks {
		if t.Status() == StatusPending {
			n++
		}
	}
	return n
}

// Stop cancels every pending task and waits for running ones to return.
// It must not be called from inside a task.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	pending := make([]*Task, 0, len(s.tasks))
	for t := range s.tasks {
		pending = append(pending, t)
	}
	s.mu.Unlock()

	s.cancel()
	for _, t := range pending {
		t.Cancel()
	}
	s.wg.Wait()
}
