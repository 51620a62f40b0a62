package task

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitDone(t *testing.T, tk *Task) {
	t.Helper()
	select {
	case <-tk.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("task %s did not finish", tk.Name())
	}
}

func TestScheduler_After(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var ran atomic.Bool
	tk := s.After("review", 10*time.Millisecond, func(ctx context.Context) {
		ran.Store(true)
	})

	waitDone(t, tk)
	assert.True(t, ran.Load())
	assert.Equal(t, StatusDone, tk.Status())
}

func TestTask_Cancel(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	var ran atomic.Bool
	tk := s.After("deposit", time.Hour, func(ctx context.Context) {
		ran.Store(true)
	})

	assert.Equal(t, 1, s.Pending())
	assert.True(t, tk.Cancel())
	assert.False(t, tk.Cancel(), "second cancel is a no-op")
	waitDone(t, tk)

	assert.False(t, ran.Load())
	assert.Equal(t, StatusCancelled, tk.Status())
	assert.Equal(t, 0, s.Pending())
}

func TestTask_CancelAfterRun(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	tk := s.After("noop", 0, func(ctx context.Context) {})
	waitDone(t, tk)

	assert.False(t, tk.Cancel())
	assert.Equal(t, StatusDone, tk.Status())
}

func TestScheduler_Stop(t *testing.T) {
	s := NewScheduler()

	var ran atomic.Int32
	pending := s.After("late", time.Hour, func(ctx context.Context) {
		ran.Add(1)
	})

	started := make(chan struct{})
	running := s.After("blocking", 0, func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		ran.Add(1)
	})
	<-started

	s.Stop()

	assert.Equal(t, StatusCancelled, pending.Status())
	assert.Equal(t, StatusDone, running.Status())
	assert.Equal(t, int32(1), ran.Load())

	after := s.After("after-stop", 0, func(ctx context.Context) {
		ran.Add(1)
	})
	require.Equal(t, StatusCancelled, after.Status())
	waitDone(t, after)
	assert.Equal(t, int32(1), ran.Load())

	// idempotent
	s.Stop()
}

func TestScheduler_PanicIsContained(t *testing.T) {
	s := NewScheduler()
	defer s.Stop()

	tk := s.After("panics", 0, func(ctx context.Context) {
		panic("boom")
	})
	waitDone(t, tk)
	assert.Equal(t, StatusDone, tk.Status())
}
