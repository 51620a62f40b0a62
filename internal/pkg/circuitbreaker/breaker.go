// Package circuitbreaker stops calling a failing dependency for a cooldown
// period after too many consecutive failures.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/ojekdriver/internal/pkg/logger"
)

// State represents the circuit breaker state
type State int

const (
	// StateClosed allows calls through
	StateClosed State = iota
	// StateOpen rejects calls until the cooldown elapses
	StateOpen
	// StateHalfOpen lets a single probe through
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

var ErrOpen = errors.New("circuit breaker is open")

// Config holds circuit breaker configuration. A zero FailureThreshold
// disables the breaker.
type Config struct {
	FailureThreshold int
	Cooldown         time.Duration

	// Ignore reports errors that prove the dependency answered, such as a
	// missing row. They reset the failure count like a success.
	Ignore func(error) bool
}

// Breaker guards one dependency
type Breaker struct {
	name   string
	config Config
	now    func() time.Time

	mu       sync.Mutex
	state    State
	failures int
	openedAt time.Time
	probing  bool
}

// New creates a closed breaker
func New(name string, config Config) *Breaker {
	return &Breaker{name: name, config: config, now: time.Now}
}

// Execute calls fn unless the breaker is open. Context cancellation does
// not count as a failure.
func (b *Breaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if b.config.FailureThreshold <= 0 {
		return fn(ctx)
	}
	if err := b.before(); err != nil {
		return err
	}

	err := fn(ctx)
	b.after(err)
	return err
}

func (b *Breaker) before() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateOpen:
		if b.now().Sub(b.openedAt) < b.config.Cooldown {
			return ErrOpen
		}
		b.setState(StateHalfOpen)
		b.probing = true
	case StateHalfOpen:
		if b.probing {
			return ErrOpen
		}
		b.probing = true
	}
	return nil
}

func (b *Breaker) after(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.probing = false
	if err == nil || errors.Is(err, context.Canceled) || (b.config.Ignore != nil && b.config.Ignore(err)) {
		b.failures = 0
		if b.state != StateClosed {
			b.setState(StateClosed)
		}
		return
	}

	b.failures++
	if b.state == StateHalfOpen || b.failures >= b.config.FailureThreshold {
		b.openedAt = b.now()
		b.setState(StateOpen)
	}
}

func (b *Breaker) setState(state State) {
	if b.state == state {
		return
	}
	logger.Info("Circuit breaker state changed",
		logger.String("name", b.name),
		logger.String("from", b.state.String()),
		logger.String("to", state.String()),
		logger.Int("consecutive_failures", b.failures))
	b.state = state
}

// State returns the current state
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Name returns the breaker name
func (b *Breaker) Name() string {
	return b.name
}

// Set keeps one breaker per dependency name
type Set struct {
	config Config

	mu       sync.Mutex
	breakers map[string]*Breaker
}

// NewSet creates an empty set; breakers are created on first use
func NewSet(config Config) *Set {
	return &Set{config: config, breakers: make(map[string]*Breaker)}
}

// For returns the breaker for name, creating it if needed
func (s *Set) For(name string) *Breaker {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.breakers[name]
	if !ok {
		b = New(name, s.config)
		s.breakers[name] = b
	}
	return b
}

// States reports every breaker's state, keyed by name
func (s *Set) States() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]string, len(s.breakers))
	for name, b := range s.breakers {
		out[name] = b.State().String()
	}
	return out
}
