package resilience

import (
	"errors"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

var ErrCircuitOpen = errors.New("circuit breaker is open")

type CircuitState string

const (
	CircuitStateClosed   CircuitState = "closed"
	CircuitStateOpen     CircuitState = "open"
	CircuitStateHalfOpen CircuitState = "half_open"
)

// CircuitBreaker is a small stateful breaker for dependency protection.
type CircuitBreaker struct {
	mu sync.Mutex

	failureThreshold int
	openTimeout      time.Duration
	halfOpenMaxReq   int

	state               CircuitState
	consecutiveFailures int
	openedAt            time.Time
	halfOpenInFlight    int
	halfOpenSuccesses   int
	now                 func() time.Time
	listener            func(from, to CircuitState)
}

type BreakerOption func(*CircuitBreaker)

func WithBreakerClock(clock clockwork.Clock) BreakerOption {
	return func(b *CircuitBreaker) {
		if clock != nil {
			b.now = clock.Now
		}
	}
}

// WithStateListener is called after every state change, outside the
// breaker lock. The open to half-open move is reported when the next call
// is admitted, not when the timeout elapses.
func WithStateListener(fn func(from, to CircuitState)) BreakerOption {
	return func(b *CircuitBreaker) {
		b.listener = fn
	}
}

func NewCircuitBreaker(failureThreshold int, openTimeout time.Duration, halfOpenMaxReq int, opts ...BreakerOption) *CircuitBreaker {
	if failureThreshold < 1 {
		failureThreshold = 1
	}
	if openTimeout <= 0 {
		openTimeout = 15 * time.Second
	}
	if halfOpenMaxReq < 1 {
		halfOpenMaxReq = 1
	}

	b := &CircuitBreaker{
		failureThreshold: failureThreshold,
		openTimeout:      openTimeout,
		halfOpenMaxReq:   halfOpenMaxReq,
		state:            CircuitStateClosed,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewCircuitBreakerFromConfig builds a breaker from normalized config. It
// returns nil when the breaker is disabled.
func NewCircuitBreakerFromConfig(cfg CircuitBreakerConfig, opts ...BreakerOption) *CircuitBreaker {
	if !cfg.Enabled {
		return nil
	}
	cfg = NormalizeCircuitBreakerConfig(cfg)
	return NewCircuitBreaker(cfg.FailureThreshold, cfg.OpenTimeout, cfg.HalfOpenMaxReq, opts...)
}

func (b *CircuitBreaker) Allow() error {
	var err error
	b.transition(func() {
		if b.state == CircuitStateOpen {
			if b.now().Sub(b.openedAt) < b.openTimeout {
				err = ErrCircuitOpen
				return
			}
			b.toHalfOpen()
		}

		if b.state == CircuitStateHalfOpen {
			if b.halfOpenInFlight >= b.halfOpenMaxReq {
				err = ErrCircuitOpen
				return
			}
			b.halfOpenInFlight++
		}
	})
	return err
}

func (b *CircuitBreaker) RecordSuccess() {
	b.transition(b.recordSuccessLocked)
}

func (b *CircuitBreaker) recordSuccessLocked() {
	switch b.state {
	case CircuitStateClosed:
		b.consecutiveFailures = 0
	case CircuitStateHalfOpen:
		if b.halfOpenInFlight > 0 {
			b.halfOpenInFlight--
		}
		b.halfOpenSuccesses++
		if b.halfOpenSuccesses >= b.halfOpenMaxReq && b.halfOpenInFlight == 0 {
			b.toClosed()
		}
	}
}

func (b *CircuitBreaker) RecordFailure() {
	b.transition(b.recordFailureLocked)
}

func (b *CircuitBreaker) recordFailureLocked() {
	switch b.state {
	case CircuitStateClosed:
		b.consecutiveFailures++
		if b.consecutiveFailures >= b.failureThreshold {
			b.toOpen()
		}
	case CircuitStateHalfOpen:
		if b.halfOpenInFlight > 0 {
			b.halfOpenInFlight--
		}
		b.toOpen()
	case CircuitStateOpen:
		b.openedAt = b.now()
	}
}

func (b *CircuitBreaker) State() CircuitState {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == CircuitStateOpen {
		if b.now().Sub(b.openedAt) >= b.openTimeout {
			return CircuitStateHalfOpen
		}
	}

	return b.state
}

// transition runs fn under the lock and reports a state change afterwards.
func (b *CircuitBreaker) transition(fn func()) {
	b.mu.Lock()
	from := b.state
	fn()
	to := b.state
	listener := b.listener
	b.mu.Unlock()

	if listener != nil && from != to {
		listener(from, to)
	}
}

func (b *CircuitBreaker) toClosed() {
	b.state = CircuitStateClosed
	b.consecutiveFailures = 0
	b.halfOpenInFlight = 0
	b.halfOpenSuccesses = 0
	b.openedAt = time.Time{}
}

func (b *CircuitBreaker) toOpen() {
	b.state = CircuitStateOpen
	b.openedAt = b.now()
	b.halfOpenInFlight = 0
	b.halfOpenSuccesses = 0
}

func (b *CircuitBreaker) toHalfOpen() {
	b.state = CircuitStateHalfOpen
	b.halfOpenInFlight = 0
	b.halfOpenSuccesses = 0
}
