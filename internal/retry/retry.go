// Package retry runs an operation until it yields a non-empty result, waiting a fixed
// backoff between attempts and giving up after a bounded number of tries.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Defaults used when a Policy field is left at zero.
const (
	DefaultMaxAttempts = 3
	DefaultBackoff     = time.Second
)

// ErrExhausted is returned when every attempt produced an empty result.
var ErrExhausted = errors.New("all retries failed")

// State is a position in the retry state machine.
type State int

const (
	StateIdle State = iota
	StateAttempting
	StateRetrying
	StateSuccess
	StateExhausted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAttempting:
		return "attempting"
	case StateRetrying:
		return "retrying"
	case StateSuccess:
		return "success"
	case StateExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Policy configures the number of attempts and the wait between them.
type Policy struct {
	MaxAttempts int           // MaxAttempts is the total number of tries, including the first.
	Backoff     time.Duration // Backoff is the fixed wait between tries.
}

func (p Policy) withDefaults() Policy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultMaxAttempts
	}
	if p.Backoff <= 0 {
		p.Backoff = DefaultBackoff
	}

	return p
}

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the default SleepFunc backed by a timer.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Machine drives a single operation through Idle → Attempting → (Success | Retrying)
// → (Success | Exhausted). A Machine is used once; create a new one per operation.
type Machine[T any] struct {
	policy   Policy
	sleep    SleepFunc
	log      *slog.Logger
	state    State
	attempts int
}

// NewMachine creates a machine in the idle state. A nil sleep uses Sleep.
func NewMachine[T any](policy Policy, sleep SleepFunc, log *slog.Logger) *Machine[T] {
	if sleep == nil {
		sleep = Sleep
	}

	return &Machine[T]{policy: policy.withDefaults(), sleep: sleep, log: log}
}

// State returns the current state.
func (m *Machine[T]) State() State {
	return m.state
}

// Attempts returns how many times the operation has been invoked.
func (m *Machine[T]) Attempts() int {
	return m.attempts
}

// Run invokes op until it returns at least one item.
// An error from op ends the run immediately and is returned unchanged; only empty
// results are retried. After MaxAttempts empty results Run returns ErrExhausted.
func (m *Machine[T]) Run(ctx context.Context, op func(ctx context.Context) ([]T, error)) ([]T, error) {
	for {
		m.state = StateAttempting
		m.attempts++

		items, err := op(ctx)
		if err != nil {
			return nil, err
		}
		if len(items) > 0 {
			m.state = StateSuccess
			return items, nil
		}

		m.log.WarnContext(ctx, "Bad result, got no rows", "attempt", m.attempts, "max_attempts", m.policy.MaxAttempts)

		if m.attempts >= m.policy.MaxAttempts {
			m.state = StateExhausted
			m.log.ErrorContext(ctx, "All retries failed", "attempts", m.attempts)
			return nil, fmt.Errorf("%w after %d attempts", ErrExhausted, m.attempts)
		}

		m.state = StateRetrying
		if err = m.sleep(ctx, m.policy.Backoff); err != nil {
			return nil, fmt.Errorf("retry backoff interrupted: %w", err)
		}
	}
}
