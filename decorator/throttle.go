package decorator

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/rickb777/date/v2/timespan"
)

// throttleState is owned by a single wrapper. It is not synchronised:
// concurrent calls into one throttled function need external locking.
type throttleState[O any] struct {
	clock       clock.Clock
	wait        time.Duration
	invoked     bool
	lastInvoked time.Time
	result      O
}

func (s *throttleState[O]) do(call func() O) O {
	now := s.clock.Now()
	if !s.invoked || s.elapsed(now) {
		s.result = call()
		s.lastInvoked = now
		s.invoked = true
	}
	return s.result
}

// elapsed reports whether now is at least wait after the last call. A clock
// that stepped back behind the last call never counts as elapsed.
func (s *throttleState[O]) elapsed(now time.Time) bool {
	if now.Before(s.lastInvoked) {
		return false
	}
	return timespan.BetweenTimes(s.lastInvoked, now).Duration() >= s.wait
}

// ThrottleI0O1 returns a function that calls fn at most once per wait.
//
// The first call runs fn immediately. Calls arriving less than wait after the
// last real call of fn do not call it and get that call's result back; they
// are dropped, not queued, so no trailing call happens when the window ends.
func ThrottleI0O1[O1 any](fn func() O1, wait time.Duration, opts ...Option) func() O1 {
	state := newThrottleState[O1](wait, opts)
	return func() O1 {
		return state.do(fn)
	}
}

// ThrottleI1O1 is ThrottleI0O1 for one-argument functions. A suppressed call
// returns the cached result even though its argument may differ.
func ThrottleI1O1[I1, O1 any](fn func(I1) O1, wait time.Duration, opts ...Option) func(I1) O1 {
	state := newThrottleState[O1](wait, opts)
	return func(i1 I1) O1 {
		return state.do(func() O1 {
			return fn(i1)
		})
	}
}

func newThrottleState[O any](wait time.Duration, opts []Option) *throttleState[O] {
	cfg := newConfig(opts)
	return &throttleState[O]{
		clock: cfg.clock,
		wait:  wait,
	}
}
