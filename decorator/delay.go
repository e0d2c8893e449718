package decorator

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Delay calls fn(args...) once, no earlier than wait from now, on a timer
// goroutine. It returns immediately.
//
// There is no way to cancel a pending call. A panic raised by fn has no
// caller to return to; it is recovered and logged.
//
//	decorator.Delay(func(names ...string) { fmt.Println(names) }, 500*time.Millisecond, "a", "b")
func Delay[A any](fn func(...A), wait time.Duration, args ...A) {
	DelayThunk(bind(fn, args), wait)
}

// DelayThunk is Delay for a function without arguments, with options for the
// clock and logger.
func DelayThunk(thunk func(), wait time.Duration, opts ...Option) {
	cfg := newConfig(opts)
	id := uuid.New().String()
	cfg.logger.Sugar().Debugf("scheduled deferred call: jobId: %v, wait: %v", id, wait)
	cfg.clock.AfterFunc(wait, guard(cfg.logger, id, thunk))
}

func bind[A any](fn func(...A), args []A) func() {
	args = slices.Clone(args)
	return func() {
		fn(args...)
	}
}

// guard runs thunk, logging instead of crashing when it panics.
func guard(logger *zap.Logger, id string, thunk func()) func() {
	return func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic in deferred call",
					zap.String("jobId", id),
					zap.Any("panic", r),
				)
			}
		}()
		thunk()
	}
}
