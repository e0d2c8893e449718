// Package decorator wraps functions to change when and how often they run.
//
// OnceI0O1 and its siblings run the wrapped function on the first call only.
// MemoizeI1O1 and its siblings cache results per distinct argument tuple.
// ThrottleI0O1 and ThrottleI1O1 run the wrapped function at most once per
// window and hand back the last result in between. Delay and DelayThunk run
// a call later on a timer goroutine; a Scheduler does the same on a fixed
// pool of workers.
//
// Wrapper names follow the shape of the wrapped function: I2O1 takes two
// arguments and returns one result, I1O2 takes one and returns two, usually
// a value and an error.
//
// Wrappers keep their state unsynchronized. Share one between goroutines
// only behind a lock of your own.
//
// The time-based wrappers read time from a clock.Clock (WithClock) so tests
// can drive them with clock.NewMock.
package decorator
