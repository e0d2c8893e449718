package decorator_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/on-the-ground/underbar/decorator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDelay_CallsLaterWithArguments(t *testing.T) {
	start := time.Now()
	got := make(chan []string, 1)
	var called atomic.Bool

	decorator.Delay(func(args ...string) {
		called.Store(true)
		got <- args
	}, 50*time.Millisecond, "x")

	assert.False(t, called.Load(), "fn must not run synchronously")

	select {
	case args := <-got:
		assert.Equal(t, []string{"x"}, args)
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for delayed call")
	}
}

func TestDelay_ArgumentsAreCopied(t *testing.T) {
	got := make(chan []int, 1)
	args := []int{1, 2}

	decorator.Delay(func(xs ...int) { got <- xs }, 10*time.Millisecond, args...)
	args[0] = 99

	select {
	case xs := <-got:
		assert.Equal(t, []int{1, 2}, xs)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for delayed call")
	}
}

func TestDelayThunk_NotBeforeWait(t *testing.T) {
	mock := clock.NewMock()
	done := make(chan struct{})

	decorator.DelayThunk(func() { close(done) }, 50*time.Millisecond, decorator.WithClock(mock))

	mock.Add(49 * time.Millisecond)
	select {
	case <-done:
		t.Fatal("called before wait elapsed")
	case <-time.After(20 * time.Millisecond):
	}

	mock.Add(time.Millisecond)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("not called after wait elapsed")
	}
}

func TestDelayThunk_IndependentCalls(t *testing.T) {
	mock := clock.NewMock()
	done := make(chan int, 2)

	decorator.DelayThunk(func() { done <- 1 }, 10*time.Millisecond, decorator.WithClock(mock))
	decorator.DelayThunk(func() { done <- 2 }, 20*time.Millisecond, decorator.WithClock(mock))

	mock.Add(10 * time.Millisecond)
	select {
	case n := <-done:
		assert.Equal(t, 1, n)
	case <-time.After(time.Second):
		t.Fatal("first call not made")
	}

	mock.Add(10 * time.Millisecond)
	select {
	case n := <-done:
		assert.Equal(t, 2, n)
	case <-time.After(time.Second):
		t.Fatal("second call not made")
	}
}

func TestDelayThunk_PanicIsRecoveredAndLogged(t *testing.T) {
	mock := clock.NewMock()
	core, logs := observer.New(zapcore.ErrorLevel)

	decorator.DelayThunk(func() { panic("boom") }, time.Millisecond,
		decorator.WithClock(mock),
		decorator.WithLogger(zap.New(core)),
	)
	mock.Add(time.Millisecond)

	require.Eventually(t, func() bool {
		return logs.FilterMessage("panic in deferred call").Len() == 1
	}, time.Second, 5*time.Millisecond)

	entry := logs.All()[0]
	assert.Equal(t, "boom", entry.ContextMap()["panic"])
}
