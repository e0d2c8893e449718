package decorator

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/on-the-ground/underbar/internal/dispatch"
	"go.uber.org/zap"
)

// SchedulerConfig sizes a Scheduler's worker pool and supplies its clock and
// logger.
type SchedulerConfig struct {
	BufferSize int // default: 1
	NumWorkers int // default: 1
	Clock      clock.Clock
	Logger     *zap.Logger
}

// NewSchedulerConfig returns a config on the wall clock and the default
// logger. Non-positive sizes become 1.
func NewSchedulerConfig(bufferSize int, numWorkers int) SchedulerConfig {
	return SchedulerConfig{
		BufferSize: bufferSize,
		NumWorkers: numWorkers,
	}.normalize()
}

func (c SchedulerConfig) normalize() SchedulerConfig {
	if c.BufferSize <= 0 {
		c.BufferSize = 1
	}
	if c.NumWorkers <= 0 {
		c.NumWorkers = 1
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.Logger == nil {
		c.Logger = defaultLogger()
	}
	return c
}

// Scheduler defers calls like Delay but runs them on its own workers instead
// of timer goroutines. With more than one worker, calls scheduled under the
// same key always run on the same worker, one at a time, in the order they
// were handed to it.
//
// Scheduled calls cannot be cancelled individually. Close stops the workers.
// Every call that has not started by then is dropped and logged, whether its
// timer fires later or already fired and the call is waiting for a worker.
type Scheduler struct {
	SchedulerId string

	mu         sync.RWMutex
	closed     bool
	ctx        context.Context
	cancel     context.CancelFunc
	clock      clock.Clock
	logger     *zap.Logger
	dispatcher dispatch.WorkerDispatcher[job]
}

type job struct {
	id    string
	key   string
	thunk func()
}

func (j job) PartitionKey() string {
	return j.key
}

// NewScheduler starts the workers. They stop on Close or when ctx is done;
// Close must be called either way to release the calls left waiting.
func NewScheduler(ctx context.Context, config SchedulerConfig) *Scheduler {
	config = config.normalize()
	ctx, cancel := context.WithCancel(ctx)

	s := &Scheduler{
		SchedulerId: uuid.New().String(),
		ctx:         ctx,
		cancel:      cancel,
		clock:       config.Clock,
		logger:      config.Logger,
	}

	if config.NumWorkers == 1 {
		s.dispatcher = dispatch.NewSingleQueue(ctx, config.BufferSize, s.run, s.dropped)
	} else {
		s.dispatcher = dispatch.NewPartitionedQueue(ctx, config.NumWorkers, config.BufferSize, s.run, s.dropped)
	}

	s.logger.Sugar().Debugf("created scheduler: schedulerId: %v, workers: %v", s.SchedulerId, config.NumWorkers)
	return s
}

// Schedule runs thunk on a worker no earlier than wait from now.
func (s *Scheduler) Schedule(key string, wait time.Duration, thunk func()) {
	j := job{
		id:    uuid.New().String(),
		key:   key,
		thunk: thunk,
	}
	s.logger.Sugar().Debugf("scheduled deferred call: schedulerId: %v, jobId: %v, key: %v, wait: %v", s.SchedulerId, j.id, key, wait)
	s.clock.AfterFunc(wait, func() {
		s.enqueue(j)
	})
}

// DelayOn is Delay on a Scheduler.
func DelayOn[A any](s *Scheduler, key string, fn func(...A), wait time.Duration, args ...A) {
	s.Schedule(key, wait, bind(fn, args))
}

// Close stops the workers and waits for the calls in progress, if any.
func (s *Scheduler) Close() {
	s.mu.Lock()
	s.closed = true
	s.cancel()
	s.mu.Unlock()

	s.dispatcher.Wait()
	s.logger.Sugar().Debugf("closed scheduler: schedulerId: %v", s.SchedulerId)
}

func (s *Scheduler) enqueue(j job) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed || s.ctx.Err() != nil {
		s.dropped(j)
		return
	}
	select {
	case <-s.ctx.Done():
		s.dropped(j)
	case s.dispatcher.GetChannelOf(j) <- j:
	}
}

func (s *Scheduler) dropped(j job) {
	s.logger.Warn("dropped deferred call on closed scheduler",
		zap.String("schedulerId", s.SchedulerId),
		zap.String("jobId", j.id),
		zap.String("key", j.key),
	)
}

func (s *Scheduler) run(_ context.Context, j job) {
	guard(s.logger, j.id, j.thunk)()
}
