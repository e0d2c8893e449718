package decorator

import (
	"sync"

	"github.com/benbjohnson/clock"
	"github.com/on-the-ground/underbar/internal/logging"
	"go.uber.org/zap"
)

var defaultLogger = sync.OnceValue(logging.Default)

type config struct {
	clock  clock.Clock
	logger *zap.Logger
}

// Option configures the time-based decorators.
type Option func(*config)

// WithClock sets the clock used to read the current time and to schedule
// deferred calls. Tests pass clock.NewMock().
func WithClock(clk clock.Clock) Option {
	return func(c *config) {
		c.clock = clk
	}
}

// WithLogger sets the logger deferred calls report to.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	if c.clock == nil {
		c.clock = clock.New()
	}
	if c.logger == nil {
		c.logger = defaultLogger()
	}
	return c
}
