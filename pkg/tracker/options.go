package tracker

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/gatrack/pkg/tracking"
)

// Option configures the tracker middleware.
type Option func(*middlewareConfig)

type middlewareConfig struct {
	logger   *slog.Logger
	now      func() time.Time
	tracking []tracking.Option
}

// WithLogger sets the logger used to report rejected cookies.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *middlewareConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock replaces time.Now as the source of the per-request visit time.
func WithClock(fn func() time.Time) Option {
	return func(c *middlewareConfig) {
		if fn != nil {
			c.now = fn
		}
	}
}

// WithTrackingOptions passes options to every Visitor and Session the
// middleware creates. A clock given here is overridden by the middleware's
// own per-request reading; use WithClock instead.
func WithTrackingOptions(opts ...tracking.Option) Option {
	return func(c *middlewareConfig) {
		c.tracking = append(c.tracking, opts...)
	}
}
