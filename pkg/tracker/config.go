package tracker

import (
	"time"

	"github.com/dmitrymomot/gatrack/pkg/cookie"
)

// Config holds the cookie attributes and lifetimes of the utm cookies.
type Config struct {
	Cookie         cookie.Config `envPrefix:"GA_"`
	VisitorMaxAge  time.Duration `env:"GA_VISITOR_COOKIE_MAX_AGE" envDefault:"17520h"` // two years
	SessionTimeout time.Duration `env:"GA_SESSION_TIMEOUT" envDefault:"30m"`
}

// DefaultConfig mirrors the env defaults for callers that do not load
// configuration from the environment.
func DefaultConfig() Config {
	return Config{
		Cookie:         cookie.DefaultConfig(),
		VisitorMaxAge:  2 * 365 * 24 * time.Hour,
		SessionTimeout: 30 * time.Minute,
	}
}
