package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option configures a single Load call.
type Option func(*loadConfig)

type loadConfig struct {
	prefix   string
	envFiles []string
}

// WithPrefix prepends prefix to every env tag of the target struct.
func WithPrefix(prefix string) Option {
	return func(c *loadConfig) { c.prefix = prefix }
}

// WithEnvFiles loads the given .env files before parsing. Variables already
// present in the process environment win. Missing files are an error.
func WithEnvFiles(files ...string) Option {
	return func(c *loadConfig) { c.envFiles = append(c.envFiles, files...) }
}

// Load parses environment variables into v based on its field tags.
//
// The default .env file in the working directory is loaded once per process
// if it exists. Example:
//
//	type TrackerConfig struct {
//		CookieDomain   string        `env:"COOKIE_DOMAIN"`
//		SessionTimeout time.Duration `env:"SESSION_TIMEOUT" envDefault:"30m"`
//	}
//
//	var cfg TrackerConfig
//	if err := config.Load(&cfg, config.WithPrefix("GA_")); err != nil {
//		// handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// the .env file is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	cfg := &loadConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if len(cfg.envFiles) > 0 {
		if err := godotenv.Load(cfg.envFiles...); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: cfg.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Use it for configuration
// the program cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
