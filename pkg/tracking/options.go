package tracking

import (
	"time"

	"github.com/dmitrymomot/gatrack/pkg/fingerprint"
	"github.com/dmitrymomot/gatrack/pkg/randnum"
)

// Option configures the sources a Visitor or Session draws on.
type Option func(*options)

type options struct {
	random func() uint32
	hash   func(string) uint32
	now    func() time.Time
}

func defaultOptions() options {
	return options{
		random: randnum.Uint32,
		hash:   fingerprint.Hash,
		now:    time.Now,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithRandom replaces the 32-bit random source used for session IDs and
// visitor ID generation. Nil is ignored.
func WithRandom(fn func() uint32) Option {
	return func(o *options) {
		if fn != nil {
			o.random = fn
		}
	}
}

// WithHasher replaces the stable string hash used for device fingerprints.
// Nil is ignored.
func WithHasher(fn func(string) uint32) Option {
	return func(o *options) {
		if fn != nil {
			o.hash = fn
		}
	}
}

// WithClock replaces the time source used for construction timestamps.
// Nil is ignored.
func WithClock(fn func() time.Time) Option {
	return func(o *options) {
		if fn != nil {
			o.now = fn
		}
	}
}
