package tracker

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/gatrack/pkg/cookie"
	"github.com/dmitrymomot/gatrack/pkg/fingerprint"
	"github.com/dmitrymomot/gatrack/pkg/logger"
	"github.com/dmitrymomot/gatrack/pkg/tracking"
)

// Middleware restores the visitor and session from the __utma and __utmb
// request cookies, counts the request as one tracked pageview, writes both
// cookies back and stores the entities in the request context.
//
// Invalid cookies are logged and replaced by fresh state; they never fail
// the request. __utmb is only read when __utma was restored.
func Middleware(cfg Config, opts ...Option) func(http.Handler) http.Handler {
	mc := &middlewareConfig{
		logger: logger.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(mc)
	}

	cookies := cookie.NewFromConfig(cfg.Cookie)
	domainHash := DomainHash(cfg.Cookie.Domain)
	log := mc.logger.With(logger.Component("tracker"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			// cookies carry whole seconds; a sub-second visit time would
			// never compare equal to its own round-tripped value
			now := mc.now().Truncate(time.Second)
			trackingOpts := append(mc.tracking[:len(mc.tracking):len(mc.tracking)],
				tracking.WithClock(func() time.Time { return now }))

			visitor := tracking.NewVisitor(trackingOpts...)
			restored := false
			if value, err := cookies.Get(r, tracking.UTMACookie); err == nil {
				if _, err := visitor.ExtractFromUTMA(value); err != nil {
					log.WarnContext(ctx, "rejected visitor cookie",
						logger.Cookie(tracking.UTMACookie), logger.Error(err))
				} else {
					restored = true
				}
			}
			visitor.ExtractFromMeta(tracking.MetaFromRequest(r))

			// a session only continues for the visitor it belongs to; a fresh
			// visitor starts a fresh session even if __utmb survived
			session := tracking.NewSession(trackingOpts...)
			if value, err := cookies.Get(r, tracking.UTMBCookie); err == nil && restored {
				if _, err := session.ExtractFromUTMB(value); err != nil {
					log.WarnContext(ctx, "rejected session cookie",
						logger.Cookie(tracking.UTMBCookie), logger.Error(err))
				}
			}

			visitor.AddSession(session)
			session.IncrementTrackCount()

			cookies.Set(w, tracking.UTMACookie, visitor.UTMA(domainHash), cookie.WithMaxAge(cfg.VisitorMaxAge))
			cookies.Set(w, tracking.UTMBCookie, session.UTMB(domainHash), cookie.WithMaxAge(cfg.SessionTimeout))

			log.DebugContext(ctx, "tracked pageview",
				logger.VisitorID(visitor.UniqueID()),
				logger.SessionID(session.SessionID()),
				logger.ClientIP(visitor.IPAddress))

			ctx = WithSession(WithVisitor(ctx, visitor), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DomainHash returns the domain hash the utm client prefixes its cookies
// with. An empty domain hashes to 1.
func DomainHash(domain string) uint32 {
	return fingerprint.Hash(domain)
}
