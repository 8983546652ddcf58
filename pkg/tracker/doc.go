// Package tracker is HTTP middleware that keeps utm visitor and session state
// in the __utma and __utmb cookies, the way the utm JavaScript client does.
//
// Every request is treated as one tracked pageview. The middleware restores
// the visitor from __utma and the session from __utmb, fills the visitor's
// IP address, user agent and locale from the request, folds the session into
// the visitor and increments the session's track count. Both cookies are then
// written back and the entities are stored in the request context.
//
// # Usage
//
//	var cfg tracker.Config
//	config.MustLoad(&cfg)
//
//	r := chi.NewRouter()
//	r.Use(tracker.Middleware(cfg, tracker.WithLogger(log)))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//		visitor, _ := tracker.VisitorFromContext(r.Context())
//		session, _ := tracker.SessionFromContext(r.Context())
//		// build tracking parameters from visitor and session
//	})
//
// # Configuration
//
// Config reads GA_COOKIE_DOMAIN, GA_COOKIE_PATH, GA_COOKIE_SECURE,
// GA_VISITOR_COOKIE_MAX_AGE and GA_SESSION_TIMEOUT. The cookie domain also
// determines the domain hash both cookies start with.
//
// # Logger integration
//
//	log := logger.New(logger.WithContextExtractors(tracker.LoggerExtractor()))
//
// # Error Handling
//
// The middleware never fails a request. A cookie that cannot be decoded is
// logged at warn level and replaced by fresh state.
package tracker
