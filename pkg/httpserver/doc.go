// Package httpserver runs an http.Server with configurable timeouts and
// graceful shutdown.
//
// Run blocks until the given context is cancelled, the process receives
// SIGINT or SIGTERM, or serving fails. On shutdown in-flight requests get
// the configured shutdown timeout to complete.
//
// # Usage
//
//	var cfg httpserver.Config
//	config.MustLoad(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// # Error Handling
//
// Failures are joined with ErrStart or ErrShutdown and can be matched with
// errors.Is.
package httpserver
