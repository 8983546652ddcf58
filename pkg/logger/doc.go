// Package logger builds *slog.Logger instances with functional options,
// consistent attribute helpers and context-driven attribute injection.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs every registered ContextExtractor
// on each record. The tracker middleware uses an extractor to stamp visitor
// and session IDs onto every log line written while serving a request.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "gatrack"),
//	    logger.WithContextExtractors(tracker.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.WarnContext(ctx, "invalid utm cookie",
//	    logger.Component("tracker"),
//	    logger.Cookie("__utma"),
//	    logger.Error(err),
//	)
//
// # Error Handling
//
// Error and Errors produce attributes only for non-nil errors, so they can be
// passed unconditionally. WithFormat panics on an unknown format.
package logger
