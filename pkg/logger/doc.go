// Package logger builds *slog.Logger values for the validation service and
// provides attribute helpers with consistent key names.
//
// New applies functional options (format, level, output, static attributes)
// and wraps the slog handler in LogHandlerDecorator, which runs registered
// ContextExtractor callbacks on every record. The service uses an extractor
// to stamp each log line with the request id set by the router.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "schemad"),
//		logger.WithLevelName(cfg.LogLevel),
//		logger.WithContextExtractors(requestIDExtractor),
//	)
//	log.DebugContext(ctx, "request rejected", logger.Schema("players"), logger.Problems(res.Problems()))
package logger
