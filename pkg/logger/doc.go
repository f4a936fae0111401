// Package logger builds the service's *slog.Logger.
//
// New applies functional options on top of production-safe defaults (JSON,
// INFO) and wraps the handler in a decorator that pulls request-scoped
// attributes such as the request id out of the context at log time.
// The returned logger is meant to be passed explicitly to every component
// that logs; the package keeps no global instance.
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "authkit"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.ErrorContext(ctx, "sign up failed", logger.Operation("signup"), logger.Error(err))
package logger
