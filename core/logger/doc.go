// Package logger provides log/slog attribute helpers shared by the
// authentication packages.
//
// All helpers return an empty slog.Attr for zero inputs, which slog drops
// silently, so call sites never need nil checks:
//
//	log.Error("strategy mount failed",
//		logger.Component("auth"),
//		logger.Strategy("local"),
//		logger.Error(err),
//	)
package logger
