// Package logger builds log/slog loggers from functional options.
//
// Defaults are production oriented: JSON output on stdout at INFO level.
//
//	log := logger.New(
//		logger.WithFormat(logger.FormatText),
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttr(logger.Component("chinaid")),
//	)
//
// Levels and formats coming from configuration are parsed with ParseLevel and
// ParseFormat, which return errors instead of panicking.
//
// Context extractors add request-scoped attributes at log time:
//
//	log := logger.New(logger.WithContextValue("request_id", requestIDKey{}))
//	log.InfoContext(ctx, "decoded") // includes request_id when ctx carries it
//
// The attribute helpers (Error, Component, Number, Kind) keep key names
// consistent across packages.
package logger
