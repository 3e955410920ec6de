// Package logger builds the slog loggers used by the sample tools.
//
// New creates a *slog.Logger configured by Option functions: output format
// (text or json), minimum level, static attributes and ContextExtractor
// callbacks that copy values such as a run id out of the context on every
// log call.
//
//	log := logger.New(
//	    logger.WithEnvironment(logger.ParseEnvironment(os.Getenv("APP_ENV")), "samplectl"),
//	    logger.WithContextValue("run_id", runIDKey),
//	)
//	log.InfoContext(ctx, "validation finished",
//	    logger.File(path),
//	    logger.Rows(rows),
//	    logger.Failures(len(failures)),
//	)
//
// Helper constructors in attr.go keep attribute keys consistent across
// packages. Error returns an empty Attr for a nil error, so it can be
// passed without a nil check.
package logger
