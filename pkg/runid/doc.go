// Package runid tags every validation or load run with an identifier that
// travels in the context and shows up as "run_id" in the logs.
//
//	ctx, id := runid.Ensure(ctx)
//	log := logger.New(logger.WithContextExtractors(runid.LoggerExtractor()))
//	log.InfoContext(ctx, "validation started") // run_id=<id>
package runid
