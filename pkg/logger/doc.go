// Package logger builds *slog.Logger values with functional options.
//
// New picks a text or JSON handler, adds static attributes and runs any
// registered ContextExtractor on every record, so request scoped values such
// as the request id and client address reach the output without being passed
// explicitly:
//
//	log := logger.New(
//		logger.WithEnvironment(logger.ParseEnvironment(cfg.Env), "visakit"),
//		logger.WithContextExtractors(requestid.LogExtractor()),
//	)
//	log.InfoContext(ctx, "field checked",
//		logger.Field(jpfield.FieldPassportNumber),
//		logger.Code(res.Code),
//	)
//
// Attribute helpers such as Error and Code return an empty slog.Attr for
// zero input, so they can be passed unconditionally.
package logger
