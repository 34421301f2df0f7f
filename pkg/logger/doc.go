// Package logger builds *slog.Logger values for the validation boundary
// adapters and offers attribute helpers with consistent key names.
//
// New takes functional options to pick the output format and level, attach
// static attributes, and register ContextExtractor callbacks that copy
// request scoped values from a context.Context into every record.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("orders-api"),
//	    logger.WithContextValue("request_id", ctxKeyRequestID),
//	)
//
//	if err := v.Check(payload); err != nil {
//	    log.InfoContext(ctx, "payload rejected",
//	        logger.Validator(v),
//	        logger.ErrorKind(err),
//	        logger.Error(err),
//	    )
//	}
//
// Level and format can also come from the environment:
//
//	var cfg logger.Config
//	config.MustLoad(&cfg) // LOG_LEVEL, LOG_FORMAT
//	log := logger.New(logger.WithConfig(cfg))
//
// Helpers such as Error, Source and ErrorKind return an empty slog.Attr when
// there is nothing to record, which slog omits from the output.
package logger
